package service

import (
	"math"
	"testing"

	"brand-dna/internal/domain"
)

func testArchetype(id string) domain.Archetype {
	arch, ok := domain.ArchetypeByID(domain.DefaultArchetypes(), id)
	if !ok {
		panic("unknown archetype id in test: " + id)
	}
	return arch
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatchValues_EmptyReturnsZero(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	got := engine.MatchValues(nil, testArchetype(domain.ArchetypeInnovator))
	if got != 0 {
		t.Fatalf("expected 0 for empty values, got %f", got)
	}
}

func TestMatchValues_ExactTopMatchScoresFull(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	got := engine.MatchValues([]string{"innovation"}, testArchetype(domain.ArchetypeInnovator))
	if !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0, got %f", got)
	}
}

func TestMatchValues_OrderWeightsPriority(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	arch := testArchetype(domain.ArchetypeInnovator)

	// "innovation" en segunda posición pesa 0.9; el primero no matchea.
	got := engine.MatchValues([]string{"punctuality", "innovation"}, arch)
	if !almostEqual(got, 0.9/2.0) {
		t.Fatalf("expected 0.45, got %f", got)
	}
}

func TestMatchValues_SubstringEarnsHalfCredit(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	got := engine.MatchValues([]string{"innovation-first"}, testArchetype(domain.ArchetypeInnovator))
	if !almostEqual(got, 0.5) {
		t.Fatalf("expected 0.5, got %f", got)
	}
}

func TestMatchValues_OnlyFirstSevenWeigh(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	arch := testArchetype(domain.ArchetypeInnovator)

	selected := []string{"a", "b", "c", "d", "e", "f", "g", "innovation"}
	got := engine.MatchValues(selected, arch)
	if got != 0 {
		t.Fatalf("expected value beyond position 7 to be ignored, got %f", got)
	}
}

func TestMatchTone_AbsentPreferencesIsNeutral(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	got := engine.MatchTone(nil, testArchetype(domain.ArchetypeStrategist))
	if !almostEqual(got, 0.5) {
		t.Fatalf("expected neutral 0.5, got %f", got)
	}
}

func TestMatchTone_PerfectAlignmentScoresOne(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	arch := testArchetype(domain.ArchetypeInnovator)

	// Sliders signed que normalizan exactamente al perfil tonal del innovator.
	prefs := &domain.TonePreferences{
		Formality:  -20,
		Analytical: 0,
		Creative:   80,
		Assertive:  40,
		Scale:      domain.ToneScaleSigned,
	}
	got := engine.MatchTone(prefs, arch)
	if !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0, got %f", got)
	}
}

func TestMatchTone_UnitScaleNormalization(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	arch := testArchetype(domain.ArchetypeInnovator)

	prefs := &domain.TonePreferences{
		Formality:  40,
		Analytical: 50,
		Creative:   90,
		Assertive:  70,
		Scale:      domain.ToneScaleUnit,
	}
	got := engine.MatchTone(prefs, arch)
	if !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0 on unit scale, got %f", got)
	}
}

func TestMatchPersonality_EmptyReturnsNeutral(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	got := engine.MatchPersonality(nil, testArchetype(domain.ArchetypeMentor))
	if !almostEqual(got, 0.5) {
		t.Fatalf("expected 0.5, got %f", got)
	}
}

func TestMatchPersonality_TraitKeywordFullCredit(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	responses := []domain.QuizResponse{
		{QuestionID: "q1", AnswerText: "I am bold when it comes to new ideas"},
	}
	got := engine.MatchPersonality(responses, testArchetype(domain.ArchetypeInnovator))
	if !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0 for trait keyword, got %f", got)
	}
}

func TestMatchPersonality_SynonymHalfCredit(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	responses := []domain.QuizResponse{
		{QuestionID: "q1", AnswerText: "people call me daring"},
	}
	got := engine.MatchPersonality(responses, testArchetype(domain.ArchetypeInnovator))
	if !almostEqual(got, 0.5) {
		t.Fatalf("expected 0.5 for synonym, got %f", got)
	}
}

func TestMatchPersonality_SelectedOptionCounts(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	responses := []domain.QuizResponse{
		{QuestionID: "q1", AnswerText: "no signal here", SelectedOption: "the empathetic path"},
	}
	got := engine.MatchPersonality(responses, testArchetype(domain.ArchetypeMentor))
	if !almostEqual(got, 1.0) {
		t.Fatalf("expected selected option to count, got %f", got)
	}
}

func TestMatchAudience_EmptyReturnsNeutral(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	got := engine.MatchAudience(nil, testArchetype(domain.ArchetypeCatalyst))
	if !almostEqual(got, 0.5) {
		t.Fatalf("expected 0.5, got %f", got)
	}
}

func TestMatchAudience_KeywordFraction(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	arch := testArchetype(domain.ArchetypeInnovator)

	personas := []domain.AudiencePersona{
		{
			Name:       "founder",
			PainPoints: []string{"they need innovation"},
			Goals:      []string{"transform the future"},
		},
	}
	// 3 de 8 keywords del innovator: innovation, transform, future.
	got := engine.MatchAudience(personas, arch)
	if !almostEqual(got, 3.0/8.0) {
		t.Fatalf("expected 0.375, got %f", got)
	}
}

func TestMatchAudience_AveragesAcrossPersonas(t *testing.T) {
	engine := NewScoreEngine(domain.DefaultSynonyms())
	arch := testArchetype(domain.ArchetypeInnovator)

	personas := []domain.AudiencePersona{
		{Name: "a", Goals: []string{"innovation"}},
		{Name: "b", Goals: []string{"nothing relevant"}},
	}
	got := engine.MatchAudience(personas, arch)
	if !almostEqual(got, (1.0/8.0)/2.0) {
		t.Fatalf("expected averaged fraction, got %f", got)
	}
}
