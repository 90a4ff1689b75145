package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"brand-dna/internal/domain"
)

func fullWorkshopProfile() domain.WorkshopProfile {
	return domain.WorkshopProfile{
		SelectedValues: []string{"innovation", "creativity", "vision"},
		TonePreferences: &domain.TonePreferences{
			Formality: -20, Analytical: 0, Creative: 80, Assertive: 40,
			Scale: domain.ToneScaleSigned,
		},
		QuizResponses: []domain.QuizResponse{
			{QuestionID: domain.QuestionCurrentRole, AnswerText: "I am a bold product builder"},
			{QuestionID: domain.QuestionUniqueApproach, AnswerText: "I run experimental prototypes nobody dares to try"},
		},
		WritingSample: "I imagine a future where we reinvent everything. I believe bold experiments transform stale markets.",
		Personas: []domain.AudiencePersona{
			{
				Name:       "early adopter founders",
				Industry:   "technology",
				PainPoints: []string{"stuck without innovation"},
				Goals:      []string{"transform their market"},
			},
		},
	}
}

func newTestClassifier() *ClassifierService {
	return NewClassifierService(domain.DefaultArchetypes(), domain.DefaultSynonyms(), nil, nil, zap.NewNop())
}

func TestClassify_FullProfilePicksInnovator(t *testing.T) {
	svc := newTestClassifier()
	result := svc.Classify(context.Background(), fullWorkshopProfile())

	if result.Primary.Archetype.ID != domain.ArchetypeInnovator {
		t.Fatalf("expected innovator, got %s", result.Primary.Archetype.ID)
	}
	if result.Secondary == nil {
		t.Fatal("expected secondary score")
	}
	if result.Signature == nil {
		t.Fatal("expected writing signature")
	}
	if result.Primary.Total < result.Secondary.Total {
		t.Fatalf("primary %f below secondary %f", result.Primary.Total, result.Secondary.Total)
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	svc := newTestClassifier()
	profile := fullWorkshopProfile()

	a := svc.Classify(context.Background(), profile)
	b := svc.Classify(context.Background(), profile)

	if a.Primary.Archetype.ID != b.Primary.Archetype.ID {
		t.Fatalf("primary changed between runs: %s vs %s", a.Primary.Archetype.ID, b.Primary.Archetype.ID)
	}
	if !almostEqual(a.Primary.Total, b.Primary.Total) {
		t.Fatalf("total changed between runs: %f vs %f", a.Primary.Total, b.Primary.Total)
	}
	if !almostEqual(a.Primary.Confidence, b.Primary.Confidence) {
		t.Fatalf("confidence changed between runs: %f vs %f", a.Primary.Confidence, b.Primary.Confidence)
	}
}

func TestClassify_EmptyProfileHasZeroConfidence(t *testing.T) {
	svc := newTestClassifier()
	result := svc.Classify(context.Background(), domain.WorkshopProfile{})

	// Con todo neutro los totales empatan y el orden estable deja el catálogo.
	if result.Primary.Archetype.ID != domain.ArchetypeInnovator {
		t.Fatalf("expected catalog order on tie, got %s", result.Primary.Archetype.ID)
	}
	if result.Primary.Confidence != 0 {
		t.Fatalf("expected zero confidence for empty profile, got %f", result.Primary.Confidence)
	}
	if result.Signature != nil {
		t.Fatal("expected nil signature without writing sample")
	}
	for _, score := range []domain.ArchetypeScore{result.Primary, *result.Secondary} {
		if score.Total < 0 || score.Total > 1 {
			t.Fatalf("total out of range: %f", score.Total)
		}
	}
}

func TestClassify_AIIndicatorsShiftPersonality(t *testing.T) {
	svc := newTestClassifier()
	profile := domain.WorkshopProfile{
		AIIndicators: map[string]float64{domain.ArchetypeCatalyst: 1.0},
	}

	result := svc.Classify(context.Background(), profile)
	if result.Primary.Archetype.ID != domain.ArchetypeCatalyst {
		t.Fatalf("expected indicator prior to promote catalyst, got %s", result.Primary.Archetype.ID)
	}
	// Prior acotado: 0.5 + (1.0-0.5)*0.2 = 0.6.
	if !almostEqual(result.Primary.Breakdown.Personality, 0.6) {
		t.Fatalf("expected personality 0.6, got %f", result.Primary.Breakdown.Personality)
	}
}

func TestProfileCompleteness(t *testing.T) {
	if got := profileCompleteness(domain.WorkshopProfile{}); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
	if got := profileCompleteness(fullWorkshopProfile()); !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0, got %f", got)
	}
	partial := domain.WorkshopProfile{
		SelectedValues: []string{"innovation"},
		WritingSample:  "hello there",
	}
	if got := profileCompleteness(partial); !almostEqual(got, 2.0/5.0) {
		t.Fatalf("expected 0.4, got %f", got)
	}
}

func TestDetectHybrid_EmitsOnCloseScores(t *testing.T) {
	catalog := domain.DefaultArchetypes()
	primary := domain.ArchetypeScore{Archetype: catalog[0], Total: 0.70, Confidence: 0.65}
	secondary := domain.ArchetypeScore{Archetype: catalog[1], Total: 0.60, Confidence: 0.55}

	hybrid := detectHybrid(primary, secondary)
	if hybrid == nil {
		t.Fatal("expected hybrid descriptor")
	}
	if hybrid.Name != "The Innovator / The Strategist" {
		t.Fatalf("unexpected hybrid name: %s", hybrid.Name)
	}
	if !almostEqual(hybrid.BlendRatio, 0.70/1.30) {
		t.Fatalf("expected blend ratio %f, got %f", 0.70/1.30, hybrid.BlendRatio)
	}
}

func TestDetectHybrid_GapAtThresholdSuppresses(t *testing.T) {
	catalog := domain.DefaultArchetypes()
	primary := domain.ArchetypeScore{Archetype: catalog[0], Total: 0.80, Confidence: 0.75}
	secondary := domain.ArchetypeScore{Archetype: catalog[1], Total: 0.65, Confidence: 0.60}

	if hybrid := detectHybrid(primary, secondary); hybrid != nil {
		t.Fatalf("expected no hybrid at gap 0.15, got %+v", hybrid)
	}
}

func TestDetectHybrid_LowConfidenceSuppresses(t *testing.T) {
	catalog := domain.DefaultArchetypes()
	primary := domain.ArchetypeScore{Archetype: catalog[0], Total: 0.50, Confidence: 0.60}
	secondary := domain.ArchetypeScore{Archetype: catalog[1], Total: 0.45, Confidence: 0.50}

	if hybrid := detectHybrid(primary, secondary); hybrid != nil {
		t.Fatalf("expected no hybrid at confidence 0.60, got %+v", hybrid)
	}
}

type stubWritingAnalyzer struct {
	analysis domain.WritingAnalysis
	err      error
	calls    int
}

func (s *stubWritingAnalyzer) Analyze(_ context.Context, _ string) (domain.WritingAnalysis, error) {
	s.calls++
	return s.analysis, s.err
}

func TestClassify_EnrichmentFeedsIndicators(t *testing.T) {
	analysis := domain.DefaultWritingAnalysis(domain.ArchetypeIDs(domain.DefaultArchetypes()))
	analysis.ArchetypeIndicators[domain.ArchetypeMentor] = 1.0
	analyzer := &stubWritingAnalyzer{analysis: analysis}

	svc := NewClassifierService(domain.DefaultArchetypes(), domain.DefaultSynonyms(), analyzer, nil, zap.NewNop())
	profile := domain.WorkshopProfile{WritingSample: "plain text without strong signals"}

	result := svc.Classify(context.Background(), profile)
	if analyzer.calls != 1 {
		t.Fatalf("expected one analyzer call, got %d", analyzer.calls)
	}
	if result.Primary.Archetype.ID != domain.ArchetypeMentor {
		t.Fatalf("expected mentor promoted by indicators, got %s", result.Primary.Archetype.ID)
	}
}

func TestClassify_ProfileIndicatorsTakePrecedence(t *testing.T) {
	analyzer := &stubWritingAnalyzer{analysis: domain.DefaultWritingAnalysis(nil)}
	svc := NewClassifierService(domain.DefaultArchetypes(), domain.DefaultSynonyms(), analyzer, nil, zap.NewNop())

	profile := domain.WorkshopProfile{
		WritingSample: "some sample",
		AIIndicators:  map[string]float64{domain.ArchetypeCatalyst: 1.0},
	}
	svc.Classify(context.Background(), profile)
	if analyzer.calls != 0 {
		t.Fatalf("expected cached indicators to skip analyzer, got %d calls", analyzer.calls)
	}
}
