package domain

import "testing"

func TestTonePreferencesNormalized_SignedScale(t *testing.T) {
	tone := TonePreferences{Formality: -100, Analytical: 0, Creative: 100, Assertive: 50}

	got := tone.Normalized()
	if got.Formality != 0 {
		t.Fatalf("expected formality 0, got %v", got.Formality)
	}
	if got.Analytical != 0.5 {
		t.Fatalf("expected analytical 0.5, got %v", got.Analytical)
	}
	if got.Creative != 1 {
		t.Fatalf("expected creative 1, got %v", got.Creative)
	}
	if got.Assertive != 0.75 {
		t.Fatalf("expected assertive 0.75, got %v", got.Assertive)
	}
}

func TestTonePreferencesNormalized_UnitScale(t *testing.T) {
	tone := TonePreferences{Formality: 0, Analytical: 50, Creative: 100, Assertive: 25, Scale: ToneScaleUnit}

	got := tone.Normalized()
	if got.Formality != 0 || got.Analytical != 0.5 || got.Creative != 1 || got.Assertive != 0.25 {
		t.Fatalf("unexpected normalized profile: %+v", got)
	}
}

func TestTonePreferencesNormalized_ClampsOutOfRange(t *testing.T) {
	tone := TonePreferences{Formality: -500, Creative: 500}

	got := tone.Normalized()
	if got.Formality != 0 {
		t.Fatalf("expected formality clamped to 0, got %v", got.Formality)
	}
	if got.Creative != 1 {
		t.Fatalf("expected creative clamped to 1, got %v", got.Creative)
	}
}

func TestWorkshopProfileQuizAnswer(t *testing.T) {
	profile := WorkshopProfile{
		QuizResponses: []QuizResponse{
			{QuestionID: QuestionCurrentRole, AnswerText: "brand coach"},
			{QuestionID: QuestionUniqueApproach, AnswerText: "listening first"},
		},
	}

	if got := profile.QuizAnswer(QuestionUniqueApproach); got != "listening first" {
		t.Fatalf("expected quiz answer, got %q", got)
	}
	if got := profile.QuizAnswer("missing"); got != "" {
		t.Fatalf("expected empty answer for unknown question, got %q", got)
	}
}

func TestWorkshopProfilePrimaryPersona(t *testing.T) {
	var empty WorkshopProfile
	if _, ok := empty.PrimaryPersona(); ok {
		t.Fatalf("expected no persona on empty profile")
	}

	profile := WorkshopProfile{
		Personas: []AudiencePersona{
			{Name: "founders", Industry: "technology"},
			{Name: "coaches", Industry: "education"},
		},
	}
	persona, ok := profile.PrimaryPersona()
	if !ok || persona.Name != "founders" {
		t.Fatalf("expected first persona, got ok=%v name=%q", ok, persona.Name)
	}
}
