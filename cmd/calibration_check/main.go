package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"brand-dna/internal/domain"
	"brand-dna/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// Fixture es un perfil de calibración con el arquetipo que debería ganar.
type Fixture struct {
	Name     string
	Expected string
	Profile  domain.WorkshopProfile
}

// Harness offline de calibración: corre el clasificador basado en reglas
// sobre perfiles fijos y verifica que gane el arquetipo esperado. Sin red,
// sin base de datos; pensado para correr tras tocar pesos o keywords.
func main() {
	ctx := context.Background()

	logger := zap.NewNop()
	classifier := service.NewClassifierService(domain.DefaultArchetypes(), domain.DefaultSynonyms(), nil, nil, logger)

	var failures int
	for _, fx := range fixtures() {
		result := classifier.Classify(ctx, fx.Profile)
		got := result.Primary.Archetype.ID

		status := colorGreen + "OK" + colorReset
		if got != fx.Expected {
			status = colorRed + "FAIL" + colorReset
			failures++
		}

		fmt.Printf("%s[%s]%s esperado=%s obtenido=%s score=%.3f confianza=%.3f %s\n",
			colorCyan, fx.Name, colorReset, fx.Expected, got,
			result.Primary.Total, result.Primary.Confidence, status)
		if result.Hybrid != nil {
			fmt.Printf("    híbrido: %s (blend %.2f)\n", result.Hybrid.Name, result.Hybrid.BlendRatio)
		}
	}

	if failures > 0 {
		fmt.Printf("\n%d perfiles fuera de calibración\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nCalibración OK")
}

func fixtures() []Fixture {
	return []Fixture{
		{
			Name:     "disruptor",
			Expected: domain.ArchetypeInnovator,
			Profile: domain.WorkshopProfile{
				SelectedValues: []string{"innovation", "creativity", "progress", "disruption"},
				TonePreferences: &domain.TonePreferences{
					Formality: -40, Analytical: 0, Creative: 80, Assertive: 40,
					Scale: domain.ToneScaleSigned,
				},
				QuizResponses: []domain.QuizResponse{
					{QuestionID: domain.QuestionCurrentRole, AnswerText: "I am a visionary product builder, bold and experimental"},
					{QuestionID: domain.QuestionUniqueApproach, AnswerText: "I imagine what nobody dares to try and break the mold"},
				},
				WritingSample: "I imagine a future where we reinvent everything. What if we could transform the way teams create? I believe bold experiments breakthrough stale markets.",
				Personas: []domain.AudiencePersona{
					{
						Name:       "Early adopter founder",
						Industry:   "technology",
						PainPoints: []string{"stuck in old playbooks", "afraid of change"},
						Goals:      []string{"breakthrough products", "creative momentum"},
					},
				},
			},
		},
		{
			Name:     "analista",
			Expected: domain.ArchetypeStrategist,
			Profile: domain.WorkshopProfile{
				SelectedValues: []string{"precision", "results", "efficiency", "clarity"},
				TonePreferences: &domain.TonePreferences{
					Formality: 60, Analytical: 90, Creative: -30, Assertive: 30,
					Scale: domain.ToneScaleSigned,
				},
				QuizResponses: []domain.QuizResponse{
					{QuestionID: domain.QuestionCurrentRole, AnswerText: "I am a data-driven operations consultant, methodical and precise"},
					{QuestionID: domain.QuestionUniqueApproach, AnswerText: "I measure everything and optimize systems with a proven framework"},
				},
				WritingSample: "Our framework reduced churn by 23 percent in 90 days. The data shows three drivers. We analyze each metric, then optimize the system with a structured roadmap.",
				Personas: []domain.AudiencePersona{
					{
						Name:       "Scaling COO",
						Industry:   "software",
						PainPoints: []string{"wasted budget", "no visibility into metrics"},
						Goals:      []string{"predictable growth", "efficient operations"},
					},
				},
			},
		},
		{
			Name:     "guia",
			Expected: domain.ArchetypeMentor,
			Profile: domain.WorkshopProfile{
				SelectedValues: []string{"empathy", "growth", "trust", "service"},
				TonePreferences: &domain.TonePreferences{
					Formality: -20, Analytical: -20, Creative: 10, Assertive: -40,
					Scale: domain.ToneScaleSigned,
				},
				QuizResponses: []domain.QuizResponse{
					{QuestionID: domain.QuestionCurrentRole, AnswerText: "I am a patient leadership coach, supportive and caring"},
					{QuestionID: domain.QuestionUniqueApproach, AnswerText: "I listen first and guide people to their own answers"},
				},
				WritingSample: "You are not alone in this. I understand how heavy the first leadership role feels. Together we can nurture the confidence you already carry, step by step.",
				Personas: []domain.AudiencePersona{
					{
						Name:       "First-time manager",
						Industry:   "education",
						PainPoints: []string{"feeling overwhelmed", "impostor syndrome"},
						Goals:      []string{"confident leadership", "personal growth"},
					},
				},
			},
		},
		{
			Name:     "activista",
			Expected: domain.ArchetypeCatalyst,
			Profile: domain.WorkshopProfile{
				SelectedValues: []string{"courage", "action", "impact", "energy"},
				TonePreferences: &domain.TonePreferences{
					Formality: -60, Analytical: -10, Creative: 40, Assertive: 90,
					Scale: domain.ToneScaleSigned,
				},
				QuizResponses: []domain.QuizResponse{
					{QuestionID: domain.QuestionCurrentRole, AnswerText: "I am an energetic community organizer, direct and passionate"},
					{QuestionID: domain.QuestionUniqueApproach, AnswerText: "I challenge the status quo and push people to act now"},
				},
				WritingSample: "Stop waiting for permission! The industry keeps selling you excuses. Rise up, take action today, and demand the change your community deserves!",
				Personas: []domain.AudiencePersona{
					{
						Name:       "Frustrated practitioner",
						Industry:   "marketing",
						PainPoints: []string{"tired of empty promises", "stuck waiting"},
						Goals:      []string{"real change", "momentum now"},
					},
				},
			},
		},
	}
}
