package service

import (
	"context"

	"brand-dna/internal/domain"
)

// Interfaces de capacidad para el enriquecimiento IA opcional.
// El core depende solo de estas interfaces y de sus defaults documentados,
// nunca de un cliente de red concreto.

// WritingAnalyzer analiza una muestra de escritura.
type WritingAnalyzer interface {
	Analyze(ctx context.Context, sample string) (domain.WritingAnalysis, error)
}

// PersonalityAnalyzer analiza respuestas del quiz de personalidad.
type PersonalityAnalyzer interface {
	Analyze(ctx context.Context, responses []domain.QuizResponse) (domain.PersonalityAnalysis, error)
}

// MissionSuggester propone declaraciones de misión candidatas, en orden.
type MissionSuggester interface {
	Suggest(ctx context.Context, profile domain.WorkshopProfile, archetype domain.Archetype) ([]string, error)
}
