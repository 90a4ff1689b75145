package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"brand-dna/internal/domain"
)

// Pesos fijos de agregación; deben sumar 1.0 (invariante del core).
const (
	weightValues      = 0.30
	weightTone        = 0.15
	weightPersonality = 0.25
	weightWriting     = 0.20
	weightAudience    = 0.10
)

// Umbrales de detección de híbrido.
const (
	hybridScoreGap      = 0.15
	hybridMinConfidence = 0.6
)

// Frase de fortaleza clave por arquetipo para el nombre híbrido.
var archetypeKeyStrengths = map[string]string{
	domain.ArchetypeInnovator:  "fresh thinking",
	domain.ArchetypeStrategist: "proven rigor",
	domain.ArchetypeMentor:     "genuine care",
	domain.ArchetypeCatalyst:   "relentless drive",
}

const defaultKeyStrength = "unique perspective"

// ClassifierService convierte un perfil crudo del workshop en una asignación
// de arquetipo rankeada y con confianza, posiblemente híbrida.
// Sin estado mutable compartido: cada llamada es independiente.
type ClassifierService struct {
	catalog     []domain.Archetype
	engine      ScoreEngine
	writing     WritingAnalyzer
	personality PersonalityAnalyzer
	logger      *zap.Logger
}

func NewClassifierService(
	catalog []domain.Archetype,
	synonyms domain.SynonymTable,
	writing WritingAnalyzer,
	personality PersonalityAnalyzer,
	logger *zap.Logger,
) *ClassifierService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassifierService{
		catalog:     catalog,
		engine:      NewScoreEngine(synonyms),
		writing:     writing,
		personality: personality,
		logger:      logger,
	}
}

// Classify puntúa cada arquetipo del catálogo y arma el resultado rankeado.
// Nunca devuelve error: ante datos faltantes cada scorer aplica su default,
// y el enriquecimiento IA es best-effort.
func (s *ClassifierService) Classify(ctx context.Context, profile domain.WorkshopProfile) domain.ClassificationResult {
	indicators := s.enrichIndicators(ctx, profile)

	scores := make([]domain.ArchetypeScore, 0, len(s.catalog))
	completeness := profileCompleteness(profile)

	for _, arch := range s.catalog {
		breakdown := domain.DimensionBreakdown{
			Values:      s.engine.MatchValues(profile.SelectedValues, arch),
			Tone:        s.engine.MatchTone(profile.TonePreferences, arch),
			Personality: s.engine.MatchPersonality(profile.QuizResponses, arch),
			Writing:     s.engine.MatchWritingStyle(profile.WritingSample, arch),
			Audience:    s.engine.MatchAudience(profile.Personas, arch),
		}

		// Prior suave del enriquecimiento IA: corre personality como máximo ±0.1.
		if ind, ok := indicators[arch.ID]; ok {
			breakdown.Personality = clamp01(breakdown.Personality + (clamp01(ind)-0.5)*0.2)
		}

		total := clamp01(breakdown.Values*weightValues +
			breakdown.Tone*weightTone +
			breakdown.Personality*weightPersonality +
			breakdown.Writing*weightWriting +
			breakdown.Audience*weightAudience)

		scores = append(scores, domain.ArchetypeScore{
			Archetype:  arch,
			Total:      total,
			Confidence: clamp01(total * completeness),
			Breakdown:  breakdown,
		})
	}

	// Orden estable: empates se resuelven por orden de catálogo (determinismo).
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})

	result := domain.ClassificationResult{
		Primary:   scores[0],
		Signature: ExtractSignature(profile.WritingSample),
	}
	if len(scores) > 1 {
		secondary := scores[1]
		result.Secondary = &secondary
		result.Hybrid = detectHybrid(scores[0], secondary)
	}

	return result
}

// profileCompleteness es la fracción de los cinco bloques de datos presentes.
func profileCompleteness(p domain.WorkshopProfile) float64 {
	present := 0
	if len(p.SelectedValues) > 0 {
		present++
	}
	if p.TonePreferences != nil {
		present++
	}
	if len(p.QuizResponses) > 0 {
		present++
	}
	if strings.TrimSpace(p.WritingSample) != "" {
		present++
	}
	if len(p.Personas) > 0 {
		present++
	}
	return float64(present) / 5.0
}

// detectHybrid emite el descriptor solo si la brecha es chica y la confianza alta.
func detectHybrid(primary, secondary domain.ArchetypeScore) *domain.HybridDescriptor {
	if primary.Total-secondary.Total >= hybridScoreGap {
		return nil
	}
	if primary.Confidence <= hybridMinConfidence {
		return nil
	}

	denominator := primary.Total + secondary.Total
	if denominator <= 0 {
		return nil
	}

	return &domain.HybridDescriptor{
		Name: fmt.Sprintf("%s / %s", primary.Archetype.Name, secondary.Archetype.Name),
		Description: fmt.Sprintf(
			"Blends the %s's %s with the %s's %s.",
			primary.Archetype.Name, keyStrength(primary.Archetype.ID),
			secondary.Archetype.Name, keyStrength(secondary.Archetype.ID),
		),
		BlendRatio: primary.Total / denominator,
	}
}

func keyStrength(archetypeID string) string {
	if s, ok := archetypeKeyStrengths[archetypeID]; ok {
		return s
	}
	return defaultKeyStrength
}

// enrichIndicators resuelve los indicadores IA con la cadena de fallbacks:
// primero los ya presentes en el perfil, luego el análisis de escritura, luego
// la alineación de personalidad. Cualquier fallo del analizador cae al default.
func (s *ClassifierService) enrichIndicators(ctx context.Context, profile domain.WorkshopProfile) map[string]float64 {
	if len(profile.AIIndicators) > 0 {
		return profile.AIIndicators
	}

	ids := domain.ArchetypeIDs(s.catalog)

	if strings.TrimSpace(profile.WritingSample) != "" && s.writing != nil {
		wa, err := s.writing.Analyze(ctx, profile.WritingSample)
		if err != nil {
			s.logger.Warn("writing enrichment failed, using defaults", zap.Error(err))
			wa = domain.DefaultWritingAnalysis(ids)
		}
		if len(wa.ArchetypeIndicators) > 0 {
			return wa.ArchetypeIndicators
		}
	}

	if len(profile.QuizResponses) > 0 && s.personality != nil {
		pa, err := s.personality.Analyze(ctx, profile.QuizResponses)
		if err != nil {
			s.logger.Warn("personality enrichment failed, using defaults", zap.Error(err))
			pa = domain.DefaultPersonalityAnalysis()
		}
		if len(pa.ArchetypeAlignment) > 0 {
			return pa.ArchetypeAlignment
		}
	}

	return nil
}
