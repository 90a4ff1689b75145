package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"brand-dna/internal/domain"
)

// Fallbacks de factores únicos. El set rotativo mantiene plausibles las
// corridas sobre datos vacíos sin que parezcan datos reales del usuario.
const (
	fallbackRole     = "experienced professional"
	fallbackMethod   = "brings a distinctive, proven approach"
	fallbackOutcome  = "real, measurable progress"
	fallbackAudience = "ambitious professionals"
	fallbackField    = "professional services"
)

var fallbackPainPoints = []string{
	"feeling invisible in a crowded market",
	"advice that never fits their reality",
	"spinning their wheels without traction",
}

// Reencuadre del dolor según el lente de cada arquetipo.
var archetypePainLens = map[string]string{
	domain.ArchetypeInnovator:  "Conventional thinking",
	domain.ArchetypeStrategist: "The usual complexity",
	domain.ArchetypeMentor:     "One-size-fits-all advice",
	domain.ArchetypeCatalyst:   "Endless hesitation",
}

// Encuadre competitivo fijo por arquetipo; debe diferir entre arquetipos
// para el mismo perfil de entrada.
var competitiveLandscapes = map[string]string{
	domain.ArchetypeInnovator:  "While others defend the status quo, you position as the forward-thinking pioneer of %s.",
	domain.ArchetypeStrategist: "In a noisy %s market, you compete on evidence: the operator whose claims survive scrutiny.",
	domain.ArchetypeMentor:     "Where competitors sell tactics, you offer human-centered expertise that %s audiences remember.",
	domain.ArchetypeCatalyst:   "Where others talk, you move: the momentum-maker who turns %s plans into visible wins.",
}

const headlineMaxChars = 220

// UVPService construye el análisis de propuesta única de valor.
type UVPService struct {
	catalog []domain.Archetype
	terms   TerminologyProvider
	logger  *zap.Logger
}

func NewUVPService(catalog []domain.Archetype, terms TerminologyProvider, logger *zap.Logger) *UVPService {
	if terms == nil {
		terms = StaticTerminologyProvider{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UVPService{catalog: catalog, terms: terms, logger: logger}
}

// ConstructUVP produce siempre exactamente tres variantes; los datos faltantes
// degradan la confianza, nunca la cantidad de variantes.
func (s *UVPService) ConstructUVP(ctx context.Context, profile domain.WorkshopProfile, archetypeName string) domain.UVPAnalysis {
	arch := s.resolveArchetype(archetypeName)
	factors, realCount := extractUniqueFactors(profile)
	confidence := clamp01(0.85*(float64(realCount)/5.0) + 0.1)
	differentiators := extractDifferentiators(profile, arch)

	field := fallbackField
	if persona, ok := profile.PrimaryPersona(); ok && strings.TrimSpace(persona.Industry) != "" {
		field = strings.TrimSpace(persona.Industry)
	}

	industry := domain.IndustryContext{
		Field:                field,
		Terminology:          s.terms.Terms(ctx, field),
		CompetitiveLandscape: competitiveLandscape(arch.ID, field),
	}

	variations := []domain.UVPVariation{
		buildVariation(domain.UVPTypeStandard, standardStatement(factors), confidence, differentiators),
		buildVariation(domain.UVPTypeResultsFocused, resultsStatement(factors), confidence, differentiators),
		buildVariation(domain.UVPTypePainFocused, painStatement(factors, arch.ID), confidence, differentiators),
	}

	return domain.UVPAnalysis{
		Variations:      variations,
		PrimaryUVP:      pickPrimary(variations),
		UniqueFactors:   factors,
		IndustryContext: industry,
	}
}

func (s *UVPService) resolveArchetype(name string) domain.Archetype {
	if arch, ok := domain.ArchetypeByID(s.catalog, lowerTrim(name)); ok {
		return arch
	}
	for _, a := range s.catalog {
		if strings.EqualFold(a.Name, strings.TrimSpace(name)) {
			return a
		}
	}
	// Id desconocido: degradar al primer arquetipo del catálogo en vez de fallar.
	return s.catalog[0]
}

// extractUniqueFactors deriva los cinco factores y cuenta cuántos vienen de
// datos reales (para la confianza ponderada por completitud).
func extractUniqueFactors(p domain.WorkshopProfile) (domain.UniqueFactors, int) {
	real := 0
	persona, hasPersona := p.PrimaryPersona()

	role := strings.TrimSpace(p.QuizAnswer(domain.QuestionCurrentRole))
	if role != "" {
		real++
	} else {
		role = fallbackRole
	}

	method := strings.TrimSpace(p.QuizAnswer(domain.QuestionUniqueApproach))
	if method != "" {
		real++
	} else {
		method = fallbackMethod
	}

	outcome := ""
	if hasPersona && len(persona.Goals) > 0 {
		outcome = strings.TrimSpace(persona.Goals[0])
	}
	if outcome != "" {
		real++
	} else {
		outcome = fallbackOutcome
	}

	audience := ""
	if hasPersona {
		audience = strings.TrimSpace(persona.Name)
	}
	if audience != "" {
		real++
	} else {
		audience = fallbackAudience
	}

	pain := ""
	if hasPersona && len(persona.PainPoints) > 0 {
		pain = strings.TrimSpace(persona.PainPoints[0])
	}
	if pain == "" {
		pain = strings.TrimSpace(p.QuizAnswer(domain.QuestionIndustryFrustation))
	}
	if pain != "" {
		real++
	} else {
		pain = fallbackPainPoints[fallbackSeed(p)%len(fallbackPainPoints)]
	}

	return domain.UniqueFactors{
		Role:      role,
		Method:    method,
		Outcome:   outcome,
		Audience:  audience,
		PainPoint: pain,
	}, real
}

// fallbackSeed hace determinística la rotación de fallbacks para un mismo perfil.
func fallbackSeed(p domain.WorkshopProfile) int {
	return len(p.SelectedValues) + len(p.QuizResponses) + len(p.Personas) + len(p.WritingSample)
}

func standardStatement(f domain.UniqueFactors) string {
	return fmt.Sprintf("I'm the %s who %s for %s.", f.Role, f.Method, f.Audience)
}

func resultsStatement(f domain.UniqueFactors) string {
	return fmt.Sprintf("%s for %s: that's what I deliver as the %s who %s.",
		capitalizeFirst(f.Outcome), f.Audience, f.Role, f.Method)
}

func painStatement(f domain.UniqueFactors, archetypeID string) string {
	lens, ok := archetypePainLens[archetypeID]
	if !ok {
		lens = "The same old playbook"
	}
	return fmt.Sprintf("Tired of %s? %s keeps %s stuck. I'm the %s who %s instead.",
		f.PainPoint, lens, f.Audience, f.Role, f.Method)
}

func buildVariation(uvpType, statement string, confidence float64, differentiators []string) domain.UVPVariation {
	return domain.UVPVariation{
		ID:              "uvp-" + uvpType,
		Type:            uvpType,
		Statement:       statement,
		Headline:        makeHeadline(statement),
		Confidence:      confidence,
		Differentiators: differentiators,
	}
}

// makeHeadline compone una línea única, sin bordes en blanco, ≤220 caracteres.
// El corte cae en límite de palabra cuando se puede.
func makeHeadline(statement string) string {
	line := strings.Join(strings.Fields(statement), " ")
	runes := []rune(line)
	if len(runes) <= headlineMaxChars {
		return strings.TrimSpace(line)
	}

	cut := string(runes[:headlineMaxChars])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}

// pickPrimary elige la variante más completa; ante empate gana standard.
func pickPrimary(variations []domain.UVPVariation) domain.UVPVariation {
	primary := variations[0]
	for _, v := range variations[1:] {
		if v.Confidence > primary.Confidence {
			primary = v
		}
	}
	return primary
}

// extractDifferentiators cruza los sets del arquetipo con señales del perfil,
// en orden y sin duplicados.
func extractDifferentiators(p domain.WorkshopProfile, arch domain.Archetype) []string {
	var haystack strings.Builder
	haystack.WriteString(strings.Join(p.SelectedValues, " "))
	haystack.WriteString(" ")
	haystack.WriteString(p.WritingSample)
	for _, r := range p.QuizResponses {
		haystack.WriteString(" ")
		haystack.WriteString(r.AnswerText)
	}
	for _, persona := range p.Personas {
		haystack.WriteString(" ")
		haystack.WriteString(strings.Join(persona.PainPoints, " "))
		haystack.WriteString(" ")
		haystack.WriteString(strings.Join(persona.Goals, " "))
	}
	text := strings.ToLower(haystack.String())

	seen := map[string]bool{}
	var out []string
	for _, candidate := range concatPhrases(arch.CoreValues, arch.Traits, arch.Keywords) {
		c := strings.ToLower(candidate)
		if seen[c] || !strings.Contains(text, c) {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func concatPhrases(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func competitiveLandscape(archetypeID, field string) string {
	if tmpl, ok := competitiveLandscapes[archetypeID]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	return fmt.Sprintf("You bring a distinct point of view to %s.", field)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
