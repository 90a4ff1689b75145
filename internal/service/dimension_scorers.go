package service

import (
	"math"
	"strings"

	"brand-dna/internal/domain"
)

// ScoreEngine encapsula los cinco scorers dimensionales.
// Funciones puras: toman una rebanada del perfil y un arquetipo y devuelven un escalar en [0,1].
type ScoreEngine struct {
	synonyms domain.SynonymTable
}

func NewScoreEngine(synonyms domain.SynonymTable) ScoreEngine {
	if synonyms == nil {
		synonyms = domain.SynonymTable{}
	}
	return ScoreEngine{synonyms: synonyms}
}

// maxWeightedValues limita cuántos valores seleccionados pesan en el match.
const maxWeightedValues = 7

// MatchValues pondera los valores seleccionados contra los core values del arquetipo.
// El orden de selección es prioridad: weight(i) = 1 − 0.1·i, con piso 0.3.
func (e ScoreEngine) MatchValues(selected []string, arch domain.Archetype) float64 {
	if len(selected) == 0 {
		return 0
	}

	n := len(selected)
	if n > maxWeightedValues {
		n = maxWeightedValues
	}

	var sum float64
	for i := 0; i < n; i++ {
		weight := 1.0 - 0.1*float64(i)
		if weight < 0.3 {
			weight = 0.3
		}

		value := lowerTrim(selected[i])
		if value == "" {
			continue
		}

		best := 0.0
		for _, core := range arch.CoreValues {
			cv := lowerTrim(core)
			if value == cv {
				best = weight
				break
			}
			if strings.Contains(value, cv) || strings.Contains(cv, value) {
				if half := weight * 0.5; half > best {
					best = half
				}
			}
		}
		sum += best
	}

	return clamp01(sum / float64(n))
}

// MatchTone compara los sliders normalizados contra el perfil tonal del arquetipo.
// Sin preferencias de tono devuelve 0.5: prior neutro, no penaliza.
func (e ScoreEngine) MatchTone(prefs *domain.TonePreferences, arch domain.Archetype) float64 {
	if prefs == nil {
		return 0.5
	}

	user := prefs.Normalized()
	dist := math.Abs(user.Formality-arch.Tone.Formality) +
		math.Abs(user.Analytical-arch.Tone.Analytical) +
		math.Abs(user.Creative-arch.Tone.Creative) +
		math.Abs(user.Assertive-arch.Tone.Assertive)

	return clamp01(1.0 - dist/4.0)
}

// MatchPersonality acredita respuestas del quiz contra rasgos del arquetipo:
// rasgo contenido suma 1, sinónimo de rasgo suma 0.5.
func (e ScoreEngine) MatchPersonality(responses []domain.QuizResponse, arch domain.Archetype) float64 {
	if len(responses) == 0 {
		return 0.5
	}

	var credits float64
	for _, r := range responses {
		text := strings.ToLower(r.AnswerText + " " + r.SelectedOption)

		matched := false
		for _, trait := range arch.Traits {
			if strings.Contains(text, strings.ToLower(trait)) {
				credits += 1.0
				matched = true
				break
			}
		}
		if matched {
			continue
		}

	synonymLoop:
		for _, trait := range arch.Traits {
			for _, syn := range e.synonyms[strings.ToLower(trait)] {
				if strings.Contains(text, syn) {
					credits += 0.5
					break synonymLoop
				}
			}
		}
	}

	return clamp01(credits / float64(len(responses)))
}

// MatchAudience mide qué fracción de keywords del arquetipo aparece en los
// dolores y metas de cada persona de audiencia, promediado entre personas.
func (e ScoreEngine) MatchAudience(personas []domain.AudiencePersona, arch domain.Archetype) float64 {
	if len(personas) == 0 {
		return 0.5
	}
	if len(arch.Keywords) == 0 {
		return 0.5
	}

	var sum float64
	for _, p := range personas {
		text := strings.ToLower(strings.Join(p.PainPoints, " ") + " " + strings.Join(p.Goals, " "))

		found := 0
		for _, kw := range arch.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				found++
			}
		}
		sum += float64(found) / float64(len(arch.Keywords))
	}

	return clamp01(sum / float64(len(personas)))
}
