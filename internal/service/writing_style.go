package service

import (
	"strings"

	"brand-dna/internal/domain"
)

/*
========================
 Léxicos fijos
========================
*/

var emotionalWords = []string{
	"feel", "love", "passion", "heart", "excited", "inspire",
	"care", "believe", "hope", "dream", "proud", "grateful",
}

var analyticalWords = []string{
	"data", "analysis", "measure", "process", "system", "evidence",
	"result", "metric", "framework", "efficient", "optimize", "structure",
}

var storytellingMarkers = []string{
	"when", "then", "after", "before", "happened", "remember", "first", "finally",
}

var authorityMarkers = []string{
	"should", "must", "need to", "recommend", "critical", "essential", "know",
}

var empathyMarkers = []string{
	"understand", "feel", "relate", "support", "struggle", "help", "challenge",
}

var firstPersonMarkers = []string{
	"i ", "my ", "me ", "we ", "our ",
}

// registro léxico esperado y bonus por arquetipo
var lexiconExpectations = map[string]struct {
	emotional bool
	bonus     float64
}{
	domain.ArchetypeInnovator:  {emotional: true, bonus: 0.7},
	domain.ArchetypeStrategist: {emotional: false, bonus: 0.8},
	domain.ArchetypeMentor:     {emotional: true, bonus: 0.8},
	domain.ArchetypeCatalyst:   {emotional: true, bonus: 0.75},
}

// MatchWritingStyle promedia tres sub-señales independientes sobre la muestra:
// densidad de keywords, ajuste estructural y balance léxico emocional/analítico.
// Sin muestra devuelve 0.5.
func (e ScoreEngine) MatchWritingStyle(sample string, arch domain.Archetype) float64 {
	if strings.TrimSpace(sample) == "" {
		return 0.5
	}

	lower := strings.ToLower(sample)
	density := keywordDensity(lower, arch.Keywords)
	structural := structuralFit(lower, arch.ID)
	lexicon := lexiconBalance(lower, arch.ID)

	return clamp01((density + structural + lexicon) / 3.0)
}

func keywordDensity(lower string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	found := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found++
		}
	}
	return clamp01(float64(found) / float64(len(keywords)))
}

// structuralFit aplica la regla estructural propia de cada arquetipo:
// 0.8 si se cumple, 0.5 si no.
func structuralFit(lower string, archetypeID string) float64 {
	sentences := splitSentences(lower)
	avg := avgSentenceLength(sentences)

	satisfied := false
	switch archetypeID {
	case domain.ArchetypeInnovator:
		satisfied = strings.Contains(lower, "i ") && avg > 0 && avg <= 18
	case domain.ArchetypeStrategist:
		satisfied = containsDigit(lower) || avg >= 20
	case domain.ArchetypeMentor:
		satisfied = strings.Contains(lower, "you")
	case domain.ArchetypeCatalyst:
		satisfied = strings.Contains(lower, "!")
	}

	if satisfied {
		return 0.8
	}
	return 0.5
}

func lexiconBalance(lower string, archetypeID string) float64 {
	expect, ok := lexiconExpectations[archetypeID]
	if !ok {
		return 0.5
	}

	emotional := countOccurrences(lower, emotionalWords)
	analytical := countOccurrences(lower, analyticalWords)
	if emotional == analytical {
		return 0.5
	}

	dominantEmotional := emotional > analytical
	if dominantEmotional == expect.emotional {
		return expect.bonus
	}
	return 0.5
}

// ExtractSignature deriva señales estilísticas de la muestra para UI/telemetría.
// No participa del score ponderado.
func ExtractSignature(sample string) *domain.WritingSignature {
	if strings.TrimSpace(sample) == "" {
		return nil
	}

	lower := strings.ToLower(sample)
	sentences := splitSentences(lower)
	words := strings.Fields(lower)
	wordCount := len(words)
	sentenceCount := len(sentences)
	if wordCount == 0 || sentenceCount == 0 {
		return nil
	}

	questions := strings.Count(sample, "?")
	exclamations := strings.Count(sample, "!")
	firstPerson := countOccurrences(" "+lower, firstPersonMarkers)

	return &domain.WritingSignature{
		QuestionTendency:  clamp01(float64(questions) / float64(sentenceCount)),
		FirstPersonShare:  clamp01(float64(firstPerson) / float64(wordCount) * 3.0),
		StorytellingScore: clamp01(float64(countOccurrences(lower, storytellingMarkers)) / float64(wordCount) * 10.0),
		AuthorityScore:    clamp01(float64(countOccurrences(lower, authorityMarkers)) / float64(wordCount) * 5.0),
		EmpathyScore:      clamp01(float64(countOccurrences(lower, empathyMarkers)) / float64(wordCount) * 8.0),
		ExclamationEnergy: clamp01(float64(exclamations) / float64(sentenceCount)),
		AvgSentenceLength: avgSentenceLength(sentences),
		SentenceCount:     sentenceCount,
	}
}
