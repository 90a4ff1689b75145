package service

import "strings"

/*
========================
 Normalización de texto
========================
*/

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}

func countOccurrences(s string, words []string) int {
	total := 0
	for _, w := range words {
		total += strings.Count(s, w)
	}
	return total
}

/*
========================
 Oraciones y palabras
========================
*/

// splitSentences corta por . ! ? y descarta fragmentos vacíos.
func splitSentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func avgSentenceLength(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sentences))
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
