package service

import (
	"fmt"
	"strings"

	"brand-dna/internal/domain"
)

const (
	minContentHooks = 5
	maxContentHooks = 10
)

// GenerateContentHooks deriva entre 5 y 10 ideas de contenido a partir del
// análisis UVP. La unicidad se fuerza por construcción y se verifica igual.
func GenerateContentHooks(analysis domain.UVPAnalysis) []string {
	f := analysis.UniqueFactors
	field := analysis.IndustryContext.Field

	candidates := []string{
		fmt.Sprintf("The biggest myth about %s, and what %s should do instead", f.PainPoint, f.Audience),
		fmt.Sprintf("Behind the scenes: how I actually work as a %s", f.Role),
		fmt.Sprintf("3 signs %s are ready for %s", f.Audience, f.Outcome),
		fmt.Sprintf("What being a %s taught me about %s", f.Role, field),
		fmt.Sprintf("From %s to %s: a story from my work", f.PainPoint, f.Outcome),
		fmt.Sprintf("The %s trend nobody is talking about yet", field),
		fmt.Sprintf("An unpopular opinion about %s", field),
	}

	for i, term := range analysis.IndustryContext.Terminology {
		if i >= 3 {
			break
		}
		candidates = append(candidates, fmt.Sprintf("Why %s matters more than ever for %s", term, f.Audience))
	}

	seen := map[string]bool{}
	hooks := make([]string, 0, maxContentHooks)
	for _, c := range candidates {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		hooks = append(hooks, strings.TrimSpace(c))
		if len(hooks) == maxContentHooks {
			break
		}
	}

	// Con los fallbacks de factores siempre presentes esto no debería dispararse,
	// pero el contrato exige mínimo 5 ganchos.
	for i := 1; len(hooks) < minContentHooks; i++ {
		hook := fmt.Sprintf("Lesson %d from working with %s", i, f.Audience)
		key := strings.ToLower(hook)
		if !seen[key] {
			seen[key] = true
			hooks = append(hooks, hook)
		}
	}

	return hooks
}
