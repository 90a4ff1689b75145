package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"brand-dna/internal/domain"
)

func newTestUVPService() *UVPService {
	return NewUVPService(domain.DefaultArchetypes(), StaticTerminologyProvider{}, zap.NewNop())
}

func TestConstructUVP_AlwaysThreeVariations(t *testing.T) {
	svc := newTestUVPService()

	for _, profile := range []domain.WorkshopProfile{{}, fullWorkshopProfile()} {
		analysis := svc.ConstructUVP(context.Background(), profile, domain.ArchetypeInnovator)
		if len(analysis.Variations) != 3 {
			t.Fatalf("expected 3 variations, got %d", len(analysis.Variations))
		}

		wantTypes := []string{domain.UVPTypeStandard, domain.UVPTypeResultsFocused, domain.UVPTypePainFocused}
		for i, want := range wantTypes {
			if analysis.Variations[i].Type != want {
				t.Fatalf("variation %d: expected type %s, got %s", i, want, analysis.Variations[i].Type)
			}
			if strings.TrimSpace(analysis.Variations[i].Statement) == "" {
				t.Fatalf("variation %d: empty statement", i)
			}
		}
	}
}

func TestConstructUVP_EmptyProfileUsesFallbacks(t *testing.T) {
	svc := newTestUVPService()
	analysis := svc.ConstructUVP(context.Background(), domain.WorkshopProfile{}, domain.ArchetypeMentor)

	f := analysis.UniqueFactors
	if f.Audience != "ambitious professionals" {
		t.Fatalf("expected audience fallback, got %q", f.Audience)
	}
	if f.Role != "experienced professional" {
		t.Fatalf("expected role fallback, got %q", f.Role)
	}
	if analysis.IndustryContext.Field != "professional services" {
		t.Fatalf("expected field fallback, got %q", analysis.IndustryContext.Field)
	}
	// Sin datos reales la confianza queda en el piso: 0.85*0 + 0.1.
	for _, v := range analysis.Variations {
		if !almostEqual(v.Confidence, 0.1) {
			t.Fatalf("expected floor confidence 0.1, got %f", v.Confidence)
		}
	}
}

func TestConstructUVP_FullProfileConfidence(t *testing.T) {
	svc := newTestUVPService()
	analysis := svc.ConstructUVP(context.Background(), fullWorkshopProfile(), domain.ArchetypeInnovator)

	// Los cinco factores salen de datos reales: 0.85*1 + 0.1.
	if !almostEqual(analysis.PrimaryUVP.Confidence, 0.95) {
		t.Fatalf("expected confidence 0.95, got %f", analysis.PrimaryUVP.Confidence)
	}
	if analysis.UniqueFactors.Audience != "early adopter founders" {
		t.Fatalf("expected real audience, got %q", analysis.UniqueFactors.Audience)
	}
	if analysis.IndustryContext.Field != "technology" {
		t.Fatalf("expected persona industry, got %q", analysis.IndustryContext.Field)
	}
	if len(analysis.IndustryContext.Terminology) == 0 {
		t.Fatal("expected terminology for technology field")
	}
}

func TestConstructUVP_FallbacksAreDeterministic(t *testing.T) {
	svc := newTestUVPService()
	profile := domain.WorkshopProfile{SelectedValues: []string{"trust"}}

	a := svc.ConstructUVP(context.Background(), profile, domain.ArchetypeMentor)
	b := svc.ConstructUVP(context.Background(), profile, domain.ArchetypeMentor)
	if a.UniqueFactors.PainPoint != b.UniqueFactors.PainPoint {
		t.Fatalf("fallback pain point changed between runs: %q vs %q", a.UniqueFactors.PainPoint, b.UniqueFactors.PainPoint)
	}
}

func TestConstructUVP_LandscapeDiffersPerArchetype(t *testing.T) {
	svc := newTestUVPService()
	profile := fullWorkshopProfile()

	seen := map[string]string{}
	for _, id := range domain.ArchetypeIDs(domain.DefaultArchetypes()) {
		analysis := svc.ConstructUVP(context.Background(), profile, id)
		landscape := analysis.IndustryContext.CompetitiveLandscape
		for other, prev := range seen {
			if prev == landscape {
				t.Fatalf("landscape for %s equals %s: %q", id, other, landscape)
			}
		}
		seen[id] = landscape
	}

	innovator := svc.ConstructUVP(context.Background(), profile, domain.ArchetypeInnovator)
	if !strings.Contains(innovator.IndustryContext.CompetitiveLandscape, "forward-thinking pioneer") {
		t.Fatalf("unexpected innovator landscape: %q", innovator.IndustryContext.CompetitiveLandscape)
	}
	mentor := svc.ConstructUVP(context.Background(), profile, domain.ArchetypeMentor)
	if !strings.Contains(mentor.IndustryContext.CompetitiveLandscape, "human-centered expertise") {
		t.Fatalf("unexpected mentor landscape: %q", mentor.IndustryContext.CompetitiveLandscape)
	}
}

func TestConstructUVP_ResolvesArchetypeByDisplayName(t *testing.T) {
	svc := newTestUVPService()
	analysis := svc.ConstructUVP(context.Background(), domain.WorkshopProfile{}, "The Mentor")
	if !strings.Contains(analysis.IndustryContext.CompetitiveLandscape, "human-centered") {
		t.Fatalf("expected mentor resolution by name, got %q", analysis.IndustryContext.CompetitiveLandscape)
	}

	// Id desconocido degrada al primer arquetipo del catálogo.
	unknown := svc.ConstructUVP(context.Background(), domain.WorkshopProfile{}, "does-not-exist")
	if !strings.Contains(unknown.IndustryContext.CompetitiveLandscape, "forward-thinking pioneer") {
		t.Fatalf("expected degradation to first archetype, got %q", unknown.IndustryContext.CompetitiveLandscape)
	}
}

func TestMakeHeadline_LongStatementTruncatesOnWordBoundary(t *testing.T) {
	long := strings.Repeat("word ", 100) + "\nfinal line"
	headline := makeHeadline(long)

	if len([]rune(headline)) > headlineMaxChars {
		t.Fatalf("headline too long: %d runes", len([]rune(headline)))
	}
	if strings.Contains(headline, "\n") {
		t.Fatal("headline contains newline")
	}
	if headline != strings.TrimSpace(headline) {
		t.Fatalf("headline not trimmed: %q", headline)
	}
	if strings.HasSuffix(headline, " wor") || strings.HasSuffix(headline, " w") {
		t.Fatalf("headline cut mid-word: %q", headline)
	}
}

func TestMakeHeadline_ShortStatementKeptWhole(t *testing.T) {
	if got := makeHeadline("  I help teams ship.  "); got != "I help teams ship." {
		t.Fatalf("expected normalized statement, got %q", got)
	}
}

func TestExtractDifferentiators_OrderedAndUnique(t *testing.T) {
	arch := testArchetype(domain.ArchetypeInnovator)
	profile := domain.WorkshopProfile{
		SelectedValues: []string{"creativity", "innovation"},
		WritingSample:  "bold innovation drives everything I do",
	}

	got := extractDifferentiators(profile, arch)
	if len(got) == 0 {
		t.Fatal("expected differentiators")
	}
	// Orden del arquetipo (core values primero), sin duplicados.
	if got[0] != "innovation" {
		t.Fatalf("expected innovation first, got %v", got)
	}
	seen := map[string]bool{}
	for _, d := range got {
		if seen[d] {
			t.Fatalf("duplicate differentiator %q in %v", d, got)
		}
		seen[d] = true
	}
}

func TestPickPrimary_TieFavorsStandard(t *testing.T) {
	variations := []domain.UVPVariation{
		{ID: "uvp-standard", Type: domain.UVPTypeStandard, Confidence: 0.6},
		{ID: "uvp-results-focused", Type: domain.UVPTypeResultsFocused, Confidence: 0.6},
		{ID: "uvp-pain-focused", Type: domain.UVPTypePainFocused, Confidence: 0.6},
	}
	if got := pickPrimary(variations); got.Type != domain.UVPTypeStandard {
		t.Fatalf("expected standard on tie, got %s", got.Type)
	}
}
