package service

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// TerminologyProvider resuelve buzzwords de dominio para un campo/industria.
// Nunca falla hacia el caller: sin datos devuelve el set genérico.
type TerminologyProvider interface {
	Terms(ctx context.Context, field string) []string
}

// Set extendible de terminología por campo. Fallback cuando no hay tabla en DB.
var builtinTerminology = map[string][]string{
	"technology": {"digital transformation", "scalability", "automation", "product-led growth"},
	"software":   {"developer experience", "shipping velocity", "technical debt", "platform thinking"},
	"marketing":  {"brand positioning", "audience segmentation", "conversion", "storytelling"},
	"finance":    {"risk management", "portfolio strategy", "compliance", "capital efficiency"},
	"healthcare": {"patient outcomes", "care coordination", "clinical excellence", "health equity"},
	"education":  {"learning outcomes", "student engagement", "curriculum design", "lifelong learning"},
	"consulting": {"stakeholder alignment", "operating model", "change management", "quick wins"},
}

var genericTerminology = []string{"thought leadership", "personal brand", "differentiation", "credibility"}

// StaticTerminologyProvider sirve solo la tabla embebida; útil para CLI y tests.
type StaticTerminologyProvider struct{}

func (StaticTerminologyProvider) Terms(_ context.Context, field string) []string {
	return lookupBuiltinTerms(field)
}

func lookupBuiltinTerms(field string) []string {
	key := lowerTrim(field)
	for name, terms := range builtinTerminology {
		if key == name || strings.Contains(key, name) {
			return terms
		}
	}
	return genericTerminology
}

// TerminologyStore es el contrato de persistencia (tabla industry_terms).
type TerminologyStore interface {
	GetTerms(ctx context.Context, field string) ([]string, error)
}

// CachedTerminologyProvider consulta la tabla con un LRU expirable delante.
// Cualquier fallo de la tabla cae a la terminología embebida.
type CachedTerminologyProvider struct {
	store  TerminologyStore
	cache  *expirable.LRU[string, []string]
	logger *zap.Logger
}

func NewCachedTerminologyProvider(store TerminologyStore, logger *zap.Logger) *CachedTerminologyProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedTerminologyProvider{
		store:  store,
		cache:  expirable.NewLRU[string, []string](128, nil, time.Hour),
		logger: logger,
	}
}

func (p *CachedTerminologyProvider) Terms(ctx context.Context, field string) []string {
	key := lowerTrim(field)
	if key == "" {
		return genericTerminology
	}

	if terms, ok := p.cache.Get(key); ok {
		return terms
	}

	if p.store != nil {
		terms, err := p.store.GetTerms(ctx, key)
		if err == nil && len(terms) > 0 {
			p.cache.Add(key, terms)
			return terms
		}
		if err != nil {
			p.logger.Warn("terminology lookup failed, using builtin set", zap.Error(err), zap.String("field", key))
		}
	}

	terms := lookupBuiltinTerms(key)
	p.cache.Add(key, terms)
	return terms
}
