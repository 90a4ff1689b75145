package domain

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
)

// BrandSnapshot persiste el resultado de una corrida de workshop:
// arquetipo asignado, UVP primario, misión y el embedding de la muestra
// de escritura para búsquedas de perfiles similares.
type BrandSnapshot struct {
	ID           uuid.UUID         `json:"id"`
	UserID       string            `json:"user_id"`
	ArchetypeID  string            `json:"archetype_id"`
	TotalScore   float64           `json:"total_score"`
	Confidence   float64           `json:"confidence"`
	Hybrid       *HybridDescriptor `json:"hybrid,omitempty"`
	PrimaryUVP   string            `json:"primary_uvp"`
	Mission      string            `json:"mission"`
	Embedding    pgvector.Vector   `json:"-"`
	HasEmbedding bool              `json:"has_embedding"`
	CreatedAt    time.Time         `json:"created_at"`
}
