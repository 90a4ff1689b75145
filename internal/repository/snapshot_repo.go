package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"brand-dna/internal/domain"
)

// SnapshotRepository persiste los resultados de cada corrida de workshop
// y permite buscar perfiles afines por cercanía de embeddings.
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot domain.BrandSnapshot) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.BrandSnapshot, error)
	SearchSimilar(ctx context.Context, queryEmbedding pgvector.Vector, excludeUserID string, k int) ([]domain.BrandSnapshot, error)
}

type PgSnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewPgSnapshotRepository(pool *pgxpool.Pool) *PgSnapshotRepository {
	return &PgSnapshotRepository{pool: pool}
}

func (r *PgSnapshotRepository) Create(ctx context.Context, snapshot domain.BrandSnapshot) error {
	var hybrid interface{}
	if snapshot.Hybrid != nil {
		data, err := json.Marshal(snapshot.Hybrid)
		if err != nil {
			return err
		}
		hybrid = data
	}

	var embedding interface{}
	if snapshot.HasEmbedding {
		embedding = snapshot.Embedding
	}

	const query = `
		INSERT INTO brand_snapshots (
			id, user_id, archetype_id, total_score, confidence, hybrid, primary_uvp, mission, embedding, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		snapshot.ID,
		snapshot.UserID,
		snapshot.ArchetypeID,
		snapshot.TotalScore,
		snapshot.Confidence,
		hybrid,
		snapshot.PrimaryUVP,
		snapshot.Mission,
		embedding,
		snapshot.CreatedAt,
	)
	return err
}

func (r *PgSnapshotRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.BrandSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, user_id, archetype_id, total_score, confidence, hybrid, primary_uvp, mission, created_at
		FROM brand_snapshots
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

func (r *PgSnapshotRepository) SearchSimilar(ctx context.Context, queryEmbedding pgvector.Vector, excludeUserID string, k int) ([]domain.BrandSnapshot, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT id, user_id, archetype_id, total_score, confidence, hybrid, primary_uvp, mission, created_at
		FROM brand_snapshots
		WHERE embedding IS NOT NULL AND user_id <> $1
		ORDER BY embedding <=> $2
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, excludeUserID, queryEmbedding, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

func scanSnapshots(rows pgxRows) ([]domain.BrandSnapshot, error) {
	var snapshots []domain.BrandSnapshot
	for rows.Next() {
		var s domain.BrandSnapshot
		var hybrid []byte
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.ArchetypeID,
			&s.TotalScore,
			&s.Confidence,
			&hybrid,
			&s.PrimaryUVP,
			&s.Mission,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(hybrid) > 0 {
			var h domain.HybridDescriptor
			if err := json.Unmarshal(hybrid, &h); err != nil {
				return nil, err
			}
			s.Hybrid = &h
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// pgxRows is a minimal interface to allow scanning from pgx rows and simplify testing.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
