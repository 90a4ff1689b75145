package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brand-dna/internal/domain"
)

// WorkshopProfileRepository persiste el perfil crudo del workshop.
// El payload completo se guarda como JSONB para no fijar el esquema
// del cuestionario en columnas.
type WorkshopProfileRepository interface {
	Upsert(ctx context.Context, profile domain.WorkshopProfile) error
	GetByUserID(ctx context.Context, userID string) (domain.WorkshopProfile, error)
}

type PgWorkshopProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgWorkshopProfileRepository(pool *pgxpool.Pool) *PgWorkshopProfileRepository {
	return &PgWorkshopProfileRepository{pool: pool}
}

func (r *PgWorkshopProfileRepository) Upsert(ctx context.Context, profile domain.WorkshopProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO workshop_profiles (id, user_id, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`
	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		payload,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

func (r *PgWorkshopProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.WorkshopProfile, error) {
	const query = `
		SELECT payload
		FROM workshop_profiles
		WHERE user_id = $1
	`
	var payload []byte
	err := r.pool.QueryRow(ctx, query, userID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.WorkshopProfile{}, err
	}
	if err != nil {
		return domain.WorkshopProfile{}, err
	}

	var profile domain.WorkshopProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return domain.WorkshopProfile{}, err
	}
	return profile, nil
}
