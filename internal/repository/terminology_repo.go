package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgTerminologyRepository lee vocabulario por industria de la tabla
// industry_terms. Implementa service.TerminologyStore.
type PgTerminologyRepository struct {
	pool *pgxpool.Pool
}

func NewPgTerminologyRepository(pool *pgxpool.Pool) *PgTerminologyRepository {
	return &PgTerminologyRepository{pool: pool}
}

func (r *PgTerminologyRepository) GetTerms(ctx context.Context, industry string) ([]string, error) {
	const query = `
		SELECT terms
		FROM industry_terms
		WHERE industry = $1
	`
	var terms []string
	err := r.pool.QueryRow(ctx, query, industry).Scan(&terms)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return terms, err
}
