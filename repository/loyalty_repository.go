package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"github.com/phnam24/frontend-v1-sub001/models"
)

// PgxLoyaltyRepository reads the rank and spend the order pipeline keeps on users.
type PgxLoyaltyRepository struct {
	pool *pgxpool.Pool
}

func NewLoyaltyRepository(pool *pgxpool.Pool) *PgxLoyaltyRepository {
	return &PgxLoyaltyRepository{pool: pool}
}

func (r *PgxLoyaltyRepository) GetStanding(ctx context.Context, userID uuid.UUID) (*models.LoyaltyStanding, error) {
	const query = `
		SELECT rank, total_spent::float8
		FROM users
		WHERE id = $1
	`

	var (
		rank  string
		spent float64
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(&rank, &spent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get loyalty standing: %w", err)
	}

	return &models.LoyaltyStanding{
		UserID:     userID,
		Rank:       loyalty.Tier(strings.ToUpper(strings.TrimSpace(rank))),
		TotalSpent: spent,
	}, nil
}
