// Package repository reads the catalog, vouchers and loyalty standings the
// storefront rules run on.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
)

var ErrNotFound = errors.New("record not found")

type ProductRepository interface {
	// List returns every active product matching c, in no particular order.
	List(ctx context.Context, c filters.Criteria) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

type VoucherRepository interface {
	ListActive(ctx context.Context) ([]models.Voucher, error)
	GetByCode(ctx context.Context, code string) (*models.Voucher, error)
}

type LoyaltyRepository interface {
	GetStanding(ctx context.Context, userID uuid.UUID) (*models.LoyaltyStanding, error)
}
