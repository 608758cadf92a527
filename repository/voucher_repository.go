package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phnam24/frontend-v1-sub001/models"
	"gorm.io/gorm"
)

type GormVoucherRepository struct {
	db *gorm.DB
}

func NewVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db}
}

// ListActive returns active vouchers, including expired ones so the UI can grey them out.
func (r *GormVoucherRepository) ListActive(ctx context.Context) ([]models.Voucher, error) {
	vouchers := make([]models.Voucher, 0)
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&vouchers).Error; err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	return vouchers, nil
}

func (r *GormVoucherRepository) GetByCode(ctx context.Context, code string) (*models.Voucher, error) {
	var v models.Voucher
	err := r.db.WithContext(ctx).
		Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get voucher %s: %w", code, err)
	}
	return &v, nil
}
