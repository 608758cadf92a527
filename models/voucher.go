package models

import (
	"fmt"
	"time"

	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"gorm.io/gorm"
)

type Voucher struct {
	ID              int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	Code            string       `json:"code" gorm:"type:varchar(40);uniqueIndex;not null"`
	Title           string       `json:"title" gorm:"not null"`
	DiscountPercent float64      `json:"discount_percent" gorm:"type:numeric(5,2);not null;check:discount_percent > 0 AND discount_percent <= 100"`
	MaxDiscount     float64      `json:"max_discount" gorm:"type:numeric(14,2);default:0"`
	MinOrderValue   float64      `json:"min_order_value" gorm:"type:numeric(14,2);default:0"`
	MinRank         loyalty.Tier `json:"min_rank" gorm:"type:varchar(16);not null;default:'BRONZE';index"`
	Active          bool         `json:"active" gorm:"default:true;index"`
	ExpiresAt       *time.Time   `json:"expires_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at" gorm:"autoCreateTime"`
}

func (Voucher) TableName() string {
	return "vouchers"
}

// AfterFind maps stored ranks like "gold" onto their tier. An unrecognized
// rank is left as-is, which no user qualifies for.
func (v *Voucher) AfterFind(tx *gorm.DB) error {
	if t, err := loyalty.ParseTier(string(v.MinRank)); err == nil {
		v.MinRank = t
	}
	return nil
}

func (v Voucher) Expired(now time.Time) bool {
	return v.ExpiresAt != nil && !now.Before(*v.ExpiresAt)
}

// VoucherView is a voucher as seen by one user.
type VoucherView struct {
	Voucher
	RankEligible bool   `json:"rank_eligible"`
	Usable       bool   `json:"usable"`
	Reason       string `json:"reason,omitempty"` // Why the voucher cannot be used
}

// NewVoucherView checks rank eligibility plus active/expiry for tier at now.
func NewVoucherView(v Voucher, tier loyalty.Tier, now time.Time) VoucherView {
	view := VoucherView{Voucher: v, RankEligible: loyalty.CanUse(tier, v.MinRank)}

	switch {
	case !v.Active:
		view.Reason = "Voucher is no longer available"
	case v.Expired(now):
		view.Reason = "Voucher has expired"
	case !v.MinRank.Valid():
		view.Reason = "Voucher is not available for any rank"
	case !view.RankEligible:
		view.Reason = fmt.Sprintf("Requires %s rank or higher", v.MinRank)
	default:
		view.Usable = true
	}
	return view
}

// EligibleVouchers annotates every voucher for a user at tier.
func EligibleVouchers(tier loyalty.Tier, vouchers []Voucher, now time.Time) []VoucherView {
	views := make([]VoucherView, 0, len(vouchers))
	for _, v := range vouchers {
		views = append(views, NewVoucherView(v, tier, now))
	}
	return views
}
