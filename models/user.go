package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Email      string       `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name       string       `json:"name" gorm:"type:varchar(255);not null"`
	Rank       loyalty.Tier `json:"rank" gorm:"type:varchar(16);not null;default:'BRONZE'"`
	TotalSpent float64      `json:"totalSpent" gorm:"column:total_spent;type:numeric(14,2);not null;default:0"`
	CreatedAt  time.Time    `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// LoyaltyStanding is the server-assigned rank and lifetime spend of a user.
type LoyaltyStanding struct {
	UserID     uuid.UUID    `json:"user_id"`
	Rank       loyalty.Tier `json:"rank"`
	TotalSpent float64      `json:"total_spent"`
}

type VoucherEligibilityResponse struct {
	Rank    loyalty.Tier `json:"rank"`
	Voucher VoucherView  `json:"voucher"`
}
