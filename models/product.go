package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductAvailable = "available"
	ProductInactive  = "inactive"
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ShopID      uint    `gorm:"index;not null" json:"shop_id"`
	Shop        Shop    `json:"shop"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`

	DailyPrice   decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"daily_price"`
	WeeklyPrice  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"weekly_price"`
	MonthlyPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"monthly_price"`
	Deposit      decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"deposit"`

	// Berat per unit dalam kilogram, dipakai kalkulasi ongkir.
	Weight    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:1" json:"weight"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	MinRented int             `gorm:"not null;default:1" json:"min_rented"`
	Status    string          `gorm:"type:enum('available','inactive');default:'available'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
