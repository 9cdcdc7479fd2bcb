package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Customer struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	Email        string          `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string          `json:"phone"`
	Street       *string         `json:"street,omitempty"`
	Regency      string          `json:"regency"`
	Province     string          `json:"province"`
	WalletAmount decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"wallet_amount"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
