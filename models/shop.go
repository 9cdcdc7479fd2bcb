package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Shop struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	Name     string          `gorm:"not null" json:"name"`
	Phone    string          `json:"phone"`
	Regency  string          `json:"regency"`
	Province string          `json:"province"`
	Balance  decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"balance"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
