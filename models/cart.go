package models

import "time"

type Cart struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CustomerID uint    `gorm:"index;not null" json:"customer_id"`
	ProductID  uint    `gorm:"index;not null" json:"product_id"`
	Product    Product `json:"product"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
