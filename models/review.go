package models

import "time"

type Review struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ProductID  uint    `gorm:"index;not null" json:"product_id"`
	CustomerID uint    `gorm:"index;not null" json:"customer_id"`
	Rating     int     `gorm:"not null" json:"rating"`
	Comment    *string `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
