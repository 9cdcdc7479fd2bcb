package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionPending   = "PENDING"
	TransactionProcessed = "PROCESSED"
	TransactionCancelled = "CANCELLED"

	PaymentMethodUnpaid = "UNPAID"
	PaymentMethodWallet = "WALLET"
	PaymentMethodFailed = "FAILED"
)

type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Satu kali checkout menghasilkan beberapa baris dengan nomor yang sama;
	// pembayaran menyelesaikan satu nomor sekaligus.
	TransactionNumber string `gorm:"size:20;index;not null" json:"transaction_number"`

	CustomerID uint    `gorm:"index;not null" json:"customer_id"`
	ProductID  uint    `gorm:"index;not null" json:"product_id"`
	Product    Product `json:"product"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`

	Amount       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount"`
	TotalDeposit decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"total_deposit"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_amount"`
	ServiceFee   decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"service_fee"`

	ShippingPartner string          `json:"shipping_partner"`
	ShippingPrice   decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"shipping_price"`

	Status        string `gorm:"type:enum('PENDING','PROCESSED','CANCELLED');default:'PENDING'" json:"status"`
	PaymentMethod string `gorm:"type:enum('UNPAID','WALLET','FAILED');default:'UNPAID'" json:"payment_method"`
	IsSelled      bool   `gorm:"not null;default:false" json:"is_selled"`

	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	LastUpdateAt time.Time      `gorm:"autoUpdateTime;column:last_update_at" json:"last_update_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
