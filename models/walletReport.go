package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	WalletReportDebit  = "DEBIT"
	WalletReportCredit = "CREDIT"
)

// WalletReport adalah buku besar append-only. Tepat satu dari CustomerID
// atau ShopID yang terisi: DEBIT menunjuk customer, CREDIT menunjuk shop.
type WalletReport struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  *uint           `gorm:"index" json:"customer_id,omitempty"`
	ShopID      *uint           `gorm:"index" json:"shop_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount"`
	Type        string          `gorm:"type:enum('DEBIT','CREDIT');not null" json:"type"`
	Description string          `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
