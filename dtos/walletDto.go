package dtos

import (
	"github.com/shopspring/decimal"

	"sewain-api/models"
)

type WalletHistoryFilter struct {
	Type     string `form:"type"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type WalletBalanceResponse struct {
	CustomerID   uint            `json:"customer_id"`
	Name         string          `json:"name"`
	WalletAmount decimal.Decimal `json:"wallet_amount"`
}

type WalletHistoryResponse struct {
	CustomerID   uint                  `json:"customer_id"`
	WalletAmount decimal.Decimal       `json:"wallet_amount"`
	TotalDebit   decimal.Decimal       `json:"total_debit"`
	TotalCredit  decimal.Decimal       `json:"total_credit"`
	Reports      []models.WalletReport `json:"reports"`
}

type ShopWalletReportResponse struct {
	ShopID      uint                  `json:"shop_id"`
	ShopName    string                `json:"shop_name"`
	Balance     decimal.Decimal       `json:"balance"`
	TotalCredit decimal.Decimal       `json:"total_credit"`
	Reports     []models.WalletReport `json:"reports"`
}
