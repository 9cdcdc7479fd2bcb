package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusPartial   = "PARTIAL"
	PaymentStatusFailed    = "FAILED"
)

type PaymentRequest struct {
	CustomerID     uint   `json:"customer_id"`
	TransactionIDs []uint `json:"transaction_ids" binding:"required,min=1"`
}

type PaymentTransactionResult struct {
	TransactionID     uint            `json:"transaction_id"`
	TransactionNumber string          `json:"transaction_number"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	Reason            string          `json:"reason,omitempty"`
}

type PaymentResponse struct {
	PaymentStatus         string                     `json:"payment_status"`
	SucceededTransactions []PaymentTransactionResult `json:"succeeded_transactions"`
	FailedTransactions    []PaymentTransactionResult `json:"failed_transactions"`
	Message               string                     `json:"message"`
	TotalPaid             decimal.Decimal            `json:"total_paid"`
	PaymentTime           time.Time                  `json:"payment_time"`
}
