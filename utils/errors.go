package utils

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

type ErrorKind string

const (
	ErrValidation          ErrorKind = "VALIDATION_ERROR"
	ErrNotFound            ErrorKind = "DATA_NOT_FOUND"
	ErrInsufficientStock   ErrorKind = "INSUFFICIENT_STOCK"
	ErrMinimumRentNotMet   ErrorKind = "MINIMUM_RENT_NOT_MET"
	ErrShippingUnavailable ErrorKind = "SHIPPING_UNAVAILABLE"
	ErrInsufficientBalance ErrorKind = "INSUFFICIENT_BALANCE"
	ErrOwnershipOrStatus   ErrorKind = "TRANSACTION_NOT_PAYABLE"
	ErrProcessing          ErrorKind = "PROCESSING_ERROR"
)

// AppError membawa kode kesalahan plus payload terstruktur supaya caller
// bisa bereaksi programatik, bukan sekadar pesan.
type AppError struct {
	Kind    ErrorKind `json:"code"`
	Message string    `json:"message"`

	Field     string `json:"field,omitempty"`
	Entity    string `json:"entity,omitempty"`
	EntityID  uint   `json:"entity_id,omitempty"`
	Available int    `json:"available,omitempty"`
	Requested int    `json:"requested,omitempty"`

	Current  decimal.Decimal `json:"current,omitempty"`
	Required decimal.Decimal `json:"required,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{Kind: ErrValidation, Field: field, Message: message}
}

func NewNotFoundError(entity string, id uint) *AppError {
	return &AppError{
		Kind:     ErrNotFound,
		Entity:   entity,
		EntityID: id,
		Message:  fmt.Sprintf("%s dengan id %d tidak ditemukan", entity, id),
	}
}

func NewInsufficientStockError(productID uint, available, requested int) *AppError {
	return &AppError{
		Kind:      ErrInsufficientStock,
		EntityID:  productID,
		Available: available,
		Requested: requested,
		Message:   fmt.Sprintf("stok tidak cukup (tersedia %d, diminta %d)", available, requested),
	}
}

func NewMinimumRentError(productID uint, minRented, requested int) *AppError {
	return &AppError{
		Kind:      ErrMinimumRentNotMet,
		EntityID:  productID,
		Available: minRented,
		Requested: requested,
		Message:   fmt.Sprintf("minimal sewa %d unit, diminta %d", minRented, requested),
	}
}

func NewShippingUnavailableError(partner string) *AppError {
	return &AppError{
		Kind:    ErrShippingUnavailable,
		Message: fmt.Sprintf("kurir %q tidak tersedia", partner),
	}
}

func NewInsufficientBalanceError(current, required decimal.Decimal) *AppError {
	return &AppError{
		Kind:     ErrInsufficientBalance,
		Current:  current,
		Required: required,
		Message:  fmt.Sprintf("saldo wallet %s kurang dari total %s", current.StringFixed(0), required.StringFixed(0)),
	}
}

func NewOwnershipOrStatusError(transactionID uint, message string) *AppError {
	return &AppError{Kind: ErrOwnershipOrStatus, EntityID: transactionID, Message: message}
}

func NewProcessingError(message string) *AppError {
	return &AppError{Kind: ErrProcessing, Message: message}
}

// HTTPStatus memetakan kode kesalahan ke status HTTP untuk controller.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInsufficientStock, ErrMinimumRentNotMet, ErrShippingUnavailable,
		ErrInsufficientBalance, ErrOwnershipOrStatus:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
