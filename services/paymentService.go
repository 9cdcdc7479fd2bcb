package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"sewain-api/dtos"
	"sewain-api/models"
	"sewain-api/repositories"
	"sewain-api/utils"
)

type PaymentService interface {
	ProcessPayment(req dtos.PaymentRequest) (*dtos.PaymentResponse, error)
}

type paymentService struct {
	store repositories.Datastore
	now   func() time.Time
}

func NewPaymentService(store repositories.Datastore) PaymentService {
	return &paymentService{store: store, now: time.Now}
}

// ProcessPayment menyelesaikan pembayaran wallet per grup nomor transaksi.
// Transaksi luar memegang lock baris customer dan menunda save wallet ke
// akhir; tiap grup berjalan dalam savepoint sehingga kegagalan satu grup
// tidak membatalkan grup lain.
func (s *paymentService) ProcessPayment(req dtos.PaymentRequest) (*dtos.PaymentResponse, error) {
	if len(req.TransactionIDs) == 0 {
		return nil, utils.NewValidationError("transaction_ids", "minimal satu transaksi untuk dibayar")
	}

	response := &dtos.PaymentResponse{
		TotalPaid:   decimal.Zero,
		PaymentTime: s.now(),
	}

	err := s.store.Atomic(func(ds repositories.Datastore) error {
		customer, err := ds.Customers().LockByID(req.CustomerID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return utils.NewNotFoundError("customer", req.CustomerID)
			}
			return err
		}

		transactions, err := ds.Transactions().FindByIDs(req.TransactionIDs)
		if err != nil {
			return err
		}
		if len(transactions) == 0 {
			return &utils.AppError{
				Kind:    utils.ErrNotFound,
				Entity:  "transaction",
				Message: "transaksi tidak ditemukan",
			}
		}

		for _, group := range groupByNumber(transactions) {
			s.settleGroup(ds, customer, group, response)
		}

		// Mutasi wallet customer dipersist sekali setelah semua grup.
		return ds.Customers().Save(customer)
	})
	if err != nil {
		var appErr *utils.AppError
		if !errors.As(err, &appErr) {
			slog.Error("pembayaran gagal diproses", "customer_id", req.CustomerID, "error", err)
			return nil, utils.NewProcessingError("pembayaran gagal diproses")
		}
		return nil, err
	}

	switch {
	case len(response.FailedTransactions) == 0:
		response.PaymentStatus = dtos.PaymentStatusCompleted
		response.Message = "semua transaksi berhasil dibayar"
	case len(response.SucceededTransactions) == 0:
		response.PaymentStatus = dtos.PaymentStatusFailed
		response.Message = "semua transaksi gagal dibayar"
	default:
		response.PaymentStatus = dtos.PaymentStatusPartial
		response.Message = "sebagian transaksi gagal dibayar"
	}

	slog.Info("pembayaran selesai",
		"customer_id", req.CustomerID,
		"status", response.PaymentStatus,
		"total_paid", response.TotalPaid)
	return response, nil
}

// groupByNumber mengelompokkan transaksi per nomor, urut sesuai kemunculan.
func groupByNumber(transactions []models.Transaction) [][]models.Transaction {
	index := map[string]int{}
	var groups [][]models.Transaction
	for _, transaction := range transactions {
		idx, ok := index[transaction.TransactionNumber]
		if !ok {
			idx = len(groups)
			index[transaction.TransactionNumber] = idx
			groups = append(groups, nil)
		}
		groups[idx] = append(groups[idx], transaction)
	}
	return groups
}

// settleGroup memproses satu grup nomor transaksi. Kegagalan di dalam
// savepoint membatalkan seluruh tulisan grup, lalu grup ditandai CANCELLED
// dan stoknya dikembalikan di scope transaksi luar.
func (s *paymentService) settleGroup(ds repositories.Datastore, customer *models.Customer, group []models.Transaction, response *dtos.PaymentResponse) {
	groupTotal := decimal.Zero

	err := ds.Atomic(func(gs repositories.Datastore) error {
		for _, transaction := range group {
			if transaction.CustomerID != customer.ID {
				return utils.NewOwnershipOrStatusError(transaction.ID, "transaksi bukan milik customer ini")
			}
			if transaction.Status != models.TransactionPending {
				return utils.NewOwnershipOrStatusError(transaction.ID,
					fmt.Sprintf("transaksi berstatus %s, tidak bisa dibayar", transaction.Status))
			}
			groupTotal = groupTotal.Add(transaction.TotalAmount)
		}

		if customer.WalletAmount.LessThan(groupTotal) {
			return utils.NewInsufficientBalanceError(customer.WalletAmount, groupTotal)
		}

		for _, transaction := range group {
			// Bekerja di salinan; slice grup tetap memegang status awal
			// untuk penanganan gagal setelah rollback savepoint.
			settled := transaction
			settled.Status = models.TransactionProcessed
			settled.PaymentMethod = models.PaymentMethodWallet
			if err := gs.Transactions().Save(&settled); err != nil {
				return err
			}

			sellerAmount := settled.Amount.Add(settled.ShippingPrice).Sub(settled.ServiceFee)
			shop, err := gs.Shops().LockByID(settled.Product.ShopID)
			if err != nil {
				return err
			}
			shop.Balance = shop.Balance.Add(sellerAmount)
			if err := gs.Shops().Save(shop); err != nil {
				return err
			}

			// Pasangan DEBIT/CREDIT ditulis setelah mutasi saldo, dalam
			// scope savepoint yang sama.
			customerID, shopID := settled.CustomerID, shop.ID
			debit := models.WalletReport{
				CustomerID:  &customerID,
				Amount:      settled.TotalAmount,
				Type:        models.WalletReportDebit,
				Description: fmt.Sprintf("Pembayaran sewa %s - %s", settled.TransactionNumber, settled.Product.Name),
			}
			if err := gs.WalletReports().Create(&debit); err != nil {
				return err
			}
			credit := models.WalletReport{
				ShopID:      &shopID,
				Amount:      sellerAmount,
				Type:        models.WalletReportCredit,
				Description: fmt.Sprintf("Pendapatan sewa %s - %s", settled.TransactionNumber, settled.Product.Name),
			}
			if err := gs.WalletReports().Create(&credit); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		reason := "pemrosesan grup gagal"
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			reason = appErr.Message
		} else {
			slog.Error("grup pembayaran gagal", "transaction_number", group[0].TransactionNumber, "error", err)
		}
		s.cancelGroup(ds, group, reason, response)
		return
	}

	customer.WalletAmount = customer.WalletAmount.Sub(groupTotal)
	response.TotalPaid = response.TotalPaid.Add(groupTotal)
	for _, transaction := range group {
		response.SucceededTransactions = append(response.SucceededTransactions, dtos.PaymentTransactionResult{
			TransactionID:     transaction.ID,
			TransactionNumber: transaction.TransactionNumber,
			Amount:            transaction.TotalAmount,
			Status:            models.TransactionProcessed,
		})
	}
}

// cancelGroup menandai grup CANCELLED dan mengembalikan stok reservasi
// checkout. Transaksi yang sudah PROCESSED tidak disentuh: transisi status
// satu arah.
func (s *paymentService) cancelGroup(ds repositories.Datastore, group []models.Transaction, reason string, response *dtos.PaymentResponse) {
	for _, transaction := range group {
		status := transaction.Status
		if transaction.Status == models.TransactionPending {
			cancelled := transaction
			cancelled.Status = models.TransactionCancelled
			cancelled.PaymentMethod = models.PaymentMethodFailed
			if err := ds.Transactions().Save(&cancelled); err != nil {
				slog.Error("gagal membatalkan transaksi", "transaction_id", transaction.ID, "error", err)
				continue
			}

			product, err := ds.Products().LockByID(transaction.ProductID)
			if err != nil {
				slog.Error("gagal mengembalikan stok", "product_id", transaction.ProductID, "error", err)
				continue
			}
			product.Stock += transaction.Quantity
			if err := ds.Products().Save(product); err != nil {
				slog.Error("gagal mengembalikan stok", "product_id", transaction.ProductID, "error", err)
				continue
			}
			status = models.TransactionCancelled
		}

		response.FailedTransactions = append(response.FailedTransactions, dtos.PaymentTransactionResult{
			TransactionID:     transaction.ID,
			TransactionNumber: transaction.TransactionNumber,
			Amount:            transaction.TotalAmount,
			Status:            status,
			Reason:            reason,
		})
	}
}
