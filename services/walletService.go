package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"sewain-api/dtos"
	"sewain-api/models"
	"sewain-api/repositories"
	"sewain-api/utils"
)

type WalletService interface {
	GetBalance(customerID uint) (*dtos.WalletBalanceResponse, error)
	GetHistory(customerID uint, filter dtos.WalletHistoryFilter) (*dtos.WalletHistoryResponse, error)
	GetShopReport(shopID uint, filter dtos.WalletHistoryFilter) (*dtos.ShopWalletReportResponse, error)
}

type walletService struct {
	store repositories.Datastore
}

func NewWalletService(store repositories.Datastore) WalletService {
	return &walletService{store: store}
}

func (s *walletService) GetBalance(customerID uint) (*dtos.WalletBalanceResponse, error) {
	customer, err := s.store.Customers().FindByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("customer", customerID)
		}
		return nil, err
	}

	return &dtos.WalletBalanceResponse{
		CustomerID:   customer.ID,
		Name:         customer.Name,
		WalletAmount: customer.WalletAmount,
	}, nil
}

func (s *walletService) GetHistory(customerID uint, filter dtos.WalletHistoryFilter) (*dtos.WalletHistoryResponse, error) {
	customer, err := s.store.Customers().FindByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("customer", customerID)
		}
		return nil, err
	}

	repoFilter, err := buildReportFilter(filter)
	if err != nil {
		return nil, err
	}
	reports, err := s.store.WalletReports().FindByCustomer(customerID, *repoFilter)
	if err != nil {
		return nil, err
	}

	totalDebit, totalCredit := sumReports(reports)
	return &dtos.WalletHistoryResponse{
		CustomerID:   customer.ID,
		WalletAmount: customer.WalletAmount,
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		Reports:      reports,
	}, nil
}

func (s *walletService) GetShopReport(shopID uint, filter dtos.WalletHistoryFilter) (*dtos.ShopWalletReportResponse, error) {
	shop, err := s.store.Shops().FindByID(shopID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("shop", shopID)
		}
		return nil, err
	}

	repoFilter, err := buildReportFilter(filter)
	if err != nil {
		return nil, err
	}
	reports, err := s.store.WalletReports().FindByShop(shopID, *repoFilter)
	if err != nil {
		return nil, err
	}

	_, totalCredit := sumReports(reports)
	return &dtos.ShopWalletReportResponse{
		ShopID:      shop.ID,
		ShopName:    shop.Name,
		Balance:     shop.Balance,
		TotalCredit: totalCredit,
		Reports:     reports,
	}, nil
}

func buildReportFilter(filter dtos.WalletHistoryFilter) (*repositories.WalletReportFilter, error) {
	repoFilter := repositories.WalletReportFilter{
		Page:  filter.Page,
		Limit: filter.Limit,
	}

	switch filter.Type {
	case "", models.WalletReportDebit, models.WalletReportCredit:
		repoFilter.Type = filter.Type
	default:
		return nil, utils.NewValidationError("type", "type harus DEBIT atau CREDIT")
	}

	if filter.DateFrom != "" {
		from, err := time.Parse(dateLayout, filter.DateFrom)
		if err != nil {
			return nil, utils.NewValidationError("date_from", "format tanggal harus YYYY-MM-DD")
		}
		repoFilter.DateFrom = &from
	}
	if filter.DateTo != "" {
		to, err := time.Parse(dateLayout, filter.DateTo)
		if err != nil {
			return nil, utils.NewValidationError("date_to", "format tanggal harus YYYY-MM-DD")
		}
		// batas atas eksklusif: sampai akhir hari yang diminta
		end := to.AddDate(0, 0, 1)
		repoFilter.DateTo = &end
	}

	return &repoFilter, nil
}

func sumReports(reports []models.WalletReport) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit, totalCredit = decimal.Zero, decimal.Zero
	for _, report := range reports {
		switch report.Type {
		case models.WalletReportDebit:
			totalDebit = totalDebit.Add(report.Amount)
		case models.WalletReportCredit:
			totalCredit = totalCredit.Add(report.Amount)
		}
	}
	return totalDebit, totalCredit
}
