package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"sewain-api/dtos"
	"sewain-api/models"
	"sewain-api/repositories"
	"sewain-api/utils"
)

const dateLayout = "2006-01-02"

// Komisi platform: 5% dari subtotal harga sewa.
var serviceFeeRate = decimal.NewFromFloat(0.05)

type CheckoutService interface {
	Checkout(req dtos.CheckoutRequest) (*dtos.CheckoutResponse, error)
}

type checkoutService struct {
	store repositories.Datastore
	now   func() time.Time
}

func NewCheckoutService(store repositories.Datastore) CheckoutService {
	return &checkoutService{store: store, now: time.Now}
}

// checkoutLine adalah satu baris request yang sudah divalidasi bentuknya.
type checkoutLine struct {
	productID *uint
	cartID    *uint
	startDate time.Time
	endDate   time.Time
	quantity  int

	product *models.Product
}

func (s *checkoutService) Checkout(req dtos.CheckoutRequest) (*dtos.CheckoutResponse, error) {
	lines, err := s.parseItems(req.Items)
	if err != nil {
		return nil, err
	}

	var response *dtos.CheckoutResponse
	err = s.store.Atomic(func(ds repositories.Datastore) error {
		customer, err := ds.Customers().FindByID(req.CustomerID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return utils.NewNotFoundError("customer", req.CustomerID)
			}
			return err
		}

		if err := s.resolveProducts(ds, customer, lines); err != nil {
			return err
		}

		number, err := s.generateTransactionNumber(ds)
		if err != nil {
			return err
		}

		response, err = s.processShopGroups(ds, customer, lines, req.ShippingPartner, number)
		return err
	})
	if err != nil {
		var appErr *utils.AppError
		if !errors.As(err, &appErr) {
			slog.Error("checkout gagal", "customer_id", req.CustomerID, "error", err)
			return nil, utils.NewProcessingError("checkout gagal diproses")
		}
		return nil, err
	}

	slog.Info("checkout selesai",
		"customer_id", req.CustomerID,
		"transaction_number", response.TransactionNumber,
		"grand_total", response.GrandTotalPayment)
	return response, nil
}

// parseItems menolak seluruh request kalau ada field yang salah bentuk;
// tidak ada pemrosesan parsial utk error bentuk request.
func (s *checkoutService) parseItems(items []dtos.CheckoutItemInput) ([]*checkoutLine, error) {
	if len(items) == 0 {
		return nil, utils.NewValidationError("items", "minimal satu item untuk checkout")
	}

	today := truncateDate(s.now())
	lines := make([]*checkoutLine, 0, len(items))
	for i, item := range items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }

		if item.ProductID == nil && item.CartID == nil {
			return nil, utils.NewValidationError(field("product_id"), "product_id atau cart_id wajib diisi")
		}
		if item.StartDate == "" {
			return nil, utils.NewValidationError(field("start_date"), "tanggal mulai sewa wajib diisi")
		}
		if item.EndDate == "" {
			return nil, utils.NewValidationError(field("end_date"), "tanggal selesai sewa wajib diisi")
		}

		startDate, err := time.Parse(dateLayout, item.StartDate)
		if err != nil {
			return nil, utils.NewValidationError(field("start_date"), "format tanggal harus YYYY-MM-DD")
		}
		endDate, err := time.Parse(dateLayout, item.EndDate)
		if err != nil {
			return nil, utils.NewValidationError(field("end_date"), "format tanggal harus YYYY-MM-DD")
		}
		if startDate.Before(today) {
			return nil, utils.NewValidationError(field("start_date"), "tanggal mulai tidak boleh sebelum hari ini")
		}
		if endDate.Before(startDate) {
			return nil, utils.NewValidationError(field("end_date"), "tanggal selesai tidak boleh sebelum tanggal mulai")
		}
		if item.Quantity < 0 || (item.Quantity == 0 && item.CartID == nil) {
			return nil, utils.NewValidationError(field("quantity"), "quantity harus lebih dari 0")
		}

		lines = append(lines, &checkoutLine{
			productID: item.ProductID,
			cartID:    item.CartID,
			startDate: startDate,
			endDate:   endDate,
			quantity:  item.Quantity,
		})
	}
	return lines, nil
}

// resolveProducts memuat entity produk per baris, lewat cart atau langsung.
// Entity yang tidak ada membatalkan seluruh checkout.
func (s *checkoutService) resolveProducts(ds repositories.Datastore, customer *models.Customer, lines []*checkoutLine) error {
	for _, line := range lines {
		if line.cartID != nil {
			cart, err := ds.Carts().FindByID(*line.cartID)
			if err != nil {
				if errors.Is(err, repositories.ErrRecordNotFound) {
					return utils.NewNotFoundError("cart", *line.cartID)
				}
				return err
			}
			if cart.CustomerID != customer.ID {
				return utils.NewNotFoundError("cart", *line.cartID)
			}
			line.product = &cart.Product
			if line.quantity == 0 {
				line.quantity = cart.Quantity
			}
			continue
		}

		product, err := ds.Products().FindByID(*line.productID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return utils.NewNotFoundError("product", *line.productID)
			}
			return err
		}
		line.product = product
	}
	return nil
}

// generateTransactionNumber membuat nomor unik format PS + timestamp +
// 3 digit acak. Kalau bentrok, coba ulang dengan nomor baru (dibatasi).
func (s *checkoutService) generateTransactionNumber(ds repositories.Datastore) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		number := fmt.Sprintf("PS%s%03d", s.now().Format("20060102150405"), rand.Intn(1000))
		exists, err := ds.Transactions().ExistsByNumber(number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", utils.NewProcessingError("gagal membuat nomor transaksi unik")
}

func (s *checkoutService) processShopGroups(ds repositories.Datastore, customer *models.Customer, lines []*checkoutLine, shippingPartner, number string) (*dtos.CheckoutResponse, error) {
	// Grup per toko, urutan sesuai kemunculan pertama di request.
	groupIndex := map[uint]int{}
	var groups [][]*checkoutLine
	for _, line := range lines {
		shopID := line.product.ShopID
		idx, ok := groupIndex[shopID]
		if !ok {
			idx = len(groups)
			groupIndex[shopID] = idx
			groups = append(groups, nil)
		}
		groups[idx] = append(groups[idx], line)
	}

	response := &dtos.CheckoutResponse{
		TransactionNumber:    number,
		SubTotalProductPrice: decimal.Zero,
		SubTotalShippingCost: decimal.Zero,
		SubTotalDeposit:      decimal.Zero,
	}

	for _, group := range groups {
		shopResp, err := s.processShopGroup(ds, customer, group, shippingPartner, number)
		if err != nil {
			return nil, err
		}

		response.Shops = append(response.Shops, *shopResp)
		response.SubTotalProductPrice = response.SubTotalProductPrice.Add(shopResp.TotalRentedProduct)
		response.SubTotalShippingCost = response.SubTotalShippingCost.Add(shopResp.ShippingPrice)
		response.SubTotalDeposit = response.SubTotalDeposit.Add(shopResp.Deposit)
	}

	response.ServiceFee = response.SubTotalProductPrice.Mul(serviceFeeRate).Round(0)
	response.GrandTotalPayment = response.SubTotalProductPrice.
		Add(response.SubTotalShippingCost).
		Add(response.SubTotalDeposit).
		Add(response.ServiceFee)
	return response, nil
}

func (s *checkoutService) processShopGroup(ds repositories.Datastore, customer *models.Customer, group []*checkoutLine, shippingPartner, number string) (*dtos.CheckoutShopResponse, error) {
	shop := group[0].product.Shop
	resp := &dtos.CheckoutShopResponse{
		ShopID:             shop.ID,
		ShopName:           shop.Name,
		Deposit:            decimal.Zero,
		ShippingPrice:      decimal.Zero,
		TotalRentedProduct: decimal.Zero,
		TotalPrice:         decimal.Zero,
	}

	// Validasi per item dengan lock baris produk. Item yang gagal dicatat
	// tapi tidak membatalkan item lain di toko yang sama.
	type okLine struct {
		line    *checkoutLine
		product *models.Product
		itemIdx int
	}
	var okLines []okLine
	totalWeight := decimal.Zero

	for _, line := range group {
		price, duration := utils.CalculateRentPrice(*line.product, line.startDate, line.endDate)
		item := dtos.RentedItemResponse{
			ProductID:     line.product.ID,
			ProductName:   line.product.Name,
			Price:         price,
			StartRentDate: line.startDate.Format(dateLayout),
			EndRentDate:   line.endDate.Format(dateLayout),
			RentDuration:  duration.String(),
			Quantity:      line.quantity,
		}

		locked, err := ds.Products().LockByID(line.product.ID)
		if err != nil {
			return nil, err
		}

		switch {
		case line.quantity < locked.MinRented:
			item.Message = utils.NewMinimumRentError(locked.ID, locked.MinRented, line.quantity).Message
		case locked.Stock < line.quantity:
			item.Message = utils.NewInsufficientStockError(locked.ID, locked.Stock, line.quantity).Message
		default:
			item.AvailableToRent = true
			okLines = append(okLines, okLine{line: line, product: locked, itemIdx: len(resp.RentedItems)})
			totalWeight = totalWeight.Add(locked.Weight.Mul(decimal.NewFromInt(int64(line.quantity))))
		}

		resp.RentedItems = append(resp.RentedItems, item)
	}

	if len(okLines) == 0 {
		return resp, nil
	}

	// Ongkir dihitung sekali per toko atas berat gabungan. Kalau kurir
	// tidak tersedia, seluruh item toko ini ikut gagal.
	estimate, err := utils.CalculateShipping(shippingPartner, totalWeight, shop, *customer, s.now())
	if err != nil {
		var appErr *utils.AppError
		if !errors.As(err, &appErr) {
			return nil, err
		}
		slog.Warn("ongkir tidak tersedia, grup toko digagalkan",
			"shop_id", shop.ID, "partner", shippingPartner)
		for _, ok := range okLines {
			resp.RentedItems[ok.itemIdx].AvailableToRent = false
			resp.RentedItems[ok.itemIdx].Message = appErr.Message
		}
		return resp, nil
	}

	resp.ShippingPartner = estimate.Partner
	resp.ShippingPrice = estimate.Price
	resp.EstimatedDelivery = estimate.EstimatedDate.Format(dateLayout)

	for _, ok := range okLines {
		line, product := ok.line, ok.product
		price := resp.RentedItems[ok.itemIdx].Price
		deposit := product.Deposit.Mul(decimal.NewFromInt(int64(line.quantity)))
		serviceFee := price.Mul(serviceFeeRate).Round(0)

		transaction := models.Transaction{
			TransactionNumber: number,
			CustomerID:        customer.ID,
			ProductID:         product.ID,
			StartDate:         line.startDate,
			EndDate:           line.endDate,
			Quantity:          line.quantity,
			Amount:            price,
			TotalDeposit:      deposit,
			TotalAmount:       price.Add(deposit),
			ServiceFee:        serviceFee,
			ShippingPartner:   estimate.Partner,
			ShippingPrice:     estimate.Price,
			Status:            models.TransactionPending,
			PaymentMethod:     models.PaymentMethodUnpaid,
		}
		if err := ds.Transactions().Create(&transaction); err != nil {
			return nil, err
		}

		// Stok direservasi optimistik saat checkout, dikembalikan hanya
		// kalau pembayaran grupnya gagal.
		product.Stock -= line.quantity
		if err := ds.Products().Save(product); err != nil {
			return nil, err
		}

		if line.cartID != nil {
			if err := ds.Carts().Delete(*line.cartID); err != nil {
				return nil, err
			}
		}

		resp.RentedItems[ok.itemIdx].TransactionID = transaction.ID
		resp.Deposit = resp.Deposit.Add(deposit)
		resp.TotalRentedProduct = resp.TotalRentedProduct.Add(price)
	}

	resp.TotalPrice = resp.TotalRentedProduct.Add(resp.Deposit).Add(resp.ShippingPrice)
	return resp, nil
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
