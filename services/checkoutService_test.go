package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sewain-api/dtos"
	"sewain-api/models"
	"sewain-api/utils"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func uintPtr(v uint) *uint { return &v }

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
}

func newCheckoutFixture() (*memStore, *checkoutService) {
	store := newMemStore()
	store.customers[1] = models.Customer{ID: 1, Name: "Budi", Phone: "62812345", Regency: "Sleman", Province: "DI Yogyakarta", WalletAmount: dec(1000000)}
	store.shops[1] = models.Shop{ID: 1, Name: "Sewa Camp Jogja", Regency: "Sleman", Province: "DI Yogyakarta"}
	store.shops[2] = models.Shop{ID: 2, Name: "Alat Pesta Bandung", Regency: "Bandung", Province: "Jawa Barat"}
	store.products[1] = models.Product{ID: 1, ShopID: 1, Name: "Tenda Dome", DailyPrice: dec(35000), WeeklyPrice: dec(200000), MonthlyPrice: dec(650000), Deposit: dec(100000), Weight: dec(2), Stock: 10, MinRented: 1, Status: models.ProductAvailable}
	store.products[2] = models.Product{ID: 2, ShopID: 1, Name: "Kompor Portable", DailyPrice: dec(15000), WeeklyPrice: dec(80000), MonthlyPrice: dec(250000), Deposit: dec(50000), Weight: dec(1), Stock: 5, MinRented: 2, Status: models.ProductAvailable}
	store.products[3] = models.Product{ID: 3, ShopID: 2, Name: "Sound System", DailyPrice: dec(400000), WeeklyPrice: dec(2400000), MonthlyPrice: dec(8000000), Deposit: dec(2000000), Weight: dec(45), Stock: 4, MinRented: 1, Status: models.ProductAvailable}

	return store, &checkoutService{store: store, now: fixedNow}
}

func checkoutItem(productID uint, quantity int) dtos.CheckoutItemInput {
	return dtos.CheckoutItemInput{
		ProductID: uintPtr(productID),
		StartDate: "2024-06-02",
		EndDate:   "2024-06-02",
		Quantity:  quantity,
	}
}

func TestCheckoutSingleItem(t *testing.T) {
	store, service := newCheckoutFixture()

	response, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items:           []dtos.CheckoutItemInput{checkoutItem(1, 2)},
	})
	require.NoError(t, err)
	require.Len(t, response.Shops, 1)

	shop := response.Shops[0]
	require.Len(t, shop.RentedItems, 1)
	item := shop.RentedItems[0]
	assert.True(t, item.AvailableToRent)
	assert.Equal(t, "1 Hari", item.RentDuration)
	assert.True(t, dec(35000).Equal(item.Price), "got %s", item.Price)

	// deposit mengikuti quantity, ongkir atas berat gabungan 4kg satu kabupaten
	assert.True(t, dec(200000).Equal(shop.Deposit), "got %s", shop.Deposit)
	assert.True(t, dec(25000).Equal(shop.ShippingPrice), "got %s", shop.ShippingPrice)
	assert.Equal(t, "JNE", shop.ShippingPartner)

	assert.True(t, dec(35000).Equal(response.SubTotalProductPrice))
	assert.True(t, dec(25000).Equal(response.SubTotalShippingCost))
	assert.True(t, dec(200000).Equal(response.SubTotalDeposit))
	assert.True(t, dec(1750).Equal(response.ServiceFee), "got %s", response.ServiceFee)
	assert.True(t, dec(261750).Equal(response.GrandTotalPayment), "got %s", response.GrandTotalPayment)

	// transaksi PENDING tercipta dan stok langsung direservasi
	require.Len(t, store.transactions, 1)
	transaction := store.transactions[item.TransactionID]
	assert.Equal(t, models.TransactionPending, transaction.Status)
	assert.Equal(t, models.PaymentMethodUnpaid, transaction.PaymentMethod)
	assert.True(t, dec(235000).Equal(transaction.TotalAmount))
	assert.True(t, dec(1750).Equal(transaction.ServiceFee))
	assert.Equal(t, 8, store.products[1].Stock)

	assert.True(t, strings.HasPrefix(response.TransactionNumber, "PS20240601"))
	assert.Len(t, response.TransactionNumber, 19)
	assert.Equal(t, response.TransactionNumber, transaction.TransactionNumber)
}

func TestCheckoutPriceIgnoresQuantity(t *testing.T) {
	// Harga sewa TIDAK dikali quantity: sewa 3 unit dihargai sama dengan
	// 1 unit. Perilaku ini disengaja dipertahankan; hanya deposit yang
	// mengikuti jumlah unit.
	_, service := newCheckoutFixture()

	single, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items:           []dtos.CheckoutItemInput{checkoutItem(1, 1)},
	})
	require.NoError(t, err)

	_, service = newCheckoutFixture()
	triple, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items:           []dtos.CheckoutItemInput{checkoutItem(1, 3)},
	})
	require.NoError(t, err)

	assert.True(t, single.Shops[0].RentedItems[0].Price.Equal(triple.Shops[0].RentedItems[0].Price))
	assert.True(t, triple.Shops[0].Deposit.Equal(single.Shops[0].Deposit.Mul(dec(3))))
}

func TestCheckoutMinimumRentNotMet(t *testing.T) {
	store, service := newCheckoutFixture()

	response, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items: []dtos.CheckoutItemInput{
			checkoutItem(2, 1), // minRented 2
			checkoutItem(1, 1),
		},
	})
	require.NoError(t, err)
	require.Len(t, response.Shops, 1)
	require.Len(t, response.Shops[0].RentedItems, 2)

	failed := response.Shops[0].RentedItems[0]
	assert.False(t, failed.AvailableToRent)
	assert.Zero(t, failed.TransactionID)
	assert.Contains(t, failed.Message, "minimal sewa")

	ok := response.Shops[0].RentedItems[1]
	assert.True(t, ok.AvailableToRent)
	assert.NotZero(t, ok.TransactionID)

	// item gagal tidak menyentuh stok, item valid tetap jalan
	assert.Equal(t, 5, store.products[2].Stock)
	assert.Equal(t, 9, store.products[1].Stock)
	assert.Len(t, store.transactions, 1)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	store, service := newCheckoutFixture()

	response, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items:           []dtos.CheckoutItemInput{checkoutItem(1, 11)},
	})
	require.NoError(t, err)

	item := response.Shops[0].RentedItems[0]
	assert.False(t, item.AvailableToRent)
	assert.Contains(t, item.Message, "stok tidak cukup")
	assert.Equal(t, 10, store.products[1].Stock)
	assert.Empty(t, store.transactions)
}

func TestCheckoutUnknownCarrierFailsShopGroup(t *testing.T) {
	store, service := newCheckoutFixture()

	response, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "Kilat Express",
		Items: []dtos.CheckoutItemInput{
			checkoutItem(1, 1),
			checkoutItem(2, 2),
		},
	})
	require.NoError(t, err)

	// seluruh item toko gagal karena ongkir wajib utk membuat transaksi
	for _, item := range response.Shops[0].RentedItems {
		assert.False(t, item.AvailableToRent)
		assert.Contains(t, item.Message, "tidak tersedia")
	}
	assert.Empty(t, store.transactions)
	assert.Equal(t, 10, store.products[1].Stock)
	assert.Equal(t, 5, store.products[2].Stock)
	assert.True(t, response.GrandTotalPayment.IsZero())
}

func TestCheckoutMultiShop(t *testing.T) {
	store, service := newCheckoutFixture()

	response, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items: []dtos.CheckoutItemInput{
			checkoutItem(1, 1),
			checkoutItem(3, 1),
		},
	})
	require.NoError(t, err)
	require.Len(t, response.Shops, 2)

	// toko beda provinsi kena faktor jarak 2.5x
	assert.Equal(t, uint(1), response.Shops[0].ShopID)
	assert.Equal(t, uint(2), response.Shops[1].ShopID)
	assert.True(t, dec(20000).Equal(response.Shops[0].ShippingPrice), "got %s", response.Shops[0].ShippingPrice)
	assert.True(t, dec(318750).Equal(response.Shops[1].ShippingPrice), "got %s", response.Shops[1].ShippingPrice)

	// satu nomor transaksi utk seluruh call
	require.Len(t, store.transactions, 2)
	numbers := map[string]bool{}
	for _, transaction := range store.transactions {
		numbers[transaction.TransactionNumber] = true
	}
	assert.Len(t, numbers, 1)
}

func TestCheckoutValidation(t *testing.T) {
	_, service := newCheckoutFixture()

	tests := []struct {
		name  string
		item  dtos.CheckoutItemInput
		field string
	}{
		{
			"tanpa product dan cart",
			dtos.CheckoutItemInput{StartDate: "2024-06-02", EndDate: "2024-06-03", Quantity: 1},
			"product_id",
		},
		{
			"tanpa tanggal mulai",
			dtos.CheckoutItemInput{ProductID: uintPtr(1), EndDate: "2024-06-03", Quantity: 1},
			"start_date",
		},
		{
			"mulai di masa lalu",
			dtos.CheckoutItemInput{ProductID: uintPtr(1), StartDate: "2024-05-31", EndDate: "2024-06-03", Quantity: 1},
			"start_date",
		},
		{
			"selesai sebelum mulai",
			dtos.CheckoutItemInput{ProductID: uintPtr(1), StartDate: "2024-06-05", EndDate: "2024-06-03", Quantity: 1},
			"end_date",
		},
		{
			"quantity nol tanpa cart",
			dtos.CheckoutItemInput{ProductID: uintPtr(1), StartDate: "2024-06-02", EndDate: "2024-06-03"},
			"quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Checkout(dtos.CheckoutRequest{
				CustomerID:      1,
				ShippingPartner: "JNE",
				Items:           []dtos.CheckoutItemInput{tt.item},
			})
			var appErr *utils.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, utils.ErrValidation, appErr.Kind)
			assert.Contains(t, appErr.Field, tt.field)
		})
	}
}

func TestCheckoutProductNotFoundAbortsAll(t *testing.T) {
	store, service := newCheckoutFixture()

	_, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items: []dtos.CheckoutItemInput{
			checkoutItem(1, 1),
			checkoutItem(99, 1),
		},
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrNotFound, appErr.Kind)

	// entity hilang membatalkan seluruh checkout, tidak ada tulisan parsial
	assert.Empty(t, store.transactions)
	assert.Equal(t, 10, store.products[1].Stock)
}

func TestCheckoutCustomerNotFound(t *testing.T) {
	_, service := newCheckoutFixture()

	_, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      42,
		ShippingPartner: "JNE",
		Items:           []dtos.CheckoutItemInput{checkoutItem(1, 1)},
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrNotFound, appErr.Kind)
	assert.Equal(t, "customer", appErr.Entity)
}

func TestCheckoutFromCart(t *testing.T) {
	store, service := newCheckoutFixture()
	store.carts[7] = models.Cart{ID: 7, CustomerID: 1, ProductID: 1, Quantity: 3}

	response, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items: []dtos.CheckoutItemInput{
			{CartID: uintPtr(7), StartDate: "2024-06-02", EndDate: "2024-06-02"},
		},
	})
	require.NoError(t, err)

	item := response.Shops[0].RentedItems[0]
	assert.True(t, item.AvailableToRent)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 7, store.products[1].Stock)

	// cart habis terpakai setelah checkout
	_, exists := store.carts[7]
	assert.False(t, exists)
}

func TestCheckoutTransactionNumberExhausted(t *testing.T) {
	store, service := newCheckoutFixture()

	// seluruh 1000 kombinasi suffix utk timestamp ini sudah terpakai,
	// tiga kali regenerasi pasti bentrok semua
	for i := 0; i < 1000; i++ {
		id := uint(i + 1)
		store.transactions[id] = models.Transaction{
			ID:                id,
			TransactionNumber: fmt.Sprintf("PS%s%03d", fixedNow().Format("20060102150405"), i),
			CustomerID:        1,
			ProductID:         1,
			Status:            models.TransactionPending,
		}
	}

	_, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items:           []dtos.CheckoutItemInput{checkoutItem(1, 1)},
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrProcessing, appErr.Kind)
	assert.Equal(t, 10, store.products[1].Stock)
}

func TestCheckoutCartOwnedByOther(t *testing.T) {
	store, service := newCheckoutFixture()
	store.customers[2] = models.Customer{ID: 2, Name: "Siti", Regency: "Sleman", Province: "DI Yogyakarta"}
	store.carts[7] = models.Cart{ID: 7, CustomerID: 2, ProductID: 1, Quantity: 1}

	_, err := service.Checkout(dtos.CheckoutRequest{
		CustomerID:      1,
		ShippingPartner: "JNE",
		Items: []dtos.CheckoutItemInput{
			{CartID: uintPtr(7), StartDate: "2024-06-02", EndDate: "2024-06-02", Quantity: 1},
		},
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrNotFound, appErr.Kind)
	assert.Empty(t, store.transactions)
}
