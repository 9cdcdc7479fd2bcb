package repositories

import (
	"errors"
	"time"

	"sewain-api/models"
)

// ErrRecordNotFound dikembalikan repository ketika entity tidak ada.
var ErrRecordNotFound = errors.New("record not found")

// Datastore membungkus semua repository plus batas transaksi database.
// Service layer hanya bicara lewat interface ini supaya bisa dites tanpa
// MySQL.
type Datastore interface {
	Customers() CustomerRepository
	Shops() ShopRepository
	Products() ProductRepository
	Carts() CartRepository
	Transactions() TransactionRepository
	WalletReports() WalletReportRepository

	// Atomic menjalankan fn dalam satu transaksi database. Panggilan
	// bersarang menjadi savepoint: rollback savepoint tidak membatalkan
	// tulisan transaksi luarnya.
	Atomic(fn func(Datastore) error) error
}

type CustomerRepository interface {
	FindByID(id uint) (*models.Customer, error)
	// LockByID mengambil baris dengan SELECT ... FOR UPDATE; wajib dipanggil
	// di dalam Atomic.
	LockByID(id uint) (*models.Customer, error)
	Save(customer *models.Customer) error
}

type ShopRepository interface {
	FindByID(id uint) (*models.Shop, error)
	LockByID(id uint) (*models.Shop, error)
	Save(shop *models.Shop) error
}

type ProductRepository interface {
	// FindByID memuat produk beserta toko pemiliknya.
	FindByID(id uint) (*models.Product, error)
	LockByID(id uint) (*models.Product, error)
	Save(product *models.Product) error
}

type CartRepository interface {
	FindByID(id uint) (*models.Cart, error)
	Delete(id uint) error
}

type TransactionRepository interface {
	Create(transaction *models.Transaction) error
	FindByIDs(ids []uint) ([]models.Transaction, error)
	Save(transaction *models.Transaction) error
	ExistsByNumber(number string) (bool, error)
}

// WalletReportFilter adalah parameter query eksplisit utk riwayat wallet.
type WalletReportFilter struct {
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

type WalletReportRepository interface {
	Create(report *models.WalletReport) error
	FindByCustomer(customerID uint, filter WalletReportFilter) ([]models.WalletReport, error)
	FindByShop(shopID uint, filter WalletReportFilter) ([]models.WalletReport, error)
}
