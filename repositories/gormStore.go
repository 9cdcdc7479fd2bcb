package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sewain-api/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore membungkus koneksi gorm menjadi Datastore.
func NewStore(db *gorm.DB) Datastore {
	return &gormStore{db: db}
}

func (s *gormStore) Atomic(fn func(Datastore) error) error {
	// gorm otomatis memakai SAVEPOINT utk transaksi bersarang.
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) Customers() CustomerRepository         { return &customerRepo{db: s.db} }
func (s *gormStore) Shops() ShopRepository                 { return &shopRepo{db: s.db} }
func (s *gormStore) Products() ProductRepository           { return &productRepo{db: s.db} }
func (s *gormStore) Carts() CartRepository                 { return &cartRepo{db: s.db} }
func (s *gormStore) Transactions() TransactionRepository   { return &transactionRepo{db: s.db} }
func (s *gormStore) WalletReports() WalletReportRepository { return &walletReportRepo{db: s.db} }

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

type customerRepo struct{ db *gorm.DB }

func (r *customerRepo) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

func (r *customerRepo) LockByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&customer, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

func (r *customerRepo) Save(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

type shopRepo struct{ db *gorm.DB }

func (r *shopRepo) FindByID(id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.First(&shop, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &shop, nil
}

func (r *shopRepo) LockByID(id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&shop, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &shop, nil
}

func (r *shopRepo) Save(shop *models.Shop) error {
	return r.db.Save(shop).Error
}

type productRepo struct{ db *gorm.DB }

func (r *productRepo) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Shop").First(&product, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (r *productRepo) LockByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (r *productRepo) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

type cartRepo struct{ db *gorm.DB }

func (r *cartRepo) FindByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Product").Preload("Product.Shop").First(&cart, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &cart, nil
}

func (r *cartRepo) Delete(id uint) error {
	return r.db.Delete(&models.Cart{}, id).Error
}

type transactionRepo struct{ db *gorm.DB }

func (r *transactionRepo) Create(transaction *models.Transaction) error {
	return r.db.Create(transaction).Error
}

func (r *transactionRepo) FindByIDs(ids []uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Product").Preload("Product.Shop").
		Where("id IN ?", ids).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepo) Save(transaction *models.Transaction) error {
	return r.db.Save(transaction).Error
}

func (r *transactionRepo) ExistsByNumber(number string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("transaction_number = ?", number).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type walletReportRepo struct{ db *gorm.DB }

func (r *walletReportRepo) Create(report *models.WalletReport) error {
	return r.db.Create(report).Error
}

func (r *walletReportRepo) findWithFilter(query *gorm.DB, filter WalletReportFilter) ([]models.WalletReport, error) {
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at < ?", *filter.DateTo)
	}
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var reports []models.WalletReport
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *walletReportRepo) FindByCustomer(customerID uint, filter WalletReportFilter) ([]models.WalletReport, error) {
	return r.findWithFilter(r.db.Where("customer_id = ?", customerID), filter)
}

func (r *walletReportRepo) FindByShop(shopID uint, filter WalletReportFilter) ([]models.WalletReport, error) {
	return r.findWithFilter(r.db.Where("shop_id = ?", shopID), filter)
}
