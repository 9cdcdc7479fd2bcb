package services

import (
	"sewain-api/models"
	"sewain-api/repositories"
)

// memStore adalah Datastore in-memory untuk test service. Atomic meniru
// semantik transaksi database lewat snapshot/restore, termasuk savepoint
// untuk panggilan bersarang.
type memStore struct {
	customers     map[uint]models.Customer
	shops         map[uint]models.Shop
	products      map[uint]models.Product
	carts         map[uint]models.Cart
	transactions  map[uint]models.Transaction
	walletReports []models.WalletReport

	nextTransactionID uint
}

func newMemStore() *memStore {
	return &memStore{
		customers:    map[uint]models.Customer{},
		shops:        map[uint]models.Shop{},
		products:     map[uint]models.Product{},
		carts:        map[uint]models.Cart{},
		transactions: map[uint]models.Transaction{},

		nextTransactionID: 1,
	}
}

type memSnapshot struct {
	customers     map[uint]models.Customer
	shops         map[uint]models.Shop
	products      map[uint]models.Product
	carts         map[uint]models.Cart
	transactions  map[uint]models.Transaction
	walletReports []models.WalletReport

	nextTransactionID uint
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		customers:         copyMap(s.customers),
		shops:             copyMap(s.shops),
		products:          copyMap(s.products),
		carts:             copyMap(s.carts),
		transactions:      copyMap(s.transactions),
		walletReports:     append([]models.WalletReport(nil), s.walletReports...),
		nextTransactionID: s.nextTransactionID,
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.customers = snap.customers
	s.shops = snap.shops
	s.products = snap.products
	s.carts = snap.carts
	s.transactions = snap.transactions
	s.walletReports = snap.walletReports
	s.nextTransactionID = snap.nextTransactionID
}

func (s *memStore) Atomic(fn func(repositories.Datastore) error) error {
	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) Customers() repositories.CustomerRepository         { return memCustomers{s} }
func (s *memStore) Shops() repositories.ShopRepository                 { return memShops{s} }
func (s *memStore) Products() repositories.ProductRepository           { return memProducts{s} }
func (s *memStore) Carts() repositories.CartRepository                 { return memCarts{s} }
func (s *memStore) Transactions() repositories.TransactionRepository   { return memTransactions{s} }
func (s *memStore) WalletReports() repositories.WalletReportRepository { return memWalletReports{s} }

type memCustomers struct{ s *memStore }

func (r memCustomers) FindByID(id uint) (*models.Customer, error) {
	customer, ok := r.s.customers[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return &customer, nil
}

func (r memCustomers) LockByID(id uint) (*models.Customer, error) {
	return r.FindByID(id)
}

func (r memCustomers) Save(customer *models.Customer) error {
	r.s.customers[customer.ID] = *customer
	return nil
}

type memShops struct{ s *memStore }

func (r memShops) FindByID(id uint) (*models.Shop, error) {
	shop, ok := r.s.shops[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return &shop, nil
}

func (r memShops) LockByID(id uint) (*models.Shop, error) {
	return r.FindByID(id)
}

func (r memShops) Save(shop *models.Shop) error {
	r.s.shops[shop.ID] = *shop
	return nil
}

type memProducts struct{ s *memStore }

func (r memProducts) FindByID(id uint) (*models.Product, error) {
	product, ok := r.s.products[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	product.Shop = r.s.shops[product.ShopID]
	return &product, nil
}

func (r memProducts) LockByID(id uint) (*models.Product, error) {
	return r.FindByID(id)
}

func (r memProducts) Save(product *models.Product) error {
	saved := *product
	saved.Shop = models.Shop{}
	saved.ShopID = product.ShopID
	r.s.products[product.ID] = saved
	return nil
}

type memCarts struct{ s *memStore }

func (r memCarts) FindByID(id uint) (*models.Cart, error) {
	cart, ok := r.s.carts[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	product := r.s.products[cart.ProductID]
	product.Shop = r.s.shops[product.ShopID]
	cart.Product = product
	return &cart, nil
}

func (r memCarts) Delete(id uint) error {
	delete(r.s.carts, id)
	return nil
}

type memTransactions struct{ s *memStore }

func (r memTransactions) Create(transaction *models.Transaction) error {
	if transaction.ID == 0 {
		transaction.ID = r.s.nextTransactionID
		r.s.nextTransactionID++
	}
	saved := *transaction
	saved.Product = models.Product{}
	r.s.transactions[transaction.ID] = saved
	return nil
}

func (r memTransactions) FindByIDs(ids []uint) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, id := range ids {
		transaction, ok := r.s.transactions[id]
		if !ok {
			continue
		}
		product := r.s.products[transaction.ProductID]
		product.Shop = r.s.shops[product.ShopID]
		transaction.Product = product
		out = append(out, transaction)
	}
	return out, nil
}

func (r memTransactions) Save(transaction *models.Transaction) error {
	saved := *transaction
	saved.Product = models.Product{}
	r.s.transactions[transaction.ID] = saved
	return nil
}

func (r memTransactions) ExistsByNumber(number string) (bool, error) {
	for _, transaction := range r.s.transactions {
		if transaction.TransactionNumber == number {
			return true, nil
		}
	}
	return false, nil
}

type memWalletReports struct{ s *memStore }

func (r memWalletReports) Create(report *models.WalletReport) error {
	report.ID = uint(len(r.s.walletReports) + 1)
	r.s.walletReports = append(r.s.walletReports, *report)
	return nil
}

func (r memWalletReports) find(match func(models.WalletReport) bool, filter repositories.WalletReportFilter) ([]models.WalletReport, error) {
	var out []models.WalletReport
	for _, report := range r.s.walletReports {
		if !match(report) {
			continue
		}
		if filter.Type != "" && report.Type != filter.Type {
			continue
		}
		if filter.DateFrom != nil && report.CreatedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && !report.CreatedAt.Before(*filter.DateTo) {
			continue
		}
		out = append(out, report)
	}
	return out, nil
}

func (r memWalletReports) FindByCustomer(customerID uint, filter repositories.WalletReportFilter) ([]models.WalletReport, error) {
	return r.find(func(report models.WalletReport) bool {
		return report.CustomerID != nil && *report.CustomerID == customerID
	}, filter)
}

func (r memWalletReports) FindByShop(shopID uint, filter repositories.WalletReportFilter) ([]models.WalletReport, error) {
	return r.find(func(report models.WalletReport) bool {
		return report.ShopID != nil && *report.ShopID == shopID
	}, filter)
}
