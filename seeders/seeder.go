package seeders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sewain-api/config"
	"sewain-api/models"
)

// helper untuk pointer string
func ptrString(s string) *string {
	return &s
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func Seed() {
	// ============= Seed Customers =============
	customers := []models.Customer{
		{Name: "Budi Santoso", Email: "budi@example.com", Phone: "6281234500001", Street: ptrString("Jl. Merdeka No. 1"), Regency: "Sleman", Province: "DI Yogyakarta", WalletAmount: dec(2000000)},
		{Name: "Siti Rahma", Email: "siti@example.com", Phone: "6281234500002", Street: ptrString("Jl. Malioboro No. 10"), Regency: "Kota Yogyakarta", Province: "DI Yogyakarta", WalletAmount: dec(500000)},
		{Name: "Andi Wijaya", Email: "andi@example.com", Phone: "6281234500003", Street: ptrString("Jl. Sudirman No. 99"), Regency: "Bandung", Province: "Jawa Barat", WalletAmount: dec(1000000)},
	}

	for _, customer := range customers {
		config.DB.FirstOrCreate(&customer, models.Customer{Email: customer.Email})
	}

	// ============= Seed Shops =============
	shops := []models.Shop{
		{Name: "Sewa Camp Jogja", Phone: "6285600000001", Regency: "Sleman", Province: "DI Yogyakarta"},
		{Name: "Kamera Kita", Phone: "6285600000002", Regency: "Kota Yogyakarta", Province: "DI Yogyakarta"},
		{Name: "Alat Pesta Bandung", Phone: "6285600000003", Regency: "Bandung", Province: "Jawa Barat"},
	}

	for _, shop := range shops {
		config.DB.FirstOrCreate(&shop, models.Shop{Name: shop.Name})
	}

	var allShops []models.Shop
	config.DB.Order("id").Find(&allShops)
	if len(allShops) < 3 {
		fmt.Println("Seeding toko gagal, produk dilewati")
		return
	}

	// ============= Seed Products =============
	products := []models.Product{
		{ShopID: allShops[0].ID, Name: "Tenda Dome 4 Orang", Description: ptrString("Tenda double layer, cocok musim hujan"), DailyPrice: dec(35000), WeeklyPrice: dec(200000), MonthlyPrice: dec(650000), Deposit: dec(100000), Weight: decimal.NewFromFloat(4.5), Stock: 12, MinRented: 1},
		{ShopID: allShops[0].ID, Name: "Carrier 60L", Description: ptrString("Tas gunung 60 liter"), DailyPrice: dec(25000), WeeklyPrice: dec(140000), MonthlyPrice: dec(450000), Deposit: dec(75000), Weight: decimal.NewFromFloat(2), Stock: 20, MinRented: 1},
		{ShopID: allShops[0].ID, Name: "Kompor Portable", Description: ptrString("Kompor lipat + gas"), DailyPrice: dec(15000), WeeklyPrice: dec(80000), MonthlyPrice: dec(250000), Deposit: dec(50000), Weight: decimal.NewFromFloat(1.2), Stock: 15, MinRented: 2},
		{ShopID: allShops[1].ID, Name: "Sony A7 III", Description: ptrString("Body only, 2 baterai"), DailyPrice: dec(250000), WeeklyPrice: dec(1500000), MonthlyPrice: dec(5000000), Deposit: dec(1000000), Weight: decimal.NewFromFloat(0.8), Stock: 3, MinRented: 1},
		{ShopID: allShops[1].ID, Name: "Lensa FE 24-70mm", Description: ptrString("Lensa zoom standar"), DailyPrice: dec(150000), WeeklyPrice: dec(900000), MonthlyPrice: dec(3000000), Deposit: dec(750000), Weight: decimal.NewFromFloat(0.9), Stock: 5, MinRented: 1},
		{ShopID: allShops[2].ID, Name: "Sound System 1000W", Description: ptrString("Paket speaker + mixer"), DailyPrice: dec(400000), WeeklyPrice: dec(2400000), MonthlyPrice: dec(8000000), Deposit: dec(2000000), Weight: decimal.NewFromFloat(45), Stock: 4, MinRented: 1},
		{ShopID: allShops[2].ID, Name: "Kursi Lipat", Description: ptrString("Kursi lipat chrome"), DailyPrice: dec(3000), WeeklyPrice: dec(17000), MonthlyPrice: dec(55000), Deposit: dec(5000), Weight: decimal.NewFromFloat(3.5), Stock: 200, MinRented: 10},
	}

	for _, product := range products {
		config.DB.FirstOrCreate(&product, models.Product{Name: product.Name})
	}

	// ============= Seed Reviews =============
	var allProducts []models.Product
	config.DB.Order("id").Find(&allProducts)
	var allCustomers []models.Customer
	config.DB.Order("id").Find(&allCustomers)

	if len(allProducts) > 0 && len(allCustomers) > 0 {
		reviews := []models.Review{
			{ProductID: allProducts[0].ID, CustomerID: allCustomers[0].ID, Rating: 5, Comment: ptrString("Tenda bersih, tidak bocor")},
			{ProductID: allProducts[0].ID, CustomerID: allCustomers[1].ID, Rating: 4, Comment: ptrString("Mantap, pemasangan gampang")},
			{ProductID: allProducts[3].ID, CustomerID: allCustomers[1].ID, Rating: 5, Comment: ptrString("Kamera mulus, baterai full")},
			{ProductID: allProducts[6].ID, CustomerID: allCustomers[2].ID, Rating: 3, Comment: ptrString("Beberapa kursi lecet")},
		}
		for _, review := range reviews {
			config.DB.FirstOrCreate(&review, models.Review{ProductID: review.ProductID, CustomerID: review.CustomerID})
		}
	}

	fmt.Println("✅ Seeding selesai! 3 customers + 3 shops + 7 products + reviews")
}
