package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"sewain-api/config"
	"sewain-api/models"
)

type TopProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

// GET /shops/:id/dashboard
// Ringkasan harian utk pemilik toko: pendapatan settle hari ini, transaksi
// pending, stok menipis, produk paling laku.
func GetShopDashboard(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id toko tidak valid"})
		return
	}

	var shop models.Shop
	if err := config.DB.First(&shop, shopID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toko tidak ditemukan"})
		return
	}

	today := time.Now().Format("2006-01-02")

	// Pendapatan hari ini dari ledger CREDIT toko
	var todayReports []models.WalletReport
	config.DB.Where("shop_id = ? AND type = ? AND DATE(created_at) = ?",
		shop.ID, models.WalletReportCredit, today).
		Find(&todayReports)

	todayIncome := decimal.Zero
	for _, report := range todayReports {
		todayIncome = todayIncome.Add(report.Amount)
	}

	// Transaksi pending yang menunggu pembayaran
	var pendingTransactions int64
	config.DB.Model(&models.Transaction{}).
		Joins("JOIN products ON products.id = transactions.product_id").
		Where("products.shop_id = ? AND transactions.status = ?", shop.ID, models.TransactionPending).
		Count(&pendingTransactions)

	// Low stock count (<5)
	var lowStock int64
	config.DB.Model(&models.Product{}).
		Where("shop_id = ? AND stock < ?", shop.ID, 5).
		Count(&lowStock)

	// Produk paling banyak disewa (top 5)
	var topProducts []TopProduct
	config.DB.Model(&models.Transaction{}).
		Select("product_id, SUM(quantity) as quantity").
		Joins("JOIN products ON products.id = transactions.product_id").
		Where("products.shop_id = ? AND transactions.status = ?", shop.ID, models.TransactionProcessed).
		Group("product_id").
		Order("quantity desc").
		Limit(5).
		Scan(&topProducts)

	for i, tp := range topProducts {
		var product models.Product
		if err := config.DB.First(&product, tp.ProductID).Error; err == nil {
			topProducts[i].Name = product.Name
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"shop_id":              shop.ID,
		"shop_name":            shop.Name,
		"balance":              shop.Balance,
		"today_income":         todayIncome,
		"pending_transactions": pendingTransactions,
		"low_stock":            lowStock,
		"top_rented_products":  topProducts,
	})
}
