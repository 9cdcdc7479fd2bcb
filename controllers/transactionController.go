package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sewain-api/config"
	"sewain-api/models"
	"sewain-api/utils"
)

// GET /transactions?status=PENDING
func GetTransactions(c *gin.Context) {
	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}

	query := config.DB.Preload("Product").Preload("Product.Shop").
		Where("customer_id = ?", *customerID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var transactions []models.Transaction
	if err := query.Order("created_at DESC").Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GET /transactions/:id
func GetTransactionByID(c *gin.Context) {
	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}

	id := c.Param("id")
	var transaction models.Transaction
	if err := config.DB.Preload("Product").Preload("Product.Shop").
		First(&transaction, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaksi tidak ditemukan"})
		return
	}
	if transaction.CustomerID != *customerID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaksi tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// GET /transactions/history
// Hanya transaksi yang sudah selesai diproses (dibayar atau dibatalkan).
func GetTransactionHistory(c *gin.Context) {
	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Preload("Product").Preload("Product.Shop").
		Where("customer_id = ?", *customerID).
		Where("status IN ?", []string{models.TransactionProcessed, models.TransactionCancelled}).
		Order("last_update_at DESC").
		Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}
