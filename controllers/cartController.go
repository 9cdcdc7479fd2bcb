package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sewain-api/config"
	"sewain-api/models"
	"sewain-api/utils"
)

// GET /carts
func GetCarts(c *gin.Context) {
	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}

	var carts []models.Cart
	if err := config.DB.Preload("Product").Preload("Product.Shop").
		Where("customer_id = ?", *customerID).
		Find(&carts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, carts)
}

// POST /carts
func AddToCart(c *gin.Context) {
	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}

	var input struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	var product models.Product
	if err := config.DB.First(&product, input.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	// Produk yang sama menumpuk ke baris cart yang sudah ada.
	var cart models.Cart
	err := config.DB.Where("customer_id = ? AND product_id = ?", *customerID, input.ProductID).
		First(&cart).Error
	if err == nil {
		cart.Quantity += input.Quantity
	} else {
		cart = models.Cart{
			CustomerID: *customerID,
			ProductID:  input.ProductID,
			Quantity:   input.Quantity,
		}
	}

	if err := config.DB.Save(&cart).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cart)
}

// DELETE /carts/:id
func DeleteCart(c *gin.Context) {
	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}

	id := c.Param("id")
	var cart models.Cart
	if err := config.DB.First(&cart, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart tidak ditemukan"})
		return
	}
	if cart.CustomerID != *customerID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart tidak ditemukan"})
		return
	}

	if err := config.DB.Delete(&cart).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart dihapus"})
}
