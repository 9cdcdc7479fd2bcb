package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sewain-api/config"
	"sewain-api/dtos"
	"sewain-api/models"
	"sewain-api/repositories"
	"sewain-api/services"
	"sewain-api/utils"
)

// POST /checkout
func Checkout(c *gin.Context) {
	var input dtos.CheckoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}
	input.CustomerID = *customerID

	service := services.NewCheckoutService(repositories.NewStore(config.DB))
	response, err := service.Checkout(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	go notifyCheckout(*customerID, response)

	c.JSON(http.StatusCreated, response)
}

func notifyCheckout(customerID uint, response *dtos.CheckoutResponse) {
	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil || customer.Phone == "" {
		return
	}

	var items []string
	for _, shop := range response.Shops {
		for _, item := range shop.RentedItems {
			if item.AvailableToRent {
				items = append(items, fmt.Sprintf("%s x%d (%s)", item.ProductName, item.Quantity, item.RentDuration))
			}
		}
	}
	if len(items) == 0 {
		return
	}

	message := utils.FormatCheckoutMessage(customer.Name, response.GrandTotalPayment, items)
	if err := utils.SendWhatsAppNotification(customer.Phone, message); err != nil {
		fmt.Println("Gagal kirim notifikasi WhatsApp:", err)
	}
}
