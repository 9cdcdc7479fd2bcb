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

// POST /payments
func ProcessPayment(c *gin.Context) {
	var input dtos.PaymentRequest
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

	service := services.NewPaymentService(repositories.NewStore(config.DB))
	response, err := service.ProcessPayment(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(response.SucceededTransactions) > 0 {
		go notifyPayment(*customerID, response)
	}

	// Status transport mengikuti hasil: semua sukses, sebagian, atau gagal.
	status := http.StatusOK
	switch response.PaymentStatus {
	case dtos.PaymentStatusPartial:
		status = http.StatusMultiStatus
	case dtos.PaymentStatusFailed:
		status = http.StatusBadRequest
	}

	c.JSON(status, response)
}

func notifyPayment(customerID uint, response *dtos.PaymentResponse) {
	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil || customer.Phone == "" {
		return
	}

	seen := map[string]bool{}
	var numbers []string
	for _, result := range response.SucceededTransactions {
		if !seen[result.TransactionNumber] {
			seen[result.TransactionNumber] = true
			numbers = append(numbers, result.TransactionNumber)
		}
	}

	message := utils.FormatPaymentMessage(customer.Name, response.PaymentStatus, response.TotalPaid, numbers)
	if err := utils.SendWhatsAppNotification(customer.Phone, message); err != nil {
		fmt.Println("Gagal kirim notifikasi WhatsApp:", err)
	}
}
