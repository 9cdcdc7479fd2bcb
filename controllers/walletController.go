package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sewain-api/config"
	"sewain-api/dtos"
	"sewain-api/repositories"
	"sewain-api/services"
	"sewain-api/utils"
)

// GET /wallet
func GetWalletBalance(c *gin.Context) {
	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}

	service := services.NewWalletService(repositories.NewStore(config.DB))
	response, err := service.GetBalance(*customerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GET /wallet/history?type=DEBIT&date_from=2024-01-01&date_to=2024-01-31&page=1&limit=20
func GetWalletHistory(c *gin.Context) {
	customerID := utils.GetCustomerID(c)
	if customerID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "customer tidak dikenali"})
		return
	}

	var filter dtos.WalletHistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewWalletService(repositories.NewStore(config.DB))
	response, err := service.GetHistory(*customerID, filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GET /shops/:id/wallet-report
func GetShopWalletReport(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id toko tidak valid"})
		return
	}

	var filter dtos.WalletHistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewWalletService(repositories.NewStore(config.DB))
	response, err := service.GetShopReport(uint(shopID), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
