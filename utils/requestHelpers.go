package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if role == nil {
		return ""
	}
	return role.(string)
}

// GetCustomerID membaca identitas customer yang dipasang auth middleware.
func GetCustomerID(c *gin.Context) *uint {
	value, exists := c.Get("customer_id")
	if !exists {
		return nil
	}
	switch v := value.(type) {
	case uint:
		return &v
	case float64:
		id := uint(v)
		return &id
	}
	return nil
}

// RespondError memetakan AppError ke status + body JSON terstruktur;
// error lain menjadi 500 generik.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "terjadi kesalahan internal"})
}
