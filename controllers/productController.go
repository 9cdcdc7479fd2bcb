package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"sewain-api/config"
	"sewain-api/models"
	"sewain-api/utils"
)

type productRating struct {
	ProductID   uint    `json:"-"`
	Average     float64 `json:"average"`
	ReviewCount int     `json:"review_count"`
	Weighted    float64 `json:"weighted"`
}

type productListItem struct {
	models.Product
	Rating productRating `json:"rating"`
}

// GET /public/products
// Daftar produk tersedia, diurutkan rating Bayesian tertinggi dulu.
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Preload("Shop").
		Where("status = ?", models.ProductAvailable).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type ratingRow struct {
		ProductID   uint
		Average     float64
		ReviewCount int
	}
	var rows []ratingRow
	if err := config.DB.Model(&models.Review{}).
		Select("product_id, AVG(rating) AS average, COUNT(*) AS review_count").
		Group("product_id").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ratings := map[uint]ratingRow{}
	var totalScore, totalCount float64
	for _, row := range rows {
		ratings[row.ProductID] = row
		totalScore += row.Average * float64(row.ReviewCount)
		totalCount += float64(row.ReviewCount)
	}
	globalAverage := 0.0
	if totalCount > 0 {
		globalAverage = totalScore / totalCount
	}

	items := make([]productListItem, len(products))
	for i, product := range products {
		row := ratings[product.ID]
		items[i] = productListItem{
			Product: product,
			Rating: productRating{
				ProductID:   product.ID,
				Average:     row.Average,
				ReviewCount: row.ReviewCount,
				Weighted:    utils.WeightedRating(row.Average, row.ReviewCount, globalAverage),
			},
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rating.Weighted > items[j].Rating.Weighted
	})

	c.JSON(http.StatusOK, items)
}

// GET /public/products/:id
func GetProductByID(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := config.DB.Preload("Shop").First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	var reviews []models.Review
	if err := config.DB.Where("product_id = ?", product.ID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "reviews": reviews})
}

type productInput struct {
	ShopID       uint            `json:"shop_id" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  *string         `json:"description,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	DailyPrice   decimal.Decimal `json:"daily_price"`
	WeeklyPrice  decimal.Decimal `json:"weekly_price"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	Deposit      decimal.Decimal `json:"deposit"`
	Weight       decimal.Decimal `json:"weight"`
	Stock        *int            `json:"stock"`
	MinRented    *int            `json:"min_rented"`
	Status       *string         `json:"status"`
}

// POST /products
func CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		ShopID:       input.ShopID,
		Name:         input.Name,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		DailyPrice:   input.DailyPrice,
		WeeklyPrice:  input.WeeklyPrice,
		MonthlyPrice: input.MonthlyPrice,
		Deposit:      input.Deposit,
		Weight:       input.Weight,
		Stock:        0,
		MinRented:    1,
		Status:       models.ProductAvailable,
	}
	if input.Stock != nil && *input.Stock >= 0 {
		product.Stock = *input.Stock
	}
	if input.MinRented != nil && *input.MinRented >= 1 {
		product.MinRented = *input.MinRented
	}
	if input.Status != nil {
		product.Status = *input.Status
	}

	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// PUT /products/:id
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product.Name = input.Name
	product.Description = input.Description
	product.ImageURL = input.ImageURL
	product.DailyPrice = input.DailyPrice
	product.WeeklyPrice = input.WeeklyPrice
	product.MonthlyPrice = input.MonthlyPrice
	product.Deposit = input.Deposit
	product.Weight = input.Weight
	if input.Stock != nil && *input.Stock >= 0 {
		product.Stock = *input.Stock
	}
	if input.MinRented != nil && *input.MinRented >= 1 {
		product.MinRented = *input.MinRented
	}
	if input.Status != nil {
		product.Status = *input.Status
	}

	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DELETE /products/:id
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus produk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produk dihapus"})
}
