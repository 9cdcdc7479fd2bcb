package routes

import (
	"sewain-api/controllers"
	"sewain-api/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	// Public products buat landing page
	r.GET("/public/products", controllers.GetProducts)
	r.GET("/public/products/:id", controllers.GetProductByID)

	// Products (pemilik toko kelola inventaris)
	products := r.Group("/products")
	products.Use(middlewares.AuthMiddleware())
	{
		products.GET("/", controllers.GetProducts)
		products.GET("/:id", controllers.GetProductByID)
		products.POST("/", middlewares.RoleMiddleware("shop", "admin"), controllers.CreateProduct)
		products.PUT("/:id", middlewares.RoleMiddleware("shop", "admin"), controllers.UpdateProduct)
		products.DELETE("/:id", middlewares.RoleMiddleware("shop", "admin"), controllers.DeleteProduct)
	}

	// Carts
	carts := r.Group("/carts")
	carts.Use(middlewares.AuthMiddleware())
	{
		carts.GET("/", controllers.GetCarts)
		carts.POST("/", controllers.AddToCart)
		carts.DELETE("/:id", controllers.DeleteCart)
	}

	// Checkout & pembayaran
	checkout := r.Group("/")
	checkout.Use(middlewares.AuthMiddleware())
	{
		checkout.POST("/checkout", controllers.Checkout)
		checkout.POST("/payments", controllers.ProcessPayment)
	}

	// Transactions
	transactions := r.Group("/transactions")
	transactions.Use(middlewares.AuthMiddleware())
	{
		transactions.GET("/", controllers.GetTransactions)
		transactions.GET("/history", controllers.GetTransactionHistory)
		transactions.GET("/:id", controllers.GetTransactionByID)
	}

	// Wallet
	wallet := r.Group("/wallet")
	wallet.Use(middlewares.AuthMiddleware())
	{
		wallet.GET("/", controllers.GetWalletBalance)
		wallet.GET("/history", controllers.GetWalletHistory)
	}

	// Shop (laporan wallet + dashboard pemilik toko)
	shops := r.Group("/shops")
	shops.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("shop", "admin"))
	{
		shops.GET("/:id/wallet-report", controllers.GetShopWalletReport)
		shops.GET("/:id/dashboard", controllers.GetShopDashboard)
	}
}
