package dtos

import "github.com/shopspring/decimal"

// Format tanggal request: "2006-01-02". Validasi bentuk dilakukan di
// service supaya pesan error per field konsisten.
type CheckoutItemInput struct {
	ProductID *uint  `json:"product_id,omitempty"`
	CartID    *uint  `json:"cart_id,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerID      uint                `json:"customer_id"`
	ShippingPartner string              `json:"shipping_partner" binding:"required"`
	Items           []CheckoutItemInput `json:"items" binding:"required,min=1"`
}

type RentedItemResponse struct {
	TransactionID   uint            `json:"transaction_id,omitempty"`
	ProductID       uint            `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Price           decimal.Decimal `json:"price"`
	StartRentDate   string          `json:"start_rent_date"`
	EndRentDate     string          `json:"end_rent_date"`
	RentDuration    string          `json:"rent_duration"`
	Quantity        int             `json:"quantity"`
	AvailableToRent bool            `json:"available_to_rent"`
	Message         string          `json:"message,omitempty"`
}

type CheckoutShopResponse struct {
	ShopID             uint                 `json:"shop_id"`
	ShopName           string               `json:"shop_name"`
	RentedItems        []RentedItemResponse `json:"rented_items"`
	Deposit            decimal.Decimal      `json:"deposit"`
	ShippingPartner    string               `json:"shipping_partner,omitempty"`
	ShippingPrice      decimal.Decimal      `json:"shipping_price"`
	EstimatedDelivery  string               `json:"estimated_delivery,omitempty"`
	TotalRentedProduct decimal.Decimal      `json:"total_rented_product"`
	TotalPrice         decimal.Decimal      `json:"total_price"`
}

type CheckoutResponse struct {
	TransactionNumber    string                 `json:"transaction_number"`
	Shops                []CheckoutShopResponse `json:"shops"`
	SubTotalProductPrice decimal.Decimal        `json:"sub_total_product_price"`
	SubTotalShippingCost decimal.Decimal        `json:"sub_total_shipping_cost"`
	SubTotalDeposit      decimal.Decimal        `json:"sub_total_deposit"`
	ServiceFee           decimal.Decimal        `json:"service_fee"`
	GrandTotalPayment    decimal.Decimal        `json:"grand_total_payment"`
}
