package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sewain-api/models"
)

type ShippingPartner struct {
	Name       string
	BasePrice  decimal.Decimal
	PricePerKg decimal.Decimal
}

// Tabel kurir tetap. Lookup pakai nama persis.
var shippingPartners = map[string]ShippingPartner{
	"JNE":      {Name: "JNE", BasePrice: decimal.NewFromInt(15000), PricePerKg: decimal.NewFromInt(2500)},
	"TIKI":     {Name: "TIKI", BasePrice: decimal.NewFromInt(12000), PricePerKg: decimal.NewFromInt(3000)},
	"SiCepat":  {Name: "SiCepat", BasePrice: decimal.NewFromInt(10000), PricePerKg: decimal.NewFromInt(2000)},
	"AnterAja": {Name: "AnterAja", BasePrice: decimal.NewFromInt(9000), PricePerKg: decimal.NewFromInt(2500)},
}

type ShippingEstimate struct {
	Partner       string
	Price         decimal.Decimal
	EstimatedDate time.Time
}

// ShippingPartnerNames mengembalikan daftar kurir yang didukung.
func ShippingPartnerNames() []string {
	names := make([]string, 0, len(shippingPartners))
	for name := range shippingPartners {
		names = append(names, name)
	}
	return names
}

// distanceFactor: satu kabupaten 1.0x, satu provinsi beda kabupaten 1.5x,
// beda provinsi 2.5x.
func distanceFactor(shop models.Shop, customer models.Customer) decimal.Decimal {
	sameRegency := strings.EqualFold(shop.Regency, customer.Regency) &&
		strings.EqualFold(shop.Province, customer.Province)
	if sameRegency {
		return decimal.NewFromFloat(1.0)
	}
	if strings.EqualFold(shop.Province, customer.Province) {
		return decimal.NewFromFloat(1.5)
	}
	return decimal.NewFromFloat(2.5)
}

// CalculateShipping menghitung ongkir satu grup toko:
// (harga dasar + harga per kg x berat total) x faktor jarak, dibulatkan ke
// rupiah. Estimasi sampai dihitung dari `now` (di-inject supaya testable).
func CalculateShipping(partnerName string, totalWeight decimal.Decimal, shop models.Shop, customer models.Customer, now time.Time) (*ShippingEstimate, error) {
	partner, ok := shippingPartners[partnerName]
	if !ok {
		return nil, NewShippingUnavailableError(partnerName)
	}

	factor := distanceFactor(shop, customer)
	price := partner.BasePrice.Add(partner.PricePerKg.Mul(totalWeight)).Mul(factor).Round(0)

	baseDays := 3
	switch {
	case factor.LessThanOrEqual(decimal.NewFromFloat(1.5)):
		baseDays = 1
	case factor.LessThanOrEqual(decimal.NewFromFloat(2.0)):
		baseDays = 2
	}

	return &ShippingEstimate{
		Partner:       partner.Name,
		Price:         price,
		EstimatedDate: now.AddDate(0, 0, baseDays),
	}, nil
}
