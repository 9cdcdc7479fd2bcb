package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sewain-api/models"
)

// RentDuration adalah dekomposisi lama sewa: bulan (30 hari), minggu (7 hari),
// sisa hari. Hitungan hari inklusif, sewa 1 Jan s/d 1 Jan = 1 hari.
type RentDuration struct {
	Months int
	Weeks  int
	Days   int
}

func (d RentDuration) TotalDays() int {
	return d.Months*30 + d.Weeks*7 + d.Days
}

// String memformat durasi utk response, misal "1 Bulan 1 Minggu 3 Hari".
func (d RentDuration) String() string {
	var parts []string
	if d.Months > 0 {
		parts = append(parts, fmt.Sprintf("%d Bulan", d.Months))
	}
	if d.Weeks > 0 {
		parts = append(parts, fmt.Sprintf("%d Minggu", d.Weeks))
	}
	if d.Days > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d Hari", d.Days))
	}
	return strings.Join(parts, " ")
}

// CountRentDuration menghitung dekomposisi greedy bulan/minggu/hari dari
// rentang tanggal inklusif.
func CountRentDuration(startDate, endDate time.Time) RentDuration {
	days := int(endDate.Sub(startDate).Hours()/24) + 1

	months := days / 30
	days %= 30
	weeks := days / 7
	days %= 7

	return RentDuration{Months: months, Weeks: weeks, Days: days}
}

// CalculateRentPrice menghitung harga sewa bertingkat:
// bulan x harga bulanan + minggu x harga mingguan + hari x harga harian,
// dibulatkan ke rupiah terdekat. Harga TIDAK dikali quantity; hanya deposit
// yang mengikuti jumlah unit.
func CalculateRentPrice(product models.Product, startDate, endDate time.Time) (decimal.Decimal, RentDuration) {
	duration := CountRentDuration(startDate, endDate)

	total := product.MonthlyPrice.Mul(decimal.NewFromInt(int64(duration.Months))).
		Add(product.WeeklyPrice.Mul(decimal.NewFromInt(int64(duration.Weeks)))).
		Add(product.DailyPrice.Mul(decimal.NewFromInt(int64(duration.Days))))

	return total.Round(0), duration
}
