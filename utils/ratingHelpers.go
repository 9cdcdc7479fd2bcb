package utils

// WeightedRating menghitung rating Bayesian: rata-rata produk dibaurkan
// dengan rata-rata global memakai bobot prior. Produk dengan sedikit review
// tertarik ke rata-rata global supaya tidak mendominasi ranking.
//
//	(v*R + m*C) / (v + m)
//
// v = jumlah review produk, R = rata-rata produk,
// m = bobot prior, C = rata-rata global.
const ratingPriorWeight = 5.0

func WeightedRating(productAverage float64, reviewCount int, globalAverage float64) float64 {
	v := float64(reviewCount)
	if v == 0 {
		return globalAverage
	}
	return (v*productAverage + ratingPriorWeight*globalAverage) / (v + ratingPriorWeight)
}
