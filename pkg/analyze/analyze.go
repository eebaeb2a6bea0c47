package analyze

import (
	"fmt"
	"sort"
	"time"

	"github.com/admpub/product-analyzer/pkg/chart"
	"github.com/admpub/product-analyzer/pkg/product"
	"github.com/admpub/product-analyzer/pkg/storage"
)

type Stats = storage.Stats

// BasicStats computes the dashboard summary figures.
func BasicStats(products []product.Product) Stats {
	var stats Stats
	var totalPrice float64
	for _, p := range products {
		stats.TotalQuantity += p.Quantity
		stats.TotalRevenue += p.Revenue()
		totalPrice += p.Price
	}
	stats.TotalProducts = int64(len(products))
	if stats.TotalProducts > 0 {
		stats.AvgPrice = totalPrice / float64(stats.TotalProducts)
		stats.AvgQuantity = float64(stats.TotalQuantity) / float64(stats.TotalProducts)
	}
	return stats
}

// ProductData returns the names, quantities and prices in product order.
func ProductData(products []product.Product) (labels []string, quantities []float64, prices []float64) {
	labels = make([]string, len(products))
	quantities = make([]float64, len(products))
	prices = make([]float64, len(products))
	for index, p := range products {
		labels[index] = p.Name
		quantities[index] = float64(p.Quantity)
		prices[index] = p.Price
	}
	return
}

// BarInput is the binder input of the dashboard: names against quantities.
func BarInput(products []product.Product) chart.Input {
	labels, quantities, _ := ProductData(products)
	return chart.Input{Labels: labels, Values: quantities}
}

func Revenues(products []product.Product) []float64 {
	revenues := make([]float64, len(products))
	for index, p := range products {
		revenues[index] = p.Revenue()
	}
	return revenues
}

// RevenueByProduct returns a copy of products sorted by revenue, highest
// first. Ties keep their original order.
func RevenueByProduct(products []product.Product) []product.Product {
	return sortedBy(products, product.Product.Revenue)
}

var sortKeys = map[string]func(product.Product) float64{
	`quantity`: func(p product.Product) float64 { return float64(p.Quantity) },
	`price`:    func(p product.Product) float64 { return p.Price },
	`revenue`:  product.Product.Revenue,
}

// TopProducts returns the n largest products by quantity, price or revenue.
func TopProducts(products []product.Product, n int, by string) ([]product.Product, error) {
	key, ok := sortKeys[by]
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, storage.ErrUnknownField, by)
	}
	sorted := sortedBy(products, key)
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

func sortedBy(products []product.Product, key func(product.Product) float64) []product.Product {
	sorted := make([]product.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})
	return sorted
}

// CreatedByDay counts products per creation day (time.DateOnly) and returns
// the earliest and latest days seen.
func CreatedByDay(products []product.Product) (counts map[string]int64, first time.Time, last time.Time) {
	counts = map[string]int64{}
	for _, p := range products {
		if p.CreatedAt.IsZero() {
			continue
		}
		counts[p.CreatedAt.Format(time.DateOnly)]++
		if first.IsZero() || p.CreatedAt.Before(first) {
			first = p.CreatedAt
		}
		if p.CreatedAt.After(last) {
			last = p.CreatedAt
		}
	}
	return
}
