package analyze

import (
	"github.com/admpub/log"

	"github.com/admpub/product-analyzer/pkg/product"
	"github.com/admpub/product-analyzer/pkg/storage"
)

// Report gathers everything the dashboard shows.
type Report struct {
	Stats            Stats             `json:"stats"`
	Products         []product.Product `json:"products"`
	RevenueByProduct []product.Product `json:"revenue_by_product"`
}

// Analyze reads the store once and aggregates it, delegating to the store
// when it implements storage.Analyzer.
func Analyze(store storage.Storager) (*Report, error) {
	products, err := store.List(0)
	if err != nil {
		return nil, err
	}
	report := &Report{Products: products}
	if an, ok := store.(storage.Analyzer); ok {
		if report.Stats, err = an.Stats(); err != nil {
			return nil, err
		}
		if report.RevenueByProduct, err = an.RevenueByProduct(); err != nil {
			return nil, err
		}
		log.Debugf(`aggregated %d products in storage`, report.Stats.TotalProducts)
		return report, nil
	}
	report.Stats = BasicStats(products)
	report.RevenueByProduct = RevenueByProduct(products)
	return report, nil
}

// Top returns the n largest products of store by field.
func Top(store storage.Storager, n int, by string) ([]product.Product, error) {
	if an, ok := store.(storage.Analyzer); ok {
		return an.TopBy(by, n)
	}
	products, err := store.List(0)
	if err != nil {
		return nil, err
	}
	return TopProducts(products, n, by)
}
