package storage

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/admpub/product-analyzer/pkg/product"
)

type Storager interface {
	Replace([]product.Product) error
	List(limit int) ([]product.Product, error)
	Close()
}

// Stats mirrors the dashboard's summary figures.
type Stats struct {
	TotalProducts int64   `json:"total_products" db:"total_products"`
	TotalQuantity int64   `json:"total_quantity" db:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue" db:"total_revenue"`
	AvgPrice      float64 `json:"avg_price" db:"avg_price"`
	AvgQuantity   float64 `json:"avg_quantity" db:"avg_quantity"`
}

// Analyzer is implemented by stores able to aggregate on their own.
type Analyzer interface {
	Stats() (Stats, error)
	TopBy(field string, limit int) ([]product.Product, error)
	RevenueByProduct() ([]product.Product, error)
}

// CSVImporter is implemented by stores with a native CSV reader.
type CSVImporter interface {
	ImportCSV(path string) (int64, error)
}

type Constructor func(*url.URL) (Storager, error)

var storagers = map[string]Constructor{}

func Register(name string, function Constructor) {
	storagers[name] = function
}

var (
	ErrUnsupported  = errors.New(`unsupported storage`)
	ErrUnknownField = errors.New(`unknown field`)
)

// SortFields are the fields TopBy accepts.
var SortFields = []string{`quantity`, `price`, `revenue`}

func ValidSortField(field string) bool {
	for _, f := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}

// New opens the store described by rawURL, e.g. memory://, duckdb://./data/
// or sqlite://./data/products.db. A bare name is treated as a scheme.
func New(rawURL string) (Storager, error) {
	if !strings.Contains(rawURL, `://`) {
		rawURL += `://`
	}
	settings, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	fn, ok := storagers[settings.Scheme]
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, ErrUnsupported, settings.Scheme)
	}
	return fn(settings)
}

// Path extracts the file path from a storage URL: the host and path joined
// (duckdb://./eee -> ./eee), or the path query parameter.
func Path(settings *url.URL) (string, error) {
	if settings == nil {
		return ``, nil
	}
	if len(settings.Path) > 0 {
		storagePath, err := url.PathUnescape(settings.Path)
		if err != nil {
			return ``, err
		}
		return settings.Host + storagePath, nil
	}
	if len(settings.Host) > 0 {
		return settings.Host, nil
	}
	return settings.Query().Get(`path`), nil
}
