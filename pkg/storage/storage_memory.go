package storage

import (
	"net/url"
	"sort"
	"sync"

	"github.com/admpub/product-analyzer/pkg/product"
)

func init() {
	Register(`memory`, func(_ *url.URL) (Storager, error) { return &storageMemory{}, nil })
}

type storageMemory struct {
	mu       sync.RWMutex
	products []product.Product
}

func (e *storageMemory) Replace(products []product.Product) error {
	copied := make([]product.Product, len(products))
	copy(copied, products)
	// same order as the SQL stores: by id, file order on ties
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].ID < copied[j].ID
	})
	e.mu.Lock()
	e.products = copied
	e.mu.Unlock()
	return nil
}

func (e *storageMemory) List(limit int) ([]product.Product, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	n := len(e.products)
	if limit > 0 && limit < n {
		n = limit
	}
	list := make([]product.Product, n)
	copy(list, e.products)
	return list, nil
}

func (e *storageMemory) Close() {
}
