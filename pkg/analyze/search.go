package analyze

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/admpub/product-analyzer/pkg/product"
)

const DefaultMinSimilarity = 0.7

var jaroWinkler = func() *metrics.JaroWinkler {
	m := metrics.NewJaroWinkler()
	m.CaseSensitive = false
	return m
}()

type Match struct {
	Product    product.Product `json:"product"`
	Similarity float64         `json:"similarity"`
}

// Search returns the products whose name resembles query, best match first.
// A name containing query always matches.
func Search(products []product.Product, query string, minSimilarity float64) []Match {
	query = strings.TrimSpace(query)
	if len(query) == 0 {
		return nil
	}
	lowerQuery := strings.ToLower(query)
	var matches []Match
	for _, p := range products {
		var similarity float64
		if strings.Contains(strings.ToLower(p.Name), lowerQuery) {
			similarity = 1
		} else {
			similarity = strutil.Similarity(p.Name, query, jaroWinkler)
		}
		if similarity >= minSimilarity {
			matches = append(matches, Match{Product: p, Similarity: similarity})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}
