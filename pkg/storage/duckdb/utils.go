package duckdb

import (
	"fmt"
	"strings"

	"github.com/admpub/product-analyzer/pkg/product"
)

func quoteString(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// importTable holds the raw CSV rows during ImportCSV. Its rowid follows file
// order.
const importTable = `products_import`

// importQuery builds the INSERT ... SELECT reading importTable. columns are
// the CSV header names; matching is case-insensitive. Empty cells become the
// same zero values product.ParseCSV leaves.
func importQuery(columns []string) (string, error) {
	found := map[string]string{}
	for _, column := range columns {
		found[strings.ToLower(strings.TrimSpace(column))] = quoteIdent(column)
	}
	for _, name := range []string{`name`, `price`, `quantity`} {
		if _, ok := found[name]; !ok {
			return ``, fmt.Errorf(`%w: %s`, product.ErrMissingColumn, name)
		}
	}
	id := `rowid + 1`
	if column, ok := found[`id`]; ok {
		id = `COALESCE(CAST(` + column + ` AS BIGINT), rowid + 1)`
	}
	optionalTime := func(name string) string {
		if column, ok := found[name]; ok {
			return `TRY_CAST(` + column + ` AS TIMESTAMP)`
		}
		return `NULL`
	}
	fields := []string{
		id,
		`COALESCE(CAST(` + found[`name`] + ` AS VARCHAR), '')`,
		`COALESCE(CAST(` + found[`price`] + ` AS DOUBLE), 0)`,
		`COALESCE(CAST(` + found[`quantity`] + ` AS BIGINT), 0)`,
		optionalTime(`created_at`),
		optionalTime(`updated_at`),
	}
	return `INSERT INTO products (id, name, price, quantity, created_at, updated_at) SELECT ` + strings.Join(fields, `, `) + ` FROM ` + importTable + ` ORDER BY rowid`, nil
}
