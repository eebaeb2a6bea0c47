package storage

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/admpub/product-analyzer/pkg/product"
)

const TableName = `products`

// Row is the database form of product.Product.
type Row struct {
	ID        int64        `db:"id"`
	Name      string       `db:"name"`
	Price     float64      `db:"price"`
	Quantity  int64        `db:"quantity"`
	CreatedAt sql.NullTime `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func (r Row) Product() product.Product {
	p := product.Product{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Quantity: r.Quantity,
	}
	if r.CreatedAt.Valid {
		p.CreatedAt = r.CreatedAt.Time
	}
	if r.UpdatedAt.Valid {
		p.UpdatedAt = r.UpdatedAt.Time
	}
	return p
}

func nullTime(t interface{ IsZero() bool }) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// SQLStore implements Storager and Analyzer over any database/sql driver
// that accepts ? placeholders.
type SQLStore struct {
	DB *sqlx.DB
}

func (e *SQLStore) Replace(products []product.Product) error {
	tx, err := e.DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err = tx.Exec(`DELETE FROM ` + TableName); err != nil {
		return err
	}
	stmt, err := tx.Preparex(`INSERT INTO ` + TableName + ` (id, name, price, quantity, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range products {
		_, err = stmt.Exec(p.ID, p.Name, p.Price, p.Quantity, nullTime(p.CreatedAt), nullTime(p.UpdatedAt))
		if err != nil {
			return fmt.Errorf(`failed to insert %s: %w`, p, err)
		}
	}
	return tx.Commit()
}

func (e *SQLStore) selectProducts(query string, args ...any) ([]product.Product, error) {
	var rows []Row
	if err := e.DB.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	list := make([]product.Product, len(rows))
	for index, row := range rows {
		list[index] = row.Product()
	}
	return list, nil
}

const selectColumns = `SELECT id, name, price, quantity, created_at, updated_at FROM ` + TableName

func (e *SQLStore) List(limit int) ([]product.Product, error) {
	query := selectColumns + ` ORDER BY id ASC`
	if limit > 0 {
		query += ` LIMIT ` + strconv.Itoa(limit)
	}
	return e.selectProducts(query)
}

func (e *SQLStore) Stats() (Stats, error) {
	var stats Stats
	err := e.DB.Get(&stats, `SELECT
COUNT(*) AS total_products,
CAST(COALESCE(SUM(quantity), 0) AS BIGINT) AS total_quantity,
CAST(COALESCE(SUM(price * quantity), 0) AS DOUBLE) AS total_revenue,
CAST(COALESCE(AVG(price), 0) AS DOUBLE) AS avg_price,
CAST(COALESCE(AVG(quantity), 0) AS DOUBLE) AS avg_quantity
FROM `+TableName)
	return stats, err
}

var sortExpressions = map[string]string{
	`quantity`: `quantity`,
	`price`:    `price`,
	`revenue`:  `price * quantity`,
}

func (e *SQLStore) TopBy(field string, limit int) ([]product.Product, error) {
	expr, ok := sortExpressions[field]
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, ErrUnknownField, field)
	}
	return e.selectProducts(selectColumns + ` ORDER BY ` + expr + ` DESC, id ASC LIMIT ` + strconv.Itoa(limit))
}

func (e *SQLStore) RevenueByProduct() ([]product.Product, error) {
	return e.selectProducts(selectColumns + ` ORDER BY price * quantity DESC, id ASC`)
}

func (e *SQLStore) Close() {
	e.DB.Close()
}
