package duckdb

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/admpub/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/webx-top/com"

	"github.com/admpub/product-analyzer/pkg/product"
	"github.com/admpub/product-analyzer/pkg/storage"
)

func init() {
	storage.Register(`duckdb`, newDuckDB)
}

// duckdb://
func newDuckDB(settings *url.URL) (storage.Storager, error) {
	storagePath, err := storage.Path(settings)
	if err != nil {
		return nil, err
	}
	if len(storagePath) > 0 {
		switch storagePath[len(storagePath)-1] {
		case '/', '\\':
			com.MkdirAll(storagePath, 0760)
			storagePath = filepath.Join(storagePath, `duck.db`)
		default:
			if com.IsDir(storagePath) {
				storagePath = filepath.Join(storagePath, `duck.db`)
			}
		}
		log.Debugf(`using duckdb database: %s`, storagePath)
	}
	db, err := sqlx.Open("duckdb", storagePath)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS ` + storage.TableName + ` (
id         BIGINT,
name       VARCHAR,
price      DOUBLE,
quantity   BIGINT,
created_at TIMESTAMP,
updated_at TIMESTAMP
);`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &storageDuckDB{SQLStore: storage.SQLStore{DB: db}}, nil
}

type storageDuckDB struct {
	storage.SQLStore
}

// ImportCSV replaces the table content with the CSV file at path, read by
// DuckDB's own CSV sniffer.
func (e *storageDuckDB) ImportCSV(path string) (int64, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, errors.Join(product.ErrFileNotFound, err)
		}
		return 0, err
	}
	source := `read_csv_auto(` + quoteString(path) + `, header = true)`
	columns, err := e.csvColumns(source)
	if err != nil {
		return 0, err
	}
	query, err := importQuery(columns)
	if err != nil {
		return 0, err
	}
	tx, err := e.DB.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	if _, err = tx.Exec(`CREATE OR REPLACE TEMP TABLE ` + importTable + ` AS SELECT * FROM ` + source); err != nil {
		return 0, err
	}
	if _, err = tx.Exec(`DELETE FROM ` + storage.TableName); err != nil {
		return 0, err
	}
	var res sql.Result
	res, err = tx.Exec(query)
	if err != nil {
		return 0, err
	}
	var badID sql.NullInt64
	err = tx.Get(&badID, `SELECT min(id) FROM `+storage.TableName+` WHERE NOT isfinite(price)`)
	if err != nil {
		return 0, err
	}
	if badID.Valid {
		return 0, fmt.Errorf(`%w: non-finite price in product %d`, product.ErrInvalidValue, badID.Int64)
	}
	if _, err = tx.Exec(`DROP TABLE ` + importTable); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (e *storageDuckDB) csvColumns(source string) ([]string, error) {
	r, err := e.DB.Query(`SELECT * FROM ` + source + ` LIMIT 0`)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Columns()
}
