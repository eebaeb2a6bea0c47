package sqlite

import (
	"net/url"
	"path/filepath"

	"github.com/admpub/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/webx-top/com"

	"github.com/admpub/product-analyzer/pkg/storage"
)

func init() {
	storage.Register(`sqlite`, newSQLite)
}

// sqlite://./data/products.db, sqlite:// for an in-memory database
func newSQLite(settings *url.URL) (storage.Storager, error) {
	storagePath, err := storage.Path(settings)
	if err != nil {
		return nil, err
	}
	inMemory := len(storagePath) == 0 || storagePath == `:memory:`
	if inMemory {
		storagePath = `:memory:`
	} else {
		if com.IsDir(storagePath) {
			storagePath = filepath.Join(storagePath, `products.db`)
		} else {
			com.MkdirAll(filepath.Dir(storagePath), 0760)
		}
		log.Debugf(`using sqlite database: %s`, storagePath)
	}
	db, err := sqlx.Open("sqlite3", storagePath)
	if err != nil {
		return nil, err
	}
	if inMemory {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS ` + storage.TableName + ` (
id         INTEGER PRIMARY KEY,
name       VARCHAR(200) NOT NULL,
price      REAL NOT NULL,
quantity   INTEGER NOT NULL DEFAULT 0,
created_at TIMESTAMP,
updated_at TIMESTAMP
);`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &storageSQLite{SQLStore: storage.SQLStore{DB: db}}, nil
}

type storageSQLite struct {
	storage.SQLStore
}
