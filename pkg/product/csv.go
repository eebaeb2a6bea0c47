package product

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var requiredColumns = []string{`name`, `price`, `quantity`}

// ReadCSV loads products from the CSV file at path.
func ReadCSV(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(`%w: %s`, ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads products from r. The first record is the header; name,
// price and quantity are required, id, created_at and updated_at are
// optional. Rows without an id are numbered from 1 in file order.
func ParseCSV(r io.Reader) ([]Product, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf(`%w: empty file`, ErrMissingColumn)
		}
		return nil, err
	}
	columns := map[string]int{}
	for index, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		columns[name] = index
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf(`%w: %s`, ErrMissingColumn, name)
		}
	}
	var products []Product
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		p := Product{ID: int64(len(products) + 1)}
		for name, index := range columns {
			if index >= len(record) {
				continue
			}
			raw := record[index]
			if len(strings.TrimSpace(raw)) == 0 && name != `name` {
				continue
			}
			v := ParseValue(name, raw)
			if !v.Valid() {
				return nil, &RecordError{Line: line, Column: name, Raw: raw, Err: ErrInvalidValue}
			}
			switch name {
			case `id`:
				p.ID = v.Int64()
			case `name`:
				p.Name = v.String()
			case `price`:
				p.Price = v.Float64()
			case `quantity`:
				p.Quantity = v.Int64()
			case `created_at`:
				p.CreatedAt = v.Time()
			case `updated_at`:
				p.UpdatedAt = v.Time()
			}
		}
		products = append(products, p)
	}
	return products, nil
}
