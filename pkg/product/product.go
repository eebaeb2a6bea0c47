package product

import (
	"encoding/json"
	"time"
)

// Product is one inventory row.
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Quantity  int64     `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (p Product) Revenue() float64 {
	return p.Price * float64(p.Quantity)
}

func (p Product) String() string {
	return `<Product ` + p.Name + `>`
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.AsMap())
}

func (p Product) AsMap() map[string]any {
	return map[string]any{
		`id`:         p.ID,
		`name`:       p.Name,
		`price`:      p.Price,
		`quantity`:   p.Quantity,
		`revenue`:    p.Revenue(),
		`created_at`: isoTime(p.CreatedAt),
		`updated_at`: isoTime(p.UpdatedAt),
	}
}

func isoTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}
