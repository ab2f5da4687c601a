package entities

import "time"

// Filament is a spool type tracked in inventory and priced per kilogram.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - PricePerKg is the purchase price for one kilogram of this filament.
//
// TotalQtyKg may legitimately be 0: costing only needs the price, not stock on
// hand. A zero quantity at product-creation time yields a warning, never an
// error.
type Filament struct {
	ID             string    `json:"id"`
	Color          string    `json:"color"`
	Brand          string    `json:"brand"`
	Material       string    `json:"material"`
	PricePerKg     float64   `json:"price_per_kg"`
	TotalQtyKg     float64   `json:"total_qty_kg"`
	MinFilamentsKg *float64  `json:"min_filaments_kg,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LowStock reports whether the on-hand quantity has fallen to or below the
// configured threshold. Filaments without a threshold are never low-stock.
func (f Filament) LowStock() bool {
	return f.MinFilamentsKg != nil && f.TotalQtyKg <= *f.MinFilamentsKg
}

// FilamentUsage is one consumption line: a product (or plate) uses GramsUsed
// grams of the referenced filament per printed unit.
type FilamentUsage struct {
	FilamentID string  `json:"filament_id"`
	GramsUsed  float64 `json:"grams_used"`
}
