package response

import (
	"time"

	"printfarm_ops/internal/domain/entities"
)

type FilamentResponse struct {
	ID             string    `json:"id"`
	Color          string    `json:"color"`
	Brand          string    `json:"brand"`
	Material       string    `json:"material"`
	PricePerKg     float64   `json:"price_per_kg"`
	TotalQtyKg     float64   `json:"total_qty_kg"`
	MinFilamentsKg *float64  `json:"min_filaments_kg,omitempty"`
	LowStock       bool      `json:"low_stock"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromFilament(f entities.Filament) FilamentResponse {
	return FilamentResponse{
		ID:             f.ID,
		Color:          f.Color,
		Brand:          f.Brand,
		Material:       f.Material,
		PricePerKg:     f.PricePerKg,
		TotalQtyKg:     f.TotalQtyKg,
		MinFilamentsKg: f.MinFilamentsKg,
		LowStock:       f.LowStock(),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func FromFilaments(fs []entities.Filament) []FilamentResponse {
	out := make([]FilamentResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, FromFilament(f))
	}
	return out
}
