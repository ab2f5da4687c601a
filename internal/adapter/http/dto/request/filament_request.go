package request

import (
	"strings"

	"printfarm_ops/internal/domain/entities"
)

// FilamentRequest is the create/update payload for a filament spool type.
type FilamentRequest struct {
	Color          string   `json:"color" binding:"required"`
	Brand          string   `json:"brand" binding:"required"`
	Material       string   `json:"material" binding:"required"`
	PricePerKg     float64  `json:"price_per_kg" binding:"required"`
	TotalQtyKg     float64  `json:"total_qty_kg"`
	MinFilamentsKg *float64 `json:"min_filaments_kg"`
}

func (r FilamentRequest) ToEntity() entities.Filament {
	return entities.Filament{
		Color:          strings.TrimSpace(r.Color),
		Brand:          strings.TrimSpace(r.Brand),
		Material:       strings.TrimSpace(r.Material),
		PricePerKg:     r.PricePerKg,
		TotalQtyKg:     r.TotalQtyKg,
		MinFilamentsKg: r.MinFilamentsKg,
	}
}
