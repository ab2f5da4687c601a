package response

import (
	"time"

	"printfarm_ops/internal/domain/entities"
)

type ProductResponse struct {
	ID                    string                   `json:"id"`
	SKU                   string                   `json:"sku"`
	Name                  string                   `json:"name"`
	PrintTimeHrs          float64                  `json:"print_time_hrs"`
	EffectivePrintTimeHrs float64                  `json:"effective_print_time_hrs"`
	COP                   float64                  `json:"cop"`
	AdditionalPartsCost   float64                  `json:"additional_parts_cost"`
	LicenseID             *string                  `json:"license_id,omitempty"`
	Usages                []entities.FilamentUsage `json:"usages,omitempty"`
	Plates                []entities.Plate         `json:"plates,omitempty"`
	Warnings              []string                 `json:"warnings,omitempty"`
	CreatedAt             time.Time                `json:"created_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:                    p.ID,
		SKU:                   p.SKU,
		Name:                  p.Name,
		PrintTimeHrs:          p.PrintTimeHrs,
		EffectivePrintTimeHrs: p.EffectivePrintTimeHrs(),
		COP:                   p.COP,
		AdditionalPartsCost:   p.AdditionalPartsCost,
		LicenseID:             p.LicenseID,
		Usages:                p.Usages,
		Plates:                p.Plates,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// FromProductWithWarnings attaches the non-blocking warnings (e.g. costing
// over a filament with zero stock) raised while saving.
func FromProductWithWarnings(p entities.Product, warnings []string) ProductResponse {
	res := FromProduct(p)
	res.Warnings = warnings
	return res
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
