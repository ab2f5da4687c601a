package request

import (
	"strings"

	"printfarm_ops/internal/domain/entities"
)

type FilamentUsageRequest struct {
	FilamentID string  `json:"filament_id" binding:"required"`
	GramsUsed  float64 `json:"grams_used" binding:"required"`
}

type PlateRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Quantity     int                    `json:"quantity" binding:"required"`
	PrintTimeHrs float64                `json:"print_time_hrs" binding:"required"`
	Usages       []FilamentUsageRequest `json:"usages"`
}

// ProductRequest is the create/update payload for a product. The print time
// is ignored for costing when plates are present; plates then define the
// effective time.
type ProductRequest struct {
	Name                string                 `json:"name" binding:"required"`
	PrintTimeHrs        float64                `json:"print_time_hrs"`
	AdditionalPartsCost float64                `json:"additional_parts_cost"`
	LicenseID           *string                `json:"license_id"`
	Usages              []FilamentUsageRequest `json:"usages"`
	Plates              []PlateRequest         `json:"plates"`
}

func toUsages(reqs []FilamentUsageRequest) []entities.FilamentUsage {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]entities.FilamentUsage, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, entities.FilamentUsage{
			FilamentID: strings.TrimSpace(r.FilamentID),
			GramsUsed:  r.GramsUsed,
		})
	}
	return out
}

func (r ProductRequest) ToEntity() entities.Product {
	var plates []entities.Plate
	for _, p := range r.Plates {
		plates = append(plates, entities.Plate{
			Name:         strings.TrimSpace(p.Name),
			Quantity:     p.Quantity,
			PrintTimeHrs: p.PrintTimeHrs,
			Usages:       toUsages(p.Usages),
		})
	}
	return entities.Product{
		Name:                strings.TrimSpace(r.Name),
		PrintTimeHrs:        r.PrintTimeHrs,
		AdditionalPartsCost: r.AdditionalPartsCost,
		LicenseID:           r.LicenseID,
		Usages:              toUsages(r.Usages),
		Plates:              plates,
	}
}
