package request

import (
	"strings"

	"printfarm_ops/internal/domain/entities"
)

type JobProductRequest struct {
	ProductID string `json:"product_id"`
	ItemsQty  int    `json:"items_qty"`
}

// PrintJobRequest is the create/update payload for a print job. The packaging
// cost arrives as free text straight from the form; parsing (and defaulting
// to 0) happens in the costing engine, never here.
type PrintJobRequest struct {
	Products         []JobProductRequest `json:"products"`
	PrinterTypeID    string              `json:"printer_type_id"`
	PackagingCostEUR string              `json:"packaging_cost_eur"`
	Status           string              `json:"status"`
}

func (r PrintJobRequest) ToJobProducts() []entities.JobProduct {
	if len(r.Products) == 0 {
		return nil
	}
	out := make([]entities.JobProduct, 0, len(r.Products))
	for _, p := range r.Products {
		out = append(out, entities.JobProduct{
			ProductID: strings.TrimSpace(p.ProductID),
			ItemsQty:  p.ItemsQty,
		})
	}
	return out
}

// CogsPreviewRequest is the live draft sent on every relevant form change.
// Every field is optional: a draft is allowed to be incomplete.
type CogsPreviewRequest struct {
	Products         []JobProductRequest `json:"products"`
	PrinterTypeID    string              `json:"printer_type_id"`
	PackagingCostEUR string              `json:"packaging_cost_eur"`
}
