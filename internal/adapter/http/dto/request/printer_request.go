package request

import (
	"strings"

	"printfarm_ops/internal/domain/entities"
)

// PrinterTypeRequest is the create/update payload for a printer type.
type PrinterTypeRequest struct {
	Brand             string  `json:"brand" binding:"required"`
	Model             string  `json:"model" binding:"required"`
	ExpectedLifeHours float64 `json:"expected_life_hours" binding:"required"`
}

func (r PrinterTypeRequest) ToEntity() entities.PrinterType {
	return entities.PrinterType{
		Brand:             strings.TrimSpace(r.Brand),
		Model:             strings.TrimSpace(r.Model),
		ExpectedLifeHours: r.ExpectedLifeHours,
	}
}

// PrinterRequest is the create/update payload for a physical printer.
type PrinterRequest struct {
	PrinterTypeID    string  `json:"printer_type_id" binding:"required"`
	Name             string  `json:"name"`
	PurchasePriceEUR float64 `json:"purchase_price_eur" binding:"required"`
	Status           string  `json:"status"`
}

func (r PrinterRequest) ToEntity() entities.Printer {
	return entities.Printer{
		PrinterTypeID:    strings.TrimSpace(r.PrinterTypeID),
		Name:             strings.TrimSpace(r.Name),
		PurchasePriceEUR: r.PurchasePriceEUR,
		Status:           entities.PrinterStatus(strings.TrimSpace(r.Status)),
	}
}
