package response

import (
	"time"

	"printfarm_ops/internal/domain/entities"
)

type PrinterTypeResponse struct {
	ID                string    `json:"id"`
	Brand             string    `json:"brand"`
	Model             string    `json:"model"`
	ExpectedLifeHours float64   `json:"expected_life_hours"`
	HourlyRateEUR     float64   `json:"hourly_rate_eur"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FromPrinterType carries the live depreciation rate alongside the stored
// fields; the rate is recomputed per request, never persisted.
func FromPrinterType(pt entities.PrinterType, hourlyRate float64) PrinterTypeResponse {
	return PrinterTypeResponse{
		ID:                pt.ID,
		Brand:             pt.Brand,
		Model:             pt.Model,
		ExpectedLifeHours: pt.ExpectedLifeHours,
		HourlyRateEUR:     hourlyRate,
		CreatedAt:         pt.CreatedAt,
		UpdatedAt:         pt.UpdatedAt,
	}
}

type PrinterResponse struct {
	ID               string    `json:"id"`
	PrinterTypeID    string    `json:"printer_type_id"`
	Name             string    `json:"name"`
	PurchasePriceEUR float64   `json:"purchase_price_eur"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPrinter(p entities.Printer) PrinterResponse {
	return PrinterResponse{
		ID:               p.ID,
		PrinterTypeID:    p.PrinterTypeID,
		Name:             p.Name,
		PurchasePriceEUR: p.PurchasePriceEUR,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromPrinters(ps []entities.Printer) []PrinterResponse {
	out := make([]PrinterResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPrinter(p))
	}
	return out
}
