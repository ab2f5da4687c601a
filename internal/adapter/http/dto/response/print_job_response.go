package response

import (
	"time"

	"printfarm_ops/internal/domain/entities"
	"printfarm_ops/internal/usecase"
)

type PrintJobResponse struct {
	ID                string                `json:"id"`
	Products          []entities.JobProduct `json:"products"`
	PrinterTypeID     string                `json:"printer_type_id,omitempty"`
	PackagingCostEUR  float64               `json:"packaging_cost_eur"`
	CalculatedCOGSEUR float64               `json:"calculated_cogs_eur"`
	TotalPrintTimeHrs float64               `json:"total_print_time_hrs"`
	Status            string                `json:"status"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func FromPrintJob(j entities.PrintJob) PrintJobResponse {
	return PrintJobResponse{
		ID:                j.ID,
		Products:          j.Products,
		PrinterTypeID:     j.PrinterTypeID,
		PackagingCostEUR:  j.PackagingCostEUR,
		CalculatedCOGSEUR: j.CalculatedCOGSEUR,
		TotalPrintTimeHrs: j.TotalPrintTimeHrs,
		Status:            string(j.Status),
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

func FromPrintJobs(js []entities.PrintJob) []PrintJobResponse {
	out := make([]PrintJobResponse, 0, len(js))
	for _, j := range js {
		out = append(out, FromPrintJob(j))
	}
	return out
}

type CogsPreviewResponse struct {
	FilamentCost   float64 `json:"filament_cost"`
	PrinterCost    float64 `json:"printer_cost"`
	PackagingCost  float64 `json:"packaging_cost"`
	TotalPrintTime float64 `json:"total_print_time"`
	TotalCOGS      float64 `json:"total_cogs"`
	IsValid        bool    `json:"is_valid"`
}

func FromCogsPreview(p usecase.CogsPreview) CogsPreviewResponse {
	return CogsPreviewResponse{
		FilamentCost:   p.FilamentCost,
		PrinterCost:    p.PrinterCost,
		PackagingCost:  p.PackagingCost,
		TotalPrintTime: p.TotalPrintTime,
		TotalCOGS:      p.TotalCOGS,
		IsValid:        p.IsValid,
	}
}
