package entities

import "time"

// PrintJobStatus represents the lifecycle of a print job.
//
// Domain notes:
//   - Transitions (start/stop/complete) are driven by the execution side of
//     the system, not by costing. This service records the status as given.
type PrintJobStatus string

const (
	PrintJobStatusPending   PrintJobStatus = "pending"
	PrintJobStatusPrinting  PrintJobStatus = "printing"
	PrintJobStatusCompleted PrintJobStatus = "completed"
	PrintJobStatusCancelled PrintJobStatus = "cancelled"
)

// JobProduct is one line of a print job: a product and how many items of it
// the job will produce.
type JobProduct struct {
	ProductID string `json:"product_id"`
	ItemsQty  int    `json:"items_qty"`
}

// PrintJob is a planned production run.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - CalculatedCOGSEUR is the server-side COGS figure persisted at create and
//     update time, derived with the same algorithm the live preview uses.
type PrintJob struct {
	ID                string         `json:"id"`
	Products          []JobProduct   `json:"products"`
	PrinterTypeID     string         `json:"printer_type_id,omitempty"`
	PackagingCostEUR  float64        `json:"packaging_cost_eur"`
	CalculatedCOGSEUR float64        `json:"calculated_cogs_eur"`
	TotalPrintTimeHrs float64        `json:"total_print_time_hrs"`
	Status            PrintJobStatus `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
