package entities

import "time"

// PrinterStatus is the operational state of a physical printer. It is owned by
// the fleet side of the system; costing only reads it.
type PrinterStatus string

const (
	PrinterStatusIdle        PrinterStatus = "idle"
	PrinterStatusPrinting    PrinterStatus = "printing"
	PrinterStatusMaintenance PrinterStatus = "maintenance"
)

// PrinterType groups printers of the same brand/model and carries the
// depreciation horizon used for hourly-rate derivation.
//
// Storage model (DynamoDB):
//   - PK: id
type PrinterType struct {
	ID                string    `json:"id"`
	Brand             string    `json:"brand"`
	Model             string    `json:"model"`
	ExpectedLifeHours float64   `json:"expected_life_hours"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Printer is one physical machine. It belongs to exactly one PrinterType.
//
// Storage model (DynamoDB):
//   - PK: id
//   - printer_type_id attribute used for list-by-type filtering
type Printer struct {
	ID               string        `json:"id"`
	PrinterTypeID    string        `json:"printer_type_id"`
	Name             string        `json:"name"`
	PurchasePriceEUR float64       `json:"purchase_price_eur"`
	Status           PrinterStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
