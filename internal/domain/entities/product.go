package entities

import "time"

// Plate is one physical build of a product: its own print time, how many times
// it is printed per product unit, and the filament it consumes.
type Plate struct {
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	PrintTimeHrs float64         `json:"print_time_hrs"`
	Usages       []FilamentUsage `json:"usages,omitempty"`
}

// Product is a sellable printed item.
//
// Storage model (DynamoDB):
//   - PK: id
//
// COP (cost of production) is derived once at create/update time from the
// usage lines and current filament prices; it is not silently recomputed when
// prices change afterwards. The live job preview re-derives an equivalent
// figure from current data, so the two values can diverge — that divergence is
// observable and accepted.
type Product struct {
	ID                  string          `json:"id"`
	SKU                 string          `json:"sku"`
	Name                string          `json:"name"`
	PrintTimeHrs        float64         `json:"print_time_hrs"`
	COP                 float64         `json:"cop"`
	AdditionalPartsCost float64         `json:"additional_parts_cost"`
	LicenseID           *string         `json:"license_id,omitempty"`
	Usages              []FilamentUsage `json:"usages,omitempty"`
	Plates              []Plate         `json:"plates,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// EffectivePrintTimeHrs returns the print time used for costing. When plates
// exist they override the flat field: the total is the sum over plates of
// print_time_hrs × quantity.
func (p Product) EffectivePrintTimeHrs() float64 {
	if len(p.Plates) == 0 {
		return p.PrintTimeHrs
	}
	total := 0.0
	for _, plate := range p.Plates {
		total += plate.PrintTimeHrs * float64(plate.Quantity)
	}
	return total
}

// AllUsages flattens the product's filament consumption: the product-level
// lines plus every plate's lines scaled by plate quantity, in declaration
// order. A plate printed N times per product unit consumes N times its grams.
func (p Product) AllUsages() []FilamentUsage {
	if len(p.Plates) == 0 {
		return p.Usages
	}
	out := make([]FilamentUsage, 0, len(p.Usages))
	out = append(out, p.Usages...)
	for _, plate := range p.Plates {
		for _, u := range plate.Usages {
			out = append(out, FilamentUsage{
				FilamentID: u.FilamentID,
				GramsUsed:  u.GramsUsed * float64(plate.Quantity),
			})
		}
	}
	return out
}
