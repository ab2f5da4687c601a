package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"printfarm_ops/internal/domain/entities"
	"printfarm_ops/internal/usecase/interfaces"
)

var (
	ErrNoUsageLines     = errors.New("no filament usage lines")
	ErrInvalidUsageLine = errors.New("invalid filament usage line")
	ErrInvalidCostValue = errors.New("invalid cost value")
	ErrUnknownFilament  = errors.New("unknown filament reference")
)

// DraftJobProduct is one line of a not-yet-persisted print job. Drafts are
// allowed to be incomplete while being edited, so both fields may be unset.
type DraftJobProduct struct {
	ProductID string
	ItemsQty  int
}

// CogsPreview is the live cost estimate for a draft print job.
//
// IsValid signals whether the figure is worth displaying (total > 0). An
// all-zero draft is a normal transient state while a form is being filled, not
// an error.
type CogsPreview struct {
	FilamentCost   float64
	PrinterCost    float64
	PackagingCost  float64
	TotalPrintTime float64
	TotalCOGS      float64
	IsValid        bool
}

// ICostingUseCase is the cost model engine.
//
// Two error policies coexist on purpose:
//   - ComputeProductCop is strict: it feeds a persisted figure, so an
//     unresolved filament reference rejects the whole computation instead of
//     silently understating the cost.
//   - ComputeJobCogsPreview is lenient: it runs on every edit of an
//     in-progress draft, so missing references contribute zero rather than
//     failing the preview.
//
// Do not unify the two: strict previews would make the form unusable mid-edit
// and lenient COP would corrupt stored costs.

type ICostingUseCase interface {
	ComputeProductCop(ctx context.Context, usages []entities.FilamentUsage, additionalPartsCost float64) (float64, error)
	ComputePrinterHourlyRate(ctx context.Context, printerTypeID string) (float64, error)
	ComputeJobCogsPreview(ctx context.Context, products []DraftJobProduct, printerTypeID string, packagingCost string) (CogsPreview, error)
}

type CostingUseCase struct {
	filamentRepo    interfaces.IFilamentRepository
	productRepo     interfaces.IProductRepository
	printerRepo     interfaces.IPrinterRepository
	printerTypeRepo interfaces.IPrinterTypeRepository
}

var _ ICostingUseCase = (*CostingUseCase)(nil)

func NewCostingUseCase(
	filamentRepo interfaces.IFilamentRepository,
	productRepo interfaces.IProductRepository,
	printerRepo interfaces.IPrinterRepository,
	printerTypeRepo interfaces.IPrinterTypeRepository,
) *CostingUseCase {
	return &CostingUseCase{
		filamentRepo:    filamentRepo,
		productRepo:     productRepo,
		printerRepo:     printerRepo,
		printerTypeRepo: printerTypeRepo,
	}
}

// ComputeProductCop derives the cost of production for one product unit:
// additional parts cost plus, per usage line, grams/1000 × price_per_kg.
// No rounding happens here; display rounding is a presentation concern.
func (u *CostingUseCase) ComputeProductCop(ctx context.Context, usages []entities.FilamentUsage, additionalPartsCost float64) (float64, error) {
	if len(usages) == 0 {
		return 0, ErrNoUsageLines
	}
	if additionalPartsCost < 0 {
		return 0, ErrInvalidCostValue
	}

	cop := additionalPartsCost
	for _, usage := range usages {
		if strings.TrimSpace(usage.FilamentID) == "" || usage.GramsUsed <= 0 {
			return 0, ErrInvalidUsageLine
		}
		f, err := u.filamentRepo.GetByID(ctx, usage.FilamentID)
		if err != nil {
			return 0, err
		}
		if f.ID == "" {
			return 0, fmt.Errorf("%w: %s", ErrUnknownFilament, usage.FilamentID)
		}
		cop += (usage.GramsUsed / 1000) * f.PricePerKg
	}
	return cop, nil
}

// ComputePrinterHourlyRate spreads the mean purchase price of the printers of
// a type over the type's expected life. With no printers yet there is no
// capital to amortize and the rate is 0 — that is a policy, not an error.
func (u *CostingUseCase) ComputePrinterHourlyRate(ctx context.Context, printerTypeID string) (float64, error) {
	printerTypeID = strings.TrimSpace(printerTypeID)
	if printerTypeID == "" {
		return 0, ErrPrinterTypeNotFound
	}

	pt, err := u.printerTypeRepo.GetByID(ctx, printerTypeID)
	if err != nil {
		return 0, err
	}
	if pt.ID == "" {
		return 0, ErrPrinterTypeNotFound
	}

	printers, err := u.printerRepo.ListByTypeID(ctx, printerTypeID)
	if err != nil {
		return 0, err
	}
	if len(printers) == 0 {
		return 0, nil
	}
	// Upstream validation guarantees a positive life, but a bad record must
	// not turn into Inf/NaN here.
	if pt.ExpectedLifeHours <= 0 {
		return 0, nil
	}

	sum := 0.0
	for _, p := range printers {
		sum += p.PurchasePriceEUR
	}
	avgPrice := sum / float64(len(printers))
	return avgPrice / pt.ExpectedLifeHours, nil
}

// ComputeJobCogsPreview estimates the COGS of a draft job from current data.
// It is recomputed in full on every call; inputs are small enough that
// incremental updates are not worth their complexity.
//
// The same code path serves both the create-job and edit-job drafts, so the
// two screens can never disagree on identical inputs.
func (u *CostingUseCase) ComputeJobCogsPreview(ctx context.Context, products []DraftJobProduct, printerTypeID string, packagingCost string) (CogsPreview, error) {
	preview := CogsPreview{PackagingCost: ParseCurrencyInput(packagingCost)}

	for _, line := range products {
		if strings.TrimSpace(line.ProductID) == "" || line.ItemsQty < 1 {
			continue
		}
		p, err := u.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return CogsPreview{}, err
		}
		if p.ID == "" {
			// A draft may reference a product deleted since the form was
			// opened; the line contributes nothing.
			continue
		}
		qty := float64(line.ItemsQty)
		preview.FilamentCost += p.COP * qty
		preview.TotalPrintTime += p.EffectivePrintTimeHrs() * qty
	}

	if strings.TrimSpace(printerTypeID) != "" && preview.TotalPrintTime > 0 {
		rate, err := u.ComputePrinterHourlyRate(ctx, printerTypeID)
		if err != nil && !errors.Is(err, ErrPrinterTypeNotFound) {
			return CogsPreview{}, err
		}
		preview.PrinterCost = rate * preview.TotalPrintTime
	}

	preview.TotalCOGS = preview.FilamentCost + preview.PrinterCost + preview.PackagingCost
	preview.IsValid = preview.TotalCOGS > 0
	return preview, nil
}

// ParseCurrencyInput parses a free-text currency field. Empty, non-numeric or
// negative input yields 0 — a NaN must never reach a total. A comma decimal
// separator is accepted. ParseFloat accepts "NaN" and "Inf" spellings, so the
// result is also checked for finiteness.
func ParseCurrencyInput(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
