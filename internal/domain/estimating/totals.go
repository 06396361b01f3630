package estimating

import (
	"renovation_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Breakdown is the calculator output: rounded totals plus the surfaces that could not be
// counted.
type Breakdown struct {
	Totals   entities.Totals
	Warnings []UnitWarning
}

// CalculateTotals runs the cost pipeline over a sanitized tree.
//
// Order matters: labor discount applies to labor only, waste to material only, and markup and
// tax are both taken from the discounted, waste-inclusive subtotal. Intermediates stay
// unrounded; rounding happens once, when the Totals value is built.
func CalculateTotals(categories []entities.Category, settings entities.Settings) Breakdown {
	var (
		materialRaw float64
		laborRaw    float64
		warnings    []UnitWarning
	)
	for _, cat := range categories {
		for _, item := range cat.WorkItems {
			units, w := UnitCount(item)
			warnings = append(warnings, w...)
			materialRaw += item.MaterialCost * units
			laborRaw += item.LaborCost * units
		}
	}

	laborDiscount := laborRaw * settings.LaborDiscount
	laborCost := laborRaw - laborDiscount
	wasteCost := materialRaw * settings.WasteFactor
	materialWithWaste := materialRaw + wasteCost
	subtotal := materialWithWaste + laborCost
	markupAmount := subtotal * settings.Markup
	taxAmount := subtotal * settings.TaxRate

	var miscFees float64
	for _, fee := range settings.MiscFees {
		miscFees += fee.Amount
	}
	transportation := settings.TransportationFee

	total := subtotal + markupAmount + taxAmount + miscFees + transportation

	return Breakdown{
		Totals: entities.Totals{
			MaterialCost:            Round2(materialRaw),
			LaborCost:               Round2(laborCost),
			LaborCostBeforeDiscount: Round2(laborRaw),
			LaborDiscount:           Round2(laborDiscount),
			WasteCost:               Round2(wasteCost),
			TaxAmount:               Round2(taxAmount),
			MarkupAmount:            Round2(markupAmount),
			MiscFeesTotal:           Round2(miscFees),
			TransportationFee:       Round2(transportation),
			Subtotal:                Round2(subtotal),
			Total:                   Round2(total),
		},
		Warnings: warnings,
	}
}

// Round2 rounds half away from zero to 2 decimal places using the shortest decimal
// representation of v, so 1.005 becomes 1.01.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Price recomputes the derived Totals and PaymentDetails of p from its own tree, settings
// and payment schedule. Run it on an enforced project so the stored totals are what the
// stored inputs price to.
func Price(p entities.Project) (entities.Project, []UnitWarning) {
	b := CalculateTotals(p.Categories, p.Settings)
	p.Totals = b.Totals
	p.PaymentDetails = AggregatePayments(p.Settings.Payments, b.Totals.Total)
	return p, b.Warnings
}
