// Package billing computes bill totals. All amounts are in cents; only the
// tax step rounds, so a bill's totals are reproducible from its lines.
package billing

import (
	"math"

	"github.com/chingz/pos-api/pkg/apperror"
)

// TaxRate is the GST rate applied to every bill.
const TaxRate = 0.18

// Line is one (menu item, quantity) pairing within a bill.
type Line struct {
	Name      string
	UnitPrice int64 // cents
	Quantity  int
}

// LineTotal returns quantity × unit price in cents.
func (l Line) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Totals is the result of folding a bill's lines.
type Totals struct {
	SubTotal int64 // cents
	Discount int64 // cents, already clamped to [0, SubTotal]
	Tax      int64 // cents
	Total    int64 // cents
}

// Compute folds lines into totals, applying a percentage discount and then
// GST on the discounted amount:
//
//	subtotal = Σ quantity × unit price
//	discount = subtotal × percent/100, clamped to [0, subtotal]
//	tax      = (subtotal − discount) × TaxRate, rounded half up
//	total    = subtotal − discount + tax
//
// An empty bill, a non-positive quantity or a negative unit price is a
// validation error; nothing about a bill with such lines is meaningful.
func Compute(lines []Line, discountPercent float64) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "At least one item is required"},
		})
	}

	var subTotal int64
	for _, l := range lines {
		if l.Quantity <= 0 {
			return Totals{}, apperror.NewValidationError([]apperror.FieldError{
				{Field: "items", Message: "Quantity must be at least 1"},
			})
		}
		if l.UnitPrice < 0 {
			return Totals{}, apperror.NewValidationError([]apperror.FieldError{
				{Field: "items", Message: "Price cannot be negative"},
			})
		}
		subTotal += l.LineTotal()
	}

	// Clamp the percentage first, then the amount. A discount can never
	// push the taxable amount below zero.
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	discount := int64(math.Round(float64(subTotal) * discountPercent / 100))
	if discount > subTotal {
		discount = subTotal
	}

	taxable := subTotal - discount
	tax := int64(math.Round(float64(taxable) * TaxRate))

	return Totals{
		SubTotal: subTotal,
		Discount: discount,
		Tax:      tax,
		Total:    taxable + tax,
	}, nil
}
