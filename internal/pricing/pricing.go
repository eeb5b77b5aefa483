// Package pricing computes effective and pre-discount prices for product
// variants and aggregates per-line cart totals.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

// Effective returns the variant's selling price. Variant prices arrive from
// the catalog already discounted.
func Effective(v domain.Variant) float64 {
	return v.Price
}

// Original derives the pre-discount price from the discounted one. With no
// discount (or a nonsensical one) the effective price is returned as is.
func Original(v domain.Variant) float64 {
	d := ParseDiscount(v.Discount)
	if d <= 0 || d >= 100 {
		return v.Price
	}
	return v.Price / (1 - d/100)
}

// ParseDiscount reads a percentage string like "20%". Missing or non-numeric
// values parse to 0.
func ParseDiscount(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return d
}

// VariantPrice looks up the unit's variant on the product and returns its
// effective price, 0 when the unit is unknown.
func VariantPrice(p domain.Product, unit string) float64 {
	v, ok := p.VariantByUnit(unit)
	if !ok {
		return 0
	}
	return Effective(v)
}

// Totals is a pre-discount amount and the discount taken off it. The payable
// amount is MRP - Discount.
type Totals struct {
	MRP      float64 `json:"mrp"`
	Discount float64 `json:"discount"`
}

func (t Totals) Payable() float64 {
	return t.MRP - t.Discount
}

// PerLine computes the line's totals from its product snapshot. When the
// snapshot is a bare reference the cached unit price stands in and the line
// carries no discount.
func PerLine(li domain.LineItem) Totals {
	qty := float64(li.Quantity)
	eff := li.Price
	orig := eff
	if v, ok := li.Product.VariantByUnit(li.SelectedUnit); ok {
		eff = Effective(v)
		orig = Original(v)
	}
	return Totals{MRP: orig * qty, Discount: (orig - eff) * qty}
}

func CartTotals(items []domain.LineItem) Totals {
	var t Totals
	for _, li := range items {
		lt := PerLine(li)
		t.MRP += lt.MRP
		t.Discount += lt.Discount
	}
	return t
}

// Round2 rounds to the two decimal places used for display.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
