package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

func TestOriginal_DerivesPreDiscountPrice(t *testing.T) {
	v := domain.Variant{Unit: "1kg", Price: 100, Discount: "20%"}
	assert.InDelta(t, 125.0, Original(v), 0.0001)
}

func TestOriginal_NoDiscount(t *testing.T) {
	assert.Equal(t, 50.0, Original(domain.Variant{Unit: "500g", Price: 50, Discount: "0%"}))
	assert.Equal(t, 50.0, Original(domain.Variant{Unit: "500g", Price: 50}))
}

func TestParseDiscount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"20%", 20},
		{"20", 20},
		{" 15 %", 15},
		{"0%", 0},
		{"", 0},
		{"abc", 0},
		{"%", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDiscount(tt.in), "input %q", tt.in)
	}
}

func TestVariantPrice(t *testing.T) {
	p := domain.Product{
		ID: "p1",
		Variants: []domain.Variant{
			{Unit: "500g", Price: 50},
			{Unit: "1kg", Price: 90, Discount: "10%"},
		},
	}
	assert.Equal(t, 50.0, VariantPrice(p, "500g"))
	assert.Equal(t, 90.0, VariantPrice(p, "1kg"))
	assert.Equal(t, 0.0, VariantPrice(p, "2kg"))
}

func TestPerLine_BareReferenceFallsBackToCachedPrice(t *testing.T) {
	li := domain.LineItem{
		Product:      domain.ProductRef{Product: domain.Product{ID: "p1"}},
		SelectedUnit: "500g",
		Price:        40,
		Quantity:     3,
	}
	lt := PerLine(li)
	assert.InDelta(t, 120.0, lt.MRP, 0.0001)
	assert.InDelta(t, 0.0, lt.Discount, 0.0001)
}

func TestCartTotals_Invariant(t *testing.T) {
	// payable must equal the sum of effective subtotals within rounding
	items := []domain.LineItem{
		{
			Product: domain.ProductRef{Product: domain.Product{
				ID:       "p1",
				Variants: []domain.Variant{{Unit: "1kg", Price: 100, Discount: "20%"}},
			}},
			SelectedUnit: "1kg",
			Price:        100,
			Quantity:     2,
		},
		{
			Product: domain.ProductRef{Product: domain.Product{
				ID:       "p2",
				Variants: []domain.Variant{{Unit: "500g", Price: 33.33, Discount: "7%"}},
			}},
			SelectedUnit: "500g",
			Price:        33.33,
			Quantity:     5,
		},
		{
			Product: domain.ProductRef{Product: domain.Product{
				ID:       "p3",
				Variants: []domain.Variant{{Unit: "250g", Price: 18, Discount: ""}},
			}},
			SelectedUnit: "250g",
			Price:        18,
			Quantity:     1,
		},
	}

	var effective float64
	for _, li := range items {
		effective += li.Subtotal()
	}

	totals := CartTotals(items)
	assert.InDelta(t, Round2(effective), Round2(totals.Payable()), 0.01)
}
