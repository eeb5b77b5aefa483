package domain

// Variant is one purchasable unit/size option of a product. Price is the
// already-discounted selling price; the pre-discount price is derived from
// Discount, a percentage string like "20%".
type Variant struct {
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Discount string  `json:"discount,omitempty"`
}

type Product struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name,omitempty"`
	Category string    `json:"category,omitempty"`
	Image    string    `json:"image,omitempty"`
	InStock  bool      `json:"inStock,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
}

func (p Product) VariantByUnit(unit string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Unit == unit {
			return v, true
		}
	}
	return Variant{}, false
}

// FirstUnit is the default variant selection when the caller does not pick one.
func (p Product) FirstUnit() string {
	if len(p.Variants) == 0 {
		return ""
	}
	return p.Variants[0].Unit
}
