package domain

import "encoding/json"

// ProductRef is the product reference carried by a cart line. The remote cart
// returns either a full product snapshot or a bare identifier; both resolve
// to a stable product ID.
type ProductRef struct {
	Product
}

func (r *ProductRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		r.Product = Product{ID: id}
		return nil
	}
	return json.Unmarshal(data, &r.Product)
}

// LineItem is one (product, variant) entry in the cart. Price is the unit
// price cached at the time of the last mutation.
type LineItem struct {
	Product      ProductRef `json:"productId"`
	SelectedUnit string     `json:"selectedUnit"`
	Price        float64    `json:"price"`
	Quantity     int        `json:"quantity"`
}

func (li LineItem) ProductID() string {
	return li.Product.ID
}

func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// CartUpsert is the desired state of one cart line pushed to the remote store.
type CartUpsert struct {
	ProductID    string  `json:"productId"`
	SelectedUnit string  `json:"selectedUnit"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}
