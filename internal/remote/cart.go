package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

// FetchCart returns the persisted cart. Line items may carry a full product
// snapshot or a bare product ID; domain.ProductRef absorbs both.
func (c *Client) FetchCart(ctx context.Context, token string) ([]domain.LineItem, error) {
	var items []domain.LineItem
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertItem pushes the desired state of one cart line.
func (c *Client) UpsertItem(ctx context.Context, token string, line domain.CartUpsert) error {
	return c.do(ctx, http.MethodPost, "/cart", token, line, nil)
}

// DeleteItem removes the (productID, unit) line from the persisted cart.
func (c *Client) DeleteItem(ctx context.Context, token, productID, unit string) error {
	path := "/cart/" + url.PathEscape(productID) + "?unit=" + url.QueryEscape(unit)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// ClearCart empties the persisted cart.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPut, "/cart/clear", token, struct{}{}, nil)
}
