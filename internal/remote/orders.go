package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

func (c *Client) PlaceOrder(ctx context.Context, token string, order domain.Order) (domain.Order, error) {
	var placed domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, order, &placed); err != nil {
		return domain.Order{}, err
	}
	return placed, nil
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (domain.Order, error) {
	var o domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), token, nil, &o); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}
