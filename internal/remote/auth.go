package remote

import (
	"context"
	"net/http"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

type loginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return domain.User{}, "", err
	}
	return resp.User, resp.Token, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (domain.User, string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &resp); err != nil {
		return domain.User{}, "", err
	}
	return resp.User, resp.Token, nil
}
