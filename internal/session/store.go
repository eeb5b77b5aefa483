// Package session persists the storefront credential and lets the cart react
// to login and logout without polling.
package session

import (
	"context"
	"errors"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

// ErrNoToken reports that no usable session token is stored.
var ErrNoToken = errors.New("session: no token")

// TokenStore holds the session credential under two keys: a wrapped user
// object carrying its token, and a standalone token. The wrapped token is
// primary. Implementations notify Watch subscribers on every change.
type TokenStore interface {
	// Token returns the current session token or ErrNoToken.
	Token(ctx context.Context) (string, error)
	// User returns the stored user object or ErrNoToken.
	User(ctx context.Context) (domain.User, error)
	// SaveLogin persists the wrapped user object and the standalone token.
	SaveLogin(ctx context.Context, user domain.User, token string) error
	// Clear drops both keys.
	Clear(ctx context.Context) error
	// Watch emits the new token after every change, "" after Clear.
	Watch() <-chan string
}

// Valid rejects absent tokens and the literal junk strings some clients
// manage to persist.
func Valid(token string) bool {
	return token != "" && token != "undefined" && token != "null"
}
