package cart

import "errors"

var (
	// ErrUnauthenticated blocks mutations issued without a live session
	// token. The caller is expected to route the user to sign-in.
	ErrUnauthenticated = errors.New("cart: unauthenticated")

	// ErrClearFailed reports that the remote clear was rejected. Local state
	// is intentionally kept: clear is the one mutation that is confirmed
	// before it applies.
	ErrClearFailed = errors.New("cart: remote clear failed")
)
