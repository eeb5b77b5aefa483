package cart

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
	"github.com/chandnsingh/groceryfrontend/internal/drawer"
	"github.com/chandnsingh/groceryfrontend/internal/pricing"
	"github.com/chandnsingh/groceryfrontend/internal/session"
)

const syncTimeout = 5 * time.Second

// RemoteCart is the slice of the storefront API the engine syncs against.
type RemoteCart interface {
	FetchCart(ctx context.Context, token string) ([]domain.LineItem, error)
	UpsertItem(ctx context.Context, token string, line domain.CartUpsert) error
	DeleteItem(ctx context.Context, token, productID, unit string) error
	ClearCart(ctx context.Context, token string) error
}

// Options tunes the sync strategy. Optimistic mutations update local state
// and the drawer synchronously and push to the remote in the background;
// otherwise every mutation is confirmed by the remote before it applies.
// Clear is always confirmed first regardless.
type Options struct {
	Optimistic bool
}

// Engine applies mutations to the local Store and reconciles them with the
// remote persisted cart. A successful background write schedules a full
// refresh; refreshes share one flight and the last applied snapshot wins.
// Write failures are logged and swallowed, leaving the optimistic local
// state authoritative until the next successful refresh.
type Engine struct {
	store      *Store
	remote     RemoteCart
	session    session.TokenStore
	drawer     *drawer.Notifier
	log        *zap.Logger
	optimistic bool
	sfg        singleflight.Group
}

func NewEngine(store *Store, remote RemoteCart, sess session.TokenStore, dr *drawer.Notifier, log *zap.Logger, opts Options) *Engine {
	return &Engine{
		store:      store,
		remote:     remote,
		session:    sess,
		drawer:     dr,
		log:        log,
		optimistic: opts.Optimistic,
	}
}

func (e *Engine) Items() []domain.LineItem {
	return e.store.Items()
}

func (e *Engine) Totals() pricing.Totals {
	return pricing.CartTotals(e.store.Items())
}

// AddItem puts one more of the product's unit in the basket. An omitted unit
// resolves to the product's first variant. New lines price via the catalog
// variant; existing lines keep their cached unit price.
func (e *Engine) AddItem(ctx context.Context, product domain.Product, unit string) error {
	token, err := e.token(ctx)
	if err != nil {
		return err
	}
	if unit == "" {
		unit = product.FirstUnit()
	}
	price := pricing.VariantPrice(product, unit)
	up := domain.CartUpsert{ProductID: product.ID, SelectedUnit: unit, Price: price, Quantity: 1}
	if li, ok := e.store.Get(product.ID, unit); ok {
		up.Price = li.Price
		up.Quantity = li.Quantity + 1
	}
	// the confirmed strategy syncs before the store mutates, so the pushed
	// quantity is precomputed; the optimistic apply overwrites it with the
	// applied line's, so concurrent adds each push a distinct state
	return e.run(ctx, token, "add item",
		func() {
			li := e.store.Add(product, unit, up.Price)
			up.Quantity = li.Quantity
		},
		func(ctx context.Context) error { return e.remote.UpsertItem(ctx, token, up) },
	)
}

// DecreaseItem takes one of the line's quantity, removing the line when it
// would drop below 1. Absent lines are a no-op.
func (e *Engine) DecreaseItem(ctx context.Context, productID, unit string) error {
	token, err := e.token(ctx)
	if err != nil {
		return err
	}
	li, ok := e.store.Get(productID, unit)
	if !ok {
		return nil
	}
	if li.Quantity <= 1 {
		return e.RemoveItem(ctx, productID, unit)
	}
	up := domain.CartUpsert{ProductID: productID, SelectedUnit: unit, Price: li.Price, Quantity: li.Quantity - 1}
	return e.run(ctx, token, "decrease item",
		func() { e.store.Decrease(productID, unit) },
		func(ctx context.Context) error { return e.remote.UpsertItem(ctx, token, up) },
	)
}

// RemoveItem drops the line entirely. Absent lines are a no-op.
func (e *Engine) RemoveItem(ctx context.Context, productID, unit string) error {
	token, err := e.token(ctx)
	if err != nil {
		return err
	}
	if _, ok := e.store.Get(productID, unit); !ok {
		return nil
	}
	return e.run(ctx, token, "remove item",
		func() { e.store.Remove(productID, unit) },
		func(ctx context.Context) error { return e.remote.DeleteItem(ctx, token, productID, unit) },
	)
}

// Clear empties the basket remote-first: an unconfirmed clear must not
// silently discard it, so local state is kept when the remote call fails.
func (e *Engine) Clear(ctx context.Context) error {
	token, err := e.token(ctx)
	if err != nil {
		return err
	}
	if err := e.remote.ClearCart(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", ErrClearFailed, err)
	}
	e.store.Clear()
	return nil
}

// Refresh replaces local state with the server snapshot.
func (e *Engine) Refresh(ctx context.Context) error {
	token, err := e.token(ctx)
	if err != nil {
		return err
	}
	return e.refresh(ctx, token)
}

// WatchSession reacts to credential changes: a new token triggers a full
// refresh, a cleared token empties the local cart. Blocks until ctx is done.
func (e *Engine) WatchSession(ctx context.Context) {
	ch := e.session.Watch()
	for {
		select {
		case <-ctx.Done():
			return
		case token := <-ch:
			if !session.Valid(token) {
				e.store.Clear()
				continue
			}
			if err := e.refresh(ctx, token); err != nil {
				e.log.Warn("cart refresh after login failed", zap.Error(err))
			}
		}
	}
}

func (e *Engine) token(ctx context.Context) (string, error) {
	token, err := e.session.Token(ctx)
	if err != nil || !session.Valid(token) {
		return "", ErrUnauthenticated
	}
	return token, nil
}

// run is the single mutation state machine shared by add/decrease/remove.
func (e *Engine) run(ctx context.Context, token, op string, apply func(), sync func(context.Context) error) error {
	if !e.optimistic {
		if err := sync(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		apply()
		e.drawer.Trigger()
		e.refreshAsync(token)
		return nil
	}

	apply()
	e.drawer.Trigger()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		if err := sync(ctx); err != nil {
			e.log.Warn("cart sync failed", zap.String("op", op), zap.Error(err))
			return
		}
		e.refreshAsync(token)
	}()
	return nil
}

func (e *Engine) refreshAsync(token string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		if err := e.refresh(ctx, token); err != nil {
			e.log.Warn("cart refresh failed", zap.Error(err))
		}
	}()
}

// refresh fetches the remote cart and swaps it in. Concurrent callers share
// one flight; no version token orders refreshes, the last applied wins.
func (e *Engine) refresh(ctx context.Context, token string) error {
	_, err, _ := e.sfg.Do("refresh", func() (interface{}, error) {
		items, err := e.remote.FetchCart(ctx, token)
		if err != nil {
			return nil, err
		}
		e.store.ReplaceAll(items)
		return nil, nil
	})
	return err
}
