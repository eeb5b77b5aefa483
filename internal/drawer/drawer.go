// Package drawer tracks the transient "cart changed" indicator shown after a
// mutation.
package drawer

import (
	"sync"
	"time"
)

const DefaultTTL = 5 * time.Second

// Notifier is a restartable visibility flag: idle -> visible(expiresAt) ->
// idle. Re-triggering while visible restarts the countdown instead of
// stacking timers. Route-level suppression is the caller's concern; the state
// here is queryable on its own.
type Notifier struct {
	mu        sync.Mutex
	ttl       time.Duration
	gen       uint64
	timer     *time.Timer
	visible   bool
	expiresAt time.Time
}

func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

// Trigger makes the drawer visible for a fresh full window.
func (n *Notifier) Trigger() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visible = true
	n.expiresAt = time.Now().Add(n.ttl)
	n.gen++
	gen := n.gen
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(gen) })
}

// Dismiss hides the drawer immediately, e.g. when the user navigates to the
// cart page.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gen++
	n.visible = false
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notifier) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

// ExpiresAt reports when the current window closes; ok is false while idle.
func (n *Notifier) ExpiresAt() (time.Time, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.expiresAt, n.visible
}

func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		return // superseded by a later trigger
	}
	n.visible = false
	n.timer = nil
}
