// Package notify displays transient notifications.
//
// A notification is pushed, shown until its TTL elapses, then removed by a
// timer. Push is fire-and-forget: there is no cancellation and callers never
// wait on the timer. Removing a notification that is already gone is a no-op.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 2 * time.Second

// Kind selects the notification's styling.
type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

// Notification is a single toast message.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Kind        Kind      `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
}

// Presenter holds the visible notifications.
// It is safe for concurrent use; removal timers run on their own goroutines.
type Presenter struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration

	// after schedules f to run once d has elapsed. Tests replace it to fire
	// timers by hand.
	after  func(d time.Duration, f func())
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger used to trace shown notifications.
func WithLogger(l *slog.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPresenter creates a presenter whose notifications live for ttl.
// A non-positive ttl uses DefaultTTL.
func NewPresenter(ttl time.Duration, opts ...Option) *Presenter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	p := &Presenter{
		ttl: ttl,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TTL returns how long notifications stay visible.
func (p *Presenter) TTL() time.Duration {
	return p.ttl
}

// Push shows n and schedules its removal. ID and CreatedAt are filled in.
func (p *Presenter) Push(n Notification) Notification {
	n.ID = uuid.NewString()
	n.CreatedAt = p.now()

	p.mu.Lock()
	p.items = append(p.items, n)
	p.mu.Unlock()

	p.logger.Debug("notification shown",
		"id", n.ID,
		"kind", n.Kind,
		"title", n.Title,
	)

	id := n.ID
	p.after(p.ttl, func() { p.Dismiss(id) })
	return n
}

// Dismiss removes the notification with id. It reports whether anything
// was removed.
func (p *Presenter) Dismiss(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, n := range p.items {
		if n.ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the visible notifications, oldest first.
func (p *Presenter) Active() []Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Notification, len(p.items))
	copy(out, p.items)
	return out
}
