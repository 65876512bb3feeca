// Package store holds the storefront state and applies actions to it.
//
// A Store is created once at start-up and passed to whoever needs it:
//
//	initial, err := seeders.InitialState("")
//	if err != nil { … }
//	st := store.New(initial, store.WithLogger(log))
//	if err := st.Dispatch(store.AddToCart{Product: p}); err != nil { … }
//	cart := st.State().Cart
//
// Dispatch is safe for concurrent use. Transitions are applied one at a
// time, and subscribers see every applied transition exactly once, in the
// order they were applied.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/pkg/event"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
	"github.com/shashiranjanraj/fruitfuel/pkg/metrics"
)

// Transition is one applied action with the states on either side of it.
type Transition struct {
	Version uint64
	Action  Action
	Before  models.AppState
	After   models.AppState
}

// Store owns the single writable AppState.
type Store struct {
	mu       sync.Mutex
	state    models.AppState
	version  uint64
	reducer  Reducer
	pending  []Transition
	draining bool

	bus     *event.Bus[Transition]
	log     *slog.Logger
	metrics *metrics.StoreMetrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for transitions. Defaults to logger.L.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithMetrics instruments the store.
func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithReducer replaces the default Reducer.
func WithReducer(r Reducer) Option {
	return func(s *Store) { s.reducer = r }
}

// New creates a Store holding initial.
func New(initial models.AppState, opts ...Option) *Store {
	s := &Store{
		state: initial,
		bus:   event.NewBus[Transition](),
		log:   logger.L,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.SetCart(cartSize(initial.Cart))
	return s
}

// State returns the current snapshot. Snapshots are never modified by the
// store; treat them as read-only.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Version is the number of transitions applied so far.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers fn for every transition applied after this call.
// The returned func unsubscribes. A panic in fn is logged and swallowed so
// the other subscribers, and later transitions, are still delivered.
func (s *Store) Subscribe(fn func(Transition)) (unsubscribe func()) {
	return s.bus.Listen(func(t Transition) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("store: subscriber panicked", "action", t.Action.Kind(), "version", t.Version, "panic", r)
			}
		}()
		fn(t)
	})
}

// Dispatch applies a. A rejected action leaves the state and version as
// they were and is not delivered to subscribers.
//
// Subscribers run on the goroutine that is currently draining the delivery
// queue. A subscriber may Dispatch; its transition is queued and delivered
// after the current one.
func (s *Store) Dispatch(a Action) (err error) {
	if a == nil {
		return &ValidationError{Field: "action", Reason: "action is nil"}
	}
	start := time.Now()
	defer s.metrics.ObserveTransition(a.Kind(), start, &err)

	s.mu.Lock()
	before := s.state
	after, err := s.reducer.Reduce(before, a)
	if err != nil {
		version := s.version
		s.mu.Unlock()
		s.log.Warn("store: action rejected", "action", a.Kind(), "version", version, "error", err)
		return err
	}

	s.version++
	s.state = after
	t := Transition{Version: s.version, Action: a, Before: before, After: after}
	s.pending = append(s.pending, t)
	s.metrics.SetCart(cartSize(after.Cart))
	if _, ok := a.(RecordOrder); ok && s.metrics != nil {
		s.metrics.OrdersRecorded.Inc()
	}

	s.log.Debug("store: action applied", "action", a.Kind(), "version", t.Version, "cart_lines", len(after.Cart))

	if s.draining {
		s.mu.Unlock()
		return nil
	}
	s.draining = true
	s.mu.Unlock()
	s.drain()
	return nil
}

// drain delivers queued transitions, oldest first, until none are left.
func (s *Store) drain() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		s.bus.Fire(t)
	}
}

func cartSize(cart []models.CartItem) (lines, units int) {
	for _, item := range cart {
		units += item.Quantity
	}
	return len(cart), units
}
