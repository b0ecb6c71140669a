package cart

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/artisanhome/cartengine/internal/domain"
	"github.com/artisanhome/cartengine/internal/observability"
)

//go:generate mockgen -source internal/cart/store.go -destination=internal/cart/store_mock_test.go -package=cart

// Storage is the persistence seam, one document per cart.
type Storage interface {
	Load() ([]domain.LineItem, error)
	Save(items []domain.LineItem) error
}

// Store owns the cart: an ordered list of line items with unique ids and
// strictly positive quantities. Every mutation persists the new state and
// then notifies observers with a snapshot.
type Store struct {
	mu       sync.Mutex
	items    []domain.LineItem
	storage  Storage
	logger   *zap.Logger
	metrics  observability.Metrics
	onChange []func(items []domain.LineItem)
}

func NewStore(storage Storage, logger *zap.Logger, metrics observability.Metrics) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
		metrics: metrics,
	}
}

// OnChange registers a re-render hook. Callbacks run after the mutation has
// been persisted, outside the store lock, with a defensive copy of the items.
func (s *Store) OnChange(fn func(items []domain.LineItem)) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// Load restores the cart from storage. Absent or malformed data yields an
// empty cart; corruption is logged and counted, never fatal.
func (s *Store) Load() {
	items, err := s.storage.Load()
	if err != nil {
		s.logger.Warn("persisted cart unreadable, starting empty", zap.Error(err))
		s.metrics.IncStorageRecovery()
		items = nil
	}

	s.mu.Lock()
	s.items = sanitize(items)
	s.mu.Unlock()

	s.notify()
}

// Add merges by id: an existing entry gains quantity, a new item is appended.
// A non-positive quantity on an initial add is a silent no-op.
func (s *Store) Add(item domain.LineItem) {
	if item.ID == "" || item.Quantity <= 0 {
		s.logger.Debug("ignoring add",
			zap.String("id", item.ID),
			zap.Int("quantity", item.Quantity),
		)
		return
	}

	s.mutate("add", func() {
		for i := range s.items {
			if s.items[i].ID == item.ID {
				s.items[i].Quantity += item.Quantity
				return
			}
		}
		s.items = append(s.items, item)
	})
}

// SetQuantity sets the entry's quantity; zero or below removes it.
func (s *Store) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}

	s.mutate("set_quantity", func() {
		i, ok := s.index(id)
		if !ok {
			s.logger.Debug("set_quantity on unknown item", zap.String("id", id))
			return
		}
		s.items[i].Quantity = quantity
	})
}

// ChangeQuantity adjusts the entry by delta, removing it at zero or below.
func (s *Store) ChangeQuantity(id string, delta int) {
	s.mu.Lock()
	i, ok := s.index(id)
	if !ok {
		s.mu.Unlock()
		s.logger.Debug("change_quantity on unknown item", zap.String("id", id))
		return
	}
	next := s.items[i].Quantity + delta
	s.mu.Unlock()

	s.SetQuantity(id, next)
}

// Remove deletes the entry if present; unknown ids are a no-op.
func (s *Store) Remove(id string) {
	s.mutate("remove", func() {
		i, ok := s.index(id)
		if !ok {
			s.logger.Debug("remove on unknown item", zap.String("id", id))
			return
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
	})
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.mutate("clear", func() {
		s.items = nil
	})
}

// Items returns a snapshot of the cart in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneItems(s.items)
}

// TotalItemCount is the sum of all quantities, for the badge.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// mutate applies fn under the lock, persists the result and notifies
// observers. Persist failure keeps the in-memory state and is only logged.
func (s *Store) mutate(op string, fn func()) {
	t0 := time.Now()

	s.mu.Lock()
	fn()
	snapshot := domain.CloneItems(s.items)
	s.mu.Unlock()

	tPersist := time.Now()
	err := s.storage.Save(snapshot)
	persistMs := msSince(tPersist)
	s.metrics.ObservePersist(persistMs, err == nil)
	if err != nil {
		s.logger.Error("failed to persist cart",
			zap.String("op", op),
			zap.Error(err),
		)
	}

	s.metrics.ObserveMutation(op, msSince(t0))
	s.logger.Info("cart mutated",
		zap.String("op", op),
		zap.Int("lines", len(snapshot)),
		zap.Float64("persist_ms", persistMs),
	)

	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	hooks := make([]func([]domain.LineItem), len(s.onChange))
	copy(hooks, s.onChange)
	snapshot := domain.CloneItems(s.items)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(domain.CloneItems(snapshot))
	}
}

// index must be called with the lock held.
func (s *Store) index(id string) (int, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// sanitize enforces the invariants over restored data: drop non-positive
// quantities, merge duplicate ids into the first occurrence.
func sanitize(items []domain.LineItem) []domain.LineItem {
	var out []domain.LineItem
	seen := make(map[string]int)
	for _, it := range items {
		if it.ID == "" || it.Quantity <= 0 {
			continue
		}
		if i, ok := seen[it.ID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		seen[it.ID] = len(out)
		out = append(out, it)
	}
	return out
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
