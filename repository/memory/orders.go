// Package memory keeps tracker records in process memory. It backs the tests
// and local runs without a database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"restaurant-pos/models/order"
	"restaurant-pos/repository"
)

type OrderStore struct {
	mu     sync.Mutex
	orders map[string]*order.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*order.Order)}
}

func (s *OrderStore) Create(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	s.orders[o.ID] = o.Clone()
	return nil
}

func (s *OrderStore) Get(_ context.Context, id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o.Clone(), nil
}

// List returns orders oldest first.
func (s *OrderStore) List(_ context.Context) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].OrderNo < out[j].OrderNo
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *OrderStore) CompareAndSwap(_ context.Context, o *order.Order, expectedVersion int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.orders[o.ID]
	if !ok || cur.Version != expectedVersion {
		return false, nil
	}
	s.orders[o.ID] = o.Clone()
	return true, nil
}

func (s *OrderStore) DeleteIfVersion(_ context.Context, id string, expectedVersion int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.orders[id]
	if !ok || cur.Version != expectedVersion {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

func (s *OrderStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

type ProjectionStore struct {
	mu   sync.Mutex
	rows map[string]order.KitchenOrder
}

func NewProjectionStore() *ProjectionStore {
	return &ProjectionStore{rows: make(map[string]order.KitchenOrder)}
}

// Upsert never replaces a copy with an older version.
func (s *ProjectionStore) Upsert(_ context.Context, k *order.KitchenOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.rows[k.OrderID]; ok && cur.Version > k.Version {
		return nil
	}
	s.rows[k.OrderID] = *order.NewKitchenOrder(k.Order())
	return nil
}

func (s *ProjectionStore) Get(_ context.Context, orderID string) (*order.KitchenOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return order.NewKitchenOrder(row.Order()), nil
}

func (s *ProjectionStore) List(_ context.Context) ([]order.KitchenOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.KitchenOrder, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, *order.NewKitchenOrder(row.Order()))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out, nil
}

func (s *ProjectionStore) Delete(_ context.Context, orderID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[orderID]; !ok {
		return false, nil
	}
	delete(s.rows, orderID)
	return true, nil
}

type PickedUpLog struct {
	mu      sync.Mutex
	nextID  uint
	entries []order.PickedUpLogEntry
}

func NewPickedUpLog() *PickedUpLog {
	return &PickedUpLog{}
}

func (l *PickedUpLog) Append(_ context.Context, e *order.PickedUpLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	e.ID = l.nextID
	l.entries = append(l.entries, *e)
	return nil
}

func (l *PickedUpLog) List(_ context.Context, kitchen string) ([]order.PickedUpLogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]order.PickedUpLogEntry, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		if kitchen == "" || l.entries[i].Kitchen == kitchen {
			out = append(out, l.entries[i])
		}
	}
	return out, nil
}

func (l *PickedUpLog) Delete(_ context.Context, id uint) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type TripReports struct {
	mu    sync.Mutex
	trips []order.TripReport
}

func NewTripReports() *TripReports {
	return &TripReports{}
}

func (r *TripReports) Create(_ context.Context, t *order.TripReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.trips {
		if existing.OrderID == t.OrderID {
			return fmt.Errorf("trip report for order %s already exists", t.OrderID)
		}
	}
	cp := *t
	cp.CartItems = t.CartItems.Clone()
	r.trips = append(r.trips, cp)
	return nil
}

func (r *TripReports) GetByOrder(_ context.Context, orderID string) (*order.TripReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.trips {
		if t.OrderID == orderID {
			cp := t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *TripReports) ListByDeliveryPerson(_ context.Context, personID string) ([]order.TripReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []order.TripReport{}
	for _, t := range r.trips {
		if t.DeliveryPersonID == personID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TripReports) MarkPickedUp(_ context.Context, orderID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.trips {
		if r.trips[i].OrderID == orderID && r.trips[i].Status == order.OrderStatusPending {
			r.trips[i].Status = order.OrderStatusPickedUp
			r.trips[i].PickedUpTime = &at
			return true, nil
		}
	}
	return false, nil
}

// Counters is an in-memory CounterRepository. Numbers do not survive a restart.
type Counters struct {
	mu     sync.Mutex
	values map[string]int64
}

func NewCounters() *Counters {
	return &Counters{values: make(map[string]int64)}
}

func (c *Counters) Next(_ context.Context, prefix string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[prefix]++
	return c.values[prefix], nil
}
