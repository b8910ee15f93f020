package tracker

import (
	"context"
	"time"

	"restaurant-pos/models/order"
)

// OrderRepository is the authoritative order store. Writes after Create are
// guarded by the order version.
type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	Get(ctx context.Context, id string) (*order.Order, error)
	List(ctx context.Context) ([]order.Order, error)
	// CompareAndSwap stores o only if the stored version still equals
	// expectedVersion. It reports false when another writer got there first.
	CompareAndSwap(ctx context.Context, o *order.Order, expectedVersion int64) (bool, error)
	DeleteIfVersion(ctx context.Context, id string, expectedVersion int64) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProjectionRepository stores the kitchen display copies of orders.
type ProjectionRepository interface {
	Upsert(ctx context.Context, k *order.KitchenOrder) error
	Get(ctx context.Context, orderID string) (*order.KitchenOrder, error)
	List(ctx context.Context) ([]order.KitchenOrder, error)
	Delete(ctx context.Context, orderID string) (bool, error)
}

type PickedUpLogRepository interface {
	Append(ctx context.Context, e *order.PickedUpLogEntry) error
	// List returns entries newest first, optionally for one kitchen.
	List(ctx context.Context, kitchen string) ([]order.PickedUpLogEntry, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type TripReportRepository interface {
	Create(ctx context.Context, t *order.TripReport) error
	GetByOrder(ctx context.Context, orderID string) (*order.TripReport, error)
	ListByDeliveryPerson(ctx context.Context, personID string) ([]order.TripReport, error)
	// MarkPickedUp flips a Pending trip to PickedUp. It reports false when
	// there is no Pending trip for the order.
	MarkPickedUp(ctx context.Context, orderID string, at time.Time) (bool, error)
}

// CounterRepository hands out persisted, strictly increasing numbers per prefix.
type CounterRepository interface {
	Next(ctx context.Context, prefix string) (int64, error)
}

// KitchenRoute tells which kitchen prepares a menu item and each of its
// addons and combos, keyed by name.
type KitchenRoute struct {
	Kitchen string
	Addons  map[string]string
	Combos  map[string]string
}

// Catalog resolves kitchens for cart items that reference a menu item.
type Catalog interface {
	KitchenRoute(ctx context.Context, menuItemID uint) (*KitchenRoute, error)
}

type DeliveryPerson struct {
	ID          string
	Name        string
	PhoneNumber string
}

type EmployeeDirectory interface {
	DeliveryPerson(ctx context.Context, id string) (*DeliveryPerson, error)
}

// Notifier delivers a text message. Implementations live in services/notify.
type Notifier interface {
	Send(ctx context.Context, recipient, body string) error
}
