// Package tracker owns active orders and the per kitchen status of every cart
// item: Pending, then Prepared, then PickedUp, one kitchen at a time.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-pos/logger"
	"restaurant-pos/models/order"
	"restaurant-pos/repository"
	"restaurant-pos/types/apperror"

	"github.com/google/uuid"
)

const maxTransitionAttempts = 5

// ErrConcurrentUpdate is wrapped when an order kept changing under a transition.
var ErrConcurrentUpdate = errors.New("order changed concurrently")

// Dependencies are the stores and collaborators the tracker is built on.
// Catalog and Notifier are optional.
type Dependencies struct {
	Orders      OrderRepository
	Projection  ProjectionRepository
	PickedUpLog PickedUpLogRepository
	TripReports TripReportRepository
	Counters    CounterRepository
	Catalog     Catalog
	Employees   EmployeeDirectory
	Notifier    Notifier
}

type Tracker struct {
	orders     OrderRepository
	projection ProjectionRepository
	pickedUp   PickedUpLogRepository
	trips      TripReportRepository
	counters   CounterRepository
	catalog    Catalog
	employees  EmployeeDirectory
	notifier   Notifier
	policy     RetirementPolicy

	now   func() time.Time
	newID func() string
}

func New(deps Dependencies, policy RetirementPolicy) *Tracker {
	if policy == "" {
		policy = RemoveItem
	}
	return &Tracker{
		orders:     deps.Orders,
		projection: deps.Projection,
		pickedUp:   deps.PickedUpLog,
		trips:      deps.TripReports,
		counters:   deps.Counters,
		catalog:    deps.Catalog,
		employees:  deps.Employees,
		notifier:   deps.Notifier,
		policy:     policy,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (t *Tracker) Policy() RetirementPolicy {
	return t.policy
}

type writeAction int

const (
	storeOrder writeAction = iota
	removeOrder
)

// applyTransition is the only write path for existing orders. It loads the
// order, lets mutate change a private copy and stores the copy with a version
// guard. A lost race re-runs mutate against the fresh order, so guards inside
// mutate are always evaluated against what gets overwritten. The kitchen
// projection follows every successful write.
func (t *Tracker) applyTransition(ctx context.Context, orderID string, mutate func(o *order.Order) (writeAction, error)) (*order.Order, writeAction, error) {
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		current, err := t.loadOrder(ctx, orderID)
		if err != nil {
			return nil, storeOrder, err
		}

		next := current.Clone()
		action, err := mutate(next)
		if err != nil {
			return nil, storeOrder, err
		}

		var ok bool
		switch action {
		case removeOrder:
			ok, err = t.orders.DeleteIfVersion(ctx, orderID, current.Version)
		default:
			next.Version = current.Version + 1
			next.UpdatedAt = t.now()
			ok, err = t.orders.CompareAndSwap(ctx, next, current.Version)
		}
		if err != nil {
			return nil, action, apperror.Dependency(err, "failed to save order %s", orderID)
		}
		if !ok {
			logger.Debug(fmt.Sprintf("order %s changed during update, retrying (attempt %d)", orderID, attempt+1))
			continue
		}

		if action == removeOrder {
			t.dropProjection(ctx, orderID)
		} else {
			t.syncProjection(ctx, next)
		}
		return next, action, nil
	}
	return nil, storeOrder, apperror.Dependency(ErrConcurrentUpdate, "order %s is busy, try again", orderID)
}

func (t *Tracker) loadOrder(ctx context.Context, orderID string) (*order.Order, error) {
	o, err := t.orders.Get(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("order %s not found", orderID)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load order %s", orderID)
	}
	return o, nil
}

// syncProjection copies o to the kitchen store. The order store is the source
// of truth, so failures are only logged and left to the repair job.
func (t *Tracker) syncProjection(ctx context.Context, o *order.Order) {
	if err := t.projection.Upsert(ctx, order.NewKitchenOrder(o)); err != nil {
		logger.Error(fmt.Sprintf("Failed to update kitchen copy of order %s", o.ID), err)
	}
}

func (t *Tracker) dropProjection(ctx context.Context, orderID string) {
	if _, err := t.projection.Delete(ctx, orderID); err != nil {
		logger.Error(fmt.Sprintf("Failed to delete kitchen copy of order %s", orderID), err)
	}
}
