package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/logger"
	"restaurant-pos/models/order"
	"restaurant-pos/repository"
	"restaurant-pos/types/apperror"
)

const notifyTimeout = 30 * time.Second

// assignDelivery hands the patched order to a delivery person. The order is
// removed through the guarded write path first and the trip report is written
// from exactly what was removed; if the report cannot be saved the order is
// put back.
func (t *Tracker) assignDelivery(ctx context.Context, orderID, personID string, patch OrderPatch) (*UpdateResult, error) {
	person, err := t.deliveryPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	patch.DeliveryPersonID = nil
	var handed *order.Order
	_, _, err = t.applyTransition(ctx, orderID, func(o *order.Order) (writeAction, error) {
		if err := t.applyPatch(ctx, o, patch); err != nil {
			return storeOrder, err
		}
		o.DeliveryPersonID = &person.ID
		handed = o.Clone()
		return removeOrder, nil
	})
	if err != nil {
		return nil, err
	}

	trip := order.NewTripReport(t.newID(), handed, person.ID, person.Name, t.now())
	if err := t.trips.Create(ctx, trip); err != nil {
		t.restoreOrder(ctx, handed)
		return nil, apperror.Dependency(err, "failed to save trip report for order %s", orderID)
	}

	logger.Success(fmt.Sprintf("Order %s handed to delivery person %s as trip %s", handed.OrderNo, person.ID, trip.TripID))
	t.notifyDeliveryPerson(ctx, person, trip)
	return &UpdateResult{TripReport: trip}, nil
}

func (t *Tracker) restoreOrder(ctx context.Context, o *order.Order) {
	o.DeliveryPersonID = nil
	o.Version++
	if err := t.orders.Create(ctx, o); err != nil {
		logger.Error(fmt.Sprintf("Failed to restore order %s after trip report failure", o.ID), err)
		return
	}
	t.syncProjection(ctx, o)
}

func (t *Tracker) deliveryPerson(ctx context.Context, id string) (*DeliveryPerson, error) {
	if t.employees == nil {
		return nil, apperror.NotFound("delivery person %s not found", id)
	}
	person, err := t.employees.DeliveryPerson(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("delivery person %s not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to look up delivery person %s", id)
	}
	return person, nil
}

// notifyDeliveryPerson sends the trip details in the background. Delivery
// problems never reach the caller.
func (t *Tracker) notifyDeliveryPerson(ctx context.Context, person *DeliveryPerson, trip *order.TripReport) {
	if t.notifier == nil || person.PhoneNumber == "" {
		return
	}
	body := TripMessage(trip)
	ctx = context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()
		if err := t.notifier.Send(ctx, person.PhoneNumber, body); err != nil {
			logger.Error(fmt.Sprintf("Failed to notify delivery person %s about order %s", person.ID, trip.OrderNo), err)
		}
	}()
}

// TripMessage is the text sent to a delivery person for a new trip.
func TripMessage(trip *order.TripReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New delivery %s\n", trip.OrderNo)
	fmt.Fprintf(&b, "Customer: %s\n", trip.CustomerName)
	if trip.PhoneNumber != "" {
		fmt.Fprintf(&b, "Phone: %s\n", trip.PhoneNumber)
	}
	if addr := trip.DeliveryAddress.String(); addr != "" {
		fmt.Fprintf(&b, "Address: %s\n", addr)
	}
	if trip.DeliveryAddress.Landmark != "" {
		fmt.Fprintf(&b, "Landmark: %s\n", trip.DeliveryAddress.Landmark)
	}

	items := make([]string, 0, len(trip.CartItems))
	for _, item := range trip.CartItems {
		items = append(items, fmt.Sprintf("%d x %s", item.Quantity, item.Name))
	}
	fmt.Fprintf(&b, "Items: %s", strings.Join(items, ", "))
	return b.String()
}

func (t *Tracker) ListTripReports(ctx context.Context, personID string) ([]order.TripReport, error) {
	personID = strings.TrimSpace(personID)
	if personID == "" {
		return nil, apperror.Validation("delivery person id is required")
	}
	trips, err := t.trips.ListByDeliveryPerson(ctx, personID)
	if err != nil {
		return nil, apperror.Dependency(err, "failed to list trip reports")
	}
	if trips == nil {
		trips = []order.TripReport{}
	}
	return trips, nil
}

// MarkTripPickedUp records that the delivery person confirmed the trip.
func (t *Tracker) MarkTripPickedUp(ctx context.Context, orderID string) (*order.TripReport, error) {
	trip, err := t.trips.GetByOrder(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("no trip report for order %s", orderID)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load trip report for order %s", orderID)
	}
	if trip.Status == order.OrderStatusPickedUp {
		return nil, apperror.InvalidState("trip for order %s is already picked up", orderID)
	}

	at := t.now()
	ok, err := t.trips.MarkPickedUp(ctx, orderID, at)
	if err != nil {
		return nil, apperror.Dependency(err, "failed to update trip report for order %s", orderID)
	}
	if !ok {
		return nil, apperror.InvalidState("trip for order %s is already picked up", orderID)
	}

	trip.Status = order.OrderStatusPickedUp
	trip.PickedUpTime = &at
	return trip, nil
}
