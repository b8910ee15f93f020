package tracker

import (
	"context"
	"fmt"
	"strings"

	"restaurant-pos/logger"
	"restaurant-pos/models/order"
	"restaurant-pos/types/apperror"
)

// PickUpResult describes what a pick up did to the item and its order.
type PickUpResult struct {
	Status order.KitchenStatus `json:"status"`
	// ItemCompleted is set when this was the last kitchen of the item.
	ItemCompleted bool `json:"itemCompleted"`
	ItemRetired   bool `json:"itemRetired"`
	OrderClosed   bool `json:"orderClosed"`
}

// MarkItemPrepared moves one kitchen of one cart item from Pending to Prepared.
func (t *Tracker) MarkItemPrepared(ctx context.Context, orderID, itemID, kitchen string) (*order.CartItem, error) {
	kitchen = strings.TrimSpace(kitchen)
	if kitchen == "" {
		return nil, apperror.Validation("kitchen is required")
	}

	var prepared order.CartItem
	_, _, err := t.applyTransition(ctx, orderID, func(o *order.Order) (writeAction, error) {
		item, err := kitchenItem(o, itemID, kitchen)
		if err != nil {
			return storeOrder, err
		}
		if st := item.KitchenStatuses[kitchen]; !st.CanBePrepared() {
			return storeOrder, apperror.InvalidState("item %s is already %s in kitchen %s", itemID, st, kitchen)
		}
		item.KitchenStatuses[kitchen] = order.KitchenStatusPrepared
		prepared = item.Clone()
		return storeOrder, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("Order %s item %s prepared by %s", orderID, itemID, kitchen))
	return &prepared, nil
}

// MarkItemPickedUp moves one kitchen of one cart item from Prepared to
// PickedUp and records the hand over in the picked up log. When that was the
// last kitchen the configured retirement policy is applied.
func (t *Tracker) MarkItemPickedUp(ctx context.Context, orderID, itemID, kitchen string) (*PickUpResult, error) {
	kitchen = strings.TrimSpace(kitchen)
	if kitchen == "" {
		return nil, apperror.Validation("kitchen is required")
	}

	var (
		result   PickUpResult
		snapshot *order.Order
		handed   order.CartItem
	)
	_, action, err := t.applyTransition(ctx, orderID, func(o *order.Order) (writeAction, error) {
		result = PickUpResult{Status: order.KitchenStatusPickedUp}

		item, err := kitchenItem(o, itemID, kitchen)
		if err != nil {
			return storeOrder, err
		}
		if st := item.KitchenStatuses[kitchen]; !st.CanBePickedUp() {
			return storeOrder, apperror.InvalidState("item %s is %s in kitchen %s, it must be Prepared first", itemID, st, kitchen)
		}
		item.KitchenStatuses[kitchen] = order.KitchenStatusPickedUp
		handed = item.Clone()
		snapshot = o.Clone()

		result.ItemCompleted = item.FullyPickedUp()
		if result.ItemCompleted && t.policy.removesItems() {
			o.RemoveItem(itemID)
			result.ItemRetired = true
		}
		if t.policy == RemoveItemDeleteEmptyOrder && len(o.CartItems) == 0 {
			result.OrderClosed = true
			return removeOrder, nil
		}
		if o.Done() {
			o.Status = order.OrderStatusPickedUp
			result.OrderClosed = true
		}
		return storeOrder, nil
	})
	if err != nil {
		return nil, err
	}

	entry := order.NewPickedUpLogEntry(snapshot, &handed, kitchen, t.now())
	if err := t.pickedUp.Append(ctx, entry); err != nil {
		logger.Error(fmt.Sprintf("Failed to log pick up of item %s from kitchen %s", itemID, kitchen), err)
	}

	msg := fmt.Sprintf("Order %s item %s picked up from %s", orderID, itemID, kitchen)
	if result.ItemRetired {
		msg += ", item retired"
	}
	if action == removeOrder {
		msg += ", order removed"
	}
	logger.Info(msg)
	return &result, nil
}

// kitchenItem finds the cart item and checks kitchen is one it needs.
func kitchenItem(o *order.Order, itemID, kitchen string) (*order.CartItem, error) {
	idx, ok := o.FindItem(itemID)
	if !ok {
		return nil, apperror.NotFound("item %s not found in order %s", itemID, o.ID)
	}
	item := &o.CartItems[idx]
	if !item.Requires(kitchen) {
		return nil, apperror.InvalidState("kitchen %s is not required for item %s", kitchen, itemID)
	}
	return item, nil
}

// ListKitchenOrders reads the kitchen display copies.
func (t *Tracker) ListKitchenOrders(ctx context.Context) ([]order.Order, error) {
	rows, err := t.projection.List(ctx)
	if err != nil {
		return nil, apperror.Dependency(err, "failed to list kitchen orders")
	}
	orders := make([]order.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, *rows[i].Order())
	}
	return orders, nil
}

func (t *Tracker) ListPickedUpLog(ctx context.Context, kitchen string) ([]order.PickedUpLogEntry, error) {
	entries, err := t.pickedUp.List(ctx, strings.TrimSpace(kitchen))
	if err != nil {
		return nil, apperror.Dependency(err, "failed to list picked up items")
	}
	if entries == nil {
		entries = []order.PickedUpLogEntry{}
	}
	return entries, nil
}

func (t *Tracker) DeletePickedUpLogEntry(ctx context.Context, id uint) error {
	removed, err := t.pickedUp.Delete(ctx, id)
	if err != nil {
		return apperror.Dependency(err, "failed to delete picked up item %d", id)
	}
	if !removed {
		return apperror.NotFound("picked up item %d not found", id)
	}
	return nil
}
