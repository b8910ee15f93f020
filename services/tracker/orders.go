package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-pos/logger"
	"restaurant-pos/models/order"
	"restaurant-pos/repository"
	"restaurant-pos/types/apperror"
)

const notAvailable = "N/A"

type CartItemInput struct {
	ID         string
	MenuItemID *uint
	Name       string
	Quantity   int
	Category   string
	Kitchen    string
	Size       string
	Spicy      bool
	Price      float64
	Addons     []order.Component
	Combos     []order.Component
}

type CreateOrderInput struct {
	OrderType       string
	CustomerName    string
	TableNumber     string
	ChairsBooked    []string
	PhoneNumber     string
	WhatsappNumber  string
	Email           string
	DeliveryAddress order.DeliveryAddress
	CartItems       []CartItemInput
}

// OrderPatch carries the fields to change. Nil fields are left alone.
type OrderPatch struct {
	OrderType        *string
	CustomerName     *string
	TableNumber      *string
	ChairsBooked     *[]string
	PhoneNumber      *string
	WhatsappNumber   *string
	Email            *string
	DeliveryAddress  *order.DeliveryAddress
	CartItems        *[]CartItemInput
	DeliveryPersonID *string
}

type CreateResult struct {
	OrderID string `json:"orderId"`
	OrderNo string `json:"orderNo"`
}

// UpdateResult holds the updated order, or the trip report when the update
// assigned a delivery person and the order left the active list.
type UpdateResult struct {
	Order      *order.Order      `json:"order,omitempty"`
	TripReport *order.TripReport `json:"tripReport,omitempty"`
}

func (t *Tracker) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateResult, error) {
	orderType, ok := order.ParseOrderType(in.OrderType)
	if !ok {
		return nil, apperror.Validation("unknown order type %q", in.OrderType)
	}
	items, err := t.buildCart(ctx, in.CartItems, nil)
	if err != nil {
		return nil, err
	}

	n, err := t.counters.Next(ctx, orderType.NumberPrefix())
	if err != nil {
		return nil, apperror.Dependency(err, "failed to allocate order number")
	}

	now := t.now()
	o := &order.Order{
		ID:              t.newID(),
		OrderNo:         order.FormatOrderNo(orderType, n),
		Type:            orderType,
		CustomerName:    in.CustomerName,
		TableNumber:     in.TableNumber,
		ChairsBooked:    order.StringSlice(in.ChairsBooked),
		PhoneNumber:     in.PhoneNumber,
		WhatsappNumber:  in.WhatsappNumber,
		Email:           in.Email,
		DeliveryAddress: in.DeliveryAddress,
		CartItems:       items,
		Status:          order.OrderStatusPending,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	normalizeOrder(o)

	if err := t.orders.Create(ctx, o); err != nil {
		return nil, apperror.Dependency(err, "failed to save order")
	}
	t.syncProjection(ctx, o)

	logger.Success(fmt.Sprintf("Order %s created as %s with %d items", o.ID, o.OrderNo, len(o.CartItems)))
	return &CreateResult{OrderID: o.ID, OrderNo: o.OrderNo}, nil
}

// UpdateOrder applies patch to an active order. A non-empty delivery person
// turns the update into a hand over: the patched order becomes a trip report
// and leaves both order stores.
func (t *Tracker) UpdateOrder(ctx context.Context, orderID string, patch OrderPatch) (*UpdateResult, error) {
	if patch.OrderType != nil {
		if _, ok := order.ParseOrderType(*patch.OrderType); !ok {
			return nil, apperror.Validation("unknown order type %q", *patch.OrderType)
		}
	}
	if patch.CartItems != nil {
		if err := validateCartInputs(*patch.CartItems); err != nil {
			return nil, err
		}
	}

	if patch.DeliveryPersonID != nil && strings.TrimSpace(*patch.DeliveryPersonID) != "" {
		return t.assignDelivery(ctx, orderID, strings.TrimSpace(*patch.DeliveryPersonID), patch)
	}

	// Catalog lookups happen per attempt since they need the current cart.
	updated, _, err := t.applyTransition(ctx, orderID, func(o *order.Order) (writeAction, error) {
		if err := t.applyPatch(ctx, o, patch); err != nil {
			return storeOrder, err
		}
		return storeOrder, nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{Order: updated}, nil
}

func (t *Tracker) applyPatch(ctx context.Context, o *order.Order, patch OrderPatch) error {
	if patch.OrderType != nil {
		o.Type, _ = order.ParseOrderType(*patch.OrderType)
	}
	if patch.CustomerName != nil {
		o.CustomerName = *patch.CustomerName
	}
	if patch.TableNumber != nil {
		o.TableNumber = *patch.TableNumber
	}
	if patch.ChairsBooked != nil {
		o.ChairsBooked = order.StringSlice(*patch.ChairsBooked)
	}
	if patch.PhoneNumber != nil {
		o.PhoneNumber = *patch.PhoneNumber
	}
	if patch.WhatsappNumber != nil {
		o.WhatsappNumber = *patch.WhatsappNumber
	}
	if patch.Email != nil {
		o.Email = *patch.Email
	}
	if patch.DeliveryAddress != nil {
		o.DeliveryAddress = *patch.DeliveryAddress
	}
	if patch.CartItems != nil {
		items, err := t.buildCart(ctx, *patch.CartItems, o.CartItems)
		if err != nil {
			return err
		}
		o.CartItems = items
		if len(items) > 0 && !o.Done() {
			o.Status = order.OrderStatusPending
		}
	}
	normalizeOrder(o)
	return nil
}

func (t *Tracker) DeleteOrder(ctx context.Context, orderID string) error {
	removed, err := t.orders.Delete(ctx, orderID)
	if err != nil {
		return apperror.Dependency(err, "failed to delete order %s", orderID)
	}
	projected, err := t.projection.Delete(ctx, orderID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to delete kitchen copy of order %s", orderID), err)
	}
	if !removed && !projected {
		return apperror.NotFound("order %s not found", orderID)
	}
	logger.Info(fmt.Sprintf("Order %s deleted", orderID))
	return nil
}

func (t *Tracker) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	return t.loadOrder(ctx, orderID)
}

func (t *Tracker) ListActiveOrders(ctx context.Context) ([]order.Order, error) {
	orders, err := t.orders.List(ctx)
	if err != nil {
		return nil, apperror.Dependency(err, "failed to list orders")
	}
	if orders == nil {
		orders = []order.Order{}
	}
	return orders, nil
}

// buildCart turns inputs into cart items. Items whose id matches one in
// previous keep the kitchen statuses that are still required.
func (t *Tracker) buildCart(ctx context.Context, inputs []CartItemInput, previous order.CartItems) (order.CartItems, error) {
	if err := validateCartInputs(inputs); err != nil {
		return nil, err
	}

	prev := make(map[string]map[string]order.KitchenStatus, len(previous))
	for _, item := range previous {
		prev[item.ID] = item.KitchenStatuses
	}

	items := make(order.CartItems, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		item := order.CartItem{
			ID:         strings.TrimSpace(in.ID),
			MenuItemID: in.MenuItemID,
			Name:       in.Name,
			Quantity:   in.Quantity,
			Category:   in.Category,
			Kitchen:    strings.TrimSpace(in.Kitchen),
			Size:       in.Size,
			Spicy:      in.Spicy,
			Price:      in.Price,
			Addons:     append([]order.Component{}, in.Addons...),
			Combos:     append([]order.Component{}, in.Combos...),
		}
		if item.ID == "" {
			item.ID = t.newID()
		}
		if seen[item.ID] {
			return nil, apperror.Validation("duplicate cart item id %s", item.ID)
		}
		seen[item.ID] = true
		if strings.TrimSpace(item.Name) == "" {
			item.Name = notAvailable
		}

		if err := t.routeKitchens(ctx, &item); err != nil {
			return nil, err
		}
		item.RefreshKitchens(prev[item.ID])
		items = append(items, item)
	}
	return items, nil
}

// routeKitchens fills kitchens the caller left blank from the menu catalog.
func (t *Tracker) routeKitchens(ctx context.Context, item *order.CartItem) error {
	if item.MenuItemID == nil || t.catalog == nil || !missingKitchen(item) {
		return nil
	}
	route, err := t.catalog.KitchenRoute(ctx, *item.MenuItemID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("menu item %d not found", *item.MenuItemID)
	}
	if err != nil {
		return apperror.Dependency(err, "failed to look up menu item %d", *item.MenuItemID)
	}

	if item.Kitchen == "" {
		item.Kitchen = route.Kitchen
	}
	for i := range item.Addons {
		if item.Addons[i].Kitchen == "" {
			item.Addons[i].Kitchen = route.Addons[item.Addons[i].Name]
		}
	}
	for i := range item.Combos {
		if item.Combos[i].Kitchen == "" {
			item.Combos[i].Kitchen = route.Combos[item.Combos[i].Name]
		}
	}
	return nil
}

func missingKitchen(item *order.CartItem) bool {
	if item.Kitchen == "" {
		return true
	}
	for _, list := range [][]order.Component{item.Addons, item.Combos} {
		for _, c := range list {
			if c.Quantity > 0 && c.Kitchen == "" {
				return true
			}
		}
	}
	return false
}

func validateCartInputs(inputs []CartItemInput) error {
	for i, in := range inputs {
		if in.Quantity < 0 {
			return apperror.Validation("cart item %d has a negative quantity", i)
		}
		for _, list := range [][]order.Component{in.Addons, in.Combos} {
			for _, c := range list {
				if c.Quantity < 0 {
					return apperror.Validation("%s on cart item %d has a negative quantity", c.Name, i)
				}
			}
		}
	}
	return nil
}

// normalizeOrder fills display defaults and clears fields that do not apply
// to the order type.
func normalizeOrder(o *order.Order) {
	if strings.TrimSpace(o.CustomerName) == "" {
		o.CustomerName = notAvailable
	}
	if o.Type != order.OrderTypeDineIn {
		o.TableNumber = notAvailable
		o.ChairsBooked = nil
	} else if strings.TrimSpace(o.TableNumber) == "" {
		o.TableNumber = notAvailable
	}
	if o.Type != order.OrderTypeOnlineDelivery {
		o.DeliveryAddress = order.DeliveryAddress{}
	}
	if o.ChairsBooked == nil {
		o.ChairsBooked = order.StringSlice{}
	}
	if o.CartItems == nil {
		o.CartItems = order.CartItems{}
	}
}
