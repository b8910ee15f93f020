package order

import (
	orderModel "restaurant-pos/models/order"
	"restaurant-pos/services/tracker"
	"restaurant-pos/types/validation"
)

type CartItemRequest struct {
	ID         string                 `json:"id"`
	MenuItemID *uint                  `json:"menuItemId"`
	Name       string                 `json:"name"`
	Quantity   int                    `json:"quantity" validate:"gte=0"`
	Category   string                 `json:"category"`
	Kitchen    string                 `json:"kitchen"`
	Size       string                 `json:"selectedSize"`
	Spicy      bool                   `json:"isSpicy"`
	Price      float64                `json:"price"`
	Addons     []orderModel.Component `json:"addons"`
	Combos     []orderModel.Component `json:"combos"`
}

func (r CartItemRequest) ToInput() tracker.CartItemInput {
	return tracker.CartItemInput{
		ID:         r.ID,
		MenuItemID: r.MenuItemID,
		Name:       r.Name,
		Quantity:   r.Quantity,
		Category:   r.Category,
		Kitchen:    r.Kitchen,
		Size:       r.Size,
		Spicy:      r.Spicy,
		Price:      r.Price,
		Addons:     r.Addons,
		Combos:     r.Combos,
	}
}

type CreateOrderRequest struct {
	OrderType       string                     `json:"orderType"`
	CustomerName    string                     `json:"customerName"`
	TableNumber     string                     `json:"tableNumber"`
	ChairsBooked    []string                   `json:"chairsBooked"`
	PhoneNumber     string                     `json:"phoneNumber"`
	WhatsappNumber  string                     `json:"whatsappNumber"`
	Email           string                     `json:"email" validate:"omitempty,email"`
	DeliveryAddress orderModel.DeliveryAddress `json:"deliveryAddress"`
	CartItems       []CartItemRequest          `json:"cartItems" validate:"dive"`
}

func (req *CreateOrderRequest) Validate() error {
	return validation.Validator().Struct(req)
}

func (req *CreateOrderRequest) ToInput() tracker.CreateOrderInput {
	in := tracker.CreateOrderInput{
		OrderType:       req.OrderType,
		CustomerName:    req.CustomerName,
		TableNumber:     req.TableNumber,
		ChairsBooked:    req.ChairsBooked,
		PhoneNumber:     req.PhoneNumber,
		WhatsappNumber:  req.WhatsappNumber,
		Email:           req.Email,
		DeliveryAddress: req.DeliveryAddress,
	}
	for _, item := range req.CartItems {
		in.CartItems = append(in.CartItems, item.ToInput())
	}
	return in
}

// UpdateOrderRequest changes only the fields present in the body.
type UpdateOrderRequest struct {
	OrderType        *string                     `json:"orderType"`
	CustomerName     *string                     `json:"customerName"`
	TableNumber      *string                     `json:"tableNumber"`
	ChairsBooked     *[]string                   `json:"chairsBooked"`
	PhoneNumber      *string                     `json:"phoneNumber"`
	WhatsappNumber   *string                     `json:"whatsappNumber"`
	Email            *string                     `json:"email" validate:"omitempty,email"`
	DeliveryAddress  *orderModel.DeliveryAddress `json:"deliveryAddress"`
	CartItems        *[]CartItemRequest          `json:"cartItems" validate:"omitempty,dive"`
	DeliveryPersonID *string                     `json:"deliveryPersonId"`
}

func (req *UpdateOrderRequest) Validate() error {
	return validation.Validator().Struct(req)
}

func (req *UpdateOrderRequest) ToPatch() tracker.OrderPatch {
	patch := tracker.OrderPatch{
		OrderType:        req.OrderType,
		CustomerName:     req.CustomerName,
		TableNumber:      req.TableNumber,
		ChairsBooked:     req.ChairsBooked,
		PhoneNumber:      req.PhoneNumber,
		WhatsappNumber:   req.WhatsappNumber,
		Email:            req.Email,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryPersonID: req.DeliveryPersonID,
	}
	if req.CartItems != nil {
		items := make([]tracker.CartItemInput, 0, len(*req.CartItems))
		for _, item := range *req.CartItems {
			items = append(items, item.ToInput())
		}
		patch.CartItems = &items
	}
	return patch
}

// KitchenActionRequest names the kitchen acting on a cart item.
type KitchenActionRequest struct {
	Kitchen string `json:"kitchen" validate:"required"`
}

func (req *KitchenActionRequest) Validate() error {
	return validation.Validator().Struct(req)
}
