package order

import "strings"

// OrderType is how the customer receives the order.
type OrderType string

const (
	OrderTypeDineIn         OrderType = "DineIn"
	OrderTypeTakeAway       OrderType = "TakeAway"
	OrderTypeOnlineDelivery OrderType = "OnlineDelivery"
)

// ParseOrderType accepts both the canonical names and the labels used by the
// POS front end ("Dine In", "Take Away", "Online Delivery").
func ParseOrderType(s string) (OrderType, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch normalized {
	case "", "dinein":
		return OrderTypeDineIn, true
	case "takeaway":
		return OrderTypeTakeAway, true
	case "onlinedelivery", "delivery":
		return OrderTypeOnlineDelivery, true
	default:
		return "", false
	}
}

// NumberPrefix is the display prefix of sequential order numbers.
func (t OrderType) NumberPrefix() string {
	switch t {
	case OrderTypeTakeAway:
		return "T"
	case OrderTypeOnlineDelivery:
		return "ON"
	default:
		return "D"
	}
}

// NumberWidth is the zero padded width of the counter part of the order number.
func (t OrderType) NumberWidth() int {
	if t == OrderTypeOnlineDelivery {
		return 3
	}
	return 4
}

func (t OrderType) String() string {
	return string(t)
}

// OrderStatus is the overall status of an order or trip report.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pending"
	OrderStatusPickedUp OrderStatus = "PickedUp"
)

// KitchenStatus tracks one kitchen's share of one cart item.
type KitchenStatus string

const (
	KitchenStatusPending  KitchenStatus = "Pending"
	KitchenStatusPrepared KitchenStatus = "Prepared"
	KitchenStatusPickedUp KitchenStatus = "PickedUp"
)

func (ks KitchenStatus) String() string {
	return string(ks)
}

func (ks KitchenStatus) IsValid() bool {
	switch ks {
	case KitchenStatusPending, KitchenStatusPrepared, KitchenStatusPickedUp:
		return true
	default:
		return false
	}
}

// CanBePrepared rejects kitchens that already reached Prepared or PickedUp.
func (ks KitchenStatus) CanBePrepared() bool {
	return ks != KitchenStatusPrepared && ks != KitchenStatusPickedUp
}

// CanBePickedUp requires the kitchen to have passed through Prepared.
func (ks KitchenStatus) CanBePickedUp() bool {
	return ks == KitchenStatusPrepared
}
