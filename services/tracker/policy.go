package tracker

import "fmt"

// RetirementPolicy decides what happens to a cart item once every kitchen has
// handed it over.
type RetirementPolicy string

const (
	// KeepItems leaves the item in the cart; the order is marked PickedUp once
	// all of its items are.
	KeepItems RetirementPolicy = "keep"
	// RemoveItem drops the item from the cart. An emptied order stays active
	// with status PickedUp.
	RemoveItem RetirementPolicy = "remove_item"
	// RemoveItemDeleteEmptyOrder drops the item and deletes the order when its
	// cart becomes empty.
	RemoveItemDeleteEmptyOrder RetirementPolicy = "remove_item_delete_empty_order"
)

func ParseRetirementPolicy(s string) (RetirementPolicy, error) {
	switch p := RetirementPolicy(s); p {
	case KeepItems, RemoveItem, RemoveItemDeleteEmptyOrder:
		return p, nil
	case "":
		return RemoveItem, nil
	default:
		return "", fmt.Errorf("unknown item retirement policy %q", s)
	}
}

func (p RetirementPolicy) removesItems() bool {
	return p == RemoveItem || p == RemoveItemDeleteEmptyOrder
}
