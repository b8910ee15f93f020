package order

import "sort"

// Component is an addon or combo attached to a cart item. Each component is
// routed to its own kitchen.
type Component struct {
	Name     string  `json:"name"`
	Kitchen  string  `json:"kitchen"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	Spicy    bool    `json:"spicy,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// CartItem is one line of an order cart.
type CartItem struct {
	// ID is local to the order and unrelated to the menu item id.
	ID         string  `json:"id"`
	MenuItemID *uint   `json:"menuItemId,omitempty"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Category   string  `json:"category"`
	Kitchen    string  `json:"kitchen"`
	Size       string  `json:"selectedSize,omitempty"`
	Spicy      bool    `json:"isSpicy,omitempty"`
	Price      float64 `json:"price,omitempty"`

	Addons []Component `json:"addons"`
	Combos []Component `json:"combos"`

	RequiredKitchens []string                 `json:"requiredKitchens"`
	KitchenStatuses  map[string]KitchenStatus `json:"kitchenStatuses"`
}

// ComputeRequiredKitchens returns the sorted set made of the item kitchen and
// the kitchen of every addon or combo ordered with a positive quantity.
func (ci *CartItem) ComputeRequiredKitchens() []string {
	set := make(map[string]struct{})
	if ci.Kitchen != "" {
		set[ci.Kitchen] = struct{}{}
	}
	for _, list := range [][]Component{ci.Addons, ci.Combos} {
		for _, c := range list {
			if c.Quantity > 0 && c.Kitchen != "" {
				set[c.Kitchen] = struct{}{}
			}
		}
	}

	kitchens := make([]string, 0, len(set))
	for k := range set {
		kitchens = append(kitchens, k)
	}
	sort.Strings(kitchens)
	return kitchens
}

// RefreshKitchens recomputes RequiredKitchens and reconciles KitchenStatuses
// against previous: statuses of kitchens still required are kept, kitchens no
// longer required are dropped and new kitchens start Pending.
func (ci *CartItem) RefreshKitchens(previous map[string]KitchenStatus) {
	ci.RequiredKitchens = ci.ComputeRequiredKitchens()

	statuses := make(map[string]KitchenStatus, len(ci.RequiredKitchens))
	for _, k := range ci.RequiredKitchens {
		if st, ok := previous[k]; ok && st.IsValid() {
			statuses[k] = st
			continue
		}
		statuses[k] = KitchenStatusPending
	}
	ci.KitchenStatuses = statuses
}

// Requires reports whether kitchen is one of the item's required kitchens.
func (ci *CartItem) Requires(kitchen string) bool {
	for _, k := range ci.RequiredKitchens {
		if k == kitchen {
			return true
		}
	}
	return false
}

// FullyPickedUp is true when every kitchen status is PickedUp. An item with no
// required kitchens is vacuously picked up.
func (ci *CartItem) FullyPickedUp() bool {
	for _, st := range ci.KitchenStatuses {
		if st != KitchenStatusPickedUp {
			return false
		}
	}
	return true
}

// ComponentsForKitchen splits out the ordered addons and combos routed to kitchen.
func (ci *CartItem) ComponentsForKitchen(kitchen string) (addons, combos []Component) {
	for _, a := range ci.Addons {
		if a.Quantity > 0 && a.Kitchen == kitchen {
			addons = append(addons, a)
		}
	}
	for _, c := range ci.Combos {
		if c.Quantity > 0 && c.Kitchen == kitchen {
			combos = append(combos, c)
		}
	}
	return addons, combos
}

func (ci CartItem) Clone() CartItem {
	c := ci
	if ci.MenuItemID != nil {
		id := *ci.MenuItemID
		c.MenuItemID = &id
	}
	c.Addons = append([]Component(nil), ci.Addons...)
	c.Combos = append([]Component(nil), ci.Combos...)
	c.RequiredKitchens = append([]string(nil), ci.RequiredKitchens...)
	if ci.KitchenStatuses != nil {
		c.KitchenStatuses = make(map[string]KitchenStatus, len(ci.KitchenStatuses))
		for k, v := range ci.KitchenStatuses {
			c.KitchenStatuses[k] = v
		}
	}
	return c
}
