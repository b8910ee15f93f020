package order

import (
	"reflect"
	"testing"
)

func grillBarItem() CartItem {
	return CartItem{
		ID:       "item-1",
		Name:     "Burger",
		Quantity: 1,
		Kitchen:  "Grill",
		Addons: []Component{
			{Name: "Fries", Kitchen: "Fryer", Quantity: 0},
			{Name: "Cheese", Kitchen: "Grill", Quantity: 2},
		},
		Combos: []Component{
			{Name: "Cola", Kitchen: "Bar", Quantity: 1},
		},
	}
}

func TestComputeRequiredKitchensIgnoresZeroQuantities(t *testing.T) {
	item := grillBarItem()
	got := item.ComputeRequiredKitchens()
	want := []string{"Bar", "Grill"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRefreshKitchensKeysMatchRequired(t *testing.T) {
	item := grillBarItem()
	item.RefreshKitchens(nil)

	if len(item.KitchenStatuses) != len(item.RequiredKitchens) {
		t.Fatalf("statuses %v do not match required %v", item.KitchenStatuses, item.RequiredKitchens)
	}
	for _, k := range item.RequiredKitchens {
		if item.KitchenStatuses[k] != KitchenStatusPending {
			t.Fatalf("kitchen %s starts %s, want Pending", k, item.KitchenStatuses[k])
		}
	}
}

func TestRefreshKitchensReconcilesPreviousStatuses(t *testing.T) {
	item := grillBarItem()
	previous := map[string]KitchenStatus{
		"Grill": KitchenStatusPrepared,
		"Bar":   KitchenStatusPickedUp,
	}

	// Drop the cola, add fries.
	item.Combos[0].Quantity = 0
	item.Addons[0].Quantity = 1
	item.RefreshKitchens(previous)

	want := map[string]KitchenStatus{
		"Grill": KitchenStatusPrepared,
		"Fryer": KitchenStatusPending,
	}
	if !reflect.DeepEqual(item.KitchenStatuses, want) {
		t.Fatalf("got %v want %v", item.KitchenStatuses, want)
	}
	if !reflect.DeepEqual(item.RequiredKitchens, []string{"Fryer", "Grill"}) {
		t.Fatalf("unexpected required kitchens %v", item.RequiredKitchens)
	}
}

func TestFullyPickedUp(t *testing.T) {
	empty := CartItem{}
	if !empty.FullyPickedUp() {
		t.Fatal("item without kitchens should be vacuously picked up")
	}

	item := grillBarItem()
	item.RefreshKitchens(nil)
	if item.FullyPickedUp() {
		t.Fatal("pending item reported as picked up")
	}

	item.KitchenStatuses["Grill"] = KitchenStatusPickedUp
	if item.FullyPickedUp() {
		t.Fatal("one of two kitchens picked up must not complete the item")
	}

	item.KitchenStatuses["Bar"] = KitchenStatusPickedUp
	if !item.FullyPickedUp() {
		t.Fatal("all kitchens picked up should complete the item")
	}
}

func TestComponentsForKitchen(t *testing.T) {
	item := grillBarItem()
	addons, combos := item.ComponentsForKitchen("Grill")
	if len(addons) != 1 || addons[0].Name != "Cheese" {
		t.Fatalf("unexpected grill addons %v", addons)
	}
	if len(combos) != 0 {
		t.Fatalf("unexpected grill combos %v", combos)
	}

	addons, combos = item.ComponentsForKitchen("Bar")
	if len(addons) != 0 || len(combos) != 1 || combos[0].Name != "Cola" {
		t.Fatalf("unexpected bar split %v %v", addons, combos)
	}
}

func TestCloneIsDeep(t *testing.T) {
	o := &Order{ID: "o1", CartItems: CartItems{grillBarItem()}}
	o.CartItems[0].RefreshKitchens(nil)

	c := o.Clone()
	c.CartItems[0].KitchenStatuses["Grill"] = KitchenStatusPrepared
	c.CartItems[0].Addons[0].Quantity = 9

	if o.CartItems[0].KitchenStatuses["Grill"] != KitchenStatusPending {
		t.Fatal("clone shares kitchen status map with original")
	}
	if o.CartItems[0].Addons[0].Quantity != 0 {
		t.Fatal("clone shares addon slice with original")
	}
}

func TestParseOrderType(t *testing.T) {
	cases := map[string]OrderType{
		"":                OrderTypeDineIn,
		"Dine In":         OrderTypeDineIn,
		"TakeAway":        OrderTypeTakeAway,
		"Take Away":       OrderTypeTakeAway,
		"Online Delivery": OrderTypeOnlineDelivery,
	}
	for in, want := range cases {
		got, ok := ParseOrderType(in)
		if !ok || got != want {
			t.Errorf("ParseOrderType(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseOrderType("drive-thru"); ok {
		t.Error("unknown order type accepted")
	}
}
