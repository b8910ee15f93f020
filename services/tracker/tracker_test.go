package tracker

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"restaurant-pos/models/order"
	"restaurant-pos/repository"
	"restaurant-pos/repository/memory"
	"restaurant-pos/types/apperror"
)

type harness struct {
	tracker    *Tracker
	orders     *memory.OrderStore
	projection *memory.ProjectionStore
	log        *memory.PickedUpLog
	trips      *memory.TripReports
	notifier   *recordingNotifier
}

func newHarness(t *testing.T, policy RetirementPolicy) *harness {
	t.Helper()
	h := &harness{
		orders:     memory.NewOrderStore(),
		projection: memory.NewProjectionStore(),
		log:        memory.NewPickedUpLog(),
		trips:      memory.NewTripReports(),
		notifier:   &recordingNotifier{sent: make(chan string, 4)},
	}
	h.tracker = New(Dependencies{
		Orders:      h.orders,
		Projection:  h.projection,
		PickedUpLog: h.log,
		TripReports: h.trips,
		Counters:    memory.NewCounters(),
		Catalog:     fakeCatalog{},
		Employees: fakeDirectory{
			"EMP00001": {ID: "EMP00001", Name: "Ravi", PhoneNumber: "+971501234567"},
		},
		Notifier: h.notifier,
	}, policy)
	return h
}

type recordingNotifier struct {
	sent chan string
}

func (n *recordingNotifier) Send(_ context.Context, recipient, body string) error {
	n.sent <- recipient + "|" + body
	return nil
}

type fakeDirectory map[string]DeliveryPerson

func (d fakeDirectory) DeliveryPerson(_ context.Context, id string) (*DeliveryPerson, error) {
	p, ok := d[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

type fakeCatalog struct{}

func (fakeCatalog) KitchenRoute(_ context.Context, id uint) (*KitchenRoute, error) {
	if id != 42 {
		return nil, repository.ErrNotFound
	}
	return &KitchenRoute{
		Kitchen: "Tandoor",
		Addons:  map[string]string{"Raita": "Cold"},
	}, nil
}

// failingProjection rejects every write.
type failingProjection struct {
	*memory.ProjectionStore
}

func (failingProjection) Upsert(context.Context, *order.KitchenOrder) error {
	return errors.New("projection store offline")
}

func grillBarInput() CreateOrderInput {
	return CreateOrderInput{
		OrderType:    "Dine In",
		CustomerName: "Asha",
		TableNumber:  "T4",
		ChairsBooked: []string{"1", "2"},
		CartItems: []CartItemInput{{
			ID:       "burger",
			Name:     "Burger",
			Quantity: 1,
			Kitchen:  "Grill",
			Combos:   []order.Component{{Name: "Cola", Kitchen: "Bar", Quantity: 1}},
			Addons:   []order.Component{{Name: "Fries", Kitchen: "Fryer", Quantity: 0}},
		}},
	}
}

func mustCreate(t *testing.T, h *harness, in CreateOrderInput) *CreateResult {
	t.Helper()
	res, err := h.tracker.CreateOrder(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return res
}

func mustGet(t *testing.T, h *harness, id string) *order.Order {
	t.Helper()
	o, err := h.tracker.GetOrder(context.Background(), id)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	return o
}

func assertKind(t *testing.T, err error, kind *apperror.Error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %s error, got %v", kind.Kind, err)
	}
}

func assertStatusKeysMatch(t *testing.T, o *order.Order) {
	t.Helper()
	for _, item := range o.CartItems {
		keys := make([]string, 0, len(item.KitchenStatuses))
		for k := range item.KitchenStatuses {
			keys = append(keys, k)
		}
		for _, k := range item.RequiredKitchens {
			if _, ok := item.KitchenStatuses[k]; !ok {
				t.Fatalf("item %s: kitchen %s has no status", item.ID, k)
			}
		}
		if len(keys) != len(item.RequiredKitchens) {
			t.Fatalf("item %s: statuses %v do not match required %v", item.ID, item.KitchenStatuses, item.RequiredKitchens)
		}
	}
}

func TestCreateOrderInitialisesKitchenStatuses(t *testing.T) {
	h := newHarness(t, KeepItems)
	res := mustCreate(t, h, grillBarInput())

	if res.OrderNo != "D0001" {
		t.Fatalf("unexpected order number %s", res.OrderNo)
	}
	o := mustGet(t, h, res.OrderID)
	assertStatusKeysMatch(t, o)

	item := o.CartItems[0]
	want := map[string]order.KitchenStatus{"Bar": order.KitchenStatusPending, "Grill": order.KitchenStatusPending}
	if !reflect.DeepEqual(item.KitchenStatuses, want) {
		t.Fatalf("got %v want %v", item.KitchenStatuses, want)
	}
	if o.Status != order.OrderStatusPending || o.Version != 1 {
		t.Fatalf("unexpected status %s version %d", o.Status, o.Version)
	}

	k, err := h.projection.Get(context.Background(), res.OrderID)
	if err != nil {
		t.Fatalf("kitchen copy missing: %v", err)
	}
	if !reflect.DeepEqual(k.Order().CartItems, o.CartItems) {
		t.Fatal("kitchen copy differs from order")
	}
}

func TestCreateOrderDefaults(t *testing.T) {
	h := newHarness(t, KeepItems)
	res := mustCreate(t, h, CreateOrderInput{
		OrderType:    "Take Away",
		TableNumber:  "T9",
		ChairsBooked: []string{"3"},
		CartItems:    []CartItemInput{{Name: "Tea", Quantity: 1, Kitchen: "Bar"}},
	})
	o := mustGet(t, h, res.OrderID)

	if o.CustomerName != "N/A" || o.TableNumber != "N/A" {
		t.Fatalf("defaults not applied: %+v", o)
	}
	if len(o.ChairsBooked) != 0 {
		t.Fatalf("chairs kept on a takeaway order: %v", o.ChairsBooked)
	}
	if o.CartItems[0].ID == "" {
		t.Fatal("cart item id not generated")
	}

	_, err := h.tracker.CreateOrder(context.Background(), CreateOrderInput{OrderType: "drone"})
	assertKind(t, err, apperror.ErrValidation)

	_, err = h.tracker.CreateOrder(context.Background(), CreateOrderInput{
		CartItems: []CartItemInput{{Name: "Tea", Quantity: -1}},
	})
	assertKind(t, err, apperror.ErrValidation)
}

func TestOrderNumbersIncreasePerType(t *testing.T) {
	h := newHarness(t, KeepItems)
	var got []string
	for _, typ := range []string{"DineIn", "DineIn", "TakeAway", "OnlineDelivery", "DineIn", "OnlineDelivery"} {
		got = append(got, mustCreate(t, h, CreateOrderInput{OrderType: typ}).OrderNo)
	}
	want := []string{"D0001", "D0002", "T0001", "ON001", "D0003", "ON002"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	// Numbers are never reused after a delete.
	first := mustCreate(t, h, CreateOrderInput{OrderType: "TakeAway"})
	if err := h.tracker.DeleteOrder(context.Background(), first.OrderID); err != nil {
		t.Fatal(err)
	}
	if next := mustCreate(t, h, CreateOrderInput{OrderType: "TakeAway"}); next.OrderNo != "T0003" {
		t.Fatalf("expected T0003 after delete, got %s", next.OrderNo)
	}
}

func TestCreateOrderRoutesKitchensFromCatalog(t *testing.T) {
	h := newHarness(t, KeepItems)
	menuID := uint(42)
	res := mustCreate(t, h, CreateOrderInput{CartItems: []CartItemInput{{
		MenuItemID: &menuID,
		Name:       "Naan",
		Quantity:   2,
		Addons:     []order.Component{{Name: "Raita", Quantity: 1}},
	}}})

	item := mustGet(t, h, res.OrderID).CartItems[0]
	if !reflect.DeepEqual(item.RequiredKitchens, []string{"Cold", "Tandoor"}) {
		t.Fatalf("unexpected kitchens %v", item.RequiredKitchens)
	}

	unknown := uint(7)
	_, err := h.tracker.CreateOrder(context.Background(), CreateOrderInput{CartItems: []CartItemInput{{MenuItemID: &unknown}}})
	assertKind(t, err, apperror.ErrNotFound)
}

func TestMarkItemPreparedGuards(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID

	item, err := h.tracker.MarkItemPrepared(ctx, id, "burger", "Grill")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]order.KitchenStatus{"Grill": order.KitchenStatusPrepared, "Bar": order.KitchenStatusPending}
	if !reflect.DeepEqual(item.KitchenStatuses, want) {
		t.Fatalf("got %v want %v", item.KitchenStatuses, want)
	}

	_, err = h.tracker.MarkItemPrepared(ctx, id, "burger", "Grill")
	assertKind(t, err, apperror.ErrInvalidState)

	_, err = h.tracker.MarkItemPrepared(ctx, id, "burger", "Fryer")
	assertKind(t, err, apperror.ErrInvalidState)

	_, err = h.tracker.MarkItemPrepared(ctx, id, "pizza", "Grill")
	assertKind(t, err, apperror.ErrNotFound)

	_, err = h.tracker.MarkItemPrepared(ctx, "missing", "burger", "Grill")
	assertKind(t, err, apperror.ErrNotFound)

	o := mustGet(t, h, id)
	if o.Version != 2 {
		t.Fatalf("rejected transitions must not write, version is %d", o.Version)
	}
	k, _ := h.projection.Get(ctx, id)
	if k.Order().CartItems[0].KitchenStatuses["Grill"] != order.KitchenStatusPrepared {
		t.Fatal("kitchen copy not updated")
	}
}

func TestMarkItemPickedUpRequiresPrepared(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID

	_, err := h.tracker.MarkItemPickedUp(ctx, id, "burger", "Grill")
	assertKind(t, err, apperror.ErrInvalidState)

	if _, err := h.tracker.MarkItemPrepared(ctx, id, "burger", "Grill"); err != nil {
		t.Fatal(err)
	}
	if _, err := h.tracker.MarkItemPickedUp(ctx, id, "burger", "Grill"); err != nil {
		t.Fatal(err)
	}
	_, err = h.tracker.MarkItemPickedUp(ctx, id, "burger", "Grill")
	assertKind(t, err, apperror.ErrInvalidState)
	_, err = h.tracker.MarkItemPrepared(ctx, id, "burger", "Grill")
	assertKind(t, err, apperror.ErrInvalidState)
}

func TestTwoKitchenItemScenario(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID

	if _, err := h.tracker.MarkItemPrepared(ctx, id, "burger", "Grill"); err != nil {
		t.Fatal(err)
	}
	// Grill does not wait for Bar.
	res, err := h.tracker.MarkItemPickedUp(ctx, id, "burger", "Grill")
	if err != nil {
		t.Fatal(err)
	}
	if res.ItemCompleted || res.OrderClosed {
		t.Fatalf("item completed with Bar still pending: %+v", res)
	}

	if _, err := h.tracker.MarkItemPrepared(ctx, id, "burger", "Bar"); err != nil {
		t.Fatal(err)
	}
	res, err = h.tracker.MarkItemPickedUp(ctx, id, "burger", "Bar")
	if err != nil {
		t.Fatal(err)
	}
	if !res.ItemCompleted || res.ItemRetired || !res.OrderClosed {
		t.Fatalf("unexpected result %+v", res)
	}

	o := mustGet(t, h, id)
	if !o.CartItems[0].FullyPickedUp() || o.Status != order.OrderStatusPickedUp {
		t.Fatalf("order not closed: %+v", o)
	}

	entries, err := h.tracker.ListPickedUpLog(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected one log entry per kitchen, got %d", len(entries))
	}
	byKitchen := map[string]order.PickedUpLogEntry{}
	for _, e := range entries {
		byKitchen[e.Kitchen] = e
	}
	if combos := byKitchen["Bar"].Combos.Data(); len(combos) != 1 || combos[0].Name != "Cola" {
		t.Fatalf("bar entry should carry the cola, got %v", combos)
	}
	if combos := byKitchen["Grill"].Combos.Data(); len(combos) != 0 {
		t.Fatalf("grill entry should not carry bar combos, got %v", combos)
	}
	if byKitchen["Grill"].CustomerName != "Asha" || byKitchen["Grill"].TableNumber != "T4" {
		t.Fatalf("log entry lost order details: %+v", byKitchen["Grill"])
	}

	barOnly, _ := h.tracker.ListPickedUpLog(ctx, "Bar")
	if len(barOnly) != 1 {
		t.Fatalf("kitchen filter returned %d entries", len(barOnly))
	}
}

func pickUpAll(t *testing.T, h *harness, orderID, itemID string, kitchens ...string) *PickUpResult {
	t.Helper()
	ctx := context.Background()
	var res *PickUpResult
	for _, k := range kitchens {
		if _, err := h.tracker.MarkItemPrepared(ctx, orderID, itemID, k); err != nil {
			t.Fatal(err)
		}
		var err error
		if res, err = h.tracker.MarkItemPickedUp(ctx, orderID, itemID, k); err != nil {
			t.Fatal(err)
		}
	}
	return res
}

func twoItemInput() CreateOrderInput {
	in := grillBarInput()
	in.CartItems = append(in.CartItems, CartItemInput{ID: "tea", Name: "Tea", Quantity: 1, Kitchen: "Bar"})
	return in
}

func TestRemoveItemPolicy(t *testing.T) {
	h := newHarness(t, RemoveItem)
	id := mustCreate(t, h, twoItemInput()).OrderID

	res := pickUpAll(t, h, id, "burger", "Grill", "Bar")
	if !res.ItemRetired || res.OrderClosed {
		t.Fatalf("unexpected result %+v", res)
	}
	o := mustGet(t, h, id)
	if len(o.CartItems) != 1 || o.CartItems[0].ID != "tea" {
		t.Fatalf("burger not retired: %+v", o.CartItems)
	}

	res = pickUpAll(t, h, id, "tea", "Bar")
	if !res.OrderClosed {
		t.Fatalf("empty order should be closed: %+v", res)
	}
	o = mustGet(t, h, id)
	if len(o.CartItems) != 0 || o.Status != order.OrderStatusPickedUp {
		t.Fatalf("unexpected order %+v", o)
	}
}

func TestRemoveItemDeleteEmptyOrderPolicy(t *testing.T) {
	h := newHarness(t, RemoveItemDeleteEmptyOrder)
	ctx := context.Background()
	id := mustCreate(t, h, twoItemInput()).OrderID

	pickUpAll(t, h, id, "burger", "Grill", "Bar")
	if _, err := h.tracker.GetOrder(ctx, id); err != nil {
		t.Fatalf("order removed while tea is outstanding: %v", err)
	}

	res := pickUpAll(t, h, id, "tea", "Bar")
	if !res.OrderClosed {
		t.Fatalf("unexpected result %+v", res)
	}
	_, err := h.tracker.GetOrder(ctx, id)
	assertKind(t, err, apperror.ErrNotFound)
	if _, err := h.projection.Get(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Fatal("kitchen copy survived order removal")
	}

	entries, _ := h.tracker.ListPickedUpLog(ctx, "")
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}
}

func TestUpdateOrderReconcilesKitchenStatuses(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID
	if _, err := h.tracker.MarkItemPrepared(ctx, id, "burger", "Grill"); err != nil {
		t.Fatal(err)
	}

	name := "Asha K"
	items := []CartItemInput{{
		ID:       "burger",
		Name:     "Burger",
		Quantity: 2,
		Kitchen:  "Grill",
		Combos:   []order.Component{{Name: "Cola", Kitchen: "Bar", Quantity: 0}},
		Addons:   []order.Component{{Name: "Fries", Kitchen: "Fryer", Quantity: 1}},
	}}
	res, err := h.tracker.UpdateOrder(ctx, id, OrderPatch{CustomerName: &name, CartItems: &items})
	if err != nil {
		t.Fatal(err)
	}
	if res.TripReport != nil {
		t.Fatal("plain update produced a trip report")
	}

	o := res.Order
	assertStatusKeysMatch(t, o)
	want := map[string]order.KitchenStatus{"Grill": order.KitchenStatusPrepared, "Fryer": order.KitchenStatusPending}
	if !reflect.DeepEqual(o.CartItems[0].KitchenStatuses, want) {
		t.Fatalf("got %v want %v", o.CartItems[0].KitchenStatuses, want)
	}
	if o.CustomerName != name || o.TableNumber != "T4" {
		t.Fatalf("patch applied wrongly: %+v", o)
	}

	k, _ := h.projection.Get(ctx, id)
	if !reflect.DeepEqual(k.Order().CartItems, o.CartItems) {
		t.Fatal("kitchen copy not updated")
	}

	_, err = h.tracker.UpdateOrder(ctx, "missing", OrderPatch{CustomerName: &name})
	assertKind(t, err, apperror.ErrNotFound)
}

func TestAssignDeliveryPersonCreatesTripReport(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	in := grillBarInput()
	in.OrderType = "Online Delivery"
	in.PhoneNumber = "+919876543210"
	in.DeliveryAddress = order.DeliveryAddress{FlatVillaNo: "12", BuildingName: "Palm", Location: "Marina"}
	created := mustCreate(t, h, in)

	person := "EMP00001"
	res, err := h.tracker.UpdateOrder(ctx, created.OrderID, OrderPatch{DeliveryPersonID: &person})
	if err != nil {
		t.Fatal(err)
	}
	trip := res.TripReport
	if trip == nil || res.Order != nil {
		t.Fatalf("expected only a trip report, got %+v", res)
	}
	if trip.Status != order.OrderStatusPending || trip.PickedUpTime != nil {
		t.Fatalf("unexpected trip state %+v", trip)
	}
	if trip.OrderNo != created.OrderNo || trip.DeliveryPersonName != "Ravi" {
		t.Fatalf("trip snapshot incomplete: %+v", trip)
	}

	active, _ := h.tracker.ListActiveOrders(ctx)
	if len(active) != 0 {
		t.Fatalf("order still active: %+v", active)
	}
	kitchen, _ := h.tracker.ListKitchenOrders(ctx)
	if len(kitchen) != 0 {
		t.Fatal("kitchen copy still present")
	}

	trips, err := h.tracker.ListTripReports(ctx, person)
	if err != nil || len(trips) != 1 {
		t.Fatalf("expected exactly one trip, got %d (%v)", len(trips), err)
	}

	select {
	case msg := <-h.notifier.sent:
		if !strings.HasPrefix(msg, "+971501234567|") || !strings.Contains(msg, created.OrderNo) || !strings.Contains(msg, "1 x Burger") {
			t.Fatalf("unexpected notification %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("delivery person was not notified")
	}

	_, err = h.tracker.UpdateOrder(ctx, created.OrderID, OrderPatch{DeliveryPersonID: &person})
	assertKind(t, err, apperror.ErrNotFound)
}

func TestAssignUnknownDeliveryPerson(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID

	person := "nobody"
	_, err := h.tracker.UpdateOrder(ctx, id, OrderPatch{DeliveryPersonID: &person})
	assertKind(t, err, apperror.ErrNotFound)
	mustGet(t, h, id)
}

func TestMarkTripPickedUp(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, CreateOrderInput{OrderType: "OnlineDelivery"}).OrderID
	person := "EMP00001"
	if _, err := h.tracker.UpdateOrder(ctx, id, OrderPatch{DeliveryPersonID: &person}); err != nil {
		t.Fatal(err)
	}

	trip, err := h.tracker.MarkTripPickedUp(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if trip.Status != order.OrderStatusPickedUp || trip.PickedUpTime == nil {
		t.Fatalf("unexpected trip %+v", trip)
	}

	_, err = h.tracker.MarkTripPickedUp(ctx, id)
	assertKind(t, err, apperror.ErrInvalidState)
	_, err = h.tracker.MarkTripPickedUp(ctx, "missing")
	assertKind(t, err, apperror.ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID

	if err := h.tracker.DeleteOrder(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := h.projection.Get(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Fatal("kitchen copy survived delete")
	}
	assertKind(t, h.tracker.DeleteOrder(ctx, id), apperror.ErrNotFound)
}

func TestConcurrentTransitionsAdvanceOnce(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes = map[string]int{}
	)
	for i := 0; i < workers; i++ {
		for _, kitchen := range []string{"Grill", "Bar"} {
			wg.Add(1)
			go func(kitchen string) {
				defer wg.Done()
				_, err := h.tracker.MarkItemPrepared(ctx, id, "burger", kitchen)
				if err == nil {
					mu.Lock()
					successes[kitchen]++
					mu.Unlock()
					return
				}
				if !errors.Is(err, apperror.ErrInvalidState) {
					t.Errorf("unexpected error %v", err)
				}
			}(kitchen)
		}
	}
	wg.Wait()

	if successes["Grill"] != 1 || successes["Bar"] != 1 {
		t.Fatalf("each kitchen must advance exactly once, got %v", successes)
	}
	o := mustGet(t, h, id)
	if o.Version != 3 {
		t.Fatalf("expected exactly two writes, version is %d", o.Version)
	}
}

func TestProjectionFailureDoesNotFailTransition(t *testing.T) {
	h := newHarness(t, KeepItems)
	broken := failingProjection{memory.NewProjectionStore()}
	h.tracker.projection = broken
	ctx := context.Background()

	id := mustCreate(t, h, grillBarInput()).OrderID
	if _, err := h.tracker.MarkItemPrepared(ctx, id, "burger", "Grill"); err != nil {
		t.Fatalf("projection failure leaked to caller: %v", err)
	}
	if got := mustGet(t, h, id).CartItems[0].KitchenStatuses["Grill"]; got != order.KitchenStatusPrepared {
		t.Fatalf("order not updated, Grill is %s", got)
	}

	// The repair job brings the kitchen store back in line once it works again.
	h.tracker.projection = h.projection
	report, err := h.tracker.ReconcileProjection(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if report.Repaired != 1 {
		t.Fatalf("expected one repaired copy, got %+v", report)
	}
}

func TestReconcileProjectionDropsOrphans(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID

	if _, err := h.orders.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	report, err := h.tracker.ReconcileProjection(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if report.Removed != 1 || report.Repaired != 0 {
		t.Fatalf("unexpected report %+v", report)
	}

	report, _ = h.tracker.ReconcileProjection(ctx)
	if report.Removed != 0 || report.Repaired != 0 {
		t.Fatalf("second pass should be a no-op, got %+v", report)
	}
}

func TestPickedUpLogDelete(t *testing.T) {
	h := newHarness(t, KeepItems)
	ctx := context.Background()
	id := mustCreate(t, h, grillBarInput()).OrderID
	pickUpAll(t, h, id, "burger", "Grill")

	entries, _ := h.tracker.ListPickedUpLog(ctx, "")
	if err := h.tracker.DeletePickedUpLogEntry(ctx, entries[0].ID); err != nil {
		t.Fatal(err)
	}
	assertKind(t, h.tracker.DeletePickedUpLogEntry(ctx, entries[0].ID), apperror.ErrNotFound)
}

func TestParseRetirementPolicy(t *testing.T) {
	if p, err := ParseRetirementPolicy(""); err != nil || p != RemoveItem {
		t.Fatalf("default policy = %q, %v", p, err)
	}
	if _, err := ParseRetirementPolicy("shred"); err == nil {
		t.Fatal("unknown policy accepted")
	}
}
