//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"restaurant-pos/models/order"
	"restaurant-pos/services/tracker"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("restaurant_pos"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(
		&order.Order{},
		&order.KitchenOrder{},
		&order.PickedUpLogEntry{},
		&order.TripReport{},
		&order.OrderCounter{},
	); err != nil {
		t.Fatal(err)
	}
	return db
}

func newTracker(db *gorm.DB, policy tracker.RetirementPolicy) *tracker.Tracker {
	return tracker.New(tracker.Dependencies{
		Orders:      NewOrderRepository(db),
		Projection:  NewProjectionRepository(db),
		PickedUpLog: NewPickedUpLogRepository(db),
		TripReports: NewTripReportRepository(db),
		Counters:    NewCounterRepository(db),
		Employees:   staticDirectory{},
	}, policy)
}

type staticDirectory struct{}

func (staticDirectory) DeliveryPerson(_ context.Context, id string) (*tracker.DeliveryPerson, error) {
	return &tracker.DeliveryPerson{ID: id, Name: "Rider"}, nil
}

func TestPostgresTrackerRoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	tr := newTracker(db, tracker.RemoveItemDeleteEmptyOrder)

	res, err := tr.CreateOrder(ctx, tracker.CreateOrderInput{
		OrderType: "DineIn",
		CartItems: []tracker.CartItemInput{{
			ID:       "burger",
			Name:     "Burger",
			Quantity: 1,
			Kitchen:  "Grill",
			Combos:   []order.Component{{Name: "Cola", Kitchen: "Bar", Quantity: 1}},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.OrderNo != "D0001" {
		t.Fatalf("unexpected order number %s", res.OrderNo)
	}

	for _, k := range []string{"Grill", "Bar"} {
		if _, err := tr.MarkItemPrepared(ctx, res.OrderID, "burger", k); err != nil {
			t.Fatal(err)
		}
		if _, err := tr.MarkItemPickedUp(ctx, res.OrderID, "burger", k); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := tr.GetOrder(ctx, res.OrderID); err == nil {
		t.Fatal("emptied order should be deleted")
	}
	entries, err := tr.ListPickedUpLog(ctx, "")
	if err != nil || len(entries) != 2 {
		t.Fatalf("expected 2 picked up entries, got %d (%v)", len(entries), err)
	}
	kitchen, _ := tr.ListKitchenOrders(ctx)
	if len(kitchen) != 0 {
		t.Fatal("kitchen copy survived")
	}
}

func TestPostgresCounterSurvivesNewRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	first, err := NewCounterRepository(db).Next(ctx, "T")
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewCounterRepository(db).Next(ctx, "T")
	if err != nil {
		t.Fatal(err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("got %d then %d", first, second)
	}
}

func TestPostgresCompareAndSwapRejectsStaleVersion(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	o := &order.Order{ID: "o-1", OrderNo: "D0001", Type: order.OrderTypeDineIn, CustomerName: "N/A", Status: order.OrderStatusPending, Version: 1}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatal(err)
	}

	next := o.Clone()
	next.CustomerName = "Asha"
	next.Version = 2
	ok, err := repo.CompareAndSwap(ctx, next, 1)
	if err != nil || !ok {
		t.Fatalf("first swap failed: %v %v", ok, err)
	}

	stale := o.Clone()
	stale.CustomerName = "Lost update"
	stale.Version = 2
	ok, err = repo.CompareAndSwap(ctx, stale, 1)
	if err != nil || ok {
		t.Fatalf("stale swap accepted: %v %v", ok, err)
	}

	got, _ := repo.Get(ctx, "o-1")
	if got.CustomerName != "Asha" {
		t.Fatalf("unexpected name %s", got.CustomerName)
	}
}

func TestPostgresConcurrentPrepare(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	tr := newTracker(db, tracker.KeepItems)

	res, err := tr.CreateOrder(ctx, tracker.CreateOrderInput{
		CartItems: []tracker.CartItemInput{{ID: "tea", Name: "Tea", Quantity: 1, Kitchen: "Bar"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tr.MarkItemPrepared(ctx, res.OrderID, "tea", "Bar"); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if ok != 1 {
		t.Fatalf("expected one successful prepare, got %d", ok)
	}
}
