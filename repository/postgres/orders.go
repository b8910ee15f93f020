// Package postgres implements the tracker stores on gorm.
package postgres

import (
	"context"
	"errors"
	"time"

	"restaurant-pos/models/order"
	"restaurant-pos/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&orders).Error
	return orders, err
}

// CompareAndSwap rewrites the whole row, but only while the stored version is
// still expectedVersion.
func (r *OrderRepository) CompareAndSwap(ctx context.Context, o *order.Order, expectedVersion int64) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&order.Order{}).
		Where("id = ? AND version = ?", o.ID, expectedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(o)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) DeleteIfVersion(ctx context.Context, id string, expectedVersion int64) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ? AND version = ?", id, expectedVersion).Delete(&order.Order{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&order.Order{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type ProjectionRepository struct {
	DB *gorm.DB
}

func NewProjectionRepository(db *gorm.DB) *ProjectionRepository {
	return &ProjectionRepository{DB: db}
}

// Upsert keeps the newest copy when two writers race on the same order.
func (r *ProjectionRepository) Upsert(ctx context.Context, k *order.KitchenOrder) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "version", "updated_at"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "kitchen_saved.version <= excluded.version"},
		}},
	}).Create(k).Error
}

func (r *ProjectionRepository) Get(ctx context.Context, orderID string) (*order.KitchenOrder, error) {
	var k order.KitchenOrder
	err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&k).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *ProjectionRepository) List(ctx context.Context) ([]order.KitchenOrder, error) {
	var rows []order.KitchenOrder
	err := r.DB.WithContext(ctx).Order("updated_at ASC").Find(&rows).Error
	return rows, err
}

func (r *ProjectionRepository) Delete(ctx context.Context, orderID string) (bool, error) {
	res := r.DB.WithContext(ctx).Where("order_id = ?", orderID).Delete(&order.KitchenOrder{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type PickedUpLogRepository struct {
	DB *gorm.DB
}

func NewPickedUpLogRepository(db *gorm.DB) *PickedUpLogRepository {
	return &PickedUpLogRepository{DB: db}
}

func (r *PickedUpLogRepository) Append(ctx context.Context, e *order.PickedUpLogEntry) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

func (r *PickedUpLogRepository) List(ctx context.Context, kitchen string) ([]order.PickedUpLogEntry, error) {
	query := r.DB.WithContext(ctx).Order("picked_up_time DESC, id DESC")
	if kitchen != "" {
		query = query.Where("kitchen = ?", kitchen)
	}
	var entries []order.PickedUpLogEntry
	err := query.Find(&entries).Error
	return entries, err
}

func (r *PickedUpLogRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.DB.WithContext(ctx).Delete(&order.PickedUpLogEntry{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type TripReportRepository struct {
	DB *gorm.DB
}

func NewTripReportRepository(db *gorm.DB) *TripReportRepository {
	return &TripReportRepository{DB: db}
}

func (r *TripReportRepository) Create(ctx context.Context, t *order.TripReport) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *TripReportRepository) GetByOrder(ctx context.Context, orderID string) (*order.TripReport, error) {
	var t order.TripReport
	err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TripReportRepository) ListByDeliveryPerson(ctx context.Context, personID string) ([]order.TripReport, error) {
	var trips []order.TripReport
	err := r.DB.WithContext(ctx).
		Where("delivery_person_id = ?", personID).
		Order("created_at DESC").
		Find(&trips).Error
	return trips, err
}

func (r *TripReportRepository) MarkPickedUp(ctx context.Context, orderID string, at time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&order.TripReport{}).
		Where("order_id = ? AND status = ?", orderID, order.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":         order.OrderStatusPickedUp,
			"picked_up_time": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type CounterRepository struct {
	DB *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{DB: db}
}

// Next increments and reads the counter in a single statement.
func (r *CounterRepository) Next(ctx context.Context, prefix string) (int64, error) {
	var value int64
	err := r.DB.WithContext(ctx).Raw(
		`INSERT INTO order_counters (prefix, value) VALUES (?, 1)
		 ON CONFLICT (prefix) DO UPDATE SET value = order_counters.value + 1
		 RETURNING value`, prefix,
	).Scan(&value).Error
	return value, err
}
