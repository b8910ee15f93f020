package tracker

import (
	"context"
	"fmt"

	"restaurant-pos/logger"
	"restaurant-pos/models/order"
	"restaurant-pos/types/apperror"
)

type ReconcileReport struct {
	Repaired int `json:"repaired"`
	Removed  int `json:"removed"`
}

// ReconcileProjection rewrites kitchen copies that are missing or older than
// their order and drops copies whose order is gone.
func (t *Tracker) ReconcileProjection(ctx context.Context) (*ReconcileReport, error) {
	orders, err := t.orders.List(ctx)
	if err != nil {
		return nil, apperror.Dependency(err, "failed to list orders")
	}
	rows, err := t.projection.List(ctx)
	if err != nil {
		return nil, apperror.Dependency(err, "failed to list kitchen orders")
	}

	projected := make(map[string]int64, len(rows))
	for _, row := range rows {
		projected[row.OrderID] = row.Version
	}

	report := &ReconcileReport{}
	active := make(map[string]bool, len(orders))
	for i := range orders {
		o := &orders[i]
		active[o.ID] = true
		if v, ok := projected[o.ID]; ok && v == o.Version {
			continue
		}
		if err := t.projection.Upsert(ctx, order.NewKitchenOrder(o)); err != nil {
			return report, apperror.Dependency(err, "failed to repair kitchen copy of order %s", o.ID)
		}
		report.Repaired++
	}

	for id := range projected {
		if active[id] {
			continue
		}
		if _, err := t.projection.Delete(ctx, id); err != nil {
			return report, apperror.Dependency(err, "failed to drop kitchen copy of order %s", id)
		}
		report.Removed++
	}

	if report.Repaired > 0 || report.Removed > 0 {
		logger.Warning(fmt.Sprintf("Kitchen copies repaired: %d rewritten, %d removed", report.Repaired, report.Removed))
	}
	return report, nil
}
