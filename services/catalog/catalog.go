// Package catalog answers kitchen routing questions from the menu and keeps
// item offers current.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-pos/logger"
	"restaurant-pos/models/menu"
	"restaurant-pos/repository"
	"restaurant-pos/services/tracker"

	"gorm.io/gorm"
)

type Service struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, now: time.Now}
}

// KitchenRoute maps a menu item and its options to their kitchens.
func (s *Service) KitchenRoute(ctx context.Context, menuItemID uint) (*tracker.KitchenRoute, error) {
	var item menu.Item
	err := s.DB.WithContext(ctx).First(&item, menuItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return RouteFor(&item), nil
}

// RouteFor builds the routing table of one item. Options without a kitchen of
// their own are made in the item's kitchen.
func RouteFor(item *menu.Item) *tracker.KitchenRoute {
	route := &tracker.KitchenRoute{
		Kitchen: item.Kitchen,
		Addons:  make(map[string]string),
		Combos:  make(map[string]string),
	}
	for _, a := range item.Addons.Data() {
		route.Addons[a.Name] = kitchenOr(a.Kitchen, item.Kitchen)
	}
	for _, c := range item.Combos.Data() {
		route.Combos[c.Name] = kitchenOr(c.Kitchen, item.Kitchen)
	}
	return route
}

func kitchenOr(k, fallback string) string {
	if k == "" {
		return fallback
	}
	return k
}

// SweepOffers clears the offer fields of every item whose offer has expired.
// It returns how many items were changed.
func (s *Service) SweepOffers(ctx context.Context) (int, error) {
	var items []menu.Item
	err := s.DB.WithContext(ctx).
		Where("offer_start_time IS NOT NULL OR offer_end_time IS NOT NULL").
		Find(&items).Error
	if err != nil {
		return 0, err
	}

	now := s.now()
	cleared := 0
	for i := range items {
		item := &items[i]
		if !item.OfferExpired(now) {
			continue
		}
		err := s.DB.WithContext(ctx).Model(&menu.Item{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
			"offer_price":      nil,
			"offer_start_time": nil,
			"offer_end_time":   nil,
		}).Error
		if err != nil {
			return cleared, fmt.Errorf("clear offer of item %d: %w", item.ID, err)
		}
		cleared++
		logger.Info(fmt.Sprintf("Offer expired for item %s (ID: %d)", item.ItemName, item.ID))
	}
	return cleared, nil
}
