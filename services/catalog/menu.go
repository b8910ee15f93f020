package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"restaurant-pos/logger"
	"restaurant-pos/models/menu"
	"restaurant-pos/types/apperror"
	menuTypes "restaurant-pos/types/menu"
	"restaurant-pos/types/validation"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (s *Service) ListKitchens(ctx context.Context) ([]menu.Kitchen, error) {
	var kitchens []menu.Kitchen
	if err := s.DB.WithContext(ctx).Order("kitchen_name ASC").Find(&kitchens).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list kitchens")
	}
	return kitchens, nil
}

func (s *Service) CreateKitchen(ctx context.Context, req *menuTypes.KitchenRequest) (*menu.Kitchen, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	name := strings.TrimSpace(req.KitchenName)
	if err := s.ensureKitchenNameFree(ctx, name, 0); err != nil {
		return nil, err
	}
	k := &menu.Kitchen{KitchenName: name}
	if err := s.DB.WithContext(ctx).Create(k).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to create kitchen")
	}
	logger.Success(fmt.Sprintf("Created kitchen: %s", name))
	return k, nil
}

func (s *Service) UpdateKitchen(ctx context.Context, id uint, req *menuTypes.KitchenRequest) (*menu.Kitchen, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	var k menu.Kitchen
	err := s.DB.WithContext(ctx).First(&k, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("kitchen %d not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load kitchen %d", id)
	}
	name := strings.TrimSpace(req.KitchenName)
	if err := s.ensureKitchenNameFree(ctx, name, id); err != nil {
		return nil, err
	}
	k.KitchenName = name
	if err := s.DB.WithContext(ctx).Save(&k).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to update kitchen %d", id)
	}
	return &k, nil
}

func (s *Service) DeleteKitchen(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&menu.Kitchen{}, id)
	if res.Error != nil {
		return apperror.Dependency(res.Error, "failed to delete kitchen %d", id)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("kitchen %d not found", id)
	}
	logger.Info(fmt.Sprintf("Deleted kitchen: %d", id))
	return nil
}

func (s *Service) ensureKitchenNameFree(ctx context.Context, name string, exceptID uint) error {
	query := s.DB.WithContext(ctx).Model(&menu.Kitchen{}).Where("kitchen_name = ?", name)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperror.Dependency(err, "failed to check kitchen name")
	}
	if count > 0 {
		return apperror.Validation("kitchen %s already exists", name)
	}
	return nil
}

// ListItems returns the menu. Offer fields are hidden on items whose offer is
// not running right now.
func (s *Service) ListItems(ctx context.Context) ([]menu.Item, error) {
	var items []menu.Item
	if err := s.DB.WithContext(ctx).Order("item_group ASC, item_name ASC").Find(&items).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list items")
	}
	now := s.now()
	for i := range items {
		if !items[i].OfferActive(now) {
			items[i].ClearOffer()
		}
	}
	return items, nil
}

// GetItem looks an item up by numeric id or by item code.
func (s *Service) GetItem(ctx context.Context, identifier string) (*menu.Item, error) {
	var item menu.Item
	query := s.DB.WithContext(ctx)
	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		query = query.Where("id = ? OR item_code = ?", id, identifier)
	} else {
		query = query.Where("item_code = ?", identifier)
	}
	err := query.First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("item %s not found", identifier)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load item %s", identifier)
	}
	if !item.OfferActive(s.now()) {
		item.ClearOffer()
	}
	return &item, nil
}

func (s *Service) CreateItem(ctx context.Context, req *menuTypes.ItemRequest) (*menu.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	if err := s.ensureItemCodeFree(ctx, req.ItemCode, 0); err != nil {
		return nil, err
	}
	item := &menu.Item{}
	applyItemRequest(item, req)
	if err := s.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to create item")
	}
	logger.Success(fmt.Sprintf("Created item: %s (%s)", item.ItemName, item.ItemCode))
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, id uint, req *menuTypes.ItemRequest) (*menu.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureItemCodeFree(ctx, req.ItemCode, id); err != nil {
		return nil, err
	}
	applyItemRequest(item, req)
	if err := s.DB.WithContext(ctx).Save(item).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to update item %d", id)
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&menu.Item{}, id)
	if res.Error != nil {
		return apperror.Dependency(res.Error, "failed to delete item %d", id)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("item %d not found", id)
	}
	logger.Info(fmt.Sprintf("Deleted item: %d", id))
	return nil
}

// SetOffer replaces the offer window of an item.
func (s *Service) SetOffer(ctx context.Context, id uint, req *menuTypes.OfferRequest) (*menu.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	if !req.OfferStartTime.Before(*req.OfferEndTime) {
		return nil, apperror.Validation("offer start time must be before offer end time")
	}
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.DB.WithContext(ctx).Model(item).Updates(map[string]interface{}{
		"offer_price":      *req.OfferPrice,
		"offer_start_time": *req.OfferStartTime,
		"offer_end_time":   *req.OfferEndTime,
	}).Error
	if err != nil {
		return nil, apperror.Dependency(err, "failed to update offer of item %d", id)
	}
	item.OfferPrice = req.OfferPrice
	item.OfferStartTime = req.OfferStartTime
	item.OfferEndTime = req.OfferEndTime
	logger.Info(fmt.Sprintf("Offer updated for item: %d, start: %s, end: %s", id, req.OfferStartTime, req.OfferEndTime))
	return item, nil
}

func (s *Service) loadItem(ctx context.Context, id uint) (*menu.Item, error) {
	var item menu.Item
	err := s.DB.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("item %d not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load item %d", id)
	}
	return &item, nil
}

func (s *Service) ensureItemCodeFree(ctx context.Context, code string, exceptID uint) error {
	query := s.DB.WithContext(ctx).Model(&menu.Item{}).Where("item_code = ?", strings.TrimSpace(code))
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperror.Dependency(err, "failed to check item code")
	}
	if count > 0 {
		return apperror.Validation("item code %s already exists", code)
	}
	return nil
}

func applyItemRequest(item *menu.Item, req *menuTypes.ItemRequest) {
	item.ItemName = strings.TrimSpace(req.ItemName)
	item.ItemCode = strings.TrimSpace(req.ItemCode)
	item.ItemGroup = strings.TrimSpace(req.ItemGroup)
	item.PriceListRate = req.PriceListRate
	item.Kitchen = strings.TrimSpace(req.Kitchen)
	item.Image = req.Image
	addons := req.Addons
	if addons == nil {
		addons = []menu.Option{}
	}
	combos := req.Combos
	if combos == nil {
		combos = []menu.Option{}
	}
	item.Addons = datatypes.NewJSONType(addons)
	item.Combos = datatypes.NewJSONType(combos)
}
