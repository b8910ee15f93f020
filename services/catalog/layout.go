package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-pos/logger"
	"restaurant-pos/models/menu"
	"restaurant-pos/types/apperror"
	menuTypes "restaurant-pos/types/menu"
	"restaurant-pos/types/validation"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*=============================================================================
| Tables
===============================================================================*/

func (s *Service) ListTables(ctx context.Context) ([]menu.Table, error) {
	var tables []menu.Table
	if err := s.DB.WithContext(ctx).Order("table_number ASC").Find(&tables).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list tables")
	}
	return tables, nil
}

func (s *Service) CreateTable(ctx context.Context, req *menuTypes.TableRequest) (*menu.Table, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	number := strings.TrimSpace(req.TableNumber)
	var count int64
	if err := s.DB.WithContext(ctx).Model(&menu.Table{}).Where("table_number = ?", number).Count(&count).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to check table number")
	}
	if count > 0 {
		return nil, apperror.Validation("table number %s already exists", number)
	}
	t := &menu.Table{TableNumber: number, NumberOfChairs: req.NumberOfChairs}
	if err := s.DB.WithContext(ctx).Create(t).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to create table")
	}
	logger.Info(fmt.Sprintf("Table added: %s", number))
	return t, nil
}

func (s *Service) UpdateTable(ctx context.Context, number string, req *menuTypes.TableUpdateRequest) (*menu.Table, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	var t menu.Table
	err := s.DB.WithContext(ctx).Where("table_number = ?", number).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("table %s not found", number)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load table %s", number)
	}
	t.NumberOfChairs = req.NumberOfChairs
	if err := s.DB.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to update table %s", number)
	}
	logger.Info(fmt.Sprintf("Table updated: %s", number))
	return &t, nil
}

func (s *Service) DeleteTable(ctx context.Context, number string) error {
	res := s.DB.WithContext(ctx).Where("table_number = ?", number).Delete(&menu.Table{})
	if res.Error != nil {
		return apperror.Dependency(res.Error, "failed to delete table %s", number)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("table %s not found", number)
	}
	logger.Info(fmt.Sprintf("Table deleted: %s", number))
	return nil
}

/*=============================================================================
| Item Groups
===============================================================================*/

func (s *Service) ListItemGroups(ctx context.Context) ([]menu.ItemGroup, error) {
	var groups []menu.ItemGroup
	if err := s.DB.WithContext(ctx).Order("group_name ASC").Find(&groups).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list item groups")
	}
	return groups, nil
}

func (s *Service) CreateItemGroup(ctx context.Context, req *menuTypes.ItemGroupRequest) (*menu.ItemGroup, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	name := strings.TrimSpace(req.GroupName)
	if err := s.ensureGroupNameFree(ctx, name, 0); err != nil {
		return nil, err
	}
	g := &menu.ItemGroup{GroupName: name}
	if err := s.DB.WithContext(ctx).Create(g).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to create item group")
	}
	logger.Success(fmt.Sprintf("Created item group: %s", name))
	return g, nil
}

func (s *Service) UpdateItemGroup(ctx context.Context, id uint, req *menuTypes.ItemGroupRequest) (*menu.ItemGroup, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	var g menu.ItemGroup
	err := s.DB.WithContext(ctx).First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("item group %d not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load item group %d", id)
	}
	name := strings.TrimSpace(req.GroupName)
	if err := s.ensureGroupNameFree(ctx, name, id); err != nil {
		return nil, err
	}
	g.GroupName = name
	if err := s.DB.WithContext(ctx).Save(&g).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to update item group %d", id)
	}
	return &g, nil
}

func (s *Service) DeleteItemGroup(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&menu.ItemGroup{}, id)
	if res.Error != nil {
		return apperror.Dependency(res.Error, "failed to delete item group %d", id)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("item group %d not found", id)
	}
	return nil
}

func (s *Service) ensureGroupNameFree(ctx context.Context, name string, exceptID uint) error {
	query := s.DB.WithContext(ctx).Model(&menu.ItemGroup{}).Where("group_name = ?", name)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperror.Dependency(err, "failed to check item group name")
	}
	if count > 0 {
		return apperror.Validation("item group %s already exists", name)
	}
	return nil
}

/*=============================================================================
| Variants
===============================================================================*/

func (s *Service) ListVariants(ctx context.Context) ([]menu.Variant, error) {
	var variants []menu.Variant
	if err := s.DB.WithContext(ctx).Order("heading ASC").Find(&variants).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list variants")
	}
	return variants, nil
}

func (s *Service) GetVariant(ctx context.Context, id uint) (*menu.Variant, error) {
	var v menu.Variant
	err := s.DB.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("variant %d not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load variant %d", id)
	}
	return &v, nil
}

func (s *Service) CreateVariant(ctx context.Context, req *menuTypes.VariantRequest) (*menu.Variant, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	v := &menu.Variant{}
	applyVariantRequest(v, req)
	if err := s.DB.WithContext(ctx).Create(v).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to create variant")
	}
	logger.Success(fmt.Sprintf("Created variant: %s", v.Heading))
	return v, nil
}

func (s *Service) UpdateVariant(ctx context.Context, id uint, req *menuTypes.VariantRequest) (*menu.Variant, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	v, err := s.GetVariant(ctx, id)
	if err != nil {
		return nil, err
	}
	applyVariantRequest(v, req)
	if err := s.DB.WithContext(ctx).Save(v).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to update variant %d", id)
	}
	return v, nil
}

func (s *Service) DeleteVariant(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&menu.Variant{}, id)
	if res.Error != nil {
		return apperror.Dependency(res.Error, "failed to delete variant %d", id)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("variant %d not found", id)
	}
	return nil
}

// DeleteVariantsByHeading removes every variant under heading. Nothing to
// delete is not an error.
func (s *Service) DeleteVariantsByHeading(ctx context.Context, heading string) (int64, error) {
	res := s.DB.WithContext(ctx).Where("heading = ?", heading).Delete(&menu.Variant{})
	if res.Error != nil {
		return 0, apperror.Dependency(res.Error, "failed to delete variants of %s", heading)
	}
	return res.RowsAffected, nil
}

func applyVariantRequest(v *menu.Variant, req *menuTypes.VariantRequest) {
	v.Heading = strings.TrimSpace(req.Heading)
	v.ActiveSection = req.ActiveSection
	options := make([]menu.VariantOption, len(req.Subheadings))
	for i, o := range req.Subheadings {
		o.Name = strings.TrimSpace(o.Name)
		options[i] = o
	}
	v.Subheadings = datatypes.NewJSONType(options)
}
