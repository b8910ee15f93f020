// Package setting stores the system settings document.
package setting

import (
	"context"
	"errors"

	"restaurant-pos/logger"
	settingModel "restaurant-pos/models/setting"
	"restaurant-pos/types/apperror"
	"restaurant-pos/types/validation"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Get returns the stored settings, writing the defaults on first use.
func (s *Service) Get(ctx context.Context) (*settingModel.SystemSettings, error) {
	var row settingModel.Setting
	err := s.DB.WithContext(ctx).First(&row, settingModel.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := settingModel.Defaults()
		row = settingModel.Setting{ID: settingModel.SingletonID, Document: datatypes.NewJSONType(defaults)}
		if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return nil, apperror.Dependency(err, "failed to create default settings")
		}
		logger.Info("Default system settings created")
		return &defaults, nil
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load settings")
	}
	doc := row.Document.Data()
	return &doc, nil
}

// Save replaces the whole settings document.
func (s *Service) Save(ctx context.Context, settings *settingModel.SystemSettings) (*settingModel.SystemSettings, error) {
	if err := validation.Validator().Struct(settings); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	row := settingModel.Setting{ID: settingModel.SingletonID, Document: datatypes.NewJSONType(*settings)}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, apperror.Dependency(err, "failed to save settings")
	}
	logger.Info("System settings updated")
	return settings, nil
}
