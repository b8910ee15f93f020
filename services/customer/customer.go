// Package customer keeps the customer address book used at the counter.
package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-pos/logger"
	customerModel "restaurant-pos/models/customer"
	"restaurant-pos/types/apperror"
	customerTypes "restaurant-pos/types/customer"
	"restaurant-pos/types/validation"

	"gorm.io/gorm"
)

// DuplicatePhoneError is returned when the phone number already belongs to a
// customer.
type DuplicatePhoneError struct {
	Existing customerModel.Customer
}

func (e *DuplicatePhoneError) Error() string {
	return fmt.Sprintf("phone number %s already belongs to %s", e.Existing.PhoneNumber, e.Existing.CustomerName)
}

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// List returns all customers, or those whose name or phone contains search.
func (s *Service) List(ctx context.Context, search string) ([]customerModel.Customer, error) {
	query := s.DB.WithContext(ctx).Order("customer_name ASC")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("customer_name ILIKE ? OR phone_number LIKE ?", like, like)
	}
	var customers []customerModel.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list customers")
	}
	return customers, nil
}

func (s *Service) Create(ctx context.Context, req *customerTypes.CustomerRequest) (*customerModel.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	phone := strings.TrimSpace(req.PhoneNumber)

	var existing customerModel.Customer
	err := s.DB.WithContext(ctx).Where("phone_number = ?", phone).First(&existing).Error
	if err == nil {
		return nil, &DuplicatePhoneError{Existing: existing}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Dependency(err, "failed to check customer phone")
	}

	c := &customerModel.Customer{}
	applyCustomerRequest(c, req)
	if err := s.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to create customer")
	}
	logger.Success(fmt.Sprintf("Created customer: %s", c.CustomerName))
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*customerModel.Customer, error) {
	var c customerModel.Customer
	err := s.DB.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("customer %d not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load customer %d", id)
	}
	return &c, nil
}

// Update replaces the contact details of a customer. Moving to a phone number
// held by another customer fails with DuplicatePhoneError.
func (s *Service) Update(ctx context.Context, id uint, req *customerTypes.CustomerRequest) (*customerModel.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var existing customerModel.Customer
	err = s.DB.WithContext(ctx).
		Where("phone_number = ? AND id <> ?", strings.TrimSpace(req.PhoneNumber), id).
		First(&existing).Error
	if err == nil {
		return nil, &DuplicatePhoneError{Existing: existing}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Dependency(err, "failed to check customer phone")
	}

	applyCustomerRequest(c, req)
	if err := s.DB.WithContext(ctx).Save(c).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to update customer %d", id)
	}
	logger.Info(fmt.Sprintf("Updated customer: %d", id))
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&customerModel.Customer{}, id)
	if res.Error != nil {
		return apperror.Dependency(res.Error, "failed to delete customer %d", id)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("customer %d not found", id)
	}
	logger.Info(fmt.Sprintf("Deleted customer: %d", id))
	return nil
}

func applyCustomerRequest(c *customerModel.Customer, req *customerTypes.CustomerRequest) {
	c.CustomerName = strings.TrimSpace(req.CustomerName)
	c.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	c.WhatsappNumber = strings.TrimSpace(req.WhatsappNumber)
	c.Email = strings.ToLower(strings.TrimSpace(req.Email))
	c.BuildingName = req.BuildingName
	c.FlatVillaNo = req.FlatVillaNo
	c.Location = req.Location
}
