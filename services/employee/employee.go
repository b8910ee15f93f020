// Package employee manages staff records and answers delivery person lookups
// for the order tracker.
package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-pos/logger"
	employeeModel "restaurant-pos/models/employee"
	userModel "restaurant-pos/models/user"
	"restaurant-pos/repository"
	"restaurant-pos/services/tracker"
	"restaurant-pos/types/apperror"
	employeeTypes "restaurant-pos/types/employee"
	"restaurant-pos/types/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const idAttempts = 5

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) List(ctx context.Context) ([]employeeModel.Employee, error) {
	var employees []employeeModel.Employee
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&employees).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list employees")
	}
	return employees, nil
}

func (s *Service) Get(ctx context.Context, id string) (*employeeModel.Employee, error) {
	var e employeeModel.Employee
	err := s.DB.WithContext(ctx).Where("employee_id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("employee %s not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load employee %s", id)
	}
	return &e, nil
}

func (s *Service) Create(ctx context.Context, req *employeeTypes.EmployeeRequest) (*employeeModel.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	if err := s.ensureEmailFree(ctx, req.Email, ""); err != nil {
		return nil, err
	}

	id, err := s.newEmployeeID(ctx)
	if err != nil {
		return nil, err
	}
	e := &employeeModel.Employee{
		EmployeeID:    id,
		Name:          strings.TrimSpace(req.Name),
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		VehicleNumber: req.VehicleNumber,
		Role:          req.Role,
		Email:         normalizeEmail(req.Email),
	}
	if err := s.DB.WithContext(ctx).Create(e).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to create employee")
	}
	logger.Success(fmt.Sprintf("Created employee: %s", e.EmployeeID))
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, req *employeeTypes.EmployeeRequest) (*employeeModel.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, req.Email, id); err != nil {
		return nil, err
	}

	e.Name = strings.TrimSpace(req.Name)
	e.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	e.VehicleNumber = req.VehicleNumber
	e.Role = req.Role
	e.Email = normalizeEmail(req.Email)
	if err := s.DB.WithContext(ctx).Save(e).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to update employee %s", id)
	}
	logger.Info(fmt.Sprintf("Updated employee: %s", id))
	return e, nil
}

// Delete removes the employee. When no other employee shares the email, the
// login user with that email goes too.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e employeeModel.Employee
		if err := tx.Where("employee_id = ?", id).First(&e).Error; err != nil {
			return err
		}
		if err := tx.Delete(&e).Error; err != nil {
			return err
		}
		if e.Email == nil {
			return nil
		}

		var remaining int64
		if err := tx.Model(&employeeModel.Employee{}).Where("email = ?", *e.Email).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}
		res := tx.Where("email = ?", *e.Email).Delete(&userModel.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			logger.Info(fmt.Sprintf("Removed user %s together with employee %s", *e.Email, id))
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("employee %s not found", id)
	}
	if err != nil {
		return apperror.Dependency(err, "failed to delete employee %s", id)
	}
	logger.Info(fmt.Sprintf("Deleted employee: %s", id))
	return nil
}

// DeliveryPerson implements tracker.EmployeeDirectory.
func (s *Service) DeliveryPerson(ctx context.Context, id string) (*tracker.DeliveryPerson, error) {
	var e employeeModel.Employee
	err := s.DB.WithContext(ctx).Where("employee_id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tracker.DeliveryPerson{ID: e.EmployeeID, Name: e.Name, PhoneNumber: e.PhoneNumber}, nil
}

func (s *Service) ensureEmailFree(ctx context.Context, email *string, exceptID string) error {
	email = normalizeEmail(email)
	if email == nil {
		return nil
	}
	query := s.DB.WithContext(ctx).Model(&employeeModel.Employee{}).Where("email = ?", *email)
	if exceptID != "" {
		query = query.Where("employee_id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperror.Dependency(err, "failed to check employee email")
	}
	if count > 0 {
		return apperror.Validation("email %s is already used by another employee", *email)
	}
	return nil
}

func (s *Service) newEmployeeID(ctx context.Context) (string, error) {
	for i := 0; i < idAttempts; i++ {
		id := NewEmployeeID()
		var count int64
		if err := s.DB.WithContext(ctx).Model(&employeeModel.Employee{}).Where("employee_id = ?", id).Count(&count).Error; err != nil {
			return "", apperror.Dependency(err, "failed to allocate employee id")
		}
		if count == 0 {
			return id, nil
		}
	}
	return "", apperror.Dependency(errors.New("id space exhausted"), "failed to allocate employee id")
}

// NewEmployeeID returns an 8 character upper case id.
func NewEmployeeID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}
