package employee

import "restaurant-pos/types/validation"

// EmployeeRequest is used for both create and update.
type EmployeeRequest struct {
	Name          string  `json:"name" validate:"required"`
	PhoneNumber   string  `json:"phoneNumber" validate:"required,phone_cc"`
	VehicleNumber string  `json:"vehicleNumber" validate:"required"`
	Role          string  `json:"role" validate:"required"`
	Email         *string `json:"email" validate:"omitempty,email"`
}

func (req *EmployeeRequest) Validate() error {
	return validation.Validator().Struct(req)
}
