package auth

import "restaurant-pos/types/validation"

type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_cc"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"required,oneof=admin cashier kitchen delivery"`
	Company     string `json:"company"`
}

func (req *RegisterRequest) Validate() error {
	return validation.Validator().Struct(req)
}

// LoginRequest identifies the user by email or phone number.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (req *LoginRequest) Validate() error {
	return validation.Validator().Struct(req)
}

type LoginResponse struct {
	Token       string   `json:"token"`
	UserID      uint     `json:"userId"`
	FirstName   string   `json:"firstName"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
