package customer

import "restaurant-pos/types/validation"

type CustomerRequest struct {
	CustomerName   string `json:"customer_name" validate:"required"`
	PhoneNumber    string `json:"phone_number" validate:"required"`
	WhatsappNumber string `json:"whatsapp_number"`
	Email          string `json:"email" validate:"omitempty,email"`
	BuildingName   string `json:"building_name"`
	FlatVillaNo    string `json:"flat_villa_no"`
	Location       string `json:"location"`
}

func (req *CustomerRequest) Validate() error {
	return validation.Validator().Struct(req)
}
