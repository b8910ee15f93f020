package sales

import (
	salesModel "restaurant-pos/models/sales"
	"restaurant-pos/types/validation"
)

type CreateInvoiceRequest struct {
	Customer      string                   `json:"customer" validate:"required"`
	OrderType     string                   `json:"orderType"`
	PaymentMethod string                   `json:"paymentMethod"`
	Items         []salesModel.InvoiceItem `json:"items" validate:"required,min=1,dive"`
	Total         *float64                 `json:"total" validate:"required,gte=0"`
}

func (req *CreateInvoiceRequest) Validate() error {
	return validation.Validator().Struct(req)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (req *UpdateStatusRequest) Validate() error {
	return validation.Validator().Struct(req)
}
