package menu

import (
	"time"

	menuModel "restaurant-pos/models/menu"
	"restaurant-pos/types/validation"
)

type KitchenRequest struct {
	KitchenName string `json:"kitchen_name" validate:"required"`
}

func (req *KitchenRequest) Validate() error {
	return validation.Validator().Struct(req)
}

type ItemRequest struct {
	ItemName      string             `json:"item_name" validate:"required"`
	ItemCode      string             `json:"item_code" validate:"required"`
	ItemGroup     string             `json:"item_group" validate:"required"`
	PriceListRate float64            `json:"price_list_rate" validate:"gte=0"`
	Kitchen       string             `json:"kitchen"`
	Image         string             `json:"image"`
	Addons        []menuModel.Option `json:"addons" validate:"dive"`
	Combos        []menuModel.Option `json:"combos" validate:"dive"`
}

func (req *ItemRequest) Validate() error {
	return validation.Validator().Struct(req)
}

// OfferRequest sets or replaces the offer of an item.
type OfferRequest struct {
	OfferPrice     *float64   `json:"offer_price" validate:"required,gte=0"`
	OfferStartTime *time.Time `json:"offer_start_time" validate:"required"`
	OfferEndTime   *time.Time `json:"offer_end_time" validate:"required"`
}

func (req *OfferRequest) Validate() error {
	return validation.Validator().Struct(req)
}

type TableRequest struct {
	TableNumber    string `json:"table_number" validate:"required"`
	NumberOfChairs int    `json:"number_of_chairs" validate:"required,gte=1"`
}

func (req *TableRequest) Validate() error {
	return validation.Validator().Struct(req)
}

type TableUpdateRequest struct {
	NumberOfChairs int `json:"number_of_chairs" validate:"required,gte=1"`
}

func (req *TableUpdateRequest) Validate() error {
	return validation.Validator().Struct(req)
}

type ItemGroupRequest struct {
	GroupName string `json:"group_name" validate:"required"`
}

func (req *ItemGroupRequest) Validate() error {
	return validation.Validator().Struct(req)
}

// VariantRequest needs a heading and a list of subheadings, each with a name.
type VariantRequest struct {
	Heading       string                    `json:"heading" validate:"required"`
	Subheadings   []menuModel.VariantOption `json:"subheadings" validate:"required,dive"`
	ActiveSection string                    `json:"activeSection"`
}

func (req *VariantRequest) Validate() error {
	return validation.Validator().Struct(req)
}
