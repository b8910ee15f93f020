package menu

import (
	"time"

	"gorm.io/datatypes"
)

// Kitchen is a preparation station. Cart items are routed to kitchens by name.
type Kitchen struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	KitchenName string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"kitchen_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Option is an addon or combo that can be ordered with an item.
type Option struct {
	Name    string  `json:"name" validate:"required"`
	Price   float64 `json:"price" validate:"gte=0"`
	Kitchen string  `json:"kitchen"`
	Image   string  `json:"image,omitempty"`
}

type Item struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemName      string  `gorm:"type:varchar(255);not null" json:"item_name"`
	ItemCode      string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"item_code"`
	ItemGroup     string  `gorm:"type:varchar(100);index;not null" json:"item_group"`
	PriceListRate float64 `gorm:"not null" json:"price_list_rate"`
	Kitchen       string  `gorm:"type:varchar(100)" json:"kitchen"`
	Image         string  `gorm:"type:varchar(255)" json:"image"`

	Addons datatypes.JSONType[[]Option] `gorm:"type:jsonb" json:"addons"`
	Combos datatypes.JSONType[[]Option] `gorm:"type:jsonb" json:"combos"`

	OfferPrice     *float64   `json:"offer_price,omitempty"`
	OfferStartTime *time.Time `json:"offer_start_time,omitempty"`
	OfferEndTime   *time.Time `json:"offer_end_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasOffer reports whether any offer field is set.
func (i *Item) HasOffer() bool {
	return i.OfferPrice != nil || i.OfferStartTime != nil || i.OfferEndTime != nil
}

// OfferExpired is true when the offer window is over or was never valid.
// An offer with only a start time is left alone.
func (i *Item) OfferExpired(now time.Time) bool {
	switch {
	case i.OfferEndTime == nil:
		return false
	case now.After(*i.OfferEndTime):
		return true
	case i.OfferStartTime != nil && i.OfferStartTime.After(*i.OfferEndTime):
		return true
	default:
		return false
	}
}

// OfferActive is true while now lies inside the offer window.
func (i *Item) OfferActive(now time.Time) bool {
	if i.OfferPrice == nil || i.OfferEndTime == nil || i.OfferExpired(now) {
		return false
	}
	return i.OfferStartTime == nil || !now.Before(*i.OfferStartTime)
}

func (i *Item) ClearOffer() {
	i.OfferPrice = nil
	i.OfferStartTime = nil
	i.OfferEndTime = nil
}
