package order

import (
	"time"

	"gorm.io/datatypes"
)

// PickedUpLogEntry records one kitchen handing over its share of a cart item.
// Rows are only ever inserted.
type PickedUpLogEntry struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      string    `gorm:"type:varchar(36);index;not null" json:"orderId"`
	OrderNo      string    `gorm:"type:varchar(20)" json:"orderNo"`
	CustomerName string    `gorm:"type:varchar(255)" json:"customerName"`
	TableNumber  string    `gorm:"type:varchar(50)" json:"tableNumber"`
	OrderType    OrderType `gorm:"type:varchar(20)" json:"orderType"`
	Kitchen      string    `gorm:"type:varchar(100);index;not null" json:"kitchen"`

	ItemID   string `gorm:"type:varchar(36)" json:"itemId"`
	ItemName string `gorm:"type:varchar(255)" json:"itemName"`
	Category string `gorm:"type:varchar(100)" json:"category"`
	Quantity int    `json:"quantity"`

	Addons datatypes.JSONType[[]Component] `gorm:"type:jsonb" json:"addons"`
	Combos datatypes.JSONType[[]Component] `gorm:"type:jsonb" json:"combos"`

	PickedUpTime time.Time `gorm:"not null;index" json:"pickedUpTime"`
}

func (PickedUpLogEntry) TableName() string {
	return "picked_up_items"
}

// NewPickedUpLogEntry captures item as handed over by kitchen. Only the addons
// and combos routed to that kitchen are kept.
func NewPickedUpLogEntry(o *Order, item *CartItem, kitchen string, at time.Time) *PickedUpLogEntry {
	addons, combos := item.ComponentsForKitchen(kitchen)
	if addons == nil {
		addons = []Component{}
	}
	if combos == nil {
		combos = []Component{}
	}
	return &PickedUpLogEntry{
		OrderID:      o.ID,
		OrderNo:      o.OrderNo,
		CustomerName: o.CustomerName,
		TableNumber:  o.TableNumber,
		OrderType:    o.Type,
		Kitchen:      kitchen,
		ItemID:       item.ID,
		ItemName:     item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		Addons:       datatypes.NewJSONType(addons),
		Combos:       datatypes.NewJSONType(combos),
		PickedUpTime: at,
	}
}
