package order

import (
	"time"

	"gorm.io/datatypes"
)

// KitchenOrder is the kitchen display copy of an Order. It is rewritten as a
// whole whenever the order changes.
type KitchenOrder struct {
	OrderID   string                    `gorm:"type:varchar(36);primaryKey" json:"orderId"`
	Document  datatypes.JSONType[Order] `gorm:"type:jsonb;not null" json:"document"`
	Version   int64                     `gorm:"not null" json:"version"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

func (KitchenOrder) TableName() string {
	return "kitchen_saved"
}

// NewKitchenOrder snapshots o into a projection row.
func NewKitchenOrder(o *Order) *KitchenOrder {
	return &KitchenOrder{
		OrderID:   o.ID,
		Document:  datatypes.NewJSONType(*o.Clone()),
		Version:   o.Version,
		UpdatedAt: time.Now(),
	}
}

// Order returns a copy of the projected order.
func (k *KitchenOrder) Order() *Order {
	o := k.Document.Data()
	return o.Clone()
}
