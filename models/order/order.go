package order

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Order is the authoritative record of an active customer order.
type Order struct {
	ID      string    `gorm:"type:varchar(36);primaryKey" json:"orderId"`
	OrderNo string    `gorm:"type:varchar(20);not null;index" json:"orderNo"`
	Type    OrderType `gorm:"column:order_type;type:varchar(20);not null" json:"orderType"`

	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customerName"`
	TableNumber     string          `gorm:"type:varchar(50)" json:"tableNumber"`
	ChairsBooked    StringSlice     `gorm:"type:jsonb" json:"chairsBooked"`
	PhoneNumber     string          `gorm:"type:varchar(20)" json:"phoneNumber"`
	WhatsappNumber  string          `gorm:"type:varchar(20)" json:"whatsappNumber"`
	Email           string          `gorm:"type:varchar(255)" json:"email"`
	DeliveryAddress DeliveryAddress `gorm:"type:jsonb" json:"deliveryAddress"`

	CartItems CartItems   `gorm:"type:jsonb;not null" json:"cartItems"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;default:Pending" json:"status"`

	DeliveryPersonID *string    `gorm:"type:varchar(36)" json:"deliveryPersonId,omitempty"`
	PickedUpTime     *time.Time `json:"pickedUpTime"`

	// Version is bumped on every write and used as the compare-and-swap guard.
	Version   int64     `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Order) TableName() string {
	return "active_orders"
}

// FindItem returns the index of the cart item with the given order-local id.
func (o *Order) FindItem(itemID string) (int, bool) {
	for i := range o.CartItems {
		if o.CartItems[i].ID == itemID {
			return i, true
		}
	}
	return -1, false
}

// RemoveItem drops a cart item keeping the display order of the rest.
func (o *Order) RemoveItem(itemID string) bool {
	idx, ok := o.FindItem(itemID)
	if !ok {
		return false
	}
	o.CartItems = append(o.CartItems[:idx], o.CartItems[idx+1:]...)
	return true
}

// Done reports whether every cart item is fully picked up.
func (o *Order) Done() bool {
	for i := range o.CartItems {
		if !o.CartItems[i].FullyPickedUp() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, so callers can mutate it without touching shared state.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.ChairsBooked = append(StringSlice(nil), o.ChairsBooked...)
	c.CartItems = o.CartItems.Clone()
	if o.DeliveryPersonID != nil {
		id := *o.DeliveryPersonID
		c.DeliveryPersonID = &id
	}
	if o.PickedUpTime != nil {
		t := *o.PickedUpTime
		c.PickedUpTime = &t
	}
	return &c
}

// DeliveryAddress is stored as a JSON document on the order.
type DeliveryAddress struct {
	FlatVillaNo  string `json:"flat_villa_no,omitempty"`
	BuildingName string `json:"building_name,omitempty"`
	Location     string `json:"location,omitempty"`
	Landmark     string `json:"landmark,omitempty"`
}

func (a DeliveryAddress) IsZero() bool {
	return a == DeliveryAddress{}
}

// String renders the address on one line for delivery messages.
func (a DeliveryAddress) String() string {
	out := ""
	for _, part := range []string{a.FlatVillaNo, a.BuildingName, a.Location} {
		if part == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	return out
}

func (a *DeliveryAddress) Scan(value interface{}) error {
	return scanJSON(value, a)
}

func (a DeliveryAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// StringSlice is a JSON encoded list of strings.
type StringSlice []string

func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}
	return scanJSON(value, ss)
}

func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return "[]", nil
	}
	return json.Marshal(ss)
}

// CartItems is the JSON encoded, ordered cart of an order.
type CartItems []CartItem

func (ci *CartItems) Scan(value interface{}) error {
	if value == nil {
		*ci = nil
		return nil
	}
	return scanJSON(value, ci)
}

func (ci CartItems) Value() (driver.Value, error) {
	if ci == nil {
		return "[]", nil
	}
	return json.Marshal(ci)
}

func (ci CartItems) Clone() CartItems {
	if ci == nil {
		return nil
	}
	out := make(CartItems, len(ci))
	for i := range ci {
		out[i] = ci[i].Clone()
	}
	return out
}

func scanJSON(value interface{}, dst interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
