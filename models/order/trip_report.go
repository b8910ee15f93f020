package order

import "time"

// TripReport is the snapshot of an order taken when it is handed to a delivery
// person. Only Status and PickedUpTime change afterwards.
type TripReport struct {
	TripID             string          `gorm:"type:varchar(36);primaryKey" json:"tripId"`
	DeliveryPersonID   string          `gorm:"type:varchar(36);index;not null" json:"deliveryPersonId"`
	DeliveryPersonName string          `gorm:"type:varchar(255)" json:"deliveryPersonName"`
	OrderID            string          `gorm:"type:varchar(36);uniqueIndex;not null" json:"orderId"`
	OrderNo            string          `gorm:"type:varchar(20)" json:"orderNo"`
	CustomerName       string          `gorm:"type:varchar(255)" json:"customerName"`
	PhoneNumber        string          `gorm:"type:varchar(20)" json:"phoneNumber"`
	DeliveryAddress    DeliveryAddress `gorm:"type:jsonb" json:"deliveryAddress"`
	CartItems          CartItems       `gorm:"type:jsonb" json:"cartItems"`
	OrderType          OrderType       `gorm:"type:varchar(20)" json:"orderType"`
	Status             OrderStatus     `gorm:"type:varchar(20);not null;default:Pending" json:"status"`
	PickedUpTime       *time.Time      `json:"pickedUpTime"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func (TripReport) TableName() string {
	return "trip_reports"
}

// NewTripReport snapshots o for the given delivery person.
func NewTripReport(tripID string, o *Order, personID, personName string, at time.Time) *TripReport {
	return &TripReport{
		TripID:             tripID,
		DeliveryPersonID:   personID,
		DeliveryPersonName: personName,
		OrderID:            o.ID,
		OrderNo:            o.OrderNo,
		CustomerName:       o.CustomerName,
		PhoneNumber:        o.PhoneNumber,
		DeliveryAddress:    o.DeliveryAddress,
		CartItems:          o.CartItems.Clone(),
		OrderType:          o.Type,
		Status:             OrderStatusPending,
		CreatedAt:          at,
	}
}
