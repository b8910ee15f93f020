package sales

import (
	"time"

	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	default:
		return false
	}
}

type InvoiceAddon struct {
	Name     string  `json:"addon_name"`
	Price    float64 `json:"addon_price"`
	Quantity int     `json:"addon_quantity"`
	Size     string  `json:"size"`
}

type InvoiceCombo struct {
	Name     string  `json:"name1"`
	Price    float64 `json:"combo_price"`
	Quantity int     `json:"combo_quantity"`
	Size     string  `json:"size"`
}

type InvoiceItem struct {
	ItemName     string         `json:"item_name"`
	BasePrice    float64        `json:"basePrice"`
	Quantity     int            `json:"quantity"`
	Amount       float64        `json:"amount"`
	Kitchen      string         `json:"kitchen"`
	SelectedSize string         `json:"selectedSize"`
	Addons       []InvoiceAddon `json:"addons"`
	Combos       []InvoiceCombo `json:"selectedCombos"`
}

// Invoice is a sales invoice. Totals are fixed at creation.
type Invoice struct {
	ID            uint                              `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNo     string                            `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_no"`
	Customer      string                            `gorm:"type:varchar(255);not null" json:"customer"`
	OrderType     string                            `gorm:"type:varchar(20)" json:"orderType"`
	PaymentMethod string                            `gorm:"type:varchar(50)" json:"paymentMethod"`
	Items         datatypes.JSONType[[]InvoiceItem] `gorm:"type:jsonb;not null" json:"items"`
	NetTotal      float64                           `gorm:"not null" json:"total"`
	VATAmount     float64                           `gorm:"not null" json:"vat_amount"`
	GrandTotal    float64                           `gorm:"not null" json:"grand_total"`
	Status        InvoiceStatus                     `gorm:"type:varchar(20);not null;default:Draft" json:"status"`
	Date          string                            `gorm:"type:varchar(10);index" json:"date"`
	Time          string                            `gorm:"type:varchar(8)" json:"time"`
	CreatedAt     time.Time                         `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time                         `json:"updated_at"`
}
