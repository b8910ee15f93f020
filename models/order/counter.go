package order

import "fmt"

// OrderCounter is the persisted sequence behind order numbers, one row per prefix.
type OrderCounter struct {
	Prefix string `gorm:"type:varchar(10);primaryKey"`
	Value  int64  `gorm:"not null;default:0"`
}

func (OrderCounter) TableName() string {
	return "order_counters"
}

// FormatOrderNo renders a counter value as D0001, T0042, ON007 and so on.
func FormatOrderNo(t OrderType, n int64) string {
	return fmt.Sprintf("%s%0*d", t.NumberPrefix(), t.NumberWidth(), n)
}
