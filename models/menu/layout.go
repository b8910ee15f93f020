package menu

import (
	"time"

	"gorm.io/datatypes"
)

// Table is a dining table on the floor, addressed by its printed number.
type Table struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TableNumber    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"table_number"`
	NumberOfChairs int       `gorm:"not null" json:"number_of_chairs"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"modified_at"`
}

func (Table) TableName() string {
	return "dining_tables"
}

// ItemGroup is a menu section such as Starters or Drinks.
type ItemGroup struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupName string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"group_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VariantOption is one choice under a variant heading. A nil price means the
// choice does not change the item price.
type VariantOption struct {
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Image    string   `json:"image,omitempty"`
	Dropdown bool     `json:"dropdown,omitempty"`
}

// Variant groups choices like sizes or spice levels under a heading.
type Variant struct {
	ID            uint                                `gorm:"primaryKey;autoIncrement" json:"id"`
	Heading       string                              `gorm:"type:varchar(255);index;not null" json:"heading"`
	Subheadings   datatypes.JSONType[[]VariantOption] `gorm:"type:jsonb" json:"subheadings"`
	ActiveSection string                              `gorm:"type:varchar(255)" json:"activeSection"`
	CreatedAt     time.Time                           `json:"created_at"`
	UpdatedAt     time.Time                           `json:"updated_at"`
}
