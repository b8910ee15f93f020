package customer

import "time"

type Customer struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName   string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	PhoneNumber    string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone_number"`
	WhatsappNumber string    `gorm:"type:varchar(20)" json:"whatsapp_number"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	BuildingName   string    `gorm:"type:varchar(255)" json:"building_name"`
	FlatVillaNo    string    `gorm:"type:varchar(50)" json:"flat_villa_no"`
	Location       string    `gorm:"type:varchar(255)" json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
