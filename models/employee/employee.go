package employee

import "time"

// Employee is a member of staff. Delivery people are employees with the
// delivery role and are looked up when an order is handed over.
type Employee struct {
	EmployeeID    string    `gorm:"type:varchar(8);primaryKey" json:"employeeId"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	PhoneNumber   string    `gorm:"type:varchar(20);not null" json:"phoneNumber"`
	VehicleNumber string    `gorm:"type:varchar(50)" json:"vehicleNumber"`
	Role          string    `gorm:"type:varchar(50);not null;index" json:"role"`
	Email         *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
