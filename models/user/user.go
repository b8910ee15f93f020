package user

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// User is a login capable account. Staff log in with email and password.
type User struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string      `gorm:"type:varchar(255);not null" json:"firstName"`
	Email        string      `gorm:"type:varchar(255);not null;unique" json:"email"`
	PhoneNumber  string      `gorm:"type:varchar(20);not null;unique" json:"phone_number"`
	PasswordHash string      `gorm:"type:varchar(255);not null" json:"-"`
	Role         string      `gorm:"type:varchar(50);not null" json:"role"`
	Company      string      `gorm:"type:varchar(255)" json:"company"`
	Status       string      `gorm:"type:varchar(20);default:Active" json:"status"`
	Permissions  StringSlice `gorm:"type:json" json:"permissions"` // Use JSON column to store slice of strings

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StringSlice is a custom type to handle JSON serialization for PostgreSQL
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ss)
	case string:
		return json.Unmarshal([]byte(v), ss)
	default:
		return errors.New("type assertion to []byte failed")
	}
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}
