package setting

import (
	"time"

	"gorm.io/datatypes"
)

// SingletonID is the primary key of the only settings row.
const SingletonID = 1

// SystemSettings are the login and password rules shown on the admin
// settings screen. Durations are "HH:MM" strings.
type SystemSettings struct {
	DisableUserPassLogin            bool   `json:"disableUserPassLogin"`
	AllowLoginUsingMobileNumber     bool   `json:"allowLoginUsingMobileNumber"`
	AllowLoginUsingUserName         bool   `json:"allowLoginUsingUserName"`
	LoginWithEmailLink              bool   `json:"loginWithEmailLink"`
	SessionExpiry                   string `json:"sessionExpiry" validate:"required,hhmm"`
	DocumentShareKeyExpiry          int    `json:"documentShareKeyExpiry" validate:"gte=0"`
	DenyMultipleSessions            bool   `json:"denyMultipleSessions"`
	AllowConsecutiveLoginAttempts   int    `json:"allowConsecutiveLoginAttempts" validate:"gte=0"`
	AllowLoginAfterFail             int    `json:"allowLoginAfterFail" validate:"gte=0"`
	EnableTwoFactorAuth             bool   `json:"enableTwoFactorAuth"`
	LogoutOnPasswordReset           bool   `json:"logoutOnPasswordReset"`
	ForceUserToResetPassword        int    `json:"forceUserToResetPassword" validate:"gte=0"`
	ResetPasswordLinkExpiryDuration string `json:"resetPasswordLinkExpiryDuration" validate:"required,hhmm"`
	PasswordResetLimit              int    `json:"passwordResetLimit" validate:"gte=0"`
	EnablePasswordPolicy            bool   `json:"enablePasswordPolicy"`
	MinimumPasswordScore            int    `json:"minimumPasswordScore" validate:"gte=0,lte=4"`
}

func Defaults() SystemSettings {
	return SystemSettings{
		AllowLoginUsingUserName:         true,
		SessionExpiry:                   "06:00",
		DocumentShareKeyExpiry:          30,
		AllowConsecutiveLoginAttempts:   5,
		AllowLoginAfterFail:             60,
		ResetPasswordLinkExpiryDuration: "24:00",
		PasswordResetLimit:              3,
		MinimumPasswordScore:            2,
	}
}

type Setting struct {
	ID        uint                               `gorm:"primaryKey" json:"-"`
	Document  datatypes.JSONType[SystemSettings] `gorm:"type:jsonb;not null" json:"settings"`
	UpdatedAt time.Time                          `json:"updated_at"`
}

func (Setting) TableName() string {
	return "system_settings"
}
