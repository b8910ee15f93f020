package setting

import (
	"context"
	"errors"
	"testing"

	settingModel "restaurant-pos/models/setting"
	"restaurant-pos/types/apperror"
	"restaurant-pos/types/validation"
)

func TestDefaultsAreValid(t *testing.T) {
	d := settingModel.Defaults()
	if err := validation.Validator().Struct(d); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if !d.AllowLoginUsingUserName || d.SessionExpiry != "06:00" || d.AllowConsecutiveLoginAttempts != 5 {
		t.Fatalf("unexpected defaults %+v", d)
	}
}

func TestSaveRejectsInvalidDocument(t *testing.T) {
	s := NewService(nil)
	cases := map[string]func(*settingModel.SystemSettings){
		"session expiry": func(d *settingModel.SystemSettings) { d.SessionExpiry = "6 hours" },
		"reset link":     func(d *settingModel.SystemSettings) { d.ResetPasswordLinkExpiryDuration = "" },
		"password score": func(d *settingModel.SystemSettings) { d.MinimumPasswordScore = 5 },
		"login attempts": func(d *settingModel.SystemSettings) { d.AllowConsecutiveLoginAttempts = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := settingModel.Defaults()
			mutate(&d)
			if _, err := s.Save(context.Background(), &d); !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
