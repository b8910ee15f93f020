package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-pos/constants"
	"restaurant-pos/models/user"
	"restaurant-pos/types/apperror"
	authTypes "restaurant-pos/types/auth"
	"restaurant-pos/utils"
)

func TestIssueForFallsBackToRolePermissions(t *testing.T) {
	s := NewService(nil, "secret", time.Hour)
	tok, err := s.IssueFor(&user.User{ID: 7, FirstName: "Ravi", Email: "ravi@pos.local", Role: constants.RoleKitchen})
	if err != nil {
		t.Fatal(err)
	}
	claims, err := utils.ParseToken("secret", tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 7 || claims.Role != constants.RoleKitchen {
		t.Errorf("unexpected claims %+v", claims)
	}
	if len(claims.Permissions) != 1 || claims.Permissions[0] != constants.PermKitchenFull {
		t.Errorf("permissions = %v", claims.Permissions)
	}
}

func TestRegisterValidatesBeforeTouchingStore(t *testing.T) {
	s := NewService(nil, "secret", time.Hour)
	cases := map[string]*authTypes.RegisterRequest{
		"bad role":  {FirstName: "A", Email: "a@b.co", PhoneNumber: "+971501234567", Password: "secret1", Role: "chef"},
		"bad phone": {FirstName: "A", Email: "a@b.co", PhoneNumber: "12345", Password: "secret1", Role: "admin"},
		"short pwd": {FirstName: "A", Email: "a@b.co", PhoneNumber: "+971501234567", Password: "x", Role: "admin"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Register(context.Background(), req); !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLoginRequiresIdentifier(t *testing.T) {
	s := NewService(nil, "secret", time.Hour)
	_, err := s.Login(context.Background(), &authTypes.LoginRequest{Password: "x"})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
