package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-pos/constants"
	"restaurant-pos/services/idempotency"
	"restaurant-pos/utils"

	"github.com/gofiber/fiber/v2"
)

const secret = "test-secret"

func token(t *testing.T, perms ...string) string {
	t.Helper()
	tok, err := utils.IssueToken(secret, utils.TokenClaims{UserID: 1, Username: "asha", Permissions: perms}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/kitchen", handler, func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequirePermissions(t *testing.T) {
	auth := NewAuth(secret)
	app := newApp(auth.RequirePermissions(constants.KitchenPermissions...))

	tests := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{name: "missing token", want: fiber.StatusUnauthorized},
		{name: "bad header", header: "Token abc", want: fiber.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", want: fiber.StatusUnauthorized},
		{name: "wrong permission", header: "Bearer " + token(t, constants.PermDeliveryFull), want: fiber.StatusForbidden},
		{name: "kitchen", header: "Bearer " + token(t, constants.PermKitchenFull), want: fiber.StatusOK},
		{name: "cookie", cookie: token(t, constants.PermAdminFull), want: fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/kitchen", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.Header.Set("Cookie", "access="+tt.cookie)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestRequireAuthenticationAcceptsAnyValidToken(t *testing.T) {
	app := newApp(NewAuth(secret).RequireAuthentication())
	req := httptest.NewRequest("GET", "/kitchen", nil)
	req.Header.Set("Authorization", "Bearer "+token(t))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestRejectsTokenSignedWithOtherSecret(t *testing.T) {
	app := newApp(NewAuth("other").RequireAuthentication())
	req := httptest.NewRequest("GET", "/kitchen", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, constants.PermAdminFull))
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestIdempotentRejectsRepeat(t *testing.T) {
	app := fiber.New()
	app.Post("/orders", Idempotent(idempotency.NewMemoryStore(time.Hour)), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	send := func(key string) int {
		req := httptest.NewRequest("POST", "/orders", nil)
		if key != "" {
			req.Header.Set(IdempotencyHeader, key)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp.StatusCode
	}

	if got := send("abc"); got != fiber.StatusCreated {
		t.Fatalf("first = %d", got)
	}
	if got := send("abc"); got != fiber.StatusConflict {
		t.Fatalf("repeat = %d", got)
	}
	if got := send(""); got != fiber.StatusCreated {
		t.Fatalf("no key = %d", got)
	}
	if got := send(""); got != fiber.StatusCreated {
		t.Fatalf("no key again = %d", got)
	}
}

func TestIdempotentReleasesKeyOfFailedRequest(t *testing.T) {
	app := fiber.New()
	app.Post("/orders", Idempotent(idempotency.NewMemoryStore(time.Hour)), func(c *fiber.Ctx) error {
		switch c.Query("outcome") {
		case "invalid":
			return c.SendStatus(fiber.StatusBadRequest)
		case "error":
			return fiber.NewError(fiber.StatusInternalServerError, "store down")
		default:
			return c.SendStatus(fiber.StatusCreated)
		}
	})

	send := func(outcome string) int {
		req := httptest.NewRequest("POST", "/orders?outcome="+outcome, nil)
		req.Header.Set(IdempotencyHeader, "k1")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp.StatusCode
	}

	if got := send("invalid"); got != fiber.StatusBadRequest {
		t.Fatalf("invalid = %d", got)
	}
	if got := send("error"); got != fiber.StatusInternalServerError {
		t.Fatalf("error = %d", got)
	}
	if got := send("ok"); got != fiber.StatusCreated {
		t.Fatalf("retry after failures = %d", got)
	}
	if got := send("ok"); got != fiber.StatusConflict {
		t.Fatalf("repeat after success = %d", got)
	}
}
