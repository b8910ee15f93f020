package customer

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	customerService "restaurant-pos/services/customer"

	"github.com/gofiber/fiber/v2"
)

func TestCustomerHandlersRejectBadInput(t *testing.T) {
	h := NewCustomerController(customerService.NewService(nil))
	app := fiber.New()
	app.Post("/api/customers", h.Store)
	app.Get("/api/customers/:customerId", h.Show)
	app.Put("/api/customers/:customerId", h.Update)
	app.Delete("/api/customers/:customerId", h.Delete)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"create without phone", http.MethodPost, "/api/customers", `{"customer_name":"Asha"}`},
		{"show with text id", http.MethodGet, "/api/customers/asha", ``},
		{"update with text id", http.MethodPut, "/api/customers/asha", `{"customer_name":"Asha","phone_number":"+971500000000"}`},
		{"update without name", http.MethodPut, "/api/customers/3", `{"phone_number":"+971500000000"}`},
		{"update with bad email", http.MethodPut, "/api/customers/3", `{"customer_name":"Asha","phone_number":"+971500000000","email":"asha"}`},
		{"delete id zero", http.MethodDelete, "/api/customers/0", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}
