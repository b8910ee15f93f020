package sales

import (
	"errors"
	"testing"
	"time"

	salesModel "restaurant-pos/models/sales"
	"restaurant-pos/types/apperror"
	salesTypes "restaurant-pos/types/sales"
)

func TestTotals(t *testing.T) {
	tests := []struct {
		net       float64
		wantVAT   float64
		wantGrand float64
	}{
		{0, 0, 0},
		{100, 10, 110},
		{12.34, 1.23, 13.57},
		{99.99, 10, 109.99},
	}
	for _, tt := range tests {
		vat, grand := Totals(tt.net)
		if vat != tt.wantVAT || grand != tt.wantGrand {
			t.Errorf("Totals(%v) = %v, %v; want %v, %v", tt.net, vat, grand, tt.wantVAT, tt.wantGrand)
		}
	}
}

func TestBuildInvoice(t *testing.T) {
	issued := time.Date(2026, 3, 4, 18, 30, 5, 0, time.UTC)
	s := &Service{now: func() time.Time { return issued }}
	total := 45.5

	inv, err := s.BuildInvoice(&salesTypes.CreateInvoiceRequest{
		Customer: " Walk-in ",
		Items: []salesModel.InvoiceItem{{
			ItemName:  "Biryani",
			BasePrice: 45.5,
			Quantity:  1,
			Amount:    45.5,
		}},
		Total: &total,
	})
	if err != nil {
		t.Fatal(err)
	}
	if inv.InvoiceNo != InvoiceNo(issued) {
		t.Errorf("invoice no = %s", inv.InvoiceNo)
	}
	if inv.Customer != "Walk-in" {
		t.Errorf("customer = %q", inv.Customer)
	}
	if inv.Status != salesModel.InvoiceStatusDraft {
		t.Errorf("status = %s", inv.Status)
	}
	if inv.VATAmount != 4.55 || inv.GrandTotal != 50.05 {
		t.Errorf("vat %v grand %v", inv.VATAmount, inv.GrandTotal)
	}
	if inv.Date != "2026-03-04" || inv.Time != "18:30:05" {
		t.Errorf("date %s time %s", inv.Date, inv.Time)
	}
	if len(inv.Items.Data()) != 1 {
		t.Errorf("items not kept")
	}
}

func TestBuildInvoiceRequiresFields(t *testing.T) {
	s := &Service{now: time.Now}
	total := 10.0
	cases := map[string]*salesTypes.CreateInvoiceRequest{
		"no customer": {Items: []salesModel.InvoiceItem{{ItemName: "Tea"}}, Total: &total},
		"no items":    {Customer: "A", Total: &total},
		"no total":    {Customer: "A", Items: []salesModel.InvoiceItem{{ItemName: "Tea"}}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.BuildInvoice(req)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestInvoiceStatusIsValid(t *testing.T) {
	if !salesModel.InvoiceStatusPaid.IsValid() {
		t.Error("Paid should be valid")
	}
	if salesModel.InvoiceStatus("Refunded").IsValid() {
		t.Error("Refunded should not be valid")
	}
}
