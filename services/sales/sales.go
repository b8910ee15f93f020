// Package sales issues invoices and computes their totals.
package sales

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"restaurant-pos/logger"
	salesModel "restaurant-pos/models/sales"
	"restaurant-pos/types/apperror"
	salesTypes "restaurant-pos/types/sales"
	"restaurant-pos/types/validation"

	"github.com/jinzhu/now"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const VATRate = 0.10

// Totals returns the VAT and grand total for a net amount, both rounded to
// two decimals.
func Totals(net float64) (vat, grand float64) {
	vat = round2(net * VATRate)
	grand = round2(net + vat)
	return vat, grand
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// InvoiceNo formats an invoice number from the issue time.
func InvoiceNo(at time.Time) string {
	return fmt.Sprintf("INV-%d", at.Unix())
}

type Service struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, now: time.Now}
}

// BuildInvoice validates the request and fills in the computed fields. It does
// not touch the database.
func (s *Service) BuildInvoice(req *salesTypes.CreateInvoiceRequest) (*salesModel.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	issued := s.now()
	net := round2(*req.Total)
	vat, grand := Totals(net)
	return &salesModel.Invoice{
		InvoiceNo:     InvoiceNo(issued),
		Customer:      strings.TrimSpace(req.Customer),
		OrderType:     req.OrderType,
		PaymentMethod: req.PaymentMethod,
		Items:         datatypes.NewJSONType(req.Items),
		NetTotal:      net,
		VATAmount:     vat,
		GrandTotal:    grand,
		Status:        salesModel.InvoiceStatusDraft,
		Date:          issued.Format("2006-01-02"),
		Time:          issued.Format("15:04:05"),
	}, nil
}

func (s *Service) Create(ctx context.Context, req *salesTypes.CreateInvoiceRequest) (*salesModel.Invoice, error) {
	inv, err := s.BuildInvoice(req)
	if err != nil {
		return nil, err
	}

	// Two invoices in the same second get a numeric suffix.
	base := inv.InvoiceNo
	for i := 2; ; i++ {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&salesModel.Invoice{}).Where("invoice_no = ?", inv.InvoiceNo).Count(&count).Error; err != nil {
			return nil, apperror.Dependency(err, "failed to allocate invoice number")
		}
		if count == 0 {
			break
		}
		inv.InvoiceNo = fmt.Sprintf("%s-%d", base, i)
	}

	if err := s.DB.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to save invoice")
	}
	logger.Success(fmt.Sprintf("Invoice %s issued for %s: %.2f", inv.InvoiceNo, inv.Customer, inv.GrandTotal))
	return inv, nil
}

// List returns invoices newest first. A non-nil day limits the result to
// invoices created on that day.
func (s *Service) List(ctx context.Context, day *time.Time) ([]salesModel.Invoice, error) {
	query := s.DB.WithContext(ctx).Order("created_at DESC")
	if day != nil {
		d := now.With(*day)
		query = query.Where("created_at BETWEEN ? AND ?", d.BeginningOfDay(), d.EndOfDay())
	}
	var invoices []salesModel.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list invoices")
	}
	return invoices, nil
}

func (s *Service) Get(ctx context.Context, invoiceNo string) (*salesModel.Invoice, error) {
	var inv salesModel.Invoice
	err := s.DB.WithContext(ctx).Where("invoice_no = ?", invoiceNo).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("invoice %s not found", invoiceNo)
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load invoice %s", invoiceNo)
	}
	return &inv, nil
}

func (s *Service) UpdateStatus(ctx context.Context, invoiceNo string, req *salesTypes.UpdateStatusRequest) (*salesModel.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	status := salesModel.InvoiceStatus(req.Status)
	if !status.IsValid() {
		return nil, apperror.Validation("unknown invoice status %q", req.Status)
	}
	inv, err := s.Get(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(inv).Update("status", status).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to update invoice %s", invoiceNo)
	}
	inv.Status = status
	logger.Info(fmt.Sprintf("Invoice %s marked %s", invoiceNo, status))
	return inv, nil
}
