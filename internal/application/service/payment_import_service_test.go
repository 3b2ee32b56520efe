package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
)

func TestPaymentImportAppliesRows(t *testing.T) {
	tracker := &fakeTrackerRepo{entries: []entity.PaymentTrackerEntry{
		{ID: uuid.New(), Barcode: "B1", SaleAmount: 200, Balance: 200, Status: enum.PaymentStatusUnpaid},
		{ID: uuid.New(), Barcode: "B2", SaleAmount: 500, Balance: 500, Status: enum.PaymentStatusUnpaid},
	}}
	svc := NewPaymentImportService(tracker)

	csv := "Barcode,Paid Amount,Payment Date\n" +
		"B1,200,05/04/2024\n" +
		"B2,100,05/04/2024\n"
	result, err := svc.Import(context.Background(), strings.NewReader(csv), "payments.csv")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.TotalRows != 2 || result.Applied != 2 {
		t.Errorf("result = %+v, want both rows applied", result)
	}

	b1, _ := tracker.GetByBarcode(context.Background(), "B1")
	if b1.ReceivedAmount != 200 || b1.Balance != 0 || b1.Status != enum.PaymentStatusPaid {
		t.Errorf("B1 = %+v, want fully paid", b1)
	}
	if b1.PaymentDate != "2024-04-05" {
		t.Errorf("B1 payment date = %s, want 2024-04-05", b1.PaymentDate)
	}

	b2, _ := tracker.GetByBarcode(context.Background(), "B2")
	if b2.ReceivedAmount != 100 || b2.Balance != 400 || b2.Status != enum.PaymentStatusPartial {
		t.Errorf("B2 = %+v, want partial", b2)
	}
}

func TestPaymentImportTolerantPerRow(t *testing.T) {
	tracker := &fakeTrackerRepo{entries: []entity.PaymentTrackerEntry{
		{ID: uuid.New(), Barcode: "B1", SaleAmount: 100, Balance: 100, Status: enum.PaymentStatusUnpaid},
	}}
	svc := NewPaymentImportService(tracker)

	csv := "Barcode,Paid Amount\n" +
		"B1,50\n" +
		"MISSING,75\n" +
		",10\n" +
		"B1,bad\n"
	result, err := svc.Import(context.Background(), strings.NewReader(csv), "payments.csv")
	if err != nil {
		t.Fatalf("Import() error = %v, want tolerant run", err)
	}

	if result.Applied != 1 {
		t.Errorf("applied = %d, want 1", result.Applied)
	}
	if len(result.NotFound) != 1 || result.NotFound[0] != "MISSING" {
		t.Errorf("not found = %v, want [MISSING]", result.NotFound)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("errors = %+v, want 2 (blank barcode, bad amount)", result.Errors)
	}
	if result.Errors[0].Row != 4 || result.Errors[1].Row != 5 {
		t.Errorf("error rows = %d, %d, want 4 and 5", result.Errors[0].Row, result.Errors[1].Row)
	}

	b1, _ := tracker.GetByBarcode(context.Background(), "B1")
	if b1.ReceivedAmount != 50 || b1.Status != enum.PaymentStatusPartial {
		t.Errorf("B1 = %+v, want the one good row applied", b1)
	}
}

func TestPaymentImportAccumulates(t *testing.T) {
	tracker := &fakeTrackerRepo{entries: []entity.PaymentTrackerEntry{
		{ID: uuid.New(), Barcode: "B1", SaleAmount: 300, Balance: 300, Status: enum.PaymentStatusUnpaid},
	}}
	svc := NewPaymentImportService(tracker)

	csv := "Barcode,Paid Amount\nB1,100\nB1,200\n"
	result, err := svc.Import(context.Background(), strings.NewReader(csv), "payments.csv")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Applied != 2 {
		t.Errorf("applied = %d, want 2", result.Applied)
	}

	b1, _ := tracker.GetByBarcode(context.Background(), "B1")
	if b1.ReceivedAmount != 300 || b1.Balance != 0 || b1.Status != enum.PaymentStatusPaid {
		t.Errorf("B1 = %+v, want payments accumulated to paid", b1)
	}
}

func TestPaymentImportMissingColumns(t *testing.T) {
	svc := NewPaymentImportService(&fakeTrackerRepo{})
	csv := "Barcode\nB1\n"
	if _, err := svc.Import(context.Background(), strings.NewReader(csv), "payments.csv"); err == nil {
		t.Error("Import() = nil error, want mapping failure for missing paid amount")
	}
}
