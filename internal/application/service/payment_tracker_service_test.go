package service

import (
	"context"
	"testing"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
)

func TestRecordPaymentTransitions(t *testing.T) {
	repo := &fakeTrackerRepo{entries: []entity.PaymentTrackerEntry{
		{Barcode: "B1", SaleAmount: 300, Balance: 300, Status: enum.PaymentStatusUnpaid},
	}}
	svc := NewPaymentTrackerService(repo)

	entry, err := svc.RecordPayment(context.Background(), "B1", 100, "2024-04-05")
	if err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if entry.ReceivedAmount != 100 || entry.Balance != 200 || entry.Status != enum.PaymentStatusPartial {
		t.Errorf("after first payment = %+v, want partial", entry)
	}
	if entry.PaymentDate != "2024-04-05" {
		t.Errorf("payment date = %s, want 2024-04-05", entry.PaymentDate)
	}

	entry, err = svc.RecordPayment(context.Background(), "B1", 200, "10/04/2024")
	if err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if entry.ReceivedAmount != 300 || entry.Balance != 0 || entry.Status != enum.PaymentStatusPaid {
		t.Errorf("after second payment = %+v, want paid", entry)
	}
	if entry.PaymentDate != "2024-04-10" {
		t.Errorf("payment date = %s, want normalized 2024-04-10", entry.PaymentDate)
	}
}

func TestRecordPaymentBadDateFallsBackToToday(t *testing.T) {
	repo := &fakeTrackerRepo{entries: []entity.PaymentTrackerEntry{
		{Barcode: "B1", SaleAmount: 100, Balance: 100, Status: enum.PaymentStatusUnpaid},
	}}
	svc := NewPaymentTrackerService(repo)

	entry, err := svc.RecordPayment(context.Background(), "B1", 50, "whenever")
	if err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if entry.PaymentDate == "" {
		t.Error("payment date empty, want today fallback")
	}
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc := NewPaymentTrackerService(&fakeTrackerRepo{})
	for _, amount := range []float64{0, -10} {
		if _, err := svc.RecordPayment(context.Background(), "B1", amount, ""); err == nil {
			t.Errorf("RecordPayment(%v) = nil error, want rejection", amount)
		}
	}
}

func TestGetEntryNotFound(t *testing.T) {
	svc := NewPaymentTrackerService(&fakeTrackerRepo{})
	if _, err := svc.GetEntry(context.Background(), "NOPE"); err == nil {
		t.Error("GetEntry() = nil error for unknown barcode")
	}
}

func TestListEntriesByStatus(t *testing.T) {
	repo := &fakeTrackerRepo{entries: []entity.PaymentTrackerEntry{
		{Barcode: "B1", Status: enum.PaymentStatusUnpaid},
		{Barcode: "B2", Status: enum.PaymentStatusPaid},
		{Barcode: "B3", Status: enum.PaymentStatusUnpaid},
	}}
	svc := NewPaymentTrackerService(repo)

	unpaid, err := svc.ListEntriesByStatus(context.Background(), enum.PaymentStatusUnpaid)
	if err != nil {
		t.Fatalf("ListEntriesByStatus() error = %v", err)
	}
	if len(unpaid) != 2 {
		t.Errorf("unpaid entries = %d, want 2", len(unpaid))
	}
}
