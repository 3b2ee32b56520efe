package service

import (
	"strings"
	"testing"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

func TestReconcileMatchingBatch(t *testing.T) {
	sales := []entity.SalesRecord{{Price: 100}, {Price: 250.5}}
	tracker := []entity.PaymentTrackerEntry{{SaleAmount: 100}, {SaleAmount: 250.5}}
	gst := []entity.GSTRecord{{SaleAmount: 100}, {SaleAmount: 250.5}}

	if err := Reconcile("IMPORT_1", sales, tracker, gst); err != nil {
		t.Errorf("Reconcile() = %v, want nil", err)
	}
}

func TestReconcileCountMismatch(t *testing.T) {
	sales := []entity.SalesRecord{{Price: 100}, {Price: 200}}
	tracker := []entity.PaymentTrackerEntry{{SaleAmount: 300}}
	gst := []entity.GSTRecord{{SaleAmount: 100}, {SaleAmount: 200}}

	err := Reconcile("IMPORT_2", sales, tracker, gst)
	if err == nil {
		t.Fatal("Reconcile() = nil, want error")
	}
	if !apperror.IsKind(err, apperror.KindReconciliation) {
		t.Errorf("error kind = %v, want reconciliation", err)
	}
	msg := err.Error()
	for _, want := range []string{"IMPORT_2", "sales count=2", "payment tracker count=1", "gst count=2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("diagnostic %q missing %q", msg, want)
		}
	}
}

func TestReconcileTotalMismatch(t *testing.T) {
	sales := []entity.SalesRecord{{Price: 100}}
	tracker := []entity.PaymentTrackerEntry{{SaleAmount: 100}}
	gst := []entity.GSTRecord{{SaleAmount: 99}}

	err := Reconcile("IMPORT_3", sales, tracker, gst)
	if err == nil {
		t.Fatal("Reconcile() = nil, want error")
	}
	if !apperror.IsKind(err, apperror.KindReconciliation) {
		t.Errorf("error kind = %v, want reconciliation", err)
	}
}

func TestReconcileWithinEpsilon(t *testing.T) {
	// Differences strictly below a paisa are tolerated.
	sales := []entity.SalesRecord{{Price: 100.004}}
	tracker := []entity.PaymentTrackerEntry{{SaleAmount: 100}}
	gst := []entity.GSTRecord{{SaleAmount: 100}}

	if err := Reconcile("IMPORT_4", sales, tracker, gst); err != nil {
		t.Errorf("Reconcile() = %v, want nil for sub-epsilon difference", err)
	}
}

func TestReconcileEmptyBatch(t *testing.T) {
	if err := Reconcile("IMPORT_5", nil, nil, nil); err != nil {
		t.Errorf("Reconcile() = %v, want nil for empty batch", err)
	}
}
