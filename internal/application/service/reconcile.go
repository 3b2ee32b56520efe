package service

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

// reconcileEpsilon is the tolerated monetary difference between sibling
// table totals, in currency units.
var reconcileEpsilon = decimal.NewFromFloat(0.01)

// Reconcile verifies that the three sibling batches written from one import
// agree on row count and sale-amount total. A mismatch is fatal and
// non-retryable: the diagnostic is logged as critical and returned, and no
// automatic cleanup is attempted. The operator resolves it manually, using
// the batch-scoped delete if needed.
func Reconcile(batchID string, sales []entity.SalesRecord, tracker []entity.PaymentTrackerEntry, gst []entity.GSTRecord) error {
	salesTotal := decimal.Zero
	for _, r := range sales {
		salesTotal = salesTotal.Add(decimal.NewFromFloat(r.Price))
	}
	trackerTotal := decimal.Zero
	for _, r := range tracker {
		trackerTotal = trackerTotal.Add(decimal.NewFromFloat(r.SaleAmount))
	}
	gstTotal := decimal.Zero
	for _, r := range gst {
		gstTotal = gstTotal.Add(decimal.NewFromFloat(r.SaleAmount))
	}

	countsMatch := len(sales) == len(tracker) && len(tracker) == len(gst)
	totalsMatch := salesTotal.Sub(trackerTotal).Abs().LessThan(reconcileEpsilon) &&
		salesTotal.Sub(gstTotal).Abs().LessThan(reconcileEpsilon)

	if countsMatch && totalsMatch {
		return nil
	}

	diagnostic := fmt.Sprintf(
		"reconciliation failed for batch %s: sales count=%d total=%s, payment tracker count=%d total=%s, gst count=%d total=%s; verify data manually",
		batchID,
		len(sales), salesTotal.StringFixed(2),
		len(tracker), trackerTotal.StringFixed(2),
		len(gst), gstTotal.StringFixed(2),
	)
	log.Printf("CRITICAL: %s", diagnostic)
	return apperror.NewReconciliationError(diagnostic)
}
