package postgresql

import (
	"context"
	"testing"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/payroll"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/stretchr/testify/assert"
)

// An unparseable payment date must fail the update rather than silently
// writing NULL. The parse runs before any query, so no database is needed.
func TestPayrollRepository_UpdatePaymentStatus_BadPaymentDate(t *testing.T) {
	repo := &payrollRepository{db: &database.DB{}}

	badDate := "2025-07-01 10:00:00"
	err := repo.UpdatePaymentStatus(context.Background(), "org-1", payroll.UpdatePaymentStatusRequest{
		ID:          "rec-1",
		Status:      string(payroll.PaymentStatusPaid),
		PaymentDate: &badDate,
	})

	assert.ErrorContains(t, err, "failed to parse payment date")
}
