package service

import (
	"context"
	"testing"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/payment"
	"brand-dashboard-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceService(env *testEnv) IInvoiceService {
	return NewInvoiceService(env.factory, env.gateway, env.log)
}

func TestInvoiceList(t *testing.T) {
	env := newTestEnv(t)
	svc := newInvoiceService(env)
	ctx := context.Background()

	page, err := svc.List(ctx, owner, dto.InvoiceListQuery{}, pagination.New(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Pagination.Total)

	page, err = svc.List(ctx, owner, dto.InvoiceListQuery{Status: "issued,overdue"}, pagination.New(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Pagination.Total)

	_, err = svc.List(ctx, owner, dto.InvoiceListQuery{Status: "void"}, pagination.New(1, 20))
	requireStatus(t, err, 400)
}

func TestInvoiceGetComputesTotals(t *testing.T) {
	env := newTestEnv(t)
	svc := newInvoiceService(env)

	inv, err := svc.Get(context.Background(), owner, memory.InvoiceIssuedID)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0002", inv.Number)
	assert.Equal(t, 15000.0, inv.Subtotal)
	assert.Equal(t, 2700.0, inv.TaxAmount)
	assert.Equal(t, 17700.0, inv.Total)
	require.Len(t, inv.LineItems, 2)
	assert.Equal(t, 3000.0, inv.LineItems[1].Amount)

	_, err = svc.Get(context.Background(), trailOwner, memory.InvoiceIssuedID)
	requireStatus(t, err, 404)
}

func TestInvoicePay(t *testing.T) {
	env := newTestEnv(t)
	svc := newInvoiceService(env)
	ctx := context.Background()

	res, err := svc.Pay(ctx, owner, memory.InvoiceOverdueID)
	require.NoError(t, err)
	assert.Equal(t, payment.InvoiceOrderId(memory.InvoiceOverdueID), res.OrderId)
	require.NotNil(t, res.InvoiceId)
	assert.Equal(t, memory.InvoiceOverdueID, *res.InvoiceId)
	require.Len(t, env.gateway.requests, 1)
	assert.Equal(t, "Invoice INV-2026-0003", env.gateway.requests[0].ItemName)

	for _, id := range []uuid.UUID{memory.InvoicePaidID, memory.InvoiceDraftID} {
		_, err := svc.Pay(ctx, owner, id)
		requireStatus(t, err, 400)
		assert.Equal(t, "Only issued or overdue invoices can be paid", err.Error())
	}
}

func TestInvoicePayGatewayFailure(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.fail = true
	svc := newInvoiceService(env)

	_, err := svc.Pay(context.Background(), owner, memory.InvoiceIssuedID)
	requireStatus(t, err, 502)
}

func TestInvoiceMarkOverdue(t *testing.T) {
	env := newTestEnv(t)
	svc := newInvoiceService(env)

	marked, failed, err := svc.MarkOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, marked)
	assert.Equal(t, 0, failed)

	inv, err := svc.Get(context.Background(), owner, memory.InvoiceIssuedLapseID)
	require.NoError(t, err)
	assert.Equal(t, "overdue", inv.Status)

	inv, err = svc.Get(context.Background(), owner, memory.InvoiceIssuedID)
	require.NoError(t, err)
	assert.Equal(t, "issued", inv.Status)
}

func TestInvoiceExport(t *testing.T) {
	env := newTestEnv(t)
	svc := newInvoiceService(env)

	file, err := svc.Export(context.Background(), owner, dto.InvoiceListQuery{Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "invoices-20260310.csv", file.Filename)
	assert.Contains(t, string(file.Content), "INV-2026-0001")
	assert.NotContains(t, string(file.Content), "INV-2026-0002")
}
