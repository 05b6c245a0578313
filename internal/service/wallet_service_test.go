package service

import (
	"context"
	"strings"
	"testing"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/payment"
	"brand-dashboard-be/internal/repository/memory"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalletService(env *testEnv) IWalletService {
	return NewWalletService(env.factory, env.gateway, env.publisher, env.log)
}

func withdrawalRequest(amount float64) *dto.WithdrawalRequest {
	return &dto.WithdrawalRequest{
		Amount:            amount,
		BankAccountName:   "Lumen Beauty Pvt Ltd",
		BankAccountNumber: "50100234567891",
		Ifsc:              " hdfc0000123 ",
		Note:              "Payout",
	}
}

func TestWalletBalanceMatchesLedger(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)

	res, err := svc.Balance(context.Background(), owner)
	require.NoError(t, err)

	stored := env.balance(t, memory.OrgLumenID)
	assert.Equal(t, "INR", res.Currency)
	assert.Equal(t, stored.Available, res.Available)
	assert.Equal(t, 500000.0, res.TotalDeposited)
	assert.Equal(t, 25000.0, res.TotalWithdrawn)
	assert.Equal(t, 15000.0, res.PendingWithdrawal)
	assert.Greater(t, res.Held, 0.0)
}

func TestWalletTransactionsFilters(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)
	ctx := context.Background()

	page, err := svc.Transactions(ctx, owner, dto.TransactionListQuery{Type: "deposit"}, pagination.New(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Pagination.Total)

	page, err = svc.Transactions(ctx, owner, dto.TransactionListQuery{Type: "deposit", Status: "pending"}, pagination.New(1, 20))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, memory.DepositPendingTxID, page.Items[0].Id)

	page, err = svc.Transactions(ctx, owner, dto.TransactionListQuery{Type: "deposit", From: "2026-03-01"}, pagination.New(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)

	for _, query := range []dto.TransactionListQuery{
		{Type: "refund"},
		{Status: "settled"},
		{From: "03/01/2026"},
		{From: "2026-03-10", To: "2026-03-01"},
	} {
		_, err := svc.Transactions(ctx, owner, query, pagination.New(1, 20))
		requireStatus(t, err, 400)
	}
}

func TestWalletRequestWithdrawalReservesFunds(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)

	before := env.balance(t, memory.OrgLumenID)
	res, err := svc.RequestWithdrawal(context.Background(), admin, withdrawalRequest(20000))
	require.NoError(t, err)

	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, "HDFC0000123", res.Ifsc)
	assert.Equal(t, "XXXXXXXXXX7891", res.BankAccountMasked)
	assert.Equal(t, memory.UserAdminID, res.RequestedBy)

	after := env.balance(t, memory.OrgLumenID)
	assert.InDelta(t, before.Available-20000, after.Available, 0.001)
	assert.InDelta(t, before.PendingWithdrawal+20000, after.PendingWithdrawal, 0.001)
	assert.True(t, fixedNow.Equal(after.UpdatedAt))

	txs := referencing(env.transactions(t, memory.OrgLumenID, entity.TransactionTypeWithdrawal), res.Id)
	require.Len(t, txs, 1)
	assert.Equal(t, entity.TransactionStatusPending, txs[0].Status)
	assert.Equal(t, "Withdrawal to XXXXXXXXXX7891", txs[0].Description)

	published := env.publisher.ofType(events.WithdrawalRequested)
	require.Len(t, published, 1)
	assert.Equal(t, 20000.0, published[0].Payload()["amount"])
}

func TestWalletRequestWithdrawalRejections(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)
	ctx := context.Background()

	_, err := svc.RequestWithdrawal(ctx, manager, withdrawalRequest(5000))
	requireStatus(t, err, 403)

	bad := withdrawalRequest(5000)
	bad.Ifsc = "HDFC1000123"
	_, err = svc.RequestWithdrawal(ctx, owner, bad)
	requireStatus(t, err, 400)
	assert.Equal(t, "Invalid IFSC code", err.Error())

	_, err = svc.RequestWithdrawal(ctx, owner, withdrawalRequest(1000000))
	requireStatus(t, err, 400)
	assert.Equal(t, "Insufficient available balance", err.Error())

	assert.Empty(t, env.publisher.ofType(events.WithdrawalRequested))
}

func TestWalletCancelWithdrawal(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)
	ctx := context.Background()

	before := env.balance(t, memory.OrgLumenID)
	res, err := svc.CancelWithdrawal(ctx, owner, memory.WithdrawalPendingID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", res.Status)
	require.NotNil(t, res.ProcessedAt)

	after := env.balance(t, memory.OrgLumenID)
	assert.InDelta(t, before.Available+15000, after.Available, 0.001)
	assert.InDelta(t, before.PendingWithdrawal-15000, after.PendingWithdrawal, 0.001)

	original := referencing(env.transactions(t, memory.OrgLumenID, entity.TransactionTypeWithdrawal), memory.WithdrawalPendingID)
	require.Len(t, original, 1)
	assert.Equal(t, entity.TransactionStatusFailed, original[0].Status)
	reversals := referencing(env.transactions(t, memory.OrgLumenID, entity.TransactionTypeWithdrawalReversal), memory.WithdrawalPendingID)
	require.Len(t, reversals, 1)
	assert.Equal(t, 15000.0, reversals[0].Amount)

	_, err = svc.CancelWithdrawal(ctx, owner, memory.WithdrawalPendingID)
	requireStatus(t, err, 400)
	assert.Equal(t, "Only pending withdrawals can be cancelled", err.Error())

	_, err = svc.CancelWithdrawal(ctx, owner, memory.WithdrawalCompletedID)
	requireStatus(t, err, 400)

	_, err = svc.CancelWithdrawal(ctx, owner, uuid.New())
	requireStatus(t, err, 404)
}

func TestWalletWithdrawals(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)
	ctx := context.Background()

	page, err := svc.Withdrawals(ctx, owner, dto.WithdrawalListQuery{Status: "pending"}, pagination.New(1, 20))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, memory.WithdrawalPendingID, page.Items[0].Id)

	_, err = svc.Withdrawals(ctx, owner, dto.WithdrawalListQuery{Status: "queued"}, pagination.New(1, 20))
	requireStatus(t, err, 400)

	w, err := svc.Withdrawal(ctx, owner, memory.WithdrawalCompletedID)
	require.NoError(t, err)
	assert.Equal(t, 25000.0, w.Amount)

	_, err = svc.Withdrawal(ctx, trailOwner, memory.WithdrawalCompletedID)
	requireStatus(t, err, 404)
}

func TestWalletDepositOpensCheckout(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)

	before := env.balance(t, memory.OrgLumenID)
	res, err := svc.Deposit(context.Background(), owner, &dto.DepositRequest{Amount: 2500})
	require.NoError(t, err)

	require.NotNil(t, res.TransactionId)
	assert.Equal(t, payment.DepositOrderId(*res.TransactionId), res.OrderId)
	assert.Equal(t, "snap-"+res.OrderId, res.SnapToken)
	assert.Equal(t, 2500.0, res.Amount)

	require.Len(t, env.gateway.requests, 1)
	assert.Equal(t, "Priya Menon", env.gateway.requests[0].CustomerName)
	assert.Equal(t, "priya@lumenbeauty.in", env.gateway.requests[0].CustomerEmail)

	var txs []*entity.Transaction
	for _, tx := range env.transactions(t, memory.OrgLumenID, entity.TransactionTypeDeposit) {
		if tx.Id == *res.TransactionId {
			txs = append(txs, tx)
		}
	}
	require.Len(t, txs, 1)
	assert.Equal(t, entity.TransactionStatusPending, txs[0].Status)
	assert.Equal(t, before, env.balance(t, memory.OrgLumenID))
}

func TestWalletDepositRecordsChargedAmount(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)

	res, err := svc.Deposit(context.Background(), owner, &dto.DepositRequest{Amount: 500.4})
	require.NoError(t, err)
	assert.Equal(t, 501.0, res.Amount)

	require.Len(t, env.gateway.requests, 1)
	assert.Equal(t, 501.0, env.gateway.requests[0].Amount)

	require.NotNil(t, res.TransactionId)
	tx := findTransaction(t, env, *res.TransactionId)
	assert.Equal(t, 501.0, tx.Amount)
	assert.Equal(t, entity.TransactionStatusPending, tx.Status)
}

func TestWalletDepositGatewayFailure(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.fail = true
	svc := newWalletService(env)

	_, err := svc.Deposit(context.Background(), owner, &dto.DepositRequest{Amount: 2500})
	requireStatus(t, err, 502)
	assert.Equal(t, "Payment gateway is unavailable, please try again", err.Error())

	var failed int
	for _, tx := range env.transactions(t, memory.OrgLumenID, entity.TransactionTypeDeposit) {
		if tx.Amount == 2500 {
			assert.Equal(t, entity.TransactionStatusFailed, tx.Status)
			failed++
		}
	}
	assert.Equal(t, 1, failed)
}

func TestWalletExportTransactions(t *testing.T) {
	env := newTestEnv(t)
	svc := newWalletService(env)

	file, err := svc.ExportTransactions(context.Background(), owner, dto.TransactionListQuery{Type: "withdrawal"})
	require.NoError(t, err)
	assert.Equal(t, "transactions-20260310.csv", file.Filename)

	lines := strings.Split(strings.TrimSpace(string(file.Content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,type,status,amount,balance_after,description,reference_type,reference_id,created_at", lines[0])
}

func TestMaskAccount(t *testing.T) {
	assert.Equal(t, "XXXX1234", maskAccount("98761234"))
	assert.Equal(t, "1234", maskAccount("1234"))
}
