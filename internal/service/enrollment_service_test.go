package service

import (
	"context"
	"testing"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/repository/memory"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentService(env *testEnv) IEnrollmentService {
	return NewEnrollmentService(env.factory, env.publisher, env.log)
}

func referencing(txs []*entity.Transaction, id uuid.UUID) []*entity.Transaction {
	var out []*entity.Transaction
	for _, tx := range txs {
		if tx.ReferenceId != nil && *tx.ReferenceId == id {
			out = append(out, tx)
		}
	}
	return out
}

func TestEnrollmentList(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)
	ctx := context.Background()

	tests := []struct {
		name  string
		query dto.EnrollmentListQuery
		total int64
	}{
		{name: "everything", query: dto.EnrollmentListQuery{}, total: 10},
		{name: "awaiting review", query: dto.EnrollmentListQuery{Status: "awaiting_review"}, total: 4},
		{name: "campaign filter", query: dto.EnrollmentListQuery{CampaignId: memory.CampaignPausedID.String()}, total: 1},
		{name: "search by handle", query: dto.EnrollmentListQuery{Search: "@ISHITA"}, total: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(ctx, owner, tt.query, pagination.New(1, 20))
			require.NoError(t, err)
			assert.Equal(t, tt.total, page.Pagination.Total)
		})
	}

	_, err := svc.List(ctx, owner, dto.EnrollmentListQuery{CampaignId: "not-a-uuid"}, pagination.New(1, 20))
	requireStatus(t, err, 400)
	_, err = svc.List(ctx, owner, dto.EnrollmentListQuery{Status: "pending"}, pagination.New(1, 20))
	requireStatus(t, err, 400)
}

func TestEnrollmentListForCampaign(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)
	ctx := context.Background()

	page, err := svc.ListForCampaign(ctx, owner, memory.CampaignActiveID, dto.EnrollmentListQuery{Status: "awaiting_review"}, pagination.New(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Pagination.Total)

	_, err = svc.ListForCampaign(ctx, owner, memory.CampaignTrailActiveID, dto.EnrollmentListQuery{}, pagination.New(1, 20))
	requireStatus(t, err, 404)
	assert.Equal(t, "Campaign not found", err.Error())
}

func TestEnrollmentGet(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)

	detail, err := svc.Get(context.Background(), owner, memory.EnrollmentReviewID)
	require.NoError(t, err)
	assert.Equal(t, "Diwali Glow Kit", detail.CampaignTitle)
	assert.Equal(t, 494.85, detail.CashbackAmount)
	assert.Equal(t, []string{"approve", "reject", "request_changes"}, detail.AvailableActions)

	_, err = svc.Get(context.Background(), owner, uuid.New())
	requireStatus(t, err, 404)
}

func TestEnrollmentApproveSettlesCashback(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)
	ctx := context.Background()

	before := env.balance(t, memory.OrgLumenID)
	campaignBefore, err := newCampaignService(env).Get(ctx, owner, memory.CampaignActiveID)
	require.NoError(t, err)

	detail, err := svc.Approve(ctx, manager, memory.EnrollmentReviewID, &dto.ApproveEnrollmentRequest{Note: " Lovely reel "})
	require.NoError(t, err)
	assert.Equal(t, "approved", detail.Status)
	assert.Equal(t, "Lovely reel", detail.ReviewNote)
	require.NotNil(t, detail.ReviewedBy)
	assert.Equal(t, memory.UserManagerID, *detail.ReviewedBy)
	assert.Empty(t, detail.AvailableActions)

	after := env.balance(t, memory.OrgLumenID)
	assert.InDelta(t, before.Held-494.85, after.Held, 0.001)
	assert.InDelta(t, before.TotalSpent+494.85, after.TotalSpent, 0.001)
	assert.InDelta(t, before.Available, after.Available, 0.001)

	payouts := referencing(env.transactions(t, memory.OrgLumenID, entity.TransactionTypeCashbackPayout), memory.EnrollmentReviewID)
	require.Len(t, payouts, 1)
	assert.Equal(t, "Cashback paid to Ishita Bose", payouts[0].Description)

	campaignAfter, err := newCampaignService(env).Get(ctx, owner, memory.CampaignActiveID)
	require.NoError(t, err)
	assert.InDelta(t, campaignBefore.Spent+494.85, campaignAfter.Spent, 0.001)

	published := env.publisher.ofType(events.EnrollmentReviewed)
	require.Len(t, published, 1)
	assert.Equal(t, "approved", published[0].Payload()["decision"])
	assert.Equal(t, "Ishita Bose", published[0].Payload()["shopper_name"])
}

func TestEnrollmentRejectReleasesHold(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)

	before := env.balance(t, memory.OrgLumenID)
	detail, err := svc.Reject(context.Background(), manager, memory.EnrollmentReviewSecondID, &dto.RejectEnrollmentRequest{Reason: "Wrong product shown"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", detail.Status)

	after := env.balance(t, memory.OrgLumenID)
	assert.InDelta(t, before.Held-239.85, after.Held, 0.001)
	assert.InDelta(t, before.Available+239.85, after.Available, 0.001)
	assert.InDelta(t, before.TotalSpent, after.TotalSpent, 0.001)

	published := env.publisher.ofType(events.EnrollmentReviewed)
	require.Len(t, published, 1)
	assert.Equal(t, "rejected", published[0].Payload()["decision"])
}

func TestEnrollmentRequestChangesKeepsHold(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)

	before := env.balance(t, memory.OrgLumenID)
	detail, err := svc.RequestChanges(context.Background(), manager, memory.EnrollmentReviewThirdID, &dto.RequestChangesRequest{Feedback: "Tag the brand handle"})
	require.NoError(t, err)
	assert.Equal(t, "changes_requested", detail.Status)
	assert.Equal(t, "Tag the brand handle", detail.ReviewNote)

	assert.Equal(t, before, env.balance(t, memory.OrgLumenID))
	assert.Equal(t, "sent back for changes", env.publisher.ofType(events.EnrollmentReviewed)[0].Payload()["decision"])
}

func TestEnrollmentReviewGuards(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)
	ctx := context.Background()

	_, err := svc.Approve(ctx, manager, memory.EnrollmentApprovedID, &dto.ApproveEnrollmentRequest{})
	requireStatus(t, err, 400)
	assert.Equal(t, "Only enrollments awaiting review can be approved", err.Error())

	_, err = svc.Reject(ctx, manager, memory.EnrollmentEnrolledID, &dto.RejectEnrollmentRequest{Reason: "nope"})
	requireStatus(t, err, 400)

	_, err = svc.Approve(ctx, manager, uuid.New(), &dto.ApproveEnrollmentRequest{})
	requireStatus(t, err, 404)

	assert.Empty(t, env.publisher.ofType(events.EnrollmentReviewed))
}

func TestEnrollmentApproveCoversShortHold(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)

	b := env.balance(t, memory.OrgLumenID)
	b.Held = 100
	b.Available = 1000
	env.setBalance(t, b)

	_, err := svc.Approve(context.Background(), manager, memory.EnrollmentReviewID, &dto.ApproveEnrollmentRequest{})
	require.NoError(t, err)

	after := env.balance(t, memory.OrgLumenID)
	assert.InDelta(t, 0, after.Held, 0.001)
	assert.InDelta(t, 1000-394.85, after.Available, 0.001)

	holds := referencing(env.transactions(t, memory.OrgLumenID, entity.TransactionTypeHold), memory.EnrollmentReviewID)
	var topUp *entity.Transaction
	for _, h := range holds {
		if h.Description == "Top-up hold for Ishita Bose" {
			topUp = h
		}
	}
	require.NotNil(t, topUp)
	assert.Equal(t, 394.85, topUp.Amount)
}

func TestEnrollmentApproveFailsWithoutFunds(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)

	b := env.balance(t, memory.OrgLumenID)
	b.Held = 0
	b.Available = 10
	env.setBalance(t, b)

	_, err := svc.Approve(context.Background(), manager, memory.EnrollmentReviewID, &dto.ApproveEnrollmentRequest{})
	requireStatus(t, err, 400)
	assert.Equal(t, msgInsufficientForCashback, err.Error())

	detail, err := svc.Get(context.Background(), owner, memory.EnrollmentReviewID)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_review", detail.Status)
	assert.Equal(t, b, env.balance(t, memory.OrgLumenID))
}

func TestEnrollmentBulkApprove(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)

	res, err := svc.BulkApprove(context.Background(), manager, &dto.BulkApproveRequest{
		Ids: []uuid.UUID{memory.EnrollmentReviewID, memory.EnrollmentRejectedID, memory.EnrollmentReviewSecondID},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Results, 3)
	assert.True(t, res.Results[0].Success)
	assert.Equal(t, "approved", res.Results[0].Status)
	assert.False(t, res.Results[1].Success)
	assert.Equal(t, "Only enrollments awaiting review can be approved", res.Results[1].Error)
	assert.True(t, res.Results[2].Success)
	assert.Len(t, env.publisher.ofType(events.EnrollmentReviewed), 2)
}

func TestEnrollmentExpireOverdue(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)

	before := env.balance(t, memory.OrgLumenID)
	expired, failed, err := svc.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, 0, failed)

	detail, err := svc.Get(context.Background(), owner, memory.EnrollmentAwaitingSubID)
	require.NoError(t, err)
	assert.Equal(t, "expired", detail.Status)

	after := env.balance(t, memory.OrgLumenID)
	assert.InDelta(t, before.Held-374.85, after.Held, 0.001)
	assert.InDelta(t, before.Available+374.85, after.Available, 0.001)

	enrolled, err := svc.Get(context.Background(), owner, memory.EnrollmentEnrolledID)
	require.NoError(t, err)
	assert.Equal(t, "enrolled", enrolled.Status)
}

func TestEnrollmentExport(t *testing.T) {
	env := newTestEnv(t)
	svc := newEnrollmentService(env)

	file, err := svc.Export(context.Background(), owner, dto.EnrollmentListQuery{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "enrollments-20260310.csv", file.Filename)
	assert.Contains(t, string(file.Content), "Riya Sen")
	assert.NotContains(t, string(file.Content), "Ishita Bose")
}
