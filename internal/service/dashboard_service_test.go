package service

import (
	"context"
	"testing"

	"brand-dashboard-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDashboardService(env.factory)

	res, err := svc.Summary(context.Background(), owner)
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.TotalCampaigns)
	assert.Equal(t, int64(1), res.ActiveCampaigns)
	assert.Equal(t, int64(1), res.CampaignCounts["draft"])
	assert.Equal(t, int64(2), res.CampaignCounts["approved"])
	assert.Equal(t, int64(4), res.EnrollmentsAwaitingReview)
	assert.Equal(t, int64(2), res.UnreadNotifications)
	assert.Equal(t, env.balance(t, memory.OrgLumenID).Available, res.Wallet.Available)

	trail, err := svc.Summary(context.Background(), trailOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), trail.TotalCampaigns)
	assert.Equal(t, 50000.0, trail.Wallet.Available)
	assert.Equal(t, int64(0), trail.UnreadNotifications)
}
