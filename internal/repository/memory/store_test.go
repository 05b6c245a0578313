package memory

import (
	"context"
	"testing"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	return NewSeededStore(DemoFixtures(time.Now()))
}

func TestDemoFixturesWalletMatchesEnrollments(t *testing.T) {
	set := DemoFixtures(time.Now())

	var held float64
	for _, e := range set.Enrollments {
		if e.OrganizationId != OrgLumenID {
			continue
		}
		switch e.Status {
		case entity.EnrollmentStatusApproved, entity.EnrollmentStatusRejected, entity.EnrollmentStatusExpired:
		default:
			held += e.CashbackAmount
		}
	}

	var lumen *entity.WalletBalance
	for _, b := range set.Balances {
		if b.OrganizationId == OrgLumenID {
			lumen = b
		}
	}
	require.NotNil(t, lumen)
	assert.InDelta(t, held, lumen.Held, 0.001)
	assert.Equal(t, 15000.0, lumen.PendingWithdrawal)
	assert.Equal(t, 25000.0, lumen.TotalWithdrawn)
	assert.Equal(t, 500000.0, lumen.TotalDeposited)
	assert.Greater(t, lumen.Available, 0.0)
}

func TestDemoFixturesCoverEveryStatus(t *testing.T) {
	set := DemoFixtures(time.Now())

	campaignStatuses := map[entity.CampaignStatus]bool{}
	for _, c := range set.Campaigns {
		campaignStatuses[c.Status] = true
	}
	for _, s := range entity.CampaignStatuses {
		assert.True(t, campaignStatuses[s], "missing campaign status %s", s)
	}

	enrollmentStatuses := map[entity.EnrollmentStatus]bool{}
	for _, e := range set.Enrollments {
		enrollmentStatuses[e.Status] = true
	}
	for _, s := range entity.EnrollmentStatuses {
		assert.True(t, enrollmentStatuses[s], "missing enrollment status %s", s)
	}
}

func TestUnitOfWorkRollbackRestoresWrites(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	uow := NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))

	campaign, err := uow.CampaignRepository().FindByID(ctx, OrgLumenID, CampaignDraftID)
	require.NoError(t, err)
	campaign.Title = "Changed inside the unit"
	require.NoError(t, uow.CampaignRepository().Update(ctx, campaign))
	require.NoError(t, uow.CampaignRepository().Create(ctx, &entity.Campaign{OrganizationId: OrgLumenID, Title: "Brand new"}))
	require.NoError(t, uow.CampaignRepository().Delete(ctx, CampaignCancelledID))

	require.NoError(t, uow.Rollback())

	repo := NewCampaignRepository(store)
	restored, err := repo.FindByID(ctx, OrgLumenID, CampaignDraftID)
	require.NoError(t, err)
	assert.Equal(t, "Monsoon Hair Care Launch", restored.Title)

	cancelled, err := repo.FindByID(ctx, OrgLumenID, CampaignCancelledID)
	require.NoError(t, err)
	assert.NotNil(t, cancelled)

	_, total, err := repo.FindAll(ctx, contract.CampaignFilter{Search: "Brand new"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUnitOfWorkCommitKeepsWritesAndRollbackIsNoop(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	uow := NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	balance, err := uow.WalletRepository().FindBalance(ctx, OrgLumenID)
	require.NoError(t, err)
	balance.Available += 100
	require.NoError(t, uow.WalletRepository().SaveBalance(ctx, balance))
	require.NoError(t, uow.Commit())
	require.NoError(t, uow.Rollback())

	after, err := NewWalletRepository(store).FindBalance(ctx, OrgLumenID)
	require.NoError(t, err)
	assert.Equal(t, balance.Available, after.Available)
}

func TestCampaignRepositoryFindAll(t *testing.T) {
	repo := NewCampaignRepository(seeded(t))
	ctx := context.Background()
	org := OrgLumenID

	tests := []struct {
		name      string
		filter    contract.CampaignFilter
		wantTotal int64
		wantLen   int
		wantFirst string
	}{
		{
			name:      "scoped to organization",
			filter:    contract.CampaignFilter{OrganizationId: &org},
			wantTotal: 10, wantLen: 10,
		},
		{
			name:      "status filter",
			filter:    contract.CampaignFilter{OrganizationId: &org, Statuses: []entity.CampaignStatus{entity.CampaignStatusApproved}},
			wantTotal: 2, wantLen: 2,
		},
		{
			name:      "case-insensitive search on product",
			filter:    contract.CampaignFilter{OrganizationId: &org, Search: "glow kit"},
			wantTotal: 1, wantLen: 1, wantFirst: "Diwali Glow Kit",
		},
		{
			name:      "paged and sorted by budget desc",
			filter:    contract.CampaignFilter{OrganizationId: &org, Sort: contract.Sort{Field: "budget", Desc: true}, Page: pagination.New(1, 3)},
			wantTotal: 10, wantLen: 3, wantFirst: "Diwali Glow Kit",
		},
		{
			name:      "page past the end",
			filter:    contract.CampaignFilter{OrganizationId: &org, Page: pagination.New(5, 3)},
			wantTotal: 10, wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.FindAll(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, items, tt.wantLen)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, items[0].Title)
			}
		})
	}
}

func TestRepositoriesReturnCopies(t *testing.T) {
	store := seeded(t)
	repo := NewCampaignRepository(store)
	ctx := context.Background()

	c, err := repo.FindByID(ctx, OrgLumenID, CampaignActiveID)
	require.NoError(t, err)
	c.Platforms[0] = "mutated"
	c.Title = "mutated"

	again, err := repo.FindByID(ctx, OrgLumenID, CampaignActiveID)
	require.NoError(t, err)
	assert.Equal(t, "instagram", again.Platforms[0])
	assert.Equal(t, "Diwali Glow Kit", again.Title)
}

func TestFindByIDIsOrganizationScoped(t *testing.T) {
	repo := NewCampaignRepository(seeded(t))

	c, err := repo.FindByID(context.Background(), OrgTrailheadID, CampaignActiveID)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = repo.FindByID(context.Background(), uuid.Nil, CampaignActiveID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, OrgLumenID, c.OrganizationId)
}

func TestSaveBalanceKeepsUpdatedAt(t *testing.T) {
	repo := NewWalletRepository(seeded(t))
	stamp := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	b, err := repo.FindBalance(context.Background(), OrgLumenID)
	require.NoError(t, err)
	require.NotNil(t, b)
	b.Available = 10
	b.UpdatedAt = stamp
	require.NoError(t, repo.SaveBalance(context.Background(), b))

	stored, err := repo.FindBalance(context.Background(), OrgLumenID)
	require.NoError(t, err)
	assert.Equal(t, *b, *stored)
	assert.True(t, stamp.Equal(stored.UpdatedAt))
}

func TestNotificationRepositoryReadState(t *testing.T) {
	repo := NewNotificationRepository(seeded(t))
	ctx := context.Background()

	unread, err := repo.CountUnread(ctx, UserOwnerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	items, _, err := repo.FindAll(ctx, contract.NotificationFilter{UserId: UserOwnerID, UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 2)

	ok, err := repo.MarkAsRead(ctx, UserManagerID, items[0].Id)
	require.NoError(t, err)
	assert.False(t, ok, "another user's notification must not be marked")

	ok, err = repo.MarkAsRead(ctx, UserOwnerID, items[0].Id)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := repo.MarkAllAsRead(ctx, UserOwnerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	ok, err = repo.MarkAsRead(ctx, UserOwnerID, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepositoryLookups(t *testing.T) {
	repo := NewUserRepository(seeded(t))
	ctx := context.Background()

	u, err := repo.FindByEmail(ctx, "PRIYA@lumenbeauty.in")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, UserOwnerID, u.Id)

	invited, err := repo.FindByInviteToken(ctx, DemoInviteToken)
	require.NoError(t, err)
	require.NotNil(t, invited)
	assert.Equal(t, entity.UserStatusInvited, invited.Status)

	members, total, err := repo.FindAll(ctx, contract.UserFilter{
		OrganizationId: OrgLumenID,
		Roles:          []entity.UserRole{entity.UserRoleManager},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, members, 2)
}
