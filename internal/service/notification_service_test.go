package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/money"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/repository/memory"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDelivery struct {
	mu        sync.Mutex
	sent      map[uuid.UUID][]entity.Notification
	broadcast []entity.Notification
}

func newFakeDelivery() *fakeDelivery {
	return &fakeDelivery{sent: map[uuid.UUID][]entity.Notification{}}
}

func (d *fakeDelivery) Send(userID uuid.UUID, n entity.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent[userID] = append(d.sent[userID], n)
}

func (d *fakeDelivery) Broadcast(n entity.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.broadcast = append(d.broadcast, n)
}

type fakeSubscriber struct {
	subject string
	durable string
	handler events.Handler
}

func (s *fakeSubscriber) Subscribe(subject, durableName string, handler events.Handler) error {
	s.subject, s.durable, s.handler = subject, durableName, handler
	return nil
}

func (s *fakeSubscriber) Close() {}

func TestNotificationOrganizationTarget(t *testing.T) {
	env := newTestEnv(t)
	delivery := newFakeDelivery()
	svc := NewNotificationService(env.factory, delivery, env.log)
	ctx := context.Background()

	err := svc.HandleEvent(ctx, events.New(events.CampaignStatusChanged, map[string]interface{}{
		"organization_id": memory.OrgLumenID.String(),
		"campaign_id":     memory.CampaignActiveID.String(),
		"title":           "Diwali Glow Kit",
		"from":            "active",
		"to":              "paused",
		"entity_type":     "campaign",
		"entity_id":       memory.CampaignActiveID.String(),
	}))
	require.NoError(t, err)

	assert.Len(t, delivery.sent, 5)
	assert.NotContains(t, delivery.sent, memory.UserInvitedID)
	assert.NotContains(t, delivery.sent, memory.UserTrailOwnerID)

	sent := delivery.sent[memory.UserViewerID]
	require.Len(t, sent, 1)
	assert.Equal(t, "Campaign \"Diwali Glow Kit\" moved from active to paused", sent[0].Message)
	assert.Equal(t, "Campaign status updated", sent[0].Title)
	assert.Equal(t, memory.OrgLumenID, sent[0].OrganizationId)

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(sent[0].Metadata, &meta))
	assert.Equal(t, "/campaigns/"+memory.CampaignActiveID.String(), meta["action_url"])

	page, err := svc.List(ctx, principal(memory.UserViewerID, entity.UserRoleViewer), dto.NotificationListQuery{}, pagination.New(1, 20))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, sent[0].Id, page.Items[0].Id)
}

func TestNotificationRoleTargetRendersAmounts(t *testing.T) {
	env := newTestEnv(t)
	delivery := newFakeDelivery()
	svc := NewNotificationService(env.factory, delivery, env.log)

	err := svc.HandleEvent(context.Background(), events.New(events.WithdrawalRequested, map[string]interface{}{
		"organization_id": memory.OrgLumenID.String(),
		"amount":          20000.0,
	}))
	require.NoError(t, err)

	require.Len(t, delivery.sent, 1)
	sent := delivery.sent[memory.UserOwnerID]
	require.Len(t, sent, 1)
	assert.Equal(t, "A withdrawal of "+money.FormatINR(20000)+" was requested", sent[0].Message)
}

func TestNotificationBroadcastIsPushOnly(t *testing.T) {
	env := newTestEnv(t)
	delivery := newFakeDelivery()
	svc := NewNotificationService(env.factory, delivery, env.log)
	ctx := context.Background()

	before, err := svc.UnreadCount(ctx, owner)
	require.NoError(t, err)

	require.NoError(t, svc.HandleEvent(ctx, events.New("SYSTEM_ANNOUNCEMENT", map[string]interface{}{
		"message": "Scheduled maintenance at 02:00 IST",
	})))

	require.Len(t, delivery.broadcast, 1)
	assert.Equal(t, "Scheduled maintenance at 02:00 IST", delivery.broadcast[0].Message)
	assert.Empty(t, delivery.sent)

	after, err := svc.UnreadCount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, before.Count, after.Count)
}

func TestNotificationUnknownEventIsSkipped(t *testing.T) {
	env := newTestEnv(t)
	delivery := newFakeDelivery()
	svc := NewNotificationService(env.factory, delivery, env.log)

	require.NoError(t, svc.HandleEvent(context.Background(), events.New("SOMETHING_ELSE", map[string]interface{}{})))
	require.NoError(t, svc.HandleEvent(context.Background(), events.New(events.InvoicePaid, map[string]interface{}{})))
	assert.Empty(t, delivery.sent)
	assert.Empty(t, delivery.broadcast)
}

func TestNotificationStartSubscribesToAllEvents(t *testing.T) {
	env := newTestEnv(t)
	svc := NewNotificationService(env.factory, nil, env.log)
	sub := &fakeSubscriber{}

	require.NoError(t, svc.Start(sub))
	assert.Equal(t, "events.>", sub.subject)
	assert.Equal(t, "notification-worker", sub.durable)
	require.NotNil(t, sub.handler)

	require.NoError(t, sub.handler(context.Background(), events.New(events.OrganizationOnboarded, map[string]interface{}{
		"organization_id": memory.OrgTrailheadID.String(),
		"name":            "Trailhead Outdoors",
	})))
	count, err := svc.UnreadCount(context.Background(), trailOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
}

func TestNotificationReadState(t *testing.T) {
	env := newTestEnv(t)
	svc := NewNotificationService(env.factory, nil, env.log)
	ctx := context.Background()

	count, err := svc.UnreadCount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)

	unread, err := svc.List(ctx, owner, dto.NotificationListQuery{UnreadOnly: true}, pagination.New(1, 20))
	require.NoError(t, err)
	require.Len(t, unread.Items, 2)

	managerNotification := uuid.MustParse("82a31425-7091-42b3-e425-810000000004")
	requireStatus(t, svc.MarkAsRead(ctx, owner, managerNotification), 404)

	require.NoError(t, svc.MarkAsRead(ctx, owner, unread.Items[0].Id))
	count, err = svc.UnreadCount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	res, err := svc.MarkAllAsRead(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Updated)

	count, err = svc.UnreadCount(ctx, manager)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		payload  map[string]interface{}
		want     string
	}{
		{"plain", "{email} was invited as {role}", map[string]interface{}{"email": "a@b.in", "role": "viewer"}, "a@b.in was invited as viewer"},
		{"amount", "Paid {total}", map[string]interface{}{"total": 17700.0}, "Paid " + money.FormatINR(17700)},
		{"non amount number", "{count} items", map[string]interface{}{"count": 3}, "3 items"},
		{"missing key stays", "Hello {name}", map[string]interface{}{}, "Hello {name}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(tt.template, tt.payload))
		})
	}
}
