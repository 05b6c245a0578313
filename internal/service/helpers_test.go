package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/payment"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/memory"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store     *memory.Store
	factory   unitofwork.RepositoryFactory
	publisher *recordingPublisher
	gateway   *fakeGateway
	log       logger.ILogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	previous := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = previous })

	store := memory.NewSeededStore(memory.DemoFixtures(fixedNow))
	return &testEnv{
		store:     store,
		factory:   memory.NewRepositoryFactory(store),
		publisher: &recordingPublisher{},
		gateway:   &fakeGateway{serverKey: "test-server-key"},
		log:       logger.NewNopLogger(),
	}
}

func (e *testEnv) balance(t *testing.T, orgId uuid.UUID) entity.WalletBalance {
	t.Helper()
	b, err := e.factory.NewUnitOfWork(context.Background()).WalletRepository().FindBalance(context.Background(), orgId)
	require.NoError(t, err)
	require.NotNil(t, b)
	return *b
}

func (e *testEnv) setBalance(t *testing.T, b entity.WalletBalance) {
	t.Helper()
	require.NoError(t, e.factory.NewUnitOfWork(context.Background()).WalletRepository().SaveBalance(context.Background(), &b))
}

func (e *testEnv) transactions(t *testing.T, orgId uuid.UUID, typ entity.TransactionType) []*entity.Transaction {
	t.Helper()
	txs, _, err := e.factory.NewUnitOfWork(context.Background()).WalletRepository().FindTransactions(context.Background(), contract.TransactionFilter{
		OrganizationId: orgId,
		Type:           typ,
	})
	require.NoError(t, err)
	return txs
}

func principal(userId uuid.UUID, role entity.UserRole) serverutils.Principal {
	return serverutils.Principal{UserId: userId, OrganizationId: memory.OrgLumenID, Role: role}
}

var (
	owner         = principal(memory.UserOwnerID, entity.UserRoleOwner)
	admin         = principal(memory.UserAdminID, entity.UserRoleAdmin)
	manager       = principal(memory.UserManagerID, entity.UserRoleManager)
	platformAdmin = principal(memory.UserPlatformAdminID, entity.UserRolePlatformAdmin)
	trailOwner    = serverutils.Principal{UserId: memory.UserTrailOwnerID, OrganizationId: memory.OrgTrailheadID, Role: entity.UserRoleOwner}
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() {}

func (p *recordingPublisher) ofType(eventType string) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, e := range p.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

type fakeGateway struct {
	serverKey string
	requests  []payment.CheckoutRequest
	fail      bool
}

func (g *fakeGateway) CreateCheckout(ctx context.Context, req payment.CheckoutRequest) (*payment.Checkout, error) {
	if g.fail {
		return nil, errors.New("gateway down")
	}
	g.requests = append(g.requests, req)
	return &payment.Checkout{Token: "snap-" + req.OrderId, RedirectUrl: "https://pay.example/" + req.OrderId}, nil
}

func (g *fakeGateway) VerifySignature(orderId, statusCode, grossAmount, signature string) bool {
	return signature == payment.Signature(orderId, statusCode, grossAmount, g.serverKey)
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, serverutils.StatusOf(err), err.Error())
}
