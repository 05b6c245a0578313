package memory

import (
	"sync"

	"brand-dashboard-be/internal/entity"

	"github.com/google/uuid"
)

// Store keeps every aggregate in process memory. All maps are guarded by mu;
// units of work additionally serialize on txMu so a rollback only ever undoes
// its own writes.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	organizations     map[uuid.UUID]entity.Organization
	users             map[uuid.UUID]entity.User
	campaigns         map[uuid.UUID]entity.Campaign
	enrollments       map[uuid.UUID]entity.Enrollment
	balances          map[uuid.UUID]entity.WalletBalance
	transactions      map[uuid.UUID]entity.Transaction
	withdrawals       map[uuid.UUID]entity.Withdrawal
	invoices          map[uuid.UUID]entity.Invoice
	notifications     map[uuid.UUID]entity.Notification
	notificationTypes map[string]entity.NotificationType
}

func NewStore() *Store {
	return &Store{
		organizations:     map[uuid.UUID]entity.Organization{},
		users:             map[uuid.UUID]entity.User{},
		campaigns:         map[uuid.UUID]entity.Campaign{},
		enrollments:       map[uuid.UUID]entity.Enrollment{},
		balances:          map[uuid.UUID]entity.WalletBalance{},
		transactions:      map[uuid.UUID]entity.Transaction{},
		withdrawals:       map[uuid.UUID]entity.Withdrawal{},
		invoices:          map[uuid.UUID]entity.Invoice{},
		notifications:     map[uuid.UUID]entity.Notification{},
		notificationTypes: map[string]entity.NotificationType{},
	}
}

// NewSeededStore returns a store loaded with the demo fixtures.
func NewSeededStore(set *FixtureSet) *Store {
	s := NewStore()
	s.Load(set)
	return s
}

// Load inserts a fixture set, replacing records with the same keys.
func (s *Store) Load(set *FixtureSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range set.Organizations {
		s.organizations[o.Id] = cloneOrganization(*o)
	}
	for _, u := range set.Users {
		s.users[u.Id] = *u
	}
	for _, c := range set.Campaigns {
		s.campaigns[c.Id] = cloneCampaign(*c)
	}
	for _, e := range set.Enrollments {
		s.enrollments[e.Id] = *e
	}
	for _, b := range set.Balances {
		s.balances[b.OrganizationId] = *b
	}
	for _, t := range set.Transactions {
		s.transactions[t.Id] = *t
	}
	for _, w := range set.Withdrawals {
		s.withdrawals[w.Id] = *w
	}
	for _, i := range set.Invoices {
		s.invoices[i.Id] = cloneInvoice(*i)
	}
	for _, nt := range set.NotificationTypes {
		s.notificationTypes[nt.Code] = *nt
	}
	for _, n := range set.Notifications {
		s.notifications[n.Id] = cloneNotification(*n)
	}
}

// journal records how to undo each write made inside a unit of work.
type journal struct {
	undo []func()
}

func (j *journal) record(fn func()) {
	if j != nil {
		j.undo = append(j.undo, fn)
	}
}

// put stores v under key and records the previous state. Callers hold s.mu.
func put[K comparable, V any](j *journal, rows map[K]V, key K, v V) {
	prev, existed := rows[key]
	j.record(func() {
		if existed {
			rows[key] = prev
		} else {
			delete(rows, key)
		}
	})
	rows[key] = v
}

// remove deletes key and records the previous state. Callers hold s.mu.
func remove[K comparable, V any](j *journal, rows map[K]V, key K) {
	prev, existed := rows[key]
	if !existed {
		return
	}
	j.record(func() { rows[key] = prev })
	delete(rows, key)
}

func cloneCampaign(c entity.Campaign) entity.Campaign {
	c.Platforms = append([]string(nil), c.Platforms...)
	c.Deliverables = append([]string(nil), c.Deliverables...)
	return c
}

func cloneInvoice(i entity.Invoice) entity.Invoice {
	i.LineItems = append([]entity.InvoiceLineItem(nil), i.LineItems...)
	return i
}

func cloneOrganization(o entity.Organization) entity.Organization {
	if o.BillingAddress != nil {
		addr := *o.BillingAddress
		o.BillingAddress = &addr
	}
	return o
}

func cloneNotification(n entity.Notification) entity.Notification {
	n.Metadata = append([]byte(nil), n.Metadata...)
	return n
}
