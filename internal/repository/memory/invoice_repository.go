package memory

import (
	"context"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type InvoiceRepository struct {
	base
}

func NewInvoiceRepository(store *Store) contract.InvoiceRepository {
	return &InvoiceRepository{base{store: store}}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	now := time.Now().UTC()
	if invoice.Id == uuid.Nil {
		invoice.Id = uuid.New()
	}
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = now
	}
	invoice.UpdatedAt = now

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.invoices, invoice.Id, cloneInvoice(*invoice))
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	invoice.UpdatedAt = time.Now().UTC()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.invoices, invoice.Id, cloneInvoice(*invoice))
	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.invoices[id]
	if !ok {
		return nil, nil
	}
	out := cloneInvoice(i)
	return &out, nil
}

func (r *InvoiceRepository) FindAll(ctx context.Context, filter contract.InvoiceFilter) ([]*entity.Invoice, int64, error) {
	r.store.mu.RLock()
	var matched []*entity.Invoice
	for _, i := range r.store.invoices {
		if filter.OrganizationId != nil && i.OrganizationId != *filter.OrganizationId {
			continue
		}
		if !oneOf(i.Status, filter.Statuses) {
			continue
		}
		if !within(i.CreatedAt, filter.From, filter.To) {
			continue
		}
		if filter.DueBefore != nil && !i.DueDate.Before(*filter.DueBefore) {
			continue
		}
		out := cloneInvoice(i)
		matched = append(matched, &out)
	}
	r.store.mu.RUnlock()

	items, total := page(matched, filter.Page, func(a, b *entity.Invoice) bool {
		return newestFirst(a.CreatedAt, b.CreatedAt)
	})
	return items, total, nil
}
