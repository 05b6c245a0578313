package encore

import (
	"context"

	encoreclient "brand-dashboard-be/internal/encore"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type InvoiceRepository struct {
	base
}

func NewInvoiceRepository(client *encoreclient.Client) contract.InvoiceRepository {
	return &InvoiceRepository{base{client: client}}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.client.Post(ctx, "/invoices", invoice, invoice)
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.client.Put(ctx, "/invoices/"+invoice.Id.String(), invoice, invoice)
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.client.Get(ctx, "/invoices/"+id.String(), nil, &invoice)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) FindAll(ctx context.Context, filter contract.InvoiceFilter) ([]*entity.Invoice, int64, error) {
	q := newQuery().
		id("organizationId", filter.OrganizationId).
		set("status", joinStatuses(filter.Statuses)).
		time("from", filter.From).
		time("to", filter.To).
		time("dueBefore", filter.DueBefore).
		page(filter.Page)

	var invoices []*entity.Invoice
	total, err := r.client.GetPage(ctx, "/invoices", q.values(), &invoices)
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}
