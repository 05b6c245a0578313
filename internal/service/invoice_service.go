package service

import (
	"context"
	"net/http"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/csvexport"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/payment"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	msgInvoiceNotFound   = "Invoice not found"
	msgInvoiceNotPayable = "Only issued or overdue invoices can be paid"
)

var invoiceStatuses = []entity.InvoiceStatus{
	entity.InvoiceStatusDraft,
	entity.InvoiceStatusIssued,
	entity.InvoiceStatusPaid,
	entity.InvoiceStatusOverdue,
	entity.InvoiceStatusCancelled,
}

type IInvoiceService interface {
	List(ctx context.Context, p serverutils.Principal, query dto.InvoiceListQuery, page pagination.Params) (*pagination.Page[dto.InvoiceResponse], error)
	Export(ctx context.Context, p serverutils.Principal, query dto.InvoiceListQuery) (*ExportFile, error)
	Get(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.InvoiceResponse, error)
	Pay(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.PaymentCheckoutResponse, error)

	// MarkOverdue is the scheduler sweep for issued invoices past their due date.
	MarkOverdue(ctx context.Context) (int, int, error)
}

type invoiceService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    payment.IGateway
	logger     logger.ILogger
}

func NewInvoiceService(uowFactory unitofwork.RepositoryFactory, gateway payment.IGateway, log logger.ILogger) IInvoiceService {
	return &invoiceService{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     log,
	}
}

func invoiceFilter(p serverutils.Principal, query dto.InvoiceListQuery) (contract.InvoiceFilter, error) {
	orgId := p.OrganizationId
	filter := contract.InvoiceFilter{OrganizationId: &orgId}

	statuses, err := parseEnum(query.Status, "status", invoiceStatuses)
	if err != nil {
		return filter, err
	}
	filter.Statuses = statuses

	from, to, err := dateRange(query.From, query.To)
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = from, to
	return filter, nil
}

func (s *invoiceService) List(ctx context.Context, p serverutils.Principal, query dto.InvoiceListQuery, page pagination.Params) (*pagination.Page[dto.InvoiceResponse], error) {
	filter, err := invoiceFilter(p, query)
	if err != nil {
		return nil, err
	}
	filter.Page = page

	uow := s.uowFactory.NewUnitOfWork(ctx)
	invoices, total, err := uow.InvoiceRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = toInvoiceResponse(inv)
	}
	return pagination.NewPage(items, page, total), nil
}

var invoiceColumns = []csvexport.Column[*entity.Invoice]{
	{Header: "number", Value: func(i *entity.Invoice) string { return i.Number }},
	{Header: "status", Value: func(i *entity.Invoice) string { return string(i.Status) }},
	{Header: "subtotal", Value: func(i *entity.Invoice) string { return csvexport.Amount(i.Subtotal) }},
	{Header: "tax_amount", Value: func(i *entity.Invoice) string { return csvexport.Amount(i.TaxAmount) }},
	{Header: "total", Value: func(i *entity.Invoice) string { return csvexport.Amount(i.Total) }},
	{Header: "currency", Value: func(i *entity.Invoice) string { return i.Currency }},
	{Header: "issued_at", Value: func(i *entity.Invoice) string { return csvexport.TimePtr(i.IssuedAt) }},
	{Header: "due_date", Value: func(i *entity.Invoice) string { return csvexport.Time(i.DueDate) }},
	{Header: "paid_at", Value: func(i *entity.Invoice) string { return csvexport.TimePtr(i.PaidAt) }},
	{Header: "payment_reference", Value: func(i *entity.Invoice) string { return i.PaymentReference }},
}

func (s *invoiceService) Export(ctx context.Context, p serverutils.Principal, query dto.InvoiceListQuery) (*ExportFile, error) {
	filter, err := invoiceFilter(p, query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	invoices, _, err := uow.InvoiceRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	content, err := csvexport.Render(invoiceColumns, invoices)
	if err != nil {
		return nil, err
	}
	return &ExportFile{Filename: csvexport.Filename("invoices", timeNow()), Content: content}, nil
}

// find scopes the lookup to the caller's organization.
func (s *invoiceService) find(ctx context.Context, repo contract.InvoiceRepository, organizationId, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.OrganizationId != organizationId {
		return nil, serverutils.NotFound(msgInvoiceNotFound)
	}
	return invoice, nil
}

func (s *invoiceService) Get(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	invoice, err := s.find(ctx, uow.InvoiceRepository(), p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	res := toInvoiceResponse(invoice)
	return &res, nil
}

func (s *invoiceService) Pay(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.PaymentCheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	invoice, err := s.find(ctx, uow.InvoiceRepository(), p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if !invoice.IsPayable() {
		return nil, serverutils.BadRequest(msgInvoiceNotPayable)
	}

	req := payment.CheckoutRequest{
		OrderId:  payment.InvoiceOrderId(invoice.Id),
		Amount:   invoice.Total,
		ItemName: "Invoice " + invoice.Number,
	}
	if user, err := uow.UserRepository().FindByID(ctx, p.UserId); err == nil && user != nil {
		req.CustomerName = user.FullName
		req.CustomerEmail = user.Email
	}

	checkout, err := s.gateway.CreateCheckout(ctx, req)
	if err != nil {
		s.logger.Error("InvoiceService", "Failed to create invoice checkout", map[string]interface{}{
			"invoice_id": invoice.Id.String(),
			"error":      err.Error(),
		})
		return nil, serverutils.NewAppError(http.StatusBadGateway, msgGatewayUnavailable)
	}

	invoiceId := invoice.Id
	return &dto.PaymentCheckoutResponse{
		OrderId:     req.OrderId,
		InvoiceId:   &invoiceId,
		Amount:      invoice.Total,
		SnapToken:   checkout.Token,
		RedirectUrl: checkout.RedirectUrl,
	}, nil
}

func (s *invoiceService) MarkOverdue(ctx context.Context) (int, int, error) {
	now := timeNow()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	due, _, err := uow.InvoiceRepository().FindAll(ctx, contract.InvoiceFilter{
		Statuses:  []entity.InvoiceStatus{entity.InvoiceStatusIssued},
		DueBefore: &now,
	})
	if err != nil {
		return 0, 0, err
	}

	marked, failed := 0, 0
	for _, inv := range due {
		if err := s.markOverdue(ctx, inv.Id); err != nil {
			failed++
			s.logger.Warn("InvoiceService", "Overdue marking skipped", map[string]interface{}{
				"invoice_id": inv.Id.String(),
				"error":      err.Error(),
			})
			continue
		}
		marked++
	}
	return marked, failed, nil
}

func (s *invoiceService) markOverdue(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.InvoiceRepository()
	invoice, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return serverutils.NotFound(msgInvoiceNotFound)
	}
	if invoice.Status != entity.InvoiceStatusIssued {
		return serverutils.BadRequest("Only issued invoices can become overdue")
	}

	invoice.Status = entity.InvoiceStatusOverdue
	invoice.UpdatedAt = timeNow()
	if err := repo.Update(ctx, invoice); err != nil {
		return err
	}
	return uow.Commit()
}
