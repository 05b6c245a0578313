package service

import (
	"context"
	"strconv"
	"strings"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/payment"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
)

// Webhook outcomes reported back to the gateway.
const (
	OutcomeCompleted      = "completed"
	OutcomeFailed         = "failed"
	OutcomeAlreadySettled = "already_settled"
	OutcomeIgnored        = "ignored"
)

type IPaymentService interface {
	HandleNotification(ctx context.Context, req *dto.MidtransNotificationRequest) (*dto.PaymentNotificationResponse, error)
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    payment.IGateway
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, gateway payment.IGateway, publisher events.Publisher, log logger.ILogger) IPaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		logger:     log,
	}
}

// settlementOf maps a gateway transaction status to the final status it implies.
// An empty result means the notification carries no decision yet.
func settlementOf(req *dto.MidtransNotificationRequest) entity.TransactionStatus {
	switch strings.ToLower(req.TransactionStatus) {
	case "capture":
		if strings.EqualFold(req.FraudStatus, "challenge") {
			return ""
		}
		return entity.TransactionStatusCompleted
	case "settlement":
		return entity.TransactionStatusCompleted
	case "deny", "cancel", "expire", "failure":
		return entity.TransactionStatusFailed
	default:
		return ""
	}
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransNotificationRequest) (*dto.PaymentNotificationResponse, error) {
	s.logger.Info("PaymentService", "Gateway notification received", map[string]interface{}{
		"order_id": req.OrderId,
		"status":   req.TransactionStatus,
	})

	if !s.gateway.VerifySignature(req.OrderId, req.StatusCode, req.GrossAmount, req.SignatureKey) {
		s.logger.Warn("PaymentService", "Signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return nil, serverutils.BadRequest("Invalid signature")
	}

	kind, id, err := payment.ParseOrderId(req.OrderId)
	if err != nil {
		return nil, serverutils.BadRequest("Invalid order_id")
	}

	status := settlementOf(req)
	if status == "" {
		return &dto.PaymentNotificationResponse{OrderId: req.OrderId, Outcome: OutcomeIgnored}, nil
	}

	var outcome string
	switch kind {
	case payment.OrderKindDeposit:
		outcome, err = s.settleDeposit(ctx, id, status, req)
	case payment.OrderKindInvoice:
		outcome, err = s.settleInvoice(ctx, id, status, req)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("PaymentService", "Gateway notification processed", map[string]interface{}{
		"order_id": req.OrderId,
		"outcome":  outcome,
	})
	return &dto.PaymentNotificationResponse{OrderId: req.OrderId, Outcome: outcome}, nil
}

func (s *paymentService) settleDeposit(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, req *dto.MidtransNotificationRequest) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}
	defer uow.Rollback()

	repo := uow.WalletRepository()
	tx, err := repo.FindTransaction(ctx, id)
	if err != nil {
		return "", err
	}
	if tx == nil || tx.Type != entity.TransactionTypeDeposit {
		return "", serverutils.NotFound("Transaction not found")
	}
	if tx.Status != entity.TransactionStatusPending {
		return OutcomeAlreadySettled, nil
	}

	book, err := openLedger(ctx, repo, tx.OrganizationId)
	if err != nil {
		return "", err
	}
	if status == entity.TransactionStatusCompleted && req.PaymentType != "" {
		tx.Description = "Wallet top-up via " + strings.ReplaceAll(req.PaymentType, "_", " ")
	}
	if status == entity.TransactionStatusCompleted {
		// The signed gross amount is what was collected.
		if gross, ok := grossAmount(req); ok && gross != tx.Amount {
			s.logger.Warn("PaymentService", "Deposit amount differs from gateway gross amount", map[string]interface{}{
				"transaction_id": tx.Id.String(),
				"recorded":       tx.Amount,
				"gross_amount":   gross,
			})
			tx.Amount = gross
		}
	}
	if err := book.settle(ctx, tx, status); err != nil {
		return "", err
	}
	if err := book.save(ctx); err != nil {
		return "", err
	}
	if err := uow.Commit(); err != nil {
		return "", err
	}

	if status == entity.TransactionStatusCompleted {
		return OutcomeCompleted, nil
	}
	return OutcomeFailed, nil
}

func grossAmount(req *dto.MidtransNotificationRequest) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(req.GrossAmount), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return entity.RoundAmount(v), true
}

func (s *paymentService) settleInvoice(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, req *dto.MidtransNotificationRequest) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}
	defer uow.Rollback()

	invoice, err := uow.InvoiceRepository().FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if invoice == nil {
		return "", serverutils.NotFound(msgInvoiceNotFound)
	}
	if invoice.Status == entity.InvoiceStatusPaid {
		return OutcomeAlreadySettled, nil
	}
	if status == entity.TransactionStatusFailed || !invoice.IsPayable() {
		// A failed payment leaves the invoice payable.
		return OutcomeIgnored, nil
	}

	now := timeNow()
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaidAt = &now
	invoice.PaymentReference = req.TransactionId
	if invoice.PaymentReference == "" {
		invoice.PaymentReference = req.OrderId
	}
	invoice.UpdatedAt = now
	if err := uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return "", err
	}

	book, err := openLedger(ctx, uow.WalletRepository(), invoice.OrganizationId)
	if err != nil {
		return "", err
	}
	ref := invoice.Id
	if _, err := book.post(ctx, entry{
		Type:          entity.TransactionTypeInvoicePayment,
		Status:        entity.TransactionStatusCompleted,
		Amount:        invoice.Total,
		ReferenceType: "invoice",
		ReferenceId:   &ref,
		Description:   "Payment for " + invoice.Number,
	}); err != nil {
		return "", err
	}
	if err := uow.Commit(); err != nil {
		return "", err
	}

	publishEvent(ctx, s.publisher, s.logger, events.InvoicePaid, map[string]interface{}{
		"organization_id": invoice.OrganizationId.String(),
		"invoice_id":      invoice.Id.String(),
		"number":          invoice.Number,
		"total":           invoice.Total,
		"entity_type":     "invoice",
		"entity_id":       invoice.Id.String(),
	})
	return OutcomeCompleted, nil
}
