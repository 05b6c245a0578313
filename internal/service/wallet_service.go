package service

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/csvexport"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/payment"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
)

const (
	msgWithdrawalNotFound     = "Withdrawal not found"
	msgInsufficientAvailable  = "Insufficient available balance"
	msgOnlyPendingCancellable = "Only pending withdrawals can be cancelled"
	msgGatewayUnavailable     = "Payment gateway is unavailable, please try again"
)

var ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

var (
	transactionTypes = []entity.TransactionType{
		entity.TransactionTypeDeposit,
		entity.TransactionTypeHold,
		entity.TransactionTypeHoldRelease,
		entity.TransactionTypeCashbackPayout,
		entity.TransactionTypeWithdrawal,
		entity.TransactionTypeWithdrawalReversal,
		entity.TransactionTypeInvoicePayment,
	}
	transactionStatuses = []entity.TransactionStatus{
		entity.TransactionStatusPending,
		entity.TransactionStatusCompleted,
		entity.TransactionStatusFailed,
	}
	withdrawalStatuses = []entity.WithdrawalStatus{
		entity.WithdrawalStatusPending,
		entity.WithdrawalStatusProcessing,
		entity.WithdrawalStatusCompleted,
		entity.WithdrawalStatusRejected,
		entity.WithdrawalStatusCancelled,
	}
)

type IWalletService interface {
	Balance(ctx context.Context, p serverutils.Principal) (*dto.WalletBalanceResponse, error)
	Transactions(ctx context.Context, p serverutils.Principal, query dto.TransactionListQuery, page pagination.Params) (*pagination.Page[dto.TransactionResponse], error)
	ExportTransactions(ctx context.Context, p serverutils.Principal, query dto.TransactionListQuery) (*ExportFile, error)
	RequestWithdrawal(ctx context.Context, p serverutils.Principal, req *dto.WithdrawalRequest) (*dto.WithdrawalResponse, error)
	Withdrawals(ctx context.Context, p serverutils.Principal, query dto.WithdrawalListQuery, page pagination.Params) (*pagination.Page[dto.WithdrawalResponse], error)
	Withdrawal(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.WithdrawalResponse, error)
	CancelWithdrawal(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.WithdrawalResponse, error)
	Deposit(ctx context.Context, p serverutils.Principal, req *dto.DepositRequest) (*dto.PaymentCheckoutResponse, error)
}

type walletService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    payment.IGateway
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewWalletService(uowFactory unitofwork.RepositoryFactory, gateway payment.IGateway, publisher events.Publisher, log logger.ILogger) IWalletService {
	return &walletService{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *walletService) Balance(ctx context.Context, p serverutils.Principal) (*dto.WalletBalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	book, err := openLedger(ctx, uow.WalletRepository(), p.OrganizationId)
	if err != nil {
		return nil, err
	}
	res := toWalletResponse(book.balance)
	return &res, nil
}

func transactionFilter(p serverutils.Principal, query dto.TransactionListQuery) (contract.TransactionFilter, error) {
	filter := contract.TransactionFilter{OrganizationId: p.OrganizationId}

	if query.Type != "" {
		if !contains(transactionTypes, entity.TransactionType(query.Type)) {
			return filter, serverutils.BadRequest("Invalid type filter")
		}
		filter.Type = entity.TransactionType(query.Type)
	}
	if query.Status != "" {
		if !contains(transactionStatuses, entity.TransactionStatus(query.Status)) {
			return filter, serverutils.BadRequest("Invalid status filter")
		}
		filter.Status = entity.TransactionStatus(query.Status)
	}

	from, to, err := dateRange(query.From, query.To)
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = from, to
	return filter, nil
}

func (s *walletService) Transactions(ctx context.Context, p serverutils.Principal, query dto.TransactionListQuery, page pagination.Params) (*pagination.Page[dto.TransactionResponse], error) {
	filter, err := transactionFilter(p, query)
	if err != nil {
		return nil, err
	}
	filter.Page = page

	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, total, err := uow.WalletRepository().FindTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		items[i] = toTransactionResponse(tx)
	}
	return pagination.NewPage(items, page, total), nil
}

var transactionColumns = []csvexport.Column[*entity.Transaction]{
	{Header: "id", Value: func(t *entity.Transaction) string { return t.Id.String() }},
	{Header: "type", Value: func(t *entity.Transaction) string { return string(t.Type) }},
	{Header: "status", Value: func(t *entity.Transaction) string { return string(t.Status) }},
	{Header: "amount", Value: func(t *entity.Transaction) string { return csvexport.Amount(t.Amount) }},
	{Header: "balance_after", Value: func(t *entity.Transaction) string { return csvexport.Amount(t.BalanceAfter) }},
	{Header: "description", Value: func(t *entity.Transaction) string { return t.Description }},
	{Header: "reference_type", Value: func(t *entity.Transaction) string { return t.ReferenceType }},
	{Header: "reference_id", Value: func(t *entity.Transaction) string {
		if t.ReferenceId == nil {
			return ""
		}
		return t.ReferenceId.String()
	}},
	{Header: "created_at", Value: func(t *entity.Transaction) string { return csvexport.Time(t.CreatedAt) }},
}

func (s *walletService) ExportTransactions(ctx context.Context, p serverutils.Principal, query dto.TransactionListQuery) (*ExportFile, error) {
	filter, err := transactionFilter(p, query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, _, err := uow.WalletRepository().FindTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	content, err := csvexport.Render(transactionColumns, txs)
	if err != nil {
		return nil, err
	}
	return &ExportFile{Filename: csvexport.Filename("transactions", timeNow()), Content: content}, nil
}

// maskAccount keeps the last four digits.
func maskAccount(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("X", len(number)-4) + number[len(number)-4:]
}

func (s *walletService) RequestWithdrawal(ctx context.Context, p serverutils.Principal, req *dto.WithdrawalRequest) (*dto.WithdrawalResponse, error) {
	if !p.Role.CanManageTeam() {
		return nil, serverutils.Forbidden(serverutils.MsgForbidden)
	}
	ifsc := strings.ToUpper(strings.TrimSpace(req.Ifsc))
	if !ifscPattern.MatchString(ifsc) {
		return nil, serverutils.BadRequest("Invalid IFSC code")
	}
	amount := entity.RoundAmount(req.Amount)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.WalletRepository()
	book, err := openLedger(ctx, repo, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	if amount > book.balance.Available {
		return nil, serverutils.BadRequest(msgInsufficientAvailable)
	}

	now := timeNow()
	withdrawal := &entity.Withdrawal{
		Id:                uuid.New(),
		OrganizationId:    p.OrganizationId,
		Amount:            amount,
		Status:            entity.WithdrawalStatusPending,
		BankAccountName:   strings.TrimSpace(req.BankAccountName),
		BankAccountMasked: maskAccount(req.BankAccountNumber),
		Ifsc:              ifsc,
		Note:              strings.TrimSpace(req.Note),
		RequestedBy:       p.UserId,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := repo.CreateWithdrawal(ctx, withdrawal); err != nil {
		return nil, err
	}

	ref := withdrawal.Id
	if _, err := book.post(ctx, entry{
		Type:          entity.TransactionTypeWithdrawal,
		Status:        entity.TransactionStatusPending,
		Amount:        amount,
		ReferenceType: "withdrawal",
		ReferenceId:   &ref,
		Description:   "Withdrawal to " + withdrawal.BankAccountMasked,
	}); err != nil {
		return nil, err
	}
	if err := book.save(ctx); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("WalletService", "Withdrawal requested", map[string]interface{}{
		"withdrawal_id":   withdrawal.Id.String(),
		"organization_id": p.OrganizationId.String(),
		"amount":          amount,
	})
	publishEvent(ctx, s.publisher, s.logger, events.WithdrawalRequested, map[string]interface{}{
		"organization_id": p.OrganizationId.String(),
		"withdrawal_id":   withdrawal.Id.String(),
		"amount":          amount,
		"actor_id":        p.UserId.String(),
		"entity_type":     "withdrawal",
		"entity_id":       withdrawal.Id.String(),
	})

	res := toWithdrawalResponse(withdrawal)
	return &res, nil
}

func (s *walletService) Withdrawals(ctx context.Context, p serverutils.Principal, query dto.WithdrawalListQuery, page pagination.Params) (*pagination.Page[dto.WithdrawalResponse], error) {
	filter := contract.WithdrawalFilter{OrganizationId: p.OrganizationId, Page: page}
	if query.Status != "" {
		if !contains(withdrawalStatuses, entity.WithdrawalStatus(query.Status)) {
			return nil, serverutils.BadRequest("Invalid status filter")
		}
		filter.Status = entity.WithdrawalStatus(query.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	withdrawals, total, err := uow.WalletRepository().FindWithdrawals(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		items[i] = toWithdrawalResponse(w)
	}
	return pagination.NewPage(items, page, total), nil
}

func (s *walletService) Withdrawal(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.WithdrawalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	withdrawal, err := uow.WalletRepository().FindWithdrawal(ctx, p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, serverutils.NotFound(msgWithdrawalNotFound)
	}
	res := toWithdrawalResponse(withdrawal)
	return &res, nil
}

func (s *walletService) CancelWithdrawal(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.WithdrawalResponse, error) {
	if !p.Role.CanManageTeam() {
		return nil, serverutils.Forbidden(serverutils.MsgForbidden)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.WalletRepository()
	withdrawal, err := repo.FindWithdrawal(ctx, p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, serverutils.NotFound(msgWithdrawalNotFound)
	}
	if withdrawal.Status != entity.WithdrawalStatusPending {
		return nil, serverutils.BadRequest(msgOnlyPendingCancellable)
	}

	now := timeNow()
	withdrawal.Status = entity.WithdrawalStatusCancelled
	withdrawal.ProcessedAt = &now
	withdrawal.UpdatedAt = now
	if err := repo.UpdateWithdrawal(ctx, withdrawal); err != nil {
		return nil, err
	}

	pending, _, err := repo.FindTransactions(ctx, contract.TransactionFilter{
		OrganizationId: p.OrganizationId,
		Type:           entity.TransactionTypeWithdrawal,
		Status:         entity.TransactionStatusPending,
	})
	if err != nil {
		return nil, err
	}
	for _, tx := range pending {
		if tx.ReferenceId != nil && *tx.ReferenceId == withdrawal.Id {
			tx.Status = entity.TransactionStatusFailed
			if err := repo.UpdateTransaction(ctx, tx); err != nil {
				return nil, err
			}
		}
	}

	book, err := openLedger(ctx, repo, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	ref := withdrawal.Id
	if _, err := book.post(ctx, entry{
		Type:          entity.TransactionTypeWithdrawalReversal,
		Status:        entity.TransactionStatusCompleted,
		Amount:        withdrawal.Amount,
		ReferenceType: "withdrawal",
		ReferenceId:   &ref,
		Description:   "Withdrawal cancelled",
	}); err != nil {
		return nil, err
	}
	if err := book.save(ctx); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("WalletService", "Withdrawal cancelled", map[string]interface{}{
		"withdrawal_id": withdrawal.Id.String(),
		"actor_id":      p.UserId.String(),
	})
	res := toWithdrawalResponse(withdrawal)
	return &res, nil
}

// Deposit records a pending top-up and opens a gateway checkout for it. The
// balance only moves when the gateway confirms the payment.
func (s *walletService) Deposit(ctx context.Context, p serverutils.Principal, req *dto.DepositRequest) (*dto.PaymentCheckoutResponse, error) {
	// The pending entry records what the gateway will collect.
	amount := payment.ChargeAmount(req.Amount)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindByID(ctx, p.UserId)
	if err != nil {
		return nil, err
	}
	book, err := openLedger(ctx, uow.WalletRepository(), p.OrganizationId)
	if err != nil {
		return nil, err
	}
	tx, err := book.post(ctx, entry{
		Type:          entity.TransactionTypeDeposit,
		Status:        entity.TransactionStatusPending,
		Amount:        amount,
		ReferenceType: "deposit",
		Description:   "Wallet top-up (awaiting payment)",
	})
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	checkoutReq := payment.CheckoutRequest{
		OrderId:  payment.DepositOrderId(tx.Id),
		Amount:   amount,
		ItemName: "Wallet top-up",
	}
	if user != nil {
		checkoutReq.CustomerName = user.FullName
		checkoutReq.CustomerEmail = user.Email
	}
	checkout, err := s.gateway.CreateCheckout(ctx, checkoutReq)
	if err != nil {
		s.logger.Error("WalletService", "Failed to create deposit checkout", map[string]interface{}{
			"transaction_id": tx.Id.String(),
			"error":          err.Error(),
		})
		s.failDeposit(ctx, tx.Id)
		return nil, serverutils.NewAppError(http.StatusBadGateway, msgGatewayUnavailable)
	}

	txId := tx.Id
	return &dto.PaymentCheckoutResponse{
		OrderId:       checkoutReq.OrderId,
		TransactionId: &txId,
		Amount:        amount,
		SnapToken:     checkout.Token,
		RedirectUrl:   checkout.RedirectUrl,
	}, nil
}

func (s *walletService) failDeposit(ctx context.Context, id uuid.UUID) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tx, err := uow.WalletRepository().FindTransaction(ctx, id)
	if err != nil || tx == nil {
		return
	}
	tx.Status = entity.TransactionStatusFailed
	if err := uow.WalletRepository().UpdateTransaction(ctx, tx); err != nil {
		s.logger.Warn("WalletService", "Failed to mark deposit as failed", map[string]interface{}{
			"transaction_id": id.String(),
			"error":          err.Error(),
		})
	}
}
