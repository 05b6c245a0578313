package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const msgWithdrawalNotFound = "Withdrawal not found"

type IWalletController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Balance(ctx *fiber.Ctx) error
	Transactions(ctx *fiber.Ctx) error
	ExportTransactions(ctx *fiber.Ctx) error
	RequestWithdrawal(ctx *fiber.Ctx) error
	Withdrawals(ctx *fiber.Ctx) error
	Withdrawal(ctx *fiber.Ctx) error
	CancelWithdrawal(ctx *fiber.Ctx) error
	Deposit(ctx *fiber.Ctx) error
}

type walletController struct {
	service service.IWalletService
}

func NewWalletController(service service.IWalletService) IWalletController {
	return &walletController{service: service}
}

func (c *walletController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/wallet", auth)
	h.Get("/", c.Balance)
	h.Get("/transactions", c.Transactions)
	h.Get("/transactions/export", c.ExportTransactions)
	h.Get("/withdrawals", c.Withdrawals)
	h.Post("/withdrawals", editorsOnly, c.RequestWithdrawal)
	h.Get("/withdrawals/:id", c.Withdrawal)
	h.Post("/withdrawals/:id/cancel", editorsOnly, c.CancelWithdrawal)
	h.Post("/deposits", editorsOnly, c.Deposit)
}

func (c *walletController) Balance(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Balance(ctx.UserContext(), p)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get wallet balance", res))
}

func (c *walletController) Transactions(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.TransactionListQuery](ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Transactions(ctx.UserContext(), p, query, pagination.FromQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transactions", res))
}

func (c *walletController) ExportTransactions(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.TransactionListQuery](ctx)
	if err != nil {
		return err
	}

	file, err := c.service.ExportTransactions(ctx.UserContext(), p, query)
	if err != nil {
		return err
	}
	return sendExport(ctx, file)
}

func (c *walletController) RequestWithdrawal(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.WithdrawalRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.RequestWithdrawal(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Withdrawal requested", res))
}

func (c *walletController) Withdrawals(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.WithdrawalListQuery](ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Withdrawals(ctx.UserContext(), p, query, pagination.FromQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get withdrawals", res))
}

func (c *walletController) Withdrawal(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgWithdrawalNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.Withdrawal(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get withdrawal", res))
}

func (c *walletController) CancelWithdrawal(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgWithdrawalNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.CancelWithdrawal(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Withdrawal cancelled", res))
}

func (c *walletController) Deposit(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.DepositRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Deposit(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Deposit checkout created", res))
}
