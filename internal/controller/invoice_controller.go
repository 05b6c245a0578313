package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const msgInvoiceNotFound = "Invoice not found"

type IInvoiceController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Pay(ctx *fiber.Ctx) error
}

type invoiceController struct {
	service service.IInvoiceService
}

func NewInvoiceController(service service.IInvoiceService) IInvoiceController {
	return &invoiceController{service: service}
}

func (c *invoiceController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/invoices", auth)
	h.Get("/", c.List)
	h.Get("/export", c.Export)
	h.Get("/:id", c.Show)
	h.Post("/:id/pay", editorsOnly, c.Pay)
}

func (c *invoiceController) List(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.InvoiceListQuery](ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), p, query, pagination.FromQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get invoices", res))
}

func (c *invoiceController) Export(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.InvoiceListQuery](ctx)
	if err != nil {
		return err
	}

	file, err := c.service.Export(ctx.UserContext(), p, query)
	if err != nil {
		return err
	}
	return sendExport(ctx, file)
}

func (c *invoiceController) Show(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgInvoiceNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get invoice", res))
}

func (c *invoiceController) Pay(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgInvoiceNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.Pay(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Invoice checkout created", res))
}
