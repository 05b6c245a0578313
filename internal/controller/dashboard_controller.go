package controller

import (
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Summary(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/dashboard/summary", auth, c.Summary)
}

func (c *dashboardController) Summary(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Summary(ctx.UserContext(), p)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard summary", res))
}
