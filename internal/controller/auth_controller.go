package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Login(ctx *fiber.Ctx) error
	AcceptInvite(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/auth/v1")
	h.Post("/login", c.Login)
	h.Post("/accept-invite", c.AcceptInvite)
	h.Get("/me", auth, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) AcceptInvite(ctx *fiber.Ctx) error {
	var req dto.AcceptInviteRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AcceptInvite(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Invitation accepted", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Me(ctx.UserContext(), p)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get current user", res))
}
