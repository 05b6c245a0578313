package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrganizationController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Show(ctx *fiber.Ctx) error
	Onboarding(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	VerifyPan(ctx *fiber.Ctx) error
	VerifyGst(ctx *fiber.Ctx) error
	UpdateBilling(ctx *fiber.Ctx) error
	SubmitOnboarding(ctx *fiber.Ctx) error
}

type organizationController struct {
	service service.IOrganizationService
}

func NewOrganizationController(service service.IOrganizationService) IOrganizationController {
	return &organizationController{service: service}
}

func (c *organizationController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/organization", auth)
	h.Get("/", c.Show)
	h.Get("/onboarding", c.Onboarding)
	h.Put("/profile", editorsOnly, c.UpdateProfile)
	h.Post("/verify-pan", editorsOnly, c.VerifyPan)
	h.Post("/verify-gst", editorsOnly, c.VerifyGst)
	h.Put("/billing", editorsOnly, c.UpdateBilling)
	h.Post("/onboarding/submit", editorsOnly, c.SubmitOnboarding)
}

func (c *organizationController) Show(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), p)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get organization", res))
}

func (c *organizationController) Onboarding(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Onboarding(ctx.UserContext(), p)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get onboarding progress", res))
}

func (c *organizationController) UpdateProfile(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateOrganizationProfileRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *organizationController) VerifyPan(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.VerifyPanRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.VerifyPan(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("PAN verified", res))
}

func (c *organizationController) VerifyGst(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.VerifyGstRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.VerifyGst(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("GSTIN verified", res))
}

func (c *organizationController) UpdateBilling(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.AddressDto
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateBilling(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Billing address updated", res))
}

func (c *organizationController) SubmitOnboarding(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.SubmitOnboarding(ctx.UserContext(), p)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Onboarding submitted", res))
}
