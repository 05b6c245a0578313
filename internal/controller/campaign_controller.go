package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/lifecycle"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const msgCampaignNotFound = "Campaign not found"

type ICampaignController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Transition(ctx *fiber.Ctx) error
}

type campaignController struct {
	service service.ICampaignService
}

func NewCampaignController(service service.ICampaignService) ICampaignController {
	return &campaignController{service: service}
}

func (c *campaignController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/campaigns", auth)
	h.Get("/", c.List)
	h.Get("/export", c.Export)
	h.Get("/:id", c.Show)
	h.Post("/", editorsOnly, c.Create)
	h.Put("/:id", editorsOnly, c.Update)
	h.Delete("/:id", editorsOnly, c.Delete)
	h.Post("/:id/:action", editorsOnly, c.Transition)
}

func (c *campaignController) List(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.CampaignListQuery](ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), p, query, pagination.FromQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get campaigns", res))
}

func (c *campaignController) Export(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.CampaignListQuery](ctx)
	if err != nil {
		return err
	}

	file, err := c.service.Export(ctx.UserContext(), p, query)
	if err != nil {
		return err
	}
	return sendExport(ctx, file)
}

func (c *campaignController) Show(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgCampaignNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get campaign", res))
}

func (c *campaignController) Create(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.CampaignRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Campaign created", res))
}

func (c *campaignController) Update(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgCampaignNotFound)
	if err != nil {
		return err
	}
	var req dto.CampaignRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), p, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Campaign updated", res))
}

func (c *campaignController) Delete(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgCampaignNotFound)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), p, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Campaign deleted", nil))
}

// Transition serves POST /campaigns/:id/{submit,approve,...}. The reason body is
// only read by cancel.
func (c *campaignController) Transition(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgCampaignNotFound)
	if err != nil {
		return err
	}
	action, err := lifecycle.ParseCampaignAction(ctx.Params("action"))
	if err != nil {
		return serverutils.NotFound("Route not found")
	}

	var req dto.CampaignTransitionRequest
	if len(ctx.Body()) > 0 {
		if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
			return err
		}
	}

	res, err := c.service.Transition(ctx.UserContext(), p, id, action, req.Reason)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Campaign "+string(action)+" applied", res))
}
