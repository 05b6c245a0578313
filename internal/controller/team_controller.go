package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const msgMemberNotFound = "Team member not found"

type ITeamController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Members(ctx *fiber.Ctx) error
	Invite(ctx *fiber.Ctx) error
	ResendInvite(ctx *fiber.Ctx) error
	UpdateRole(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type teamController struct {
	service service.ITeamService
}

func NewTeamController(service service.ITeamService) ITeamController {
	return &teamController{service: service}
}

// Role checks live in the service: they depend on the target member too.
func (c *teamController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/team", auth)
	h.Get("/members", c.Members)
	h.Post("/invitations", c.Invite)
	h.Post("/members/:id/resend-invite", c.ResendInvite)
	h.Patch("/members/:id/role", c.UpdateRole)
	h.Delete("/members/:id", c.Remove)
}

func (c *teamController) Members(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.TeamListQuery](ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Members(ctx.UserContext(), p, query, pagination.FromQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get team members", res))
}

func (c *teamController) Invite(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.InviteMemberRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Invite(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Invitation sent", res))
}

func (c *teamController) ResendInvite(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgMemberNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.ResendInvite(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Invitation resent", res))
}

func (c *teamController) UpdateRole(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgMemberNotFound)
	if err != nil {
		return err
	}
	var req dto.UpdateMemberRoleRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateRole(ctx.UserContext(), p, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Role updated", res))
}

func (c *teamController) Remove(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgMemberNotFound)
	if err != nil {
		return err
	}

	if err := c.service.Remove(ctx.UserContext(), p, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Team member removed", nil))
}
