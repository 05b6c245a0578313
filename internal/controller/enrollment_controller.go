package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const msgEnrollmentNotFound = "Enrollment not found"

type IEnrollmentController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	ListForCampaign(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	RequestChanges(ctx *fiber.Ctx) error
	BulkApprove(ctx *fiber.Ctx) error
}

type enrollmentController struct {
	service service.IEnrollmentService
}

func NewEnrollmentController(service service.IEnrollmentService) IEnrollmentController {
	return &enrollmentController{service: service}
}

func (c *enrollmentController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/campaigns/:id/enrollments", auth, c.ListForCampaign)

	h := r.Group("/enrollments", auth)
	h.Get("/", c.List)
	h.Get("/export", c.Export)
	h.Post("/bulk-approve", editorsOnly, c.BulkApprove)
	h.Get("/:id", c.Show)
	h.Post("/:id/approve", editorsOnly, c.Approve)
	h.Post("/:id/reject", editorsOnly, c.Reject)
	h.Post("/:id/request-changes", editorsOnly, c.RequestChanges)
}

func (c *enrollmentController) List(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.EnrollmentListQuery](ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), p, query, pagination.FromQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get enrollments", res))
}

func (c *enrollmentController) ListForCampaign(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	campaignId, err := serverutils.ParamUUID(ctx, "id", msgCampaignNotFound)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.EnrollmentListQuery](ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListForCampaign(ctx.UserContext(), p, campaignId, query, pagination.FromQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get enrollments", res))
}

func (c *enrollmentController) Export(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := parseQuery[dto.EnrollmentListQuery](ctx)
	if err != nil {
		return err
	}

	file, err := c.service.Export(ctx.UserContext(), p, query)
	if err != nil {
		return err
	}
	return sendExport(ctx, file)
}

func (c *enrollmentController) Show(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgEnrollmentNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), p, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get enrollment", res))
}

func (c *enrollmentController) Approve(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgEnrollmentNotFound)
	if err != nil {
		return err
	}
	var req dto.ApproveEnrollmentRequest
	if len(ctx.Body()) > 0 {
		if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
			return err
		}
	}

	res, err := c.service.Approve(ctx.UserContext(), p, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Enrollment approved", res))
}

func (c *enrollmentController) Reject(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgEnrollmentNotFound)
	if err != nil {
		return err
	}
	var req dto.RejectEnrollmentRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Reject(ctx.UserContext(), p, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Enrollment rejected", res))
}

func (c *enrollmentController) RequestChanges(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id", msgEnrollmentNotFound)
	if err != nil {
		return err
	}
	var req dto.RequestChangesRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.RequestChanges(ctx.UserContext(), p, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Changes requested", res))
}

func (c *enrollmentController) BulkApprove(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.BulkApproveRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.BulkApprove(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bulk approve processed", res))
}
