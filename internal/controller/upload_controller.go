package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Presign(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
}

func NewUploadController(service service.IUploadService) IUploadController {
	return &uploadController{service: service}
}

// The PUT sink is public: the ticket token in the query string authorizes it.
func (c *uploadController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/uploads")
	h.Post("/presign", auth, editorsOnly, c.Presign)
	h.Put("/:key", c.Complete)
}

func (c *uploadController) Presign(ctx *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	var req dto.PresignUploadRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Presign(ctx.UserContext(), p, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Upload URL created", res))
}

func (c *uploadController) Complete(ctx *fiber.Ctx) error {
	res, err := c.service.Complete(ctx.UserContext(), ctx.Params("key"), ctx.Query("token"), ctx.Body())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Upload stored", res))
}
