package controller

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
	logger  logger.ILogger
}

func NewPaymentController(service service.IPaymentService, log logger.ILogger) IPaymentController {
	return &paymentController{service: service, logger: log}
}

// RegisterRoutes mounts the public gateway callback. The signature is the auth.
func (c *paymentController) RegisterRoutes(r fiber.Router) {
	r.Post("/payments/webhook", c.Webhook)
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	sigPreview := req.SignatureKey
	if len(sigPreview) > 8 {
		sigPreview = sigPreview[:8] + "..."
	}
	c.logger.Info("PaymentController", "Webhook received", map[string]interface{}{
		"order_id":  req.OrderId,
		"status":    req.TransactionStatus,
		"signature": sigPreview,
	})

	// A 5xx makes the gateway retry the notification.
	res, err := c.service.HandleNotification(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Notification processed", res))
}
