package handler

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"
	internalWS "brand-dashboard-be/internal/websocket"
	"brand-dashboard-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service   *service.NotificationService
	publisher events.Publisher
	hub       *internalWS.Hub
	jwtSecret string
	resolve   serverutils.PrincipalResolver
	logger    logger.ILogger
}

func NewNotificationHandler(service *service.NotificationService, pub events.Publisher, hub *internalWS.Hub, jwtSecret string, resolve serverutils.PrincipalResolver, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service:   service,
		publisher: pub,
		hub:       hub,
		jwtSecret: jwtSecret,
		resolve:   resolve,
		logger:    log,
	}
}

// ServeWs upgrades GET /api/ws. Browsers cannot set headers on a websocket
// handshake, so the token comes from the query string first.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return serverutils.Unauthorized("Missing token")
	}

	principal, err := serverutils.ParseToken(h.jwtSecret, tokenStr)
	if err != nil {
		h.logger.Warn("NotificationHandler", "Invalid token in websocket handshake", map[string]interface{}{"error": err.Error()})
		return serverutils.Unauthorized("Invalid token")
	}
	if h.resolve != nil {
		current, err := h.resolve(c.UserContext(), *principal)
		if err != nil {
			return err
		}
		principal = &current
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	userID := principal.UserId
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("NotificationHandler", "Starting websocket session", map[string]interface{}{"user_id": userID})
		internalWS.ServeWs(h.hub, conn, userID)
		h.logger.Info("NotificationHandler", "Websocket session ended", map[string]interface{}{"user_id": userID})
	})(c)
}

func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(c)
	if err != nil {
		return err
	}
	var query dto.NotificationListQuery
	if err := c.QueryParser(&query); err != nil {
		return serverutils.BadRequest("Invalid query parameters")
	}

	res, err := h.service.List(c.UserContext(), p, query, pagination.FromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("Success get notifications", res))
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	res, err := h.service.UnreadCount(c.UserContext(), p)
	if err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("Success get unread count", res))
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(c, "id", "Notification not found")
	if err != nil {
		return err
	}

	if err := h.service.MarkAsRead(c.UserContext(), p, id); err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	p, err := serverutils.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	res, err := h.service.MarkAllAsRead(c.UserContext(), p)
	if err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("All notifications marked as read", res))
}

// Broadcast publishes a system announcement. The worker pushes it to every
// connected client without storing it.
func (h *NotificationHandler) Broadcast(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := serverutils.ParseAndValidate(c, &req); err != nil {
		return err
	}
	if h.publisher == nil {
		return serverutils.NewAppError(fiber.StatusServiceUnavailable, "Event publisher not configured")
	}

	evt := events.New(events.SystemAnnouncement, map[string]interface{}{
		"id":      uuid.NewString(),
		"title":   req.Title,
		"message": req.Message,
	})
	if err := h.publisher.Publish(c.UserContext(), evt); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Announcement queued", evt.Data))
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	notif := router.Group("/notifications", auth)
	notif.Get("/", h.GetNotifications)
	notif.Get("/unread-count", h.GetUnreadCount)
	notif.Patch("/read-all", h.MarkAllAsRead)
	notif.Patch("/:id/read", h.MarkAsRead)
	notif.Post("/broadcast", serverutils.RequireRole(entity.UserRolePlatformAdmin), h.Broadcast)

	router.Get("/ws", h.ServeWs)
}
