package controller

import (
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/csvexport"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// editorsOnly guards mutating routes. Viewers get 403.
var editorsOnly = serverutils.RequireRole(entity.EditorRoles...)

func sendExport(ctx *fiber.Ctx, file *service.ExportFile) error {
	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, csvexport.ContentDisposition(file.Filename))
	return ctx.Send(file.Content)
}

func parseQuery[T any](ctx *fiber.Ctx) (T, error) {
	var query T
	if err := ctx.QueryParser(&query); err != nil {
		return query, serverutils.BadRequest("Invalid query parameters")
	}
	return query, nil
}
