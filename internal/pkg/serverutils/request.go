package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseAndValidate decodes the JSON body into req and validates it.
func ParseAndValidate(ctx *fiber.Ctx, req any) error {
	if err := ctx.BodyParser(req); err != nil {
		return BadRequest("Invalid request body")
	}
	return ValidateRequest(req)
}

// ParamUUID reads a path parameter as a UUID. A malformed id can never match a
// record, so it is reported as not found.
func ParamUUID(ctx *fiber.Ctx, name, notFoundMessage string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, NotFound(notFoundMessage)
	}
	return id, nil
}
