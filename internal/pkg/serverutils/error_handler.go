package serverutils

import (
	"errors"
	"fmt"
	"net/http"

	"brand-dashboard-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns returned errors and panics into error envelopes.
// Expected failures keep their message; anything else becomes a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("HTTP", "Recovered from panic", map[string]interface{}{
					"method":     ctx.Method(),
					"path":       ctx.Path(),
					"request_id": requestID(ctx),
					"panic":      fmt.Sprintf("%v", r),
				})
				err = ctx.Status(http.StatusInternalServerError).JSON(ErrorResponse(http.StatusInternalServerError, MsgInternalError))
			}
		}()

		if nextErr := ctx.Next(); nextErr != nil {
			return WriteError(ctx, nextErr, log)
		}
		return nil
	}
}

// WriteError writes the envelope for err.
func WriteError(ctx *fiber.Ctx, err error, log logger.ILogger) error {
	code, message := resolve(err)

	if code >= http.StatusInternalServerError {
		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"request_id": requestID(ctx),
			"error":      err.Error(),
		})
		message = MsgInternalError
	}

	return ctx.Status(code).JSON(ErrorResponse(code, message))
}

func resolve(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	var coder StatusCoder
	if errors.As(err, &coder) {
		return coder.StatusCode(), err.Error()
	}

	return http.StatusInternalServerError, MsgInternalError
}

func requestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals("requestid").(string); ok {
		return id
	}
	return ctx.GetRespHeader(fiber.HeaderXRequestID)
}
