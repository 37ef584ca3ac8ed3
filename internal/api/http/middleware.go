package http

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fieldops/farm-admin/internal/observability"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// RegisterMiddlewares installs, outermost first: request logging, the
// per-request deadline and error rendering.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	if timeout > 0 {
		app.Use(withDeadline(timeout))
	}
	app.Use(renderErrors(logger, metrics))
}

func withDeadline(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// renderErrors turns handler errors and panics into the JSON error envelope.
func renderErrors(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := callRecovering(c, logger)
		if err == nil {
			return nil
		}

		domainErr := apperrors.ToDomainError(err)
		metrics.RecordError(c.Route().Path, c.Method(), domainErr.Code)
		switch {
		case domainErr.HTTPStatus >= fiber.StatusInternalServerError:
			logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
		default:
			logger.Debug("request rejected",
				zap.String("path", c.Path()),
				zap.String("code", domainErr.Code),
				zap.String("message", domainErr.Message))
		}

		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": errorBody{
			Code:    domainErr.Code,
			Message: domainErr.Message,
			Details: domainErr.Details,
		}})
	}
}

func callRecovering(c *fiber.Ctx, logger *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			err = apperrors.NewInternalError(fmt.Errorf("panic: %v", r))
		}
	}()
	return c.Next()
}
