package middleware

import (
	"github.com/gofiber/fiber/v2"

	"workorbit-backend/models"
	apimodels "workorbit-backend/models/api"
)

// RoleRequired is the per-route allow-list gate.
func RoleRequired(allowed ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user := GetCurrentUser(ctx)
		if user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("not authorized"))
		}
		if !user.Role.In(allowed) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not allowed for this role"))
		}
		return ctx.Next()
	}
}
