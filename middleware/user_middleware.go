package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"workorbit-backend/db"
	userstore "workorbit-backend/lib/auth/store"
	authutils "workorbit-backend/lib/utils/auth-utils"
	apimodels "workorbit-backend/models/api"
	dbmodels "workorbit-backend/models/db"
)

const currentUserKey = "current_db_user"

// CurrentUserRequired resolves the token subject to a live user record;
// a token whose user has been deleted is rejected.
func CurrentUserRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims := authutils.GetClaims(ctx)
		userID := authutils.GetUserID(claims)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("not authorized"))
		}
		user, err := userstore.NewInstance(db.DB).GetByID(userID)
		if err != nil {
			log.WithField("user_id", userID).WithError(err).Error("current user lookup error")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("server error"))
		}
		if user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("user not found"))
		}
		ctx.Locals(currentUserKey, user)
		return ctx.Next()
	}
}

func GetCurrentUser(ctx *fiber.Ctx) *dbmodels.User {
	user, ok := ctx.Locals(currentUserKey).(*dbmodels.User)
	if !ok {
		return nil
	}
	return user
}
