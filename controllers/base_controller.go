package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"workorbit-backend/lib/utils/apperror"
	apimodels "workorbit-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse error")
		return errors.New("could not read the request body")
	}
	return nil
}

// SendError maps the error taxonomy to HTTP statuses; anything
// unclassified is logged and reported as a generic 500.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation, apperror.CodeDuplicate:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case apperror.CodeAuth:
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	case apperror.CodeForbidden:
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case apperror.CodeNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	default:
		log.
			WithField("path", ctx.Path()).
			WithError(err).
			Error("unexpected handler error")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("server error"))
	}
}
