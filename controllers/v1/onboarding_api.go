package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"workorbit-backend/controllers"
	onboardinghandler "workorbit-backend/lib/onboarding"
	"workorbit-backend/middleware"
	"workorbit-backend/models"
	apimodels "workorbit-backend/models/api"
	onboardingapimodels "workorbit-backend/models/api/onboarding"
)

type onboardingApiController struct {
	controllers.BaseAPIController
}

func InitOnboardingApiRouters(app *fiber.App) {
	controller := onboardingApiController{}
	app.Route("onboarding", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.CurrentUserRequired())
		router.Post(":employeeId/assign",
			middleware.RoleRequired(models.UserRoleAdmin), controller.assign)
		router.Get(":employeeId", controller.listByEmployee)
		router.Get(":employeeId/status", controller.statusSummary)
		router.Put(":employeeId/item/:key",
			middleware.RoleRequired(models.UserRoleEmployee, models.UserRoleManager), controller.updateItem)
		router.Post(":employeeId/item/:key/approve",
			middleware.RoleRequired(models.UserRoleManager), controller.approveItem)
	})
}

// @Summary Assign a checklist to an employee
// @Tags Onboarding
// @Description Snapshots the checklist items into a new instance, all pending
// @Param	body				body		onboardingapimodels.AssignRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=onboardingapimodels.InstanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/onboarding/{employeeId}/assign [post]
func (c *onboardingApiController) assign(ctx *fiber.Ctx) error {
	var payload onboardingapimodels.AssignRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := onboardinghandler.Instance.Assign(ctx.Params("employeeId"), payload.ChecklistID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Onboarding instances of an employee
// @Tags Onboarding
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]onboardingapimodels.InstanceView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/onboarding/{employeeId} [get]
func (c *onboardingApiController) listByEmployee(ctx *fiber.Ctx) error {
	resp, err := onboardinghandler.Instance.GetListByEmployee(ctx.Params("employeeId"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Flattened status per checklist
// @Tags Onboarding
// @Success 200 {object} apimodels.Response{data=[]onboardingapimodels.ChecklistSummary}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/onboarding/{employeeId}/status [get]
func (c *onboardingApiController) statusSummary(ctx *fiber.Ctx) error {
	resp, err := onboardinghandler.Instance.GetStatusSummary(ctx.Params("employeeId"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update an onboarding item
// @Tags Onboarding
// @Description The item is located by key across the employee's instances
// @Param	body				body		onboardingapimodels.UpdateItemRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.ItemStatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/onboarding/{employeeId}/item/{key} [put]
func (c *onboardingApiController) updateItem(ctx *fiber.Ctx) error {
	var payload onboardingapimodels.UpdateItemRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	updatedBy := ""
	if user := middleware.GetCurrentUser(ctx); user != nil {
		updatedBy = user.ID
	}
	resp, err := onboardinghandler.Instance.UpdateItemStatus(ctx.Params("employeeId"), ctx.Params("key"), payload, updatedBy)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Approve an onboarding item
// @Tags Onboarding
// @Description Forces the item into approved from any state
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.ItemStatusView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/onboarding/{employeeId}/item/{key}/approve [post]
func (c *onboardingApiController) approveItem(ctx *fiber.Ctx) error {
	updatedBy := ""
	if user := middleware.GetCurrentUser(ctx); user != nil {
		updatedBy = user.ID
	}
	resp, err := onboardinghandler.Instance.ApproveItem(ctx.Params("employeeId"), ctx.Params("key"), updatedBy)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
