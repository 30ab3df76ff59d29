package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"workorbit-backend/controllers"
	checklisthandler "workorbit-backend/lib/checklist"
	"workorbit-backend/middleware"
	"workorbit-backend/models"
	apimodels "workorbit-backend/models/api"
	checklistapimodels "workorbit-backend/models/api/checklist"
)

type checklistApiController struct {
	controllers.BaseAPIController
}

func InitChecklistApiRouters(app *fiber.App) {
	controller := checklistApiController{}
	app.Route("checklists", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.CurrentUserRequired())
		adminOnly := middleware.RoleRequired(models.UserRoleAdmin)
		router.Get("", controller.list)
		router.Post("", adminOnly, controller.create)
		router.Get(":id", controller.getByID)
		router.Put(":id", adminOnly, controller.update)
		router.Delete(":id", adminOnly, controller.delete)
		router.Post(":id/items", adminOnly, controller.addItem)
		router.Put(":id/items/:key", adminOnly, controller.updateItem)
		router.Delete(":id/items/:key", adminOnly, controller.deleteItem)
	})
}

// @Summary Checklist templates
// @Tags Checklists
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]checklistapimodels.ChecklistView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/checklists [get]
func (c *checklistApiController) list(ctx *fiber.Ctx) error {
	resp, err := checklisthandler.Instance.GetList()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a checklist template
// @Tags Checklists
// @Param	body				body		checklistapimodels.CreateChecklistRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=checklistapimodels.ChecklistView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/checklists [post]
func (c *checklistApiController) create(ctx *fiber.Ctx) error {
	var payload checklistapimodels.CreateChecklistRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	createdBy := ""
	if user := middleware.GetCurrentUser(ctx); user != nil {
		createdBy = user.ID
	}
	resp, err := checklisthandler.Instance.Create(payload, createdBy)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Checklist template by id
// @Tags Checklists
// @Success 200 {object} apimodels.Response{data=checklistapimodels.ChecklistView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/checklists/{id} [get]
func (c *checklistApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := checklisthandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a checklist template
// @Tags Checklists
// @Description Sending items replaces the whole item set
// @Param	body				body		checklistapimodels.UpdateChecklistRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=checklistapimodels.ChecklistView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/checklists/{id} [put]
func (c *checklistApiController) update(ctx *fiber.Ctx) error {
	var payload checklistapimodels.UpdateChecklistRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := checklisthandler.Instance.Update(ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a checklist template
// @Tags Checklists
// @Description Assigned onboarding instances keep their item snapshots
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/checklists/{id} [delete]
func (c *checklistApiController) delete(ctx *fiber.Ctx) error {
	if err := checklisthandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("checklist deleted"))
}

// @Summary Add a checklist item
// @Tags Checklists
// @Param	body				body		checklistapimodels.ItemRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=checklistapimodels.ChecklistItemData}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/checklists/{id}/items [post]
func (c *checklistApiController) addItem(ctx *fiber.Ctx) error {
	var payload checklistapimodels.ItemRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := checklisthandler.Instance.AddItem(ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a checklist item
// @Tags Checklists
// @Param	body				body		checklistapimodels.ItemRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=checklistapimodels.ChecklistItemData}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/checklists/{id}/items/{key} [put]
func (c *checklistApiController) updateItem(ctx *fiber.Ctx) error {
	var payload checklistapimodels.ItemRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := checklisthandler.Instance.UpdateItem(ctx.Params("id"), ctx.Params("key"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a checklist item
// @Tags Checklists
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/checklists/{id}/items/{key} [delete]
func (c *checklistApiController) deleteItem(ctx *fiber.Ctx) error {
	if err := checklisthandler.Instance.DeleteItem(ctx.Params("id"), ctx.Params("key")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("item deleted"))
}
