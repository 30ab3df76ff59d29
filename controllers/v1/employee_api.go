package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"workorbit-backend/controllers"
	employeehandler "workorbit-backend/lib/employee"
	filestorage "workorbit-backend/lib/file-storage"
	"workorbit-backend/middleware"
	"workorbit-backend/models"
	apimodels "workorbit-backend/models/api"
	employeeapimodels "workorbit-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.CurrentUserRequired())
		adminOnly := middleware.RoleRequired(models.UserRoleAdmin)
		router.Get("", controller.list)
		router.Post("", adminOnly, controller.create)
		router.Get("export", adminOnly, controller.export)
		router.Get("export/pdf", adminOnly, controller.exportPDF)
		router.Get(":id", controller.getByID)
		router.Put(":id", adminOnly, controller.update)
		router.Delete(":id", adminOnly, controller.delete)
		router.Post(":id/documents", adminOnly, controller.uploadDocument)
		router.Get(":id/documents", controller.listDocuments)
		router.Get(":id/documents/:fileId", controller.downloadDocument)
	})
}

// @Summary Employee directory
// @Tags Employees
// @Description List all employees with manager info populated
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	resp, err := employeehandler.Instance.GetList()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create an employee
// @Tags Employees
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Success 201 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Export the directory as xlsx
// @Tags Employees
// @Success 200 {file} binary
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees/export [get]
func (c *employeeApiController) export(ctx *fiber.Ctx) error {
	buf, err := employeehandler.Instance.Export()
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="employees.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Export the directory as pdf
// @Tags Employees
// @Success 200 {file} binary
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees/export/pdf [get]
func (c *employeeApiController) exportPDF(ctx *fiber.Ctx) error {
	buf, err := employeehandler.Instance.ExportPDF()
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="employees.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Employee card
// @Tags Employees
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees/{id} [get]
func (c *employeeApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := employeehandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update an employee
// @Tags Employees
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeehandler.Instance.Update(ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete an employee
// @Tags Employees
// @Description Rejected while the employee still manages others; removes the linked login
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	if err := employeehandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("employee deleted"))
}

// @Summary Upload an employee document
// @Tags Employees
// @Accept mpfd
// @Param file formData file true "document"
// @Success 201 {object} apimodels.Response{data=employeeapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees/{id}/documents [post]
func (c *employeeApiController) uploadDocument(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("could not read the file"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("could not read the file"))
	}
	user := middleware.GetCurrentUser(ctx)
	uploadedBy := ""
	if user != nil {
		uploadedBy = user.ID
	}
	resp, err := filestorage.Instance.UploadDocument(ctx.UserContext(), ctx.Params("id"), uploadedBy,
		fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), body)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Employee documents
// @Tags Employees
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.DocumentView}
// @Failure 500 {object} apimodels.Response
// @router /api/employees/{id}/documents [get]
func (c *employeeApiController) listDocuments(ctx *fiber.Ctx) error {
	resp, err := filestorage.Instance.GetDocumentList(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download an employee document
// @Tags Employees
// @Success 200 {file} binary
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees/{id}/documents/{fileId} [get]
func (c *employeeApiController) downloadDocument(ctx *fiber.Ctx) error {
	doc, err := filestorage.Instance.GetDocument(ctx.UserContext(), ctx.Params("id"), ctx.Params("fileId"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	if doc.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, doc.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(doc.Body)
}
