package controller

import (
	"bizhub-be/internal/dto"
	"bizhub-be/internal/entity"
	"bizhub-be/internal/pkg/serverutils"
	"bizhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogById(ctx *fiber.Ctx) error
	ListCompanies(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	UpdateUserStatus(ctx *fiber.Ctx) error
	TriggerNewsRun(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
	newsService  service.INewsService
}

func NewAdminController(adminService service.IAdminService, newsService service.INewsService) IAdminController {
	return &adminController{
		adminService: adminService,
		newsService:  newsService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole(entity.UserRoleSuperAdmin))
	h.Get("logs", c.GetLogs)
	h.Get("logs/:id", c.GetLogById)
	h.Get("companies", c.ListCompanies)
	h.Get("users", c.ListUsers)
	h.Patch("users/:id/status", c.UpdateUserStatus)
	h.Post("news/run", c.TriggerNewsRun)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.GetLogs(ctx.Context(), level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) GetLogById(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetLogById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get log", res))
}

func (c *adminController) ListCompanies(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListCompanies(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list companies", res))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	companyId := uuid.Nil
	if raw := ctx.Query("company_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid company id")
		}
		companyId = parsed
	}

	res, err := c.adminService.ListUsers(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *adminController) UpdateUserStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.UpdateUserStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.UpdateUserStatus(ctx.Context(), &req); err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update user status", nil))
}

func (c *adminController) TriggerNewsRun(ctx *fiber.Ctx) error {
	res, err := c.newsService.RunDaily(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run news refresh", res))
}
