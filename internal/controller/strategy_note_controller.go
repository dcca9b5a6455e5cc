package controller

import (
	"bizhub-be/internal/dto"
	"bizhub-be/internal/pkg/serverutils"
	"bizhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStrategyNoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type strategyNoteController struct {
	noteService service.IStrategyNoteService
}

func NewStrategyNoteController(noteService service.IStrategyNoteService) IStrategyNoteController {
	return &strategyNoteController{
		noteService: noteService,
	}
}

func (c *strategyNoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/strategy-note/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *strategyNoteController) Create(ctx *fiber.Ctx) error {
	principal := serverutils.GetPrincipal(ctx)

	var req dto.CreateStrategyNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), principal, &req)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create strategy note", res))
}

func (c *strategyNoteController) List(ctx *fiber.Ctx) error {
	principal := serverutils.GetPrincipal(ctx)

	res, err := c.noteService.List(ctx.Context(), principal)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list strategy notes", res))
}

func (c *strategyNoteController) Show(ctx *fiber.Ctx) error {
	principal := serverutils.GetPrincipal(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	res, err := c.noteService.Show(ctx.Context(), principal, id)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show strategy note", res))
}

func (c *strategyNoteController) Update(ctx *fiber.Ctx) error {
	principal := serverutils.GetPrincipal(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	var req dto.UpdateStrategyNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.Update(ctx.Context(), principal, &req); err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update strategy note", nil))
}

func (c *strategyNoteController) Delete(ctx *fiber.Ctx) error {
	principal := serverutils.GetPrincipal(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	if err := c.noteService.Delete(ctx.Context(), principal, id); err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete strategy note", nil))
}
