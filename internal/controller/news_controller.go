package controller

import (
	"bizhub-be/internal/pkg/serverutils"
	"bizhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INewsController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type newsController struct {
	newsService service.INewsService
}

func NewNewsController(newsService service.INewsService) INewsController {
	return &newsController{
		newsService: newsService,
	}
}

func (c *newsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/news/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
}

func (c *newsController) List(ctx *fiber.Ctx) error {
	principal := serverutils.GetPrincipal(ctx)

	res, err := c.newsService.ListForCompany(ctx.Context(), principal)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list company news", res))
}
