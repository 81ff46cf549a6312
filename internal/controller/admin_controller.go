package controller

import (
	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/serverutils"
	"archetype-quiz-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(router fiber.Router, jwtMiddleware fiber.Handler)
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{adminService: adminService}
}

func (ac *adminController) RegisterRoutes(router fiber.Router, jwtMiddleware fiber.Handler) {
	admin := router.Group("/admin/v1")
	admin.Post("/login", ac.Login)

	protected := admin.Group("", jwtMiddleware)
	protected.Get("/stats", ac.GetStats)
	protected.Get("/logs", ac.GetLogs)
	protected.Get("/logs/:id", ac.GetLogDetail)
}

func (ac *adminController) Login(ctx *fiber.Ctx) error {
	var request dto.AdminLoginRequest
	if err := ctx.BodyParser(&request); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&request); err != nil {
		return err
	}

	response, err := ac.adminService.Login(ctx.Context(), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", response))
}

func (ac *adminController) GetStats(ctx *fiber.Ctx) error {
	response, err := ac.adminService.GetStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats retrieved", response))
}

func (ac *adminController) GetLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)
	level := ctx.Query("level")

	response, err := ac.adminService.GetLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", response))
}

func (ac *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	logID := ctx.Params("id")
	if logID == "" {
		return serverutils.BadRequest("Log id is required")
	}

	response, err := ac.adminService.GetLogDetail(ctx.Context(), logID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Log retrieved", response))
}
