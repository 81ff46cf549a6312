package controller

import (
	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/serverutils"
	"archetype-quiz-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPodController interface {
	RegisterRoutes(router fiber.Router)
}

type podController struct {
	podService service.IPodService
}

func NewPodController(podService service.IPodService) IPodController {
	return &podController{podService: podService}
}

func (pc *podController) RegisterRoutes(router fiber.Router) {
	pod := router.Group("/pod/v1")
	pod.Post("/join", pc.Join)
}

// Join adds a completed session to its pod waitlist.
func (pc *podController) Join(ctx *fiber.Ctx) error {
	var request dto.JoinPodRequest
	if err := ctx.BodyParser(&request); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&request); err != nil {
		return err
	}

	response, err := pc.podService.Join(ctx.Context(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Pod joined", response))
}
