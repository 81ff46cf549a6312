package controller

import (
	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/serverutils"
	"archetype-quiz-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuizController interface {
	RegisterRoutes(router fiber.Router)
}

type quizController struct {
	quizService      service.IQuizService
	telemetryService service.ITelemetryService
}

func NewQuizController(quizService service.IQuizService, telemetryService service.ITelemetryService) IQuizController {
	return &quizController{
		quizService:      quizService,
		telemetryService: telemetryService,
	}
}

func (qc *quizController) RegisterRoutes(router fiber.Router) {
	quiz := router.Group("/quiz/v1")
	quiz.Post("/start", qc.Start)
	quiz.Post("/answer", qc.Answer)
	quiz.Get("/session/:id", qc.GetSession)
	quiz.Get("/stats", qc.GetStats)
}

// Start opens a new conversation session and returns the first question.
func (qc *quizController) Start(ctx *fiber.Ctx) error {
	response, err := qc.quizService.Start(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session started", response))
}

// Answer feeds one user message into the session's state machine.
func (qc *quizController) Answer(ctx *fiber.Ctx) error {
	var request dto.AnswerQuizRequest
	if err := ctx.BodyParser(&request); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&request); err != nil {
		return err
	}

	response, err := qc.quizService.Answer(ctx.Context(), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Answer processed", response))
}

func (qc *quizController) GetSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")
	if sessionID == "" {
		return serverutils.BadRequest("Session id is required")
	}

	response, err := qc.quizService.GetSession(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session retrieved", response))
}

func (qc *quizController) GetStats(ctx *fiber.Ctx) error {
	response, err := qc.telemetryService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Stats retrieved", response))
}
