package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hr-assistant/internal/models"
	"hr-assistant/internal/services"
)

type SentimentHandler struct {
	sentimentService services.SentimentService
}

func NewSentimentHandler(sentimentService services.SentimentService) *SentimentHandler {
	return &SentimentHandler{
		sentimentService: sentimentService,
	}
}

// HandleAnalyze handles POST /sentiment.
func (h *SentimentHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.SentimentRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.FeedbackText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "feedback_text is required",
		})
	}

	result, err := h.sentimentService.AnalyzeFeedback(c.Context(), req.FeedbackText)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"sentiment": result,
	})
}
