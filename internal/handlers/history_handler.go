package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hr-assistant/internal/repositories"
)

const defaultHistoryLimit = 5

type HistoryHandler struct {
	evalRepo      repositories.EvaluationRepository
	sentimentRepo repositories.SentimentRepository
}

func NewHistoryHandler(
	evalRepo repositories.EvaluationRepository,
	sentimentRepo repositories.SentimentRepository,
) *HistoryHandler {
	return &HistoryHandler{
		evalRepo:      evalRepo,
		sentimentRepo: sentimentRepo,
	}
}

// HandleListEvaluations handles GET /evaluations.
func (h *HistoryHandler) HandleListEvaluations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit < 1 || limit > 100 {
		limit = defaultHistoryLimit
	}

	evaluations, err := h.evalRepo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load previous evaluations",
		})
	}

	items := make([]fiber.Map, 0, len(evaluations))
	for _, eval := range evaluations {
		items = append(items, fiber.Map{
			"id":                  eval.ID.String(),
			"overall_match_score": eval.OverallMatchScore,
			"recommendation":      eval.Recommendation,
			"result":              eval.Result(),
			"created_at":          eval.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"evaluations": items,
	})
}

// HandleListSentiments handles GET /sentiments.
func (h *HistoryHandler) HandleListSentiments(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit < 1 || limit > 100 {
		limit = defaultHistoryLimit
	}

	sentiments, err := h.sentimentRepo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load previous sentiment analyses",
		})
	}

	items := make([]fiber.Map, 0, len(sentiments))
	for _, sentiment := range sentiments {
		items = append(items, fiber.Map{
			"id":              sentiment.ID.String(),
			"sentiment_score": sentiment.SentimentScore,
			"attrition_risk":  sentiment.AttritionRisk,
			"result":          sentiment.Result(),
			"created_at":      sentiment.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"sentiments": items,
	})
}
