package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hr-assistant/internal/models"
	"hr-assistant/internal/repositories"
	"hr-assistant/internal/services"
)

type EvaluateHandler struct {
	docRepo   repositories.DocumentRepository
	evaluator services.EvaluatorService
}

func NewEvaluateHandler(
	docRepo repositories.DocumentRepository,
	evaluator services.EvaluatorService,
) *EvaluateHandler {
	return &EvaluateHandler{
		docRepo:   docRepo,
		evaluator: evaluator,
	}
}

// HandleEvaluate handles POST /evaluate. The call is synchronous: one
// outbound model call, then the validated result in the response body.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	resumeText := req.ResumeText
	if resumeText == "" {
		if req.ResumeDocumentID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "resume_text or resume_document_id is required",
			})
		}

		docID, err := uuid.Parse(req.ResumeDocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid resume_document_id format",
			})
		}

		doc, err := h.docRepo.FindByID(docID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume document not found",
			})
		}
		resumeText = doc.ExtractedText
	}

	result, err := h.evaluator.EvaluateResume(c.Context(), resumeText, req.JobDescription)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	// Local keyword comparison runs alongside the model evaluation
	resumeSkills := services.ExtractSkills(resumeText)
	jobSkills := services.ExtractSkills(req.JobDescription)

	return c.JSON(fiber.Map{
		"evaluation": result,
		"skills": fiber.Map{
			"resume_skills": resumeSkills,
			"job_skills":    jobSkills,
			"comparison":    services.CompareSkills(resumeSkills, jobSkills),
		},
	})
}

// serviceErrorResponse maps service failures to HTTP statuses. Model-side
// failures (call failed, contract violated) are upstream errors, not ours.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	var genErr *services.GenerationError
	var jsonErr *services.MalformedJSONError
	var fieldErr *services.MissingFieldError
	var typeErr *services.TypeMismatchError

	switch {
	case errors.As(err, &genErr),
		errors.As(err, &jsonErr),
		errors.As(err, &fieldErr),
		errors.As(err, &typeErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
