package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func RegisterRoutes(app *fiber.App, analyzeHandler *AnalyzeHandler, extra ...fiber.Handler) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Copy so the caller's backing array is never written to.
	analyze := append(append([]fiber.Handler{}, extra...), analyzeHandler.HandleAnalyze)
	api.Post("/analyze", analyze...)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/health",
				"POST /api/v1/analyze",
			},
		})
	})
}

// ErrorHandler renders errors that escape a handler, such as unknown routes
// or oversized bodies, in the same shape as the analyze endpoint's errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	resp := models.ErrorResponse{
		Error: err.Error(),
		Code:  fiber.StatusInternalServerError,
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		resp.Code = fiberErr.Code
	}

	return c.Status(resp.Code).JSON(resp)
}
