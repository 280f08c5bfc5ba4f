package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	pool        services.AnalysisPool
	fetcher     services.JobDescriptionFetcher
	loader      services.DocumentLoader
	maxFileSize int64
}

// loader may be nil when object storage is not configured.
func NewAnalyzeHandler(
	pool services.AnalysisPool,
	fetcher services.JobDescriptionFetcher,
	loader services.DocumentLoader,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		pool:        pool,
		fetcher:     fetcher,
		loader:      loader,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze with either a multipart form or JSON body.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var (
		resume models.RawDocument
		req    models.AnalyzeRequest
	)

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return badRequest(c, "failed to parse multipart form")
		}

		if values, ok := form.Value["resume_text"]; ok && len(values) > 0 {
			req.ResumeText = &values[0]
		}
		req.JobDescription = formValue(form, "job_description")
		req.JobDescriptionURL = formValue(form, "job_description_url")
		if topN := formValue(form, "top_n"); topN != "" {
			n, err := strconv.Atoi(topN)
			if err != nil {
				return badRequest(c, "top_n must be an integer")
			}
			req.TopN = n
		}

		if files := form.File["resume"]; len(files) > 0 {
			doc, status, err := h.readUpload(files[0])
			if err != nil {
				return c.Status(status).JSON(models.ErrorResponse{
					Error: err.Error(),
					Code:  status,
				})
			}
			resume = doc
		}
	} else if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	// An empty resume_text is still a resume; it scores 0.
	if resume.IsZero() {
		switch {
		case req.ResumeURL != "":
			if !services.IsObjectURI(req.ResumeURL) {
				return badRequest(c, "resume_url must be an s3://bucket/key URI")
			}
			if h.loader == nil {
				return badRequest(c, "resume_url is not supported: object storage is not configured")
			}
			doc, err := h.loader.Load(c.UserContext(), req.ResumeURL)
			if err != nil {
				return h.respondError(c, err, fiber.StatusBadGateway)
			}
			resume = doc
		case req.ResumeText != nil:
			resume = models.PlainText(*req.ResumeText)
		default:
			return badRequest(c, "resume, resume_text or resume_url is required")
		}
	}

	jobDescription := req.JobDescription
	if strings.TrimSpace(jobDescription) == "" && req.JobDescriptionURL != "" {
		text, err := h.fetcher.Fetch(c.UserContext(), req.JobDescriptionURL)
		if err != nil {
			return h.respondError(c, err, fiber.StatusBadGateway)
		}
		jobDescription = text
	}

	if strings.TrimSpace(jobDescription) == "" {
		return badRequest(c, "job_description or job_description_url is required")
	}

	result, err := h.pool.Submit(c.UserContext(), services.AnalysisRequest{
		Resume:         resume,
		JobDescription: jobDescription,
		TopN:           req.TopN,
	})
	if err != nil {
		return h.respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(models.NewAnalyzeResponse(result))
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: msg,
		Code:  fiber.StatusBadRequest,
	})
}

func (h *AnalyzeHandler) readUpload(file *multipart.FileHeader) (models.RawDocument, int, error) {
	if file.Size > h.maxFileSize {
		return models.RawDocument{}, fiber.StatusBadRequest, fmt.Errorf("resume file too large. Max size: %d bytes", h.maxFileSize)
	}

	if err := services.ValidateExtension(file.Filename); err != nil {
		return models.RawDocument{}, fiber.StatusBadRequest, err
	}

	src, err := file.Open()
	if err != nil {
		return models.RawDocument{}, fiber.StatusInternalServerError, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.RawDocument{}, fiber.StatusInternalServerError, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return models.DetectDocument(file.Filename, data), fiber.StatusOK, nil
}

// respondError maps pipeline errors to status codes; anything unrecognised
// gets fallback.
func (h *AnalyzeHandler) respondError(c *fiber.Ctx, err error, fallback int) error {
	var extractionErr *services.ExtractionError

	switch {
	case errors.As(err, &extractionErr):
		log.Printf("⚠️  %v\n", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Error: "could not read resume",
			Code:  fiber.StatusUnprocessableEntity,
		})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
			Code:  fiber.StatusBadRequest,
		})
	case errors.Is(err, services.ErrPoolStopped):
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
			Error: "server is shutting down",
			Code:  fiber.StatusServiceUnavailable,
		})
	}

	log.Printf("❌ Analyze request failed: %v\n", err)
	return c.Status(fallback).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  fallback,
	})
}
