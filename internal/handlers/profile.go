package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/stabiliq/internal/services"
)

// MaxResumeSize bounds resume uploads.
const MaxResumeSize = 10 << 20

// ProfileHandler manages resume upload and profile analysis endpoints.
type ProfileHandler struct {
	profile ProfileAPI
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(profile ProfileAPI) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// UploadResume validates the uploaded file and returns where it would live.
func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
	}
	if !services.AllowedResumeType(file.Header.Get(fiber.HeaderContentType)) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file type. Only PDF and DOC files are allowed.")
	}
	if file.Size > MaxResumeSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "File too large. Maximum size is 10MB.")
	}

	return c.JSON(h.profile.UploadResult(identity.UserID, file.Filename))
}

type analyzeRequest struct {
	ResumeURL   string `json:"resumeUrl"`
	LinkedInURL string `json:"linkedinUrl"`
}

func (h *ProfileHandler) Analyze(c *fiber.Ctx) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	result, err := h.profile.Analyze(req.ResumeURL, req.LinkedInURL)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
