package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// APIHandler serves the root and status check endpoints.
type APIHandler struct {
	status StatusCheckAPI
}

func NewAPIHandler(status StatusCheckAPI) *APIHandler {
	return &APIHandler{status: status}
}

func (h *APIHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "STABILIQ API - Member Dashboard"})
}

// Health reports liveness.
func (h *APIHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type createStatusRequest struct {
	ClientName string `json:"client_name"`
}

func (h *APIHandler) CreateStatus(c *fiber.Ctx) error {
	var req createStatusRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.ClientName) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "client_name is required")
	}

	check, err := h.status.Create(c.UserContext(), req.ClientName)
	if err != nil {
		return err
	}
	return c.JSON(check)
}

func (h *APIHandler) ListStatus(c *fiber.Ctx) error {
	checks, err := h.status.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(checks)
}
