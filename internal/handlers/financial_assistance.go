package handlers

import "github.com/gofiber/fiber/v2"

// FinancialAssistanceHandler exposes the assistance eligibility gate.
type FinancialAssistanceHandler struct {
	assistance AssistanceAPI
}

func NewFinancialAssistanceHandler(assistance AssistanceAPI) *FinancialAssistanceHandler {
	return &FinancialAssistanceHandler{assistance: assistance}
}

func (h *FinancialAssistanceHandler) Status(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	status, err := h.assistance.Status(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(status)
}

// Request files an assistance request once the waiting period is over.
func (h *FinancialAssistanceHandler) Request(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	request, err := h.assistance.Submit(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(request)
}

func (h *FinancialAssistanceHandler) RequiredDocuments(c *fiber.Ctx) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}
	return c.JSON(h.assistance.RequiredDocuments())
}
