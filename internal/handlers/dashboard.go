package handlers

import "github.com/gofiber/fiber/v2"

type DashboardHandler struct {
	dashboard DashboardAPI
}

func NewDashboardHandler(dashboard DashboardAPI) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats returns the member's dashboard counters.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboard.Stats(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
