package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/stabiliq/internal/services"
)

const callbackContextKey = "phonepeCallback"

type callbackBody struct {
	Response string `json:"response"`
}

// PhonePeCallbackMiddleware checks the X-VERIFY signature of a gateway
// callback and stores the decoded payload for the handler.
func PhonePeCallbackMiddleware(saltKey, saltKeyIndex string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body callbackBody
		if err := json.Unmarshal(c.Body(), &body); err != nil || strings.TrimSpace(body.Response) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "invalid callback body")
		}

		signature := strings.TrimSpace(c.Get("X-VERIFY"))
		if signature == "" || !services.VerifyChecksum(signature, body.Response, "", saltKey, saltKeyIndex) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid callback signature")
		}

		payload, err := services.DecodeCallback(body.Response)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		c.Locals(callbackContextKey, payload)
		return c.Next()
	}
}

// GetCallbackPayload returns the verified callback stored by PhonePeCallbackMiddleware.
func GetCallbackPayload(c *fiber.Ctx) (*services.CallbackPayload, bool) {
	payload, ok := c.Locals(callbackContextKey).(*services.CallbackPayload)
	return payload, ok && payload != nil
}
