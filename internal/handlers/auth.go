package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/stabiliq/internal/services"
)

const otpSentMessage = "OTP sent successfully to your email"

// AuthHandler exposes passwordless sign up and login.
type AuthHandler struct {
	auth AuthAPI
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth AuthAPI) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type sendOTPRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
	Name  string `json:"name"`
	Plan  string `json:"plan"`
}

type loginRequest struct {
	Email string `json:"email"`
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// SendOTP mails a sign up code.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil || !validEmail(req.Email) || strings.TrimSpace(req.Phone) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and phone are required")
	}

	if err := h.auth.SendOTP(c.UserContext(), req.Email, strings.TrimSpace(req.Phone)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": otpSentMessage})
}

// VerifyOTP checks the code, creating the member on first sign in.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required")
	}
	req.Phone = strings.TrimSpace(req.Phone)
	req.Name = strings.TrimSpace(req.Name)
	req.OTP = strings.TrimSpace(req.OTP)
	if !validEmail(req.Email) || req.Phone == "" || req.OTP == "" || req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required")
	}

	result, err := h.auth.VerifyOTP(c.UserContext(), services.VerifyOTPInput{
		Email: req.Email,
		Phone: req.Phone,
		OTP:   req.OTP,
		Name:  req.Name,
		Plan:  strings.TrimSpace(req.Plan),
	})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Login mails a login code to an existing member.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil || !validEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "Email is required")
	}

	if err := h.auth.Login(c.UserContext(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": otpSentMessage})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.auth.Me(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": profile})
}

// Logout is stateless; clients drop the token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "message": "Logged out successfully"})
}
