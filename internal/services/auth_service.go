package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/stabiliq/internal/models"
	"github.com/example/stabiliq/internal/repository"
	"github.com/example/stabiliq/internal/utils"
)

// UserProfile is the public view of a member.
type UserProfile struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	Phone          string      `json:"phone"`
	Plan           models.Plan `json:"plan,omitempty"`
	EnrollmentDate *time.Time  `json:"enrollmentDate"`
	IsActive       bool        `json:"isActive"`
}

func NewUserProfile(u *models.User) UserProfile {
	p := UserProfile{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     u.Name,
		Phone:    u.Phone,
		Plan:     u.Plan,
		IsActive: u.IsActive,
	}
	if u.EnrollmentDate != nil {
		t := u.EnrollmentDate.UTC()
		p.EnrollmentDate = &t
	}
	return p
}

// NormalizeEmail lowercases and trims an address so lookups are stable.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	OTPTTL    time.Duration
}

// AuthService implements passwordless sign up and login with mailed OTPs.
type AuthService struct {
	users  UserStore
	otps   OTPStore
	mailer Mailer
	cfg    AuthConfig
	log    *zap.Logger

	now     func() time.Time
	newCode func() (string, error)
}

func NewAuthService(users UserStore, otps OTPStore, mailer Mailer, cfg AuthConfig, log *zap.Logger) *AuthService {
	return &AuthService{
		users:   users,
		otps:    otps,
		mailer:  mailer,
		cfg:     cfg,
		log:     log.Named("auth"),
		now:     time.Now,
		newCode: generateVerificationCode,
	}
}

// VerifyOTPInput carries the sign-up form submitted with the code.
type VerifyOTPInput struct {
	Email string
	Phone string
	OTP   string
	Name  string
	Plan  string
}

// AuthResult is returned after a successful code check.
type AuthResult struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// SendOTP mails a verification code for sign up.
func (s *AuthService) SendOTP(ctx context.Context, email, phone string) error {
	return s.issueCode(ctx, NormalizeEmail(email), "Your Stabiliq verification code", "Your verification code is")
}

// Login mails a login code to an existing member.
func (s *AuthService) Login(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotRegistered
		}
		return err
	}
	return s.issueCode(ctx, email, "Your Stabiliq login code", "Your login code is")
}

func (s *AuthService) issueCode(ctx context.Context, email, subject, lead string) error {
	code, err := s.newCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	hash, err := utils.HashSecret(code)
	if err != nil {
		return fmt.Errorf("hash otp: %w", err)
	}
	if err := s.otps.Create(ctx, email, hash, s.now().Add(s.cfg.OTPTTL)); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	minutes := int(s.cfg.OTPTTL / time.Minute)
	err = s.mailer.Send(ctx, EmailMessage{
		To:      email,
		Subject: subject,
		Text:    fmt.Sprintf("Your OTP is %s. It is valid for %d minutes.", code, minutes),
		HTML:    fmt.Sprintf("<p>%s <strong>%s</strong>.</p><p>It is valid for %d minutes.</p>", lead, code, minutes),
	})
	if err != nil {
		s.log.Error("failed to deliver otp", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

// VerifyOTP consumes the code and returns a token, creating the member on
// first verification.
func (s *AuthService) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*AuthResult, error) {
	email := NormalizeEmail(in.Email)
	plan := models.Plan(strings.TrimSpace(in.Plan))
	if plan == "" {
		plan = models.PlanBasic
	}
	if !plan.Valid() {
		return nil, invalid("Invalid plan")
	}

	code := strings.TrimSpace(in.OTP)
	ok, err := s.otps.ConsumeValid(ctx, email, s.now(), func(codeHash string) bool {
		return utils.CheckSecret(codeHash, code)
	})
	if err != nil {
		return nil, fmt.Errorf("check otp: %w", err)
	}
	if !ok {
		return nil, ErrInvalidOTP
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		user, err = s.register(ctx, email, in, plan)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	token, err := utils.GenerateToken(s.cfg.JWTSecret, utils.Identity{Email: user.Email, UserID: user.ID.String()}, s.cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{Success: true, Token: token, User: NewUserProfile(user)}, nil
}

func (s *AuthService) register(ctx context.Context, email string, in VerifyOTPInput, plan models.Plan) (*models.User, error) {
	enrolled := s.now().UTC()
	user := &models.User{
		Email:          email,
		Name:           strings.TrimSpace(in.Name),
		Phone:          strings.TrimSpace(in.Phone),
		Plan:           plan,
		EnrollmentDate: &enrolled,
		IsActive:       true,
	}
	err := s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateKey) {
		// a concurrent verification created the member first
		return s.users.FindByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("member registered", zap.String("user_id", user.ID.String()), zap.String("plan", string(plan)))
	return user, nil
}

// Me returns the profile behind an access token.
func (s *AuthService) Me(ctx context.Context, identity utils.Identity) (*UserProfile, error) {
	user, err := lookupUser(ctx, s.users, identity)
	if err != nil {
		return nil, err
	}
	p := NewUserProfile(user)
	return &p, nil
}

func lookupUser(ctx context.Context, users UserStore, identity utils.Identity) (*models.User, error) {
	user, err := users.FindByEmail(ctx, NormalizeEmail(identity.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func generateVerificationCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
