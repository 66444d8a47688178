package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/publishine/publishine-backend/internal/auth"
	"github.com/publishine/publishine-backend/internal/mail"
	"github.com/publishine/publishine-backend/internal/metrics"
	"github.com/publishine/publishine-backend/internal/models"
	"github.com/publishine/publishine-backend/internal/otp"
	repo "github.com/publishine/publishine-backend/internal/repository"
)

// UserService drives the account lifecycle: registration with OTP issuance,
// login, and role elevation.
type UserService struct {
	users  repo.Users
	mailer mail.Mailer
	tokens *auth.TokenManager
}

func NewUserService(users repo.Users, mailer mail.Mailer, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, mailer: mailer, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a pending-verification account and emails it an OTP.
// The row is persisted before the send; a failed send surfaces
// ErrEmailDelivery and leaves the row in place.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	email := strings.TrimSpace(in.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailInUse
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", err
	}
	code, err := otp.Generate()
	if err != nil {
		return "", err
	}
	expires := otp.ExpiryFrom(time.Now())

	u := models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		OTP:          code,
		OTPExpires:   &expires,
	}
	created, err := s.users.Create(ctx, u)
	if err != nil {
		// unique index backstop for concurrent registrations
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return "", ErrEmailInUse
		}
		return "", err
	}

	if err := s.mailer.SendOTP(ctx, created.Email, code); err != nil {
		metrics.OTPEmailsFailed.Inc()
		return "", fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	metrics.OTPEmailsSent.Inc()
	metrics.RegistrationsTotal.Inc()
	return created.ID, nil
}

type LoginResult struct {
	Token string
	User  models.User
}

func (s *UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return LoginResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return LoginResult{}, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return LoginResult{Token: token, User: u}, nil
}

type ProfileInput struct {
	Name           string
	Bio            string
	LinkedIn       string
	ContactNumber  string
	ProfilePicture string
}

func (s *UserService) BecomeDeveloper(ctx context.Context, userID string, in ProfileInput) (models.User, error) {
	return s.elevate(ctx, userID, models.RoleDeveloper, in)
}

func (s *UserService) BecomePublisher(ctx context.Context, userID string, in ProfileInput) (models.User, error) {
	return s.elevate(ctx, userID, models.RolePublisher, in)
}

func (s *UserService) elevate(ctx context.Context, userID, role string, in ProfileInput) (models.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Bio) == "" || strings.TrimSpace(in.ContactNumber) == "" {
		return models.User{}, ErrMissingFields
	}
	patch := models.ProfilePatch{
		Role:           role,
		Name:           strings.TrimSpace(in.Name),
		Bio:            in.Bio,
		LinkedIn:       in.LinkedIn,
		ContactNumber:  in.ContactNumber,
		ProfilePicture: in.ProfilePicture,
	}
	u, err := s.users.UpdateProfile(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	metrics.RoleElevationsTotal.WithLabelValues(role).Inc()
	return u, nil
}

// ResendOTP issues a fresh code to an unverified account, overwriting the
// previous one.
func (s *UserService) ResendOTP(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if u.IsVerified {
		return ErrAlreadyVerified
	}
	code, err := otp.Generate()
	if err != nil {
		return err
	}
	if err := s.users.SetOTP(ctx, u.ID, code, otp.ExpiryFrom(time.Now())); err != nil {
		return err
	}
	if err := s.mailer.SendOTP(ctx, u.Email, code); err != nil {
		metrics.OTPEmailsFailed.Inc()
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	metrics.OTPEmailsSent.Inc()
	return nil
}

// VerifyOTP is pending a confirmed flow for flipping isVerified.
// TODO: wire the code check once the verification endpoint is specified.
func (s *UserService) VerifyOTP(ctx context.Context, email, code string) error {
	return ErrNotImplemented
}
