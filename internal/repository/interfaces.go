package repository

import (
	"context"
	"errors"
	"time"

	"github.com/publishine/publishine-backend/internal/models"
)

var (
	// ErrDuplicateEmail maps the store's unique constraint on users.email.
	ErrDuplicateEmail = errors.New("email already in use")
	ErrNotFound       = errors.New("not found")
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (models.User, error)
	SetOTP(ctx context.Context, id, code string, expires time.Time) error
}
