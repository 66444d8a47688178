package services

import "errors"

var (
	// ErrEmailInUse indicates a registration against an existing email.
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidCredentials indicates login failure. Unknown email and wrong
	// password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingFields indicates an incomplete role-elevation request.
	ErrMissingFields = errors.New("missing required profile fields")
	ErrUserNotFound  = errors.New("user not found")
	// ErrEmailDelivery indicates the OTP email could not be handed to the
	// transport. The user row is already persisted at that point.
	ErrEmailDelivery   = errors.New("failed to send otp email")
	ErrAlreadyVerified = errors.New("email already verified")
	ErrNotImplemented  = errors.New("not implemented")
)
