package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/publishine/publishine-backend/internal/api/httpx"
	"github.com/publishine/publishine-backend/internal/middleware"
	"github.com/publishine/publishine-backend/internal/models"
	"github.com/publishine/publishine-backend/internal/services"
)

type UsersHandler struct {
	svc      *services.UserService
	validate *validator.Validate
}

func NewUsersHandler(svc *services.UserService) *UsersHandler {
	return &UsersHandler{svc: svc, validate: validator.New()}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=Publisher Developer Tester"`
}

func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	id, err := h.svc.Register(r.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailInUse):
			httpx.WriteError(w, http.StatusBadRequest, "Email already in use")
		case errors.Is(err, services.ErrEmailDelivery):
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to send OTP email. Please try again later.")
		default:
			slog.Error("register", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, "User registered successfully. OTP sent to email", id)
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid Credentials")
			return
		}
		slog.Error("login", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{
		Success: true,
		Message: "Login Success",
		Token:   res.Token,
		User: loginUser{
			ID:         res.User.ID,
			Name:       res.User.Name,
			Role:       res.User.Role,
			IsVerified: res.User.IsVerified,
		},
	})
}

type profileReq struct {
	Name           string `json:"name"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
	LinkedIn       string `json:"linkedIn"`
	ContactNumber  string `json:"contactNumber"`
}

type profileUser struct {
	Name          string `json:"name"`
	Role          string `json:"role"`
	Bio           string `json:"bio"`
	LinkedIn      string `json:"linkedIn"`
	ContactNumber string `json:"contactNumber"`
}

func (h *UsersHandler) BecomeDeveloper(w http.ResponseWriter, r *http.Request) {
	h.elevate(w, r, models.RoleDeveloper)
}

func (h *UsersHandler) BecomePublisher(w http.ResponseWriter, r *http.Request) {
	h.elevate(w, r, models.RolePublisher)
}

func (h *UsersHandler) elevate(w http.ResponseWriter, r *http.Request, role string) {
	caller, ok := middleware.UserFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req profileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := services.ProfileInput{
		Name:           req.Name,
		Bio:            req.Bio,
		LinkedIn:       req.LinkedIn,
		ContactNumber:  req.ContactNumber,
		ProfilePicture: req.ProfilePicture,
	}
	var (
		u   models.User
		err error
	)
	if role == models.RolePublisher {
		u, err = h.svc.BecomePublisher(r.Context(), caller.ID, in)
	} else {
		u, err = h.svc.BecomeDeveloper(r.Context(), caller.ID, in)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Please provide all required details to become a "+role)
		case errors.Is(err, services.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "User not found.")
		default:
			slog.Error("role elevation", "role", role, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "An error occurred while updating your role. Please try again later.")
		}
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "You have successfully become a "+role+".", profileUser{
		Name:          u.Name,
		Role:          u.Role,
		Bio:           u.Bio,
		LinkedIn:      u.LinkedIn,
		ContactNumber: u.ContactNumber,
	})
}

type resendOTPReq struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *UsersHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req resendOTPReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := h.svc.ResendOTP(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, services.ErrAlreadyVerified):
			httpx.WriteError(w, http.StatusBadRequest, "Email already verified")
		case errors.Is(err, services.ErrEmailDelivery):
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to send OTP email. Please try again later.")
		default:
			slog.Error("resend otp", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{Success: true, Message: "OTP sent to email"})
}

func (h *UsersHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, http.StatusNotImplemented, "Not implemented")
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			return field + " is required"
		}
		return field + " is invalid"
	}
	return "Invalid request body"
}
