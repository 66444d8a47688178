package models

import "time"

// Roles a marketplace account can hold.
const (
	RolePublisher = "Publisher"
	RoleDeveloper = "Developer"
	RoleTester    = "Tester"
)

func ValidRole(r string) bool {
	switch r {
	case RolePublisher, RoleDeveloper, RoleTester:
		return true
	}
	return false
}

type User struct {
	ID             string     `json:"id"`
	Name           string     `json:"name,omitempty"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           string     `json:"role,omitempty"`
	IsVerified     bool       `json:"isVerified"`
	IsApproved     bool       `json:"isApproved"`
	Balance        float64    `json:"balance"`
	OTP            string     `json:"-"`
	OTPExpires     *time.Time `json:"-"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	LinkedIn       string     `json:"linkedIn,omitempty"`
	ContactNumber  string     `json:"contactNumber,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ProfilePatch carries the fields written during role elevation.
type ProfilePatch struct {
	Role           string
	Name           string
	Bio            string
	LinkedIn       string
	ContactNumber  string
	ProfilePicture string
}
