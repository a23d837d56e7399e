package dto

import (
	"time"

	"github.com/SscSPs/remittance_app/internal/core/domain"
)

// LoginRequest accepts either an email address or an E.164 phone number.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Profile   ProfileResponse `json:"profile"`
}

// RegisterRequest is the customer self-signup payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required,e164"`
}

// CreateUserRequest is used by operators to open an account on a customer's
// behalf. Without an email one is derived from the phone number.
type CreateUserRequest struct {
	Email      string      `json:"email" binding:"omitempty,email"`
	Phone      string      `json:"phone" binding:"required,e164"`
	FullName   string      `json:"fullName" binding:"required"`
	ClientCode string      `json:"clientCode"`
	Role       domain.Role `json:"role" binding:"omitempty,oneof=user admin"`
	Password   string      `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	FullName   *string      `json:"fullName"`
	ClientCode *string      `json:"clientCode"`
	Role       *domain.Role `json:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateRoleRequest promotes or demotes a profile.
type UpdateRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=user admin"`
}

// ChangePasswordRequest is used by the signed-in user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ProfileResponse defines the data returned for a profile.
type ProfileResponse struct {
	UserID     string        `json:"userID"`
	Email      string        `json:"email"`
	FullName   string        `json:"fullName"`
	Phone      string        `json:"phone"`
	ClientCode string        `json:"clientCode,omitempty"`
	Role       domain.Role   `json:"role"`
	HomeRegion domain.Region `json:"homeRegion"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []ProfileResponse `json:"users"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:     p.UserID,
		Email:      p.Email,
		FullName:   p.FullName,
		Phone:      p.Phone,
		ClientCode: p.ClientCode,
		Role:       p.Role,
		HomeRegion: p.HomeRegion(),
	}
}

// ToListUsersResponse converts a slice of domain.Profile to ListUsersResponse DTO.
func ToListUsersResponse(profiles []domain.Profile) ListUsersResponse {
	out := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		out[i] = ToProfileResponse(&profiles[i])
	}
	return ListUsersResponse{Users: out}
}
