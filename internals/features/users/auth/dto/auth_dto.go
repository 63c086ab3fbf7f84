package dto

import (
	"github.com/google/uuid"

	"ktx_backend/internals/features/users/auth/model"
)

// ================== REQUEST ==================

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
	// optional role hint from the clients; checked against the account role
	Role string `json:"role,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ================== RESPONSE ==================

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UserRole      string     `json:"user_role"`
	UserIsActive  bool       `json:"user_is_active"`
	UserStudentID *uuid.UUID `json:"user_student_id,omitempty"`
	UserManagerID *uuid.UUID `json:"user_manager_id,omitempty"`
}

type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// ================ CONVERSION =================

func ToUserResponse(m *model.User) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserStudentID: m.UserStudentID,
		UserManagerID: m.UserManagerID,
	}
}
