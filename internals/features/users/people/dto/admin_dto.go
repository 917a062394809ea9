// internals/features/users/people/dto/admin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

// Akun pengurus sekolah (admin 150, bendahara 160, staff 170).
type CreateAdminUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     int    `json:"role"      validate:"required,oneof=150 160 170"`
}

type UpdateAdminUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	Role     *int    `json:"role"      validate:"omitempty,oneof=150 160 170"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r UpdateAdminUserRequest) ApplyTo(u *userModel.UserModel) {
	if r.FullName != nil {
		u.FullName = *r.FullName
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}

/* =============== RESPONSES =============== */

type AdminUserResponse struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      int        `json:"role"`
	RoleName  string     `json:"role_name"`
	SchoolID  *uuid.UUID `json:"school_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromUserModel(u userModel.UserModel) AdminUserResponse {
	return AdminUserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		RoleName:  u.RoleName(),
		SchoolID:  u.SchoolID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func FromUserModels(list []userModel.UserModel) []AdminUserResponse {
	out := make([]AdminUserResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromUserModel(it))
	}
	return out
}
