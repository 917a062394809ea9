// internals/features/users/navigation/dto/role_permission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/users/navigation/model"
)

/* =============== REQUESTS =============== */

// Create
type CreateRolePermissionRequest struct {
	RolePermissionPath  string `json:"role_permission_path"  validate:"required,startswith=/"`
	RolePermissionRoles []int  `json:"role_permission_roles" validate:"required,min=1,dive,gt=0"`
}

func (r CreateRolePermissionRequest) ToModel(schoolID uuid.UUID) *m.RolePermissionModel {
	return &m.RolePermissionModel{
		RolePermissionSchoolID: schoolID,
		RolePermissionPath:     r.RolePermissionPath,
		RolePermissionRoles:    datatypes.NewJSONSlice(r.RolePermissionRoles),
	}
}

// Update (partial)
type UpdateRolePermissionRequest struct {
	RolePermissionPath  *string `json:"role_permission_path"  validate:"omitempty,startswith=/"`
	RolePermissionRoles *[]int  `json:"role_permission_roles" validate:"omitempty,min=1,dive,gt=0"`
}

// Terapkan perubahan ke model existing
func (r UpdateRolePermissionRequest) ApplyTo(mo *m.RolePermissionModel) {
	if r.RolePermissionPath != nil {
		mo.RolePermissionPath = *r.RolePermissionPath
	}
	if r.RolePermissionRoles != nil {
		mo.RolePermissionRoles = datatypes.NewJSONSlice(*r.RolePermissionRoles)
	}
}

/* =============== RESPONSES =============== */

type RolePermissionResponse struct {
	RolePermissionID        uuid.UUID  `json:"role_permission_id"`
	RolePermissionSchoolID  uuid.UUID  `json:"role_permission_school_id"`
	RolePermissionPath      string     `json:"role_permission_path"`
	RolePermissionRoles     []int      `json:"role_permission_roles"`
	RolePermissionCreatedAt time.Time  `json:"role_permission_created_at"`
	RolePermissionUpdatedAt *time.Time `json:"role_permission_updated_at,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.RolePermissionModel) RolePermissionResponse {
	return RolePermissionResponse{
		RolePermissionID:        x.RolePermissionID,
		RolePermissionSchoolID:  x.RolePermissionSchoolID,
		RolePermissionPath:      x.RolePermissionPath,
		RolePermissionRoles:     []int(x.RolePermissionRoles),
		RolePermissionCreatedAt: x.RolePermissionCreatedAt,
		RolePermissionUpdatedAt: x.RolePermissionUpdatedAt,
	}
}

func FromModels(list []m.RolePermissionModel) []RolePermissionResponse {
	out := make([]RolePermissionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

// ToPermissionMap bentuk respons /rolePermissions: { path: [role, ...] }
func ToPermissionMap(list []m.RolePermissionModel) map[string][]int {
	out := make(map[string][]int, len(list))
	for _, it := range list {
		out[it.RolePermissionPath] = []int(it.RolePermissionRoles)
	}
	return out
}
