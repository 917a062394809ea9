package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RolePermissionModel struct {
	RolePermissionID uuid.UUID `gorm:"column:role_permission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_permission_id"`

	RolePermissionSchoolID uuid.UUID `gorm:"column:role_permission_school_id;type:uuid;not null;index" json:"role_permission_school_id"`

	// Path halaman yang dilindungi, mis. "/ms/admin"
	RolePermissionPath string `gorm:"column:role_permission_path;type:text;not null" json:"role_permission_path"`

	// Daftar kode role yang boleh akses (JSONB)
	RolePermissionRoles datatypes.JSONSlice[int] `gorm:"column:role_permission_roles;type:jsonb;not null" json:"role_permission_roles"`

	RolePermissionCreatedAt time.Time      `gorm:"column:role_permission_created_at;autoCreateTime" json:"role_permission_created_at"`
	RolePermissionUpdatedAt *time.Time     `gorm:"column:role_permission_updated_at;autoUpdateTime" json:"role_permission_updated_at,omitempty"`
	RolePermissionDeletedAt gorm.DeletedAt `gorm:"column:role_permission_deleted_at;index" json:"role_permission_deleted_at,omitempty"`
}

func (RolePermissionModel) TableName() string { return "role_permissions" }
