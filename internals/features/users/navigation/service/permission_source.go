// internals/features/users/navigation/service/permission_source.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/users/navigation/dto"
	model "sekolahku_backend/internals/features/users/navigation/model"
	"sekolahku_backend/internals/middlewares/guard"
)

// FetchPermissionMap ambil peta path → roles untuk satu sekolah.
func FetchPermissionMap(ctx context.Context, db *gorm.DB, schoolID uuid.UUID) (map[string][]int, error) {
	var rows []model.RolePermissionModel
	if err := db.WithContext(ctx).
		Where("role_permission_school_id = ?", schoolID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return dto.ToPermissionMap(rows), nil
}

// NewPermissionSource source DB-backed untuk guard middleware.
// Dipanggil per request, tanpa cache.
func NewPermissionSource(db *gorm.DB) guard.PermissionSource {
	return func(ctx context.Context, schoolID uuid.UUID) (map[string][]int, error) {
		return FetchPermissionMap(ctx, db, schoolID)
	}
}
