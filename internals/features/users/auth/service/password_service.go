package service

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	authRepo "sekolahku_backend/internals/features/users/auth/repository"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
// Ganti password akun yang sedang login. Semua refresh token dicabut
// supaya sesi lama di perangkat lain ikut mati.
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Password baru minimal 8 karakter")
	}

	var user userModel.UserModel
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if err := authHelper.CheckPasswordHash(user.Password, input.OldPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	// Matikan sesi lain
	if err := authRepo.RevokeAllRefreshTokensForUser(db, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke sessions")
	}

	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}
