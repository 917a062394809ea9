// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "sekolahku_backend/internals/features/users/auth/model"
	authRepo "sekolahku_backend/internals/features/users/auth/repository"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ==========================
   Refresh store
========================== */

// RefreshStore abstraksi akses data jalur refresh. Produksi memakai
// gorm (NewGormRefreshStore); test bisa memasang fake.
type RefreshStore interface {
	FindActiveRefreshToken(userID uuid.UUID) (*authModel.RefreshTokenModel, error)
	RevokeRefreshToken(id uuid.UUID) error
	FindUserByID(userID uuid.UUID) (*userModel.UserModel, error)
	SaveRefreshToken(c *fiber.Ctx, user *userModel.UserModel, refreshToken string, now time.Time) error
}

type gormRefreshStore struct{ db *gorm.DB }

func NewGormRefreshStore(db *gorm.DB) RefreshStore { return gormRefreshStore{db: db} }

func (s gormRefreshStore) FindActiveRefreshToken(userID uuid.UUID) (*authModel.RefreshTokenModel, error) {
	return authRepo.FindActiveRefreshTokenForUser(s.db, userID)
}

func (s gormRefreshStore) RevokeRefreshToken(id uuid.UUID) error {
	return authRepo.RevokeRefreshTokenByID(s.db, id)
}

func (s gormRefreshStore) FindUserByID(userID uuid.UUID) (*userModel.UserModel, error) {
	return authRepo.FindUserByID(s.db, userID)
}

func (s gormRefreshStore) SaveRefreshToken(c *fiber.Ctx, user *userModel.UserModel, refreshToken string, now time.Time) error {
	return storeRefreshToken(s.db, c, user, refreshToken, now)
}

// ========================== REFRESH TOKEN ==========================
// GET /api/refresh-token
//
// Kontrak wire: bearer yang dikirim adalah access token LAMA (boleh sudah
// expired), BUKAN refresh token: refresh token tidak pernah ikut request
// ini. Server memverifikasi signature (abaikan exp), lalu mensyaratkan
// refresh token tersimpan yang masih aktif untuk user tersebut sebelum
// menerbitkan pasangan baru (rotate).
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	return RefreshSession(NewGormRefreshStore(db), c)
}

func RefreshSession(store RefreshStore, c *fiber.Ctx) error {
	oldToken := helper.GetRawAccessToken(c)
	if oldToken == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token tidak ada")
	}

	userID, err := subjectFromToken(oldToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	// Refresh token tersimpan wajib ada & masih aktif
	stored, err := store.FindActiveRefreshToken(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	// Ambil user + guard aktif
	userFull, err := store.FindUserByID(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !userFull.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama, terbitkan pasangan baru
	if err := store.RevokeRefreshToken(stored.ID); err != nil {
		log.Printf("[refresh] revoke old token failed: %v", err)
	}

	now := nowUTC()
	newAccess, newRefresh, err := signTokenPair(userFull, now)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := store.SaveRefreshToken(c, userFull, newRefresh, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan refresh baru")
	}

	userData := userFull.ToUserData()

	// Sesi berhasil diperbaiki → tulis ulang token + userData sekaligus
	if err := helperAuth.SetSession(c, newAccess, userData); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"accessToken": newAccess,
		"userData":    userData,
	})
}

/* ==========================
   Token parsing helpers
========================== */

// subjectFromToken verifikasi signature access token & ambil user id,
// TANPA validasi exp (dipakai jalur refresh & logout).
func subjectFromToken(tokenString string) (uuid.UUID, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return uuid.Nil, err
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}); err != nil {
		return uuid.Nil, err
	}

	sub, _ := claims["id"].(string)
	return uuid.Parse(strings.TrimSpace(sub))
}

func findUserByIDString(db *gorm.DB, id string) (*userModel.UserModel, error) {
	userID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	return authRepo.FindUserByID(db, userID)
}
