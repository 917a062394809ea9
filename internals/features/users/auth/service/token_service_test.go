package service_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authModel "sekolahku_backend/internals/features/users/auth/model"
	"sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

const testJWTSecret = "rahasia-test-akses"

// fakeRefreshStore merekam panggilan supaya rotasi bisa diverifikasi.
type fakeRefreshStore struct {
	stored *authModel.RefreshTokenModel
	user   *userModel.UserModel

	findErr   error
	revokedID uuid.UUID
	saved     int
}

func (f *fakeRefreshStore) FindActiveRefreshToken(userID uuid.UUID) (*authModel.RefreshTokenModel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.stored, nil
}

func (f *fakeRefreshStore) RevokeRefreshToken(id uuid.UUID) error {
	f.revokedID = id
	return nil
}

func (f *fakeRefreshStore) FindUserByID(userID uuid.UUID) (*userModel.UserModel, error) {
	return f.user, nil
}

func (f *fakeRefreshStore) SaveRefreshToken(c *fiber.Ctx, u *userModel.UserModel, refreshToken string, now time.Time) error {
	f.saved++
	return nil
}

func newRefreshApp(store service.RefreshStore) *fiber.App {
	app := fiber.New()
	app.Get("/refresh-token", func(c *fiber.Ctx) error {
		return service.RefreshSession(store, c)
	})
	return app
}

// Access token lama (sudah expired) yang signature-nya masih sah.
func expiredAccessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"typ": "access",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": time.Now().Add(-48 * time.Hour).Unix(),
		"exp": time.Now().Add(-24 * time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return tok
}

func doRefresh(t *testing.T, app *fiber.App, bearer string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/refresh-token", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRefreshTanpaRefreshTokenTersimpan401TanpaMint(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("JWT_REFRESH_SECRET", "rahasia-test-refresh")

	userID := uuid.New()
	store := &fakeRefreshStore{findErr: gorm.ErrRecordNotFound}
	app := newRefreshApp(store)

	resp := doRefresh(t, app, expiredAccessToken(t, userID))
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Tidak ada token baru yang diterbitkan atau disimpan
	require.Equal(t, 0, store.saved)
	require.Equal(t, uuid.Nil, store.revokedID)
	for _, ck := range resp.Cookies() {
		require.NotEqual(t, "token", ck.Name)
	}
}

func TestRefreshTokenRusak401(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("JWT_REFRESH_SECRET", "rahasia-test-refresh")

	store := &fakeRefreshStore{}
	app := newRefreshApp(store)

	resp := doRefresh(t, app, "bukan.jwt.valid")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 0, store.saved)
}

func TestRefreshSuksesRotasiDanTulisUlangSesi(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("JWT_REFRESH_SECRET", "rahasia-test-refresh")

	userID := uuid.New()
	schoolID := uuid.New()
	storedID := uuid.New()
	store := &fakeRefreshStore{
		stored: &authModel.RefreshTokenModel{
			ID:        storedID,
			UserID:    userID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		},
		user: &userModel.UserModel{
			ID:       userID,
			FullName: "Budi Santoso",
			Email:    "budi@example.com",
			Role:     150,
			SchoolID: &schoolID,
			IsActive: true,
		},
	}
	app := newRefreshApp(store)

	oldToken := expiredAccessToken(t, userID)
	resp := doRefresh(t, app, oldToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Rotasi: token lama di-revoke, refresh baru disimpan sekali
	require.Equal(t, storedID, store.revokedID)
	require.Equal(t, 1, store.saved)

	// Pasangan baru ikut di response
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `"accessToken"`)
	require.Contains(t, string(body), "Budi Santoso")
	require.NotContains(t, string(body), oldToken)

	// Cookie token + userData ditulis ulang lewat session store
	var gotToken, gotUserData bool
	for _, ck := range resp.Cookies() {
		switch ck.Name {
		case "token":
			gotToken = ck.Value != "" && ck.Value != oldToken
		case "userData":
			gotUserData = ck.Value != ""
		}
	}
	require.True(t, gotToken, "cookie token harus berisi access token baru")
	require.True(t, gotUserData, "cookie userData harus ditulis ulang")
}

func TestRefreshUserNonaktif403(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("JWT_REFRESH_SECRET", "rahasia-test-refresh")

	userID := uuid.New()
	store := &fakeRefreshStore{
		stored: &authModel.RefreshTokenModel{ID: uuid.New(), UserID: userID},
		user:   &userModel.UserModel{ID: userID, IsActive: false},
	}
	app := newRefreshApp(store)

	resp := doRefresh(t, app, expiredAccessToken(t, userID))
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.Equal(t, 0, store.saved)
}
