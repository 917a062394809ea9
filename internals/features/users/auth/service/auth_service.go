package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	authRepo "sekolahku_backend/internals/features/users/auth/repository"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

/* ==========================
   Small Helpers
========================== */

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   JWT claims builders
========================== */

func buildRefreshClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": user.ID.String(),
		"id":  user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"full_name": user.FullName,
		"role":      user.Role,
		"role_name": user.RoleName(),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if user.SchoolID != nil {
		claims["school_id"] = user.SchoolID.String()
	}
	if user.CompanyID != nil {
		claims["company_id"] = user.CompanyID.String()
	}
	return claims
}

/* ==========================
   ISSUE TOKENS
========================== */

func signTokenPair(user *userModel.UserModel, now time.Time) (access string, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	return access, refresh, nil
}

// Insert refresh_token dengan latency lebih rendah.
// Aman untuk token (konsekuensi: kemungkinan kecil lose jika crash tepat sesudah commit).
func createRefreshTokenFast(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`SET LOCAL synchronous_commit = OFF`).Error; err != nil {
			log.Printf("[WARN] set synchronous_commit=OFF failed: %v", err)
		}
		return authRepo.CreateRefreshToken(tx, rt)
	})
}

func storeRefreshToken(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel, refreshToken string, now time.Time) error {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}
	ua, ip := c.Get("User-Agent"), c.IP()
	return createRefreshTokenFast(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"rememberMe"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Minimal user
	userLight, err := authRepo.FindUserByEmailLight(db, input.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}
	if !userLight.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(userLight.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}

	// Full user
	userFull, err := authRepo.FindUserByID(db, userLight.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	now := nowUTC()
	accessToken, refreshToken, err := signTokenPair(userFull, now)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := storeRefreshToken(db, c, userFull, refreshToken, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	userData := userFull.ToUserData()

	// Cookies hanya kalau rememberMe diminta; token & userData selalu
	// ditulis SEKALIGUS lewat session store.
	if input.RememberMe {
		if err := helperAuth.SetSession(c, accessToken, userData); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
		}
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"userData":     userData,
	})
}

/* ==========================
   CHECK LOGIN (whoami)
========================== */

// CheckLogin menukar bearer token dengan profil user. Pesan error untuk
// token tidak valid HARUS persis "Invalid token": itu sinyal yang
// dicocokkan client untuk memicu refresh.
func CheckLogin(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token tidak ada")
	}

	// Token yang sudah di-blacklist (logout) ikut ditolak
	var blacklisted authModel.TokenBlacklistModel
	if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&blacklisted).Error; err == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	sub, _ := claims["id"].(string)
	userFull, err := findUserByIDString(db, sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}
	if !userFull.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"userData": userFull.ToUserData(),
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Ambil raw access token (header/cookie)
	accessToken := helper.GetRawAccessToken(c)

	// Hitung TTL blacklist
	ttl := resolveBlacklistTTL(accessToken)

	// Blacklist access token (idempotent)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, ttl); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
		// Revoke refresh token user ybs kalau token masih bisa dibaca
		if userID, err := subjectFromToken(accessToken); err == nil {
			if err := authRepo.RevokeAllRefreshTokensForUser(db, userID); err != nil {
				log.Printf("[WARN] Failed to revoke refresh tokens: %v", err)
			}
		}
	} else {
		log.Println("[INFO] Logout tanpa access token; lanjut clear cookies (idempotent)")
	}

	// Hapus cookie token + userData sekaligus
	helperAuth.ClearSession(c)

	return helper.JsonOK(c, "Logout successful", nil)
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret := strings.TrimSpace(configs.JWTSecret)
	if jwtSecret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}
