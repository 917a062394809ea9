// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Simpan raw JWT di Locals dari middleware (enak buat reuse)
const LocRawToken = "raw_token"

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) Locals("raw_token") yang diset middleware
// 3) cookie "token"
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(c.Cookies("token")); v != "" {
		return v
	}
	return ""
}

// SetRawAccessToken set raw token ke Locals dari middleware auth
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// GetUserIDFromLocals membaca user_id yang diset auth middleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	s, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user ID tidak ditemukan")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user ID tidak valid")
	}
	return id, nil
}

// GetRoleFromLocals membaca kode role numerik yang diset auth middleware.
func GetRoleFromLocals(c *fiber.Ctx) (int, error) {
	role, ok := c.Locals("role").(int)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role tidak ditemukan")
	}
	return role, nil
}

// GetSchoolIDFromLocals membaca school_id tenant dari claim (boleh kosong).
func GetSchoolIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	s, ok := c.Locals("school_id").(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - school ID tidak ditemukan")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - school ID tidak valid")
	}
	return id, nil
}
