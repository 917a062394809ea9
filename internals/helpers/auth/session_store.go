// file: internals/helpers/auth/session_store.go
package helper

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ==========================
   Session cookies
========================== */

const (
	CookieToken    = "token"
	CookieUserData = "userData"

	SessionTTL = 7 * 24 * time.Hour
)

// UserData adalah profil yang dibawa cookie userData & response auth.
type UserData struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Role      int        `json:"role"`
	RoleName  string     `json:"role_name"`
	SchoolID  *uuid.UUID `json:"school_id,omitempty"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	Logo      *string    `json:"logo,omitempty"`
}

// SetSession menulis cookie token + userData SEKALIGUS (expiry 7 hari).
// Semua jalur login/refresh wajib lewat sini supaya kedua cookie tidak
// pernah desinkron.
func SetSession(c *fiber.Ctx, accessToken string, user UserData) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(SessionTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     CookieUserData,
		Value:    url.QueryEscape(string(raw)),
		HTTPOnly: false, // dibaca guard & client
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(SessionTTL),
	})
	return nil
}

// ClearSession menghapus kedua cookie sekaligus. Idempotent.
func ClearSession(c *fiber.Ctx) {
	expired := time.Now().UTC().Add(-time.Hour)
	for _, name := range []string{CookieToken, CookieUserData} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: name == CookieToken,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

// ReadUserData men-decode cookie userData. Cookie rusak/kosong = tidak ada sesi.
func ReadUserData(c *fiber.Ctx) (*UserData, bool) {
	raw := strings.TrimSpace(c.Cookies(CookieUserData))
	if raw == "" {
		return nil, false
	}
	if unescaped, err := url.QueryUnescape(raw); err == nil {
		raw = unescaped
	}
	var u UserData
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, false
	}
	if u.ID == uuid.Nil && u.Role == 0 {
		return nil, false
	}
	return &u, true
}
