// internals/middlewares/guard/guard.go
package guard

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ==========================
   Permission source
========================== */

// PermissionSource mengambil peta path → daftar role yang boleh akses,
// per sekolah. Dipanggil PER REQUEST, tanpa cache (peta bisa berubah
// kapan saja dari halaman setting).
type PermissionSource func(ctx context.Context, schoolID uuid.UUID) (map[string][]int, error)

/* ==========================
   Config
========================== */

type Config struct {
	// Prefix subtree yang dilindungi (seluruh halaman dashboard).
	ProtectedPrefix string
	LoginPath       string
	HomePath        string
	ErrorPath       string
	NotFoundPath    string

	Permissions PermissionSource
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

/* ==========================
   Guard
========================== */

// New membuat gate pre-render untuk halaman dashboard. Ini gate UX,
// BUKAN batas keamanan: API tetap menegakkan bearer auth + role check
// sendiri di middleware auth.
func New(cfg Config) fiber.Handler {
	prefix := defaultString(cfg.ProtectedPrefix, "/ms")
	loginPath := defaultString(cfg.LoginPath, "/login")
	homePath := defaultString(cfg.HomePath, "/")
	errorPath := defaultString(cfg.ErrorPath, "/error")
	notFoundPath := defaultString(cfg.NotFoundPath, "/404")

	return func(c *fiber.Ctx) error {
		path := c.Path()

		user, authed := helperAuth.ReadUserData(c)

		// 1) Halaman login: yang sudah login dilempar ke home
		if path == loginPath {
			if authed && user.Role != 0 {
				return c.Redirect(homePath, fiber.StatusFound)
			}
			return c.Next()
		}

		// Hanya subtree yang dilindungi; batas segmen supaya
		// "/mskelas" tidak ikut dianggap "/ms".
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return c.Next()
		}

		// 2) Tanpa role → login, bawa tujuan semula
		if !authed || user.Role == 0 {
			return c.Redirect(loginPath+"?returnUrl="+url.QueryEscape(path), fiber.StatusFound)
		}

		// 3) & 4) Ambil permission map per request. Tanpa school_id →
		// peta kosong (fail closed: [] tidak pernah memuat role).
		permMap := map[string][]int{}
		if user.SchoolID != nil && *user.SchoolID != uuid.Nil {
			m, err := cfg.Permissions(c.UserContext(), *user.SchoolID)
			if err != nil {
				log.Printf("[ERROR] guard: gagal ambil permission map: %v", err)
				return c.Redirect(errorPath, fiber.StatusFound)
			}
			permMap = m
		}

		// 5) Role harus terdaftar untuk path ini
		allowed := permMap[path]
		if !containsRole(allowed, user.Role) {
			return c.Redirect(notFoundPath, fiber.StatusFound)
		}

		// 6) Lolos
		return c.Next()
	}
}

func containsRole(roles []int, role int) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
