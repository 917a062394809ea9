package guard_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/middlewares/guard"
)

func newTestApp(src guard.PermissionSource) *fiber.App {
	app := fiber.New()
	app.Use(guard.New(guard.Config{Permissions: src}))
	app.All("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func userDataCookie(t *testing.T, user helperAuth.UserData) *http.Cookie {
	t.Helper()
	raw, err := json.Marshal(user)
	require.NoError(t, err)
	return &http.Cookie{Name: "userData", Value: url.QueryEscape(string(raw))}
}

func doGet(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func staticSource(m map[string][]int) guard.PermissionSource {
	return func(ctx context.Context, schoolID uuid.UUID) (map[string][]int, error) {
		return m, nil
	}
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	app := newTestApp(staticSource(map[string][]int{}))

	resp := doGet(t, app, "/ms/siswa")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/login?returnUrl=%2Fms%2Fsiswa", resp.Header.Get("Location"))
}

func TestGuardMalformedCookieTreatedAsAnonymous(t *testing.T) {
	app := newTestApp(staticSource(map[string][]int{}))

	resp := doGet(t, app, "/ms/siswa", &http.Cookie{Name: "userData", Value: "not-json"})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Location"), "/login?returnUrl=")
}

func TestGuardForbiddenRoleRedirectsTo404(t *testing.T) {
	schoolID := uuid.New()
	app := newTestApp(staticSource(map[string][]int{
		"/ms/admin": {constants.RoleAdmin},
	}))

	ck := userDataCookie(t, helperAuth.UserData{
		ID:       uuid.New(),
		FullName: "Budi",
		Role:     constants.RoleSiswa,
		RoleName: "Siswa",
		SchoolID: &schoolID,
	})
	resp := doGet(t, app, "/ms/admin", ck)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/404", resp.Header.Get("Location"))
}

func TestGuardAllowedRolePasses(t *testing.T) {
	schoolID := uuid.New()
	app := newTestApp(staticSource(map[string][]int{
		"/ms/admin": {constants.RoleAdmin, constants.RoleStaff},
	}))

	ck := userDataCookie(t, helperAuth.UserData{
		ID:       uuid.New(),
		FullName: "Ani",
		Role:     constants.RoleAdmin,
		RoleName: "Admin",
		SchoolID: &schoolID,
	})
	resp := doGet(t, app, "/ms/admin", ck)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuardPermissionFetchErrorRedirectsToError(t *testing.T) {
	schoolID := uuid.New()
	app := newTestApp(func(ctx context.Context, sid uuid.UUID) (map[string][]int, error) {
		return nil, errors.New("db down")
	})

	ck := userDataCookie(t, helperAuth.UserData{
		ID:       uuid.New(),
		Role:     constants.RoleAdmin,
		RoleName: "Admin",
		SchoolID: &schoolID,
	})
	for _, path := range []string{"/ms/admin", "/ms/siswa", "/ms/dashboard"} {
		resp := doGet(t, app, path, ck)
		require.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		require.Equal(t, "/error", resp.Header.Get("Location"), path)
	}
}

func TestGuardNoSchoolIDFailsClosed(t *testing.T) {
	// tanpa school_id peta kosong, [] tidak pernah memuat role.
	// Catatan: handler jalan di goroutine lain, jadi rekam flag dan
	// assert setelah app.Test kembali.
	var sourceCalled bool
	app := newTestApp(func(ctx context.Context, sid uuid.UUID) (map[string][]int, error) {
		sourceCalled = true
		return nil, nil
	})

	ck := userDataCookie(t, helperAuth.UserData{
		ID:       uuid.New(),
		Role:     constants.RoleAdmin,
		RoleName: "Admin",
	})
	resp := doGet(t, app, "/ms/admin", ck)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/404", resp.Header.Get("Location"))
	require.False(t, sourceCalled, "source tidak boleh dipanggil tanpa school_id")
}

func TestGuardLoginPathAuthenticatedRedirectsHome(t *testing.T) {
	schoolID := uuid.New()
	app := newTestApp(staticSource(map[string][]int{}))

	ck := userDataCookie(t, helperAuth.UserData{
		ID:       uuid.New(),
		Role:     constants.RoleAdmin,
		RoleName: "Admin",
		SchoolID: &schoolID,
	})
	resp := doGet(t, app, "/login", ck)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestGuardLoginPathAnonymousPasses(t *testing.T) {
	app := newTestApp(staticSource(map[string][]int{}))

	resp := doGet(t, app, "/login")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuardIgnoresUnprotectedPaths(t *testing.T) {
	var sourceCalled bool
	app := newTestApp(func(ctx context.Context, sid uuid.UUID) (map[string][]int, error) {
		sourceCalled = true
		return nil, nil
	})

	// "/mskelas" bukan bagian subtree "/ms": batas segmen harus dihormati
	for _, path := range []string{"/api/ppdb/register", "/mskelas", "/msiswa"} {
		resp := doGet(t, app, path)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
	require.False(t, sourceCalled, "source tidak boleh dipanggil untuk path publik")
}

func TestGuardPrefixBoundary(t *testing.T) {
	app := newTestApp(staticSource(map[string][]int{}))

	// Root subtree sendiri tetap dilindungi
	resp := doGet(t, app, "/ms")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Location"), "/login?returnUrl=")

	// Path tetangga dengan awalan sama lolos tanpa guard
	resp = doGet(t, app, "/mskelas")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
