package helper_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

func sampleUser() helperAuth.UserData {
	schoolID := uuid.New()
	return helperAuth.UserData{
		ID:       uuid.New(),
		FullName: "Budi Santoso",
		Role:     150,
		RoleName: "Admin",
		SchoolID: &schoolID,
	}
}

func cookiesFromResponse(t *testing.T, resp *http.Response) map[string]*http.Cookie {
	t.Helper()
	out := map[string]*http.Cookie{}
	for _, ck := range resp.Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestSetSessionMenulisKeduaCookie(t *testing.T) {
	app := fiber.New()
	user := sampleUser()
	app.Get("/login", func(c *fiber.Ctx) error {
		require.NoError(t, helperAuth.SetSession(c, "access-token-123", user))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	cookies := cookiesFromResponse(t, resp)
	require.Contains(t, cookies, helperAuth.CookieToken)
	require.Contains(t, cookies, helperAuth.CookieUserData)

	token := cookies[helperAuth.CookieToken]
	require.Equal(t, "access-token-123", token.Value)
	require.True(t, token.HttpOnly)

	// userData dibaca client, bukan HTTPOnly, isinya JSON yang di-escape
	ud := cookies[helperAuth.CookieUserData]
	require.False(t, ud.HttpOnly)
	raw, err := url.QueryUnescape(ud.Value)
	require.NoError(t, err)
	require.Contains(t, raw, `"full_name":"Budi Santoso"`)
	require.Contains(t, raw, `"role":150`)
}

func TestReadUserDataRoundTrip(t *testing.T) {
	app := fiber.New()
	user := sampleUser()

	app.Get("/set", func(c *fiber.Ctx) error {
		require.NoError(t, helperAuth.SetSession(c, "tok", user))
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/read", func(c *fiber.Ctx) error {
		got, ok := helperAuth.ReadUserData(c)
		require.True(t, ok)
		require.Equal(t, user.ID, got.ID)
		require.Equal(t, user.FullName, got.FullName)
		require.Equal(t, user.Role, got.Role)
		require.Equal(t, *user.SchoolID, *got.SchoolID)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	ud := cookiesFromResponse(t, resp)[helperAuth.CookieUserData]
	require.NotNil(t, ud)

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: helperAuth.CookieUserData, Value: ud.Value})
	resp2, err := app.Test(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, fiber.StatusOK, resp2.StatusCode)
}

func TestReadUserDataCookieRusak(t *testing.T) {
	app := fiber.New()
	app.Get("/read", func(c *fiber.Ctx) error {
		_, ok := helperAuth.ReadUserData(c)
		require.False(t, ok)
		return c.SendStatus(fiber.StatusOK)
	})

	for _, val := range []string{"", "bukan-json", "%7Brusak"} {
		req := httptest.NewRequest(http.MethodGet, "/read", nil)
		if val != "" {
			req.AddCookie(&http.Cookie{Name: helperAuth.CookieUserData, Value: val})
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
	}
}

func TestClearSessionMenghapusKeduaCookie(t *testing.T) {
	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		helperAuth.ClearSession(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	cookies := cookiesFromResponse(t, resp)
	for _, name := range []string{helperAuth.CookieToken, helperAuth.CookieUserData} {
		ck, ok := cookies[name]
		require.True(t, ok, "cookie %s harus ikut di-clear", name)
		require.Empty(t, strings.TrimSpace(ck.Value))
		require.True(t, ck.MaxAge < 0 || ck.Expires.Before(time.Now()),
			"cookie %s harus kedaluwarsa", name)
	}
}
