package routes

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// MsPageRoutes menyajikan shell halaman dashboard di subtree /ms plus
// halaman pendukung guard (/login, /404, /error). Aplikasi frontend
// di-hydrate di sisi client; server hanya merender shell setelah lolos
// guard cookie.
func MsPageRoutes(app *fiber.App, guardHandler fiber.Handler) {
	app.Get("/login", guardHandler, func(c *fiber.Ctx) error {
		return renderShell(c, "Masuk")
	})
	app.Get("/404", func(c *fiber.Ctx) error {
		return renderShell(c, "Halaman tidak ditemukan")
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return renderShell(c, "Terjadi kesalahan")
	})

	ms := app.Group("/ms", guardHandler)
	ms.Get("/*", func(c *fiber.Ctx) error {
		title := "Dashboard"
		if user, ok := helperAuth.ReadUserData(c); ok {
			title = "Dashboard - " + user.FullName
		}
		return renderShell(c, title)
	})
}

func renderShell(c *fiber.Ctx, title string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(`<!doctype html>
<html lang="id">
<head><meta charset="utf-8"><title>` + title + `</title></head>
<body><div id="root"></div><script src="/assets/app.js"></script></body>
</html>`)
}
