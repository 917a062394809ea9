// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/users/auth/controller"
	rateLimiter "sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// AuthRoutes mount endpoint sesi. Path relatif terhadap base URL client
// (/api): /login, /checklogin, /refresh-token, /logout.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	base := app.Group("/api")

	// 🔓 Public
	base.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// Bearer-based (tanpa auth middleware: endpoint ini menilai token
	// sendiri supaya pesan "Invalid token" konsisten untuk client)
	base.Get("/checklogin", authController.CheckLogin)
	base.Get("/refresh-token", authController.RefreshToken)
	base.Post("/logout", authController.Logout)

	// 🔒 Perlu login penuh
	base.Post("/change-password", authMiddleware.AuthMiddleware(db), authController.ChangePassword)
}
