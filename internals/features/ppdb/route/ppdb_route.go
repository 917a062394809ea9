package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	controller "sekolahku_backend/internals/features/ppdb/controller"
	rateLimiter "sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// PPDBPublicRoutes: jalur pendaftaran tanpa login (dilewati semua gerbang
// auth), rate-limit lebih ketat dari global.
func PPDBPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewPPDBController(db)

	pub := app.Group("/api/ppdb", rateLimiter.PPDBRateLimiter())
	pub.Post("/register", ctl.Register)
	pub.Get("/status/:regno", ctl.Status)
}

// PPDBAdminRoutes: verifikasi & pengelolaan pendaftaran (staff ke atas,
// verify/reject admin saja). Router sudah dibungkus AuthMiddleware.
func PPDBAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPPDBController(db)

	g := api.Group("/ppdb", authMiddleware.OnlyRoles(
		constants.RoleErrorStaff("PPDB"),
		constants.StaffAndAbove...,
	))
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)

	adminGate := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("verifikasi PPDB"), constants.RoleAdmin)
	g.Post("/:id/verify", adminGate, ctl.Verify)
	g.Post("/:id/reject", adminGate, ctl.Reject)
}
