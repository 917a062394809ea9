package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	controller "sekolahku_backend/internals/features/users/navigation/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// NavigationRoutes mendaftarkan endpoint navigasi & permission map.
//
// GET /api/rolePermissions dipanggil middleware edge SEBELUM user punya
// bearer token, jadi endpoint ini publik (hanya butuh school_id).
func NavigationRoutes(api fiber.Router, db *gorm.DB) {
	rp := controller.NewRolePermissionController(db)

	// Publik (dikonsumsi guard/edge)
	api.Get("/rolePermissions", rp.GetPermissionMap)

	// Butuh login
	authed := api.Group("", authMiddleware.AuthMiddleware(db))
	authed.Get("/navigation", controller.GetNavigation)
	authed.Get("/home-route", controller.GetHomeRoute)

	// Kelola permission map: admin saja
	admin := authed.Group("/rolePermissions",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola role permission"), constants.RoleAdmin),
	)
	admin.Post("/", rp.Create)
	admin.Get("/list", rp.List)
	admin.Put("/:id", rp.Update)
	admin.Delete("/:id", rp.Delete)
}
