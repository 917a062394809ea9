package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	controller "sekolahku_backend/internals/features/payment/setting/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// PaymentSettingRoutes: kredensial gateway per sekolah, admin saja.
func PaymentSettingRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentSettingController(db)

	g := api.Group("/payment-settings", authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("setting pembayaran"),
		constants.RoleAdmin,
	))
	g.Get("/", ctl.Get)
	g.Put("/", ctl.Upsert)
	g.Delete("/", ctl.Delete)
}
