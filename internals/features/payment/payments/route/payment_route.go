package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	controller "sekolahku_backend/internals/features/payment/payments/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// PaymentWebhookRoutes: endpoint notifikasi gateway, tanpa auth
// (AuthMiddleware melewatkan path ini; keamanan via signature key).
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)
	app.Post("/api/payments/notification", ctl.Notification)
}

// PaymentRoutes: transaksi pembayaran user & rekap pengurus keuangan.
// Router sudah dibungkus AuthMiddleware.
func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	pay := api.Group("/payments")
	pay.Post("/", ctl.Create)
	pay.Get("/my", ctl.ListMine)
	pay.Get("/", authMiddleware.OnlyRoles(
		constants.RoleErrorNonSiswa("rekap pembayaran"),
		constants.FinanceRoles...,
	), ctl.List)
	pay.Get("/:id", ctl.GetByID)
}
