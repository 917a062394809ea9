package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	controller "sekolahku_backend/internals/features/payment/spp/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// SppRoutes mendaftarkan batch tagihan SPP (bendahara/admin) dan tagihan
// milik siswa. Router sudah dibungkus AuthMiddleware.
func SppRoutes(api fiber.Router, db *gorm.DB) {
	admin := controller.NewSppBillingController(db)
	siswa := controller.NewSppBillingSiswaController(db)

	spp := api.Group("/spp")

	// Siswa: tagihan sendiri
	spp.Get("/my-bills", siswa.ListMine)

	// Bendahara/admin: kelola batch
	financeGate := authMiddleware.OnlyRoles(
		constants.RoleErrorNonSiswa("tagihan SPP"),
		constants.FinanceRoles...,
	)
	b := spp.Group("/billings", financeGate)
	b.Post("/", admin.Create)
	b.Get("/", admin.List)
	b.Get("/:id", admin.GetByID)
	b.Get("/:id/items", admin.Items)
	b.Put("/:id", admin.Update)
	b.Delete("/:id", admin.Delete)
}
