package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	controller "sekolahku_backend/internals/features/school/referensi/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// ReferensiRoutes mendaftarkan CRUD data referensi sekolah.
// Router yang diterima sudah dibungkus AuthMiddleware; write digerbangi admin.
func ReferensiRoutes(api fiber.Router, db *gorm.DB) {
	kelas := controller.NewKelasController(db)
	jurusan := controller.NewJurusanController(db)
	bulan := controller.NewBulanController(db)

	adminGate := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("mengelola data referensi"),
		constants.RoleAdmin,
	)

	// ===== Kelas =====
	k := api.Group("/kelas")
	k.Get("/", kelas.List)
	k.Get("/:id", kelas.GetByID)
	k.Post("/", adminGate, kelas.Create)
	k.Put("/:id", adminGate, kelas.Update)
	k.Delete("/:id", adminGate, kelas.Delete)

	// ===== Jurusan =====
	j := api.Group("/jurusan")
	j.Get("/", jurusan.List)
	j.Get("/:id", jurusan.GetByID)
	j.Post("/", adminGate, jurusan.Create)
	j.Put("/:id", adminGate, jurusan.Update)
	j.Delete("/:id", adminGate, jurusan.Delete)

	// ===== Bulan (global) =====
	b := api.Group("/bulan")
	b.Get("/", bulan.List)
	b.Post("/", adminGate, bulan.Create)
	b.Put("/:id", adminGate, bulan.Update)
	b.Delete("/:id", adminGate, bulan.Delete)
}
