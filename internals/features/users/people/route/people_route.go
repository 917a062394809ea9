package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	controller "sekolahku_backend/internals/features/users/people/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// PeopleRoutes mendaftarkan CRUD akun pengurus, siswa, dan anggota.
// Router yang diterima sudah dibungkus AuthMiddleware.
func PeopleRoutes(api fiber.Router, db *gorm.DB) {
	adminCtl := controller.NewAdminController(db)
	siswaCtl := controller.NewSiswaController(db)
	anggotaCtl := controller.NewAnggotaController(db)

	adminGate := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("mengelola akun pengurus"),
		constants.RoleAdmin,
	)
	staffGate := authMiddleware.OnlyRoles(
		constants.RoleErrorStaff("mengelola data siswa & anggota"),
		constants.StaffAndAbove...,
	)

	// ===== Akun pengurus (admin saja) =====
	a := api.Group("/admin", adminGate)
	a.Post("/", adminCtl.Create)
	a.Get("/", adminCtl.List)
	a.Get("/:id", adminCtl.GetByID)
	a.Put("/:id", adminCtl.Update)
	a.Delete("/:id", adminCtl.Delete)

	// ===== Siswa =====
	s := api.Group("/siswa")
	s.Get("/me", siswaCtl.Me) // semua role; profil milik sendiri
	s.Post("/", staffGate, siswaCtl.Create)
	s.Get("/", staffGate, siswaCtl.List)
	s.Get("/:id", staffGate, siswaCtl.GetByID)
	s.Put("/:id", staffGate, siswaCtl.Update)
	s.Delete("/:id", staffGate, siswaCtl.Delete)

	// ===== Anggota =====
	g := api.Group("/anggota", staffGate)
	g.Post("/", anggotaCtl.Create)
	g.Get("/", anggotaCtl.List)
	g.Get("/:id", anggotaCtl.GetByID)
	g.Put("/:id", anggotaCtl.Update)
	g.Delete("/:id", anggotaCtl.Delete)
}
