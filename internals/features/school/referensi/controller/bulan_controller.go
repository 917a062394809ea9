package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/referensi/dto"
	model "sekolahku_backend/internals/features/school/referensi/model"
	helper "sekolahku_backend/internals/helpers"
)

// Bulan adalah referensi global (tanpa tenant): list untuk semua user login,
// tulis hanya admin.
type BulanController struct {
	DB *gorm.DB
}

func NewBulanController(db *gorm.DB) *BulanController {
	return &BulanController{DB: db}
}

// POST /api/bulan
func (h *BulanController) Create(c *fiber.Ctx) error {
	var req dto.CreateBulanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Nomor bulan sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat bulan")
	}

	return helper.JsonCreated(c, "Bulan berhasil dibuat", dto.FromBulanModel(*m))
}

// GET /api/bulan: daftar lengkap urut nomor, tanpa paging (maks 12 baris)
func (h *BulanController) List(c *fiber.Ctx) error {
	var list []model.BulanModel
	if err := h.DB.Order("bulan_nomor ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromBulanModels(list))
}

// PUT /api/bulan/:id
func (h *BulanController) Update(c *fiber.Ctx) error {
	var row model.BulanModel
	if err := h.DB.Where("bulan_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateBulanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Nomor bulan sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan bulan")
	}

	return helper.JsonUpdated(c, "Bulan berhasil diperbarui", dto.FromBulanModel(row))
}

// DELETE /api/bulan/:id
func (h *BulanController) Delete(c *fiber.Ctx) error {
	res := h.DB.Where("bulan_id = ?", c.Params("id")).Delete(&model.BulanModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Bulan berhasil dihapus", fiber.Map{"bulan_id": c.Params("id")})
}
