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

type KelasController struct {
	DB *gorm.DB
}

func NewKelasController(db *gorm.DB) *KelasController {
	return &KelasController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/kelas
func (h *KelasController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromKelasModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/kelas?jurusan_id=&tingkat=&q=&page=&per_page=
func (h *KelasController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.KelasModel{}).
		Where("kelas_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("jurusan_id")); v != "" {
		base = base.Where("kelas_jurusan_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("tingkat")); v != "" {
		base = base.Where("kelas_tingkat = ?", v)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("kelas_nama ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.KelasModel
	if err := base.
		Order("kelas_tingkat ASC, kelas_nama ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromKelasModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/kelas/:id
func (h *KelasController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.KelasModel
	if err := h.DB.
		Where("kelas_id = ? AND kelas_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromKelasModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/kelas/:id
func (h *KelasController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.KelasModel
	if err := h.DB.
		Where("kelas_id = ? AND kelas_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateKelasRequest
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
			return fiber.NewError(fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.FromKelasModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/kelas/:id (soft delete)
func (h *KelasController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("kelas_id = ? AND kelas_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.KelasModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"kelas_id": c.Params("id")})
}
