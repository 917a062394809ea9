package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/users/people/dto"
	model "sekolahku_backend/internals/features/users/people/model"
	helper "sekolahku_backend/internals/helpers"
)

type SiswaController struct {
	DB *gorm.DB
}

func NewSiswaController(db *gorm.DB) *SiswaController {
	return &SiswaController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/siswa
func (h *SiswaController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateSiswaRequest
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
			return fiber.NewError(fiber.StatusConflict, "NIS sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data siswa")
	}

	return helper.JsonCreated(c, "Data siswa berhasil dibuat", dto.FromSiswaModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/siswa?kelas_id=&jurusan_id=&status=&q=&page=&per_page=
func (h *SiswaController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.SiswaModel{}).
		Where("siswa_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("kelas_id")); v != "" {
		base = base.Where("siswa_kelas_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("jurusan_id")); v != "" {
		base = base.Where("siswa_jurusan_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		base = base.Where("siswa_status = ?", v)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(siswa_nama ILIKE ? OR siswa_nis ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SiswaModel
	if err := base.
		Order("siswa_nama ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromSiswaModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/siswa/:id
func (h *SiswaController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.SiswaModel
	if err := h.DB.
		Where("siswa_id = ? AND siswa_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromSiswaModel(row))
}

/* ======================== ME ======================== */
// GET /api/siswa/me: profil siswa milik akun yang login
func (h *SiswaController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.SiswaModel
	if err := h.DB.
		Where("siswa_user_id = ?", userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Profil siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromSiswaModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/siswa/:id
func (h *SiswaController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.SiswaModel
	if err := h.DB.
		Where("siswa_id = ? AND siswa_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateSiswaRequest
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
			return fiber.NewError(fiber.StatusConflict, "NIS sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data siswa")
	}

	return helper.JsonUpdated(c, "Data siswa berhasil diperbarui", dto.FromSiswaModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/siswa/:id (soft delete)
func (h *SiswaController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("siswa_id = ? AND siswa_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.SiswaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Data siswa berhasil dihapus", fiber.Map{"siswa_id": c.Params("id")})
}
