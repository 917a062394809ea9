package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/referensi/dto"
	model "sekolahku_backend/internals/features/school/referensi/model"
	helper "sekolahku_backend/internals/helpers"
)

type JurusanController struct {
	DB *gorm.DB
}

func NewJurusanController(db *gorm.DB) *JurusanController {
	return &JurusanController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /api/jurusan
func (h *JurusanController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateJurusanRequest
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
			return fiber.NewError(fiber.StatusConflict, "Kode jurusan sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat jurusan")
	}

	return helper.JsonCreated(c, "Jurusan berhasil dibuat", dto.FromJurusanModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/jurusan?q=&page=&per_page=
func (h *JurusanController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.JurusanModel{}).
		Where("jurusan_school_id = ?", schoolID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(jurusan_kode ILIKE ? OR jurusan_nama ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.JurusanModel
	if err := base.
		Order("jurusan_kode ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromJurusanModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/jurusan/:id
func (h *JurusanController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.JurusanModel
	if err := h.DB.
		Where("jurusan_id = ? AND jurusan_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromJurusanModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/jurusan/:id
func (h *JurusanController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.JurusanModel
	if err := h.DB.
		Where("jurusan_id = ? AND jurusan_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateJurusanRequest
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
			return fiber.NewError(fiber.StatusConflict, "Kode jurusan sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jurusan")
	}

	return helper.JsonUpdated(c, "Jurusan berhasil diperbarui", dto.FromJurusanModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/jurusan/:id (soft delete)
func (h *JurusanController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("jurusan_id = ? AND jurusan_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.JurusanModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jurusan berhasil dihapus", fiber.Map{"jurusan_id": c.Params("id")})
}
