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

type AnggotaController struct {
	DB *gorm.DB
}

func NewAnggotaController(db *gorm.DB) *AnggotaController {
	return &AnggotaController{DB: db}
}

// POST /api/anggota
func (h *AnggotaController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnggotaRequest
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
			return fiber.NewError(fiber.StatusConflict, "Nomor anggota sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data anggota")
	}

	return helper.JsonCreated(c, "Data anggota berhasil dibuat", dto.FromAnggotaModel(*m))
}

// GET /api/anggota?status=&q=&page=&per_page=
func (h *AnggotaController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.AnggotaModel{}).
		Where("anggota_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		base = base.Where("anggota_status = ?", v)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(anggota_nama ILIKE ? OR anggota_nomor ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AnggotaModel
	if err := base.
		Order("anggota_nama ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromAnggotaModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/anggota/:id
func (h *AnggotaController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.AnggotaModel
	if err := h.DB.
		Where("anggota_id = ? AND anggota_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromAnggotaModel(row))
}

// PUT /api/anggota/:id
func (h *AnggotaController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.AnggotaModel
	if err := h.DB.
		Where("anggota_id = ? AND anggota_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateAnggotaRequest
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
			return fiber.NewError(fiber.StatusConflict, "Nomor anggota sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data anggota")
	}

	return helper.JsonUpdated(c, "Data anggota berhasil diperbarui", dto.FromAnggotaModel(row))
}

// DELETE /api/anggota/:id (soft delete)
func (h *AnggotaController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("anggota_id = ? AND anggota_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.AnggotaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Data anggota berhasil dihapus", fiber.Map{"anggota_id": c.Params("id")})
}
