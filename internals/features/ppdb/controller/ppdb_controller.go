package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/segmentio/ksuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/ppdb/dto"
	model "sekolahku_backend/internals/features/ppdb/model"
	service "sekolahku_backend/internals/features/ppdb/service"
	helper "sekolahku_backend/internals/helpers"
)

type PPDBController struct {
	DB *gorm.DB
}

func NewPPDBController(db *gorm.DB) *PPDBController {
	return &PPDBController{DB: db}
}

var validate = validator.New()

/* ======================= PUBLIC ======================= */

// POST /api/ppdb/register: tanpa login, rate-limit ketat.
func (h *PPDBController) Register(c *fiber.Ctx) error {
	var req dto.RegisterPPDBRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	regno := "PPDB-" + ksuid.New().String()
	m := req.ToModel(regno)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
	}

	return helper.JsonCreated(c, "Pendaftaran diterima. Simpan nomor registrasi Anda.", dto.FromModel(*m))
}

// GET /api/ppdb/status/:regno: cek status publik by nomor registrasi.
func (h *PPDBController) Status(c *fiber.Ctx) error {
	regno := strings.TrimSpace(c.Params("regno"))
	if regno == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor registrasi wajib diisi")
	}

	var row model.PPDBModel
	if err := h.DB.Where("ppdb_regno = ?", regno).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.ToStatusResponse(row))
}

/* ======================= ADMIN ======================= */

// GET /api/ppdb?status=&q=&page=&per_page=
func (h *PPDBController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PPDBModel{}).
		Where("ppdb_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		base = base.Where("ppdb_status = ?", v)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(ppdb_nama ILIKE ? OR ppdb_regno ILIKE ? OR ppdb_email ILIKE ?)", like, like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PPDBModel
	if err := base.
		Order("ppdb_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/ppdb/:id
func (h *PPDBController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.PPDBModel
	if err := h.DB.
		Where("ppdb_id = ? AND ppdb_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// POST /api/ppdb/:id/verify: promosi pendaftar menjadi siswa.
func (h *PPDBController) Verify(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.VerifyPPDBRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	reg, err := service.VerifyRegistration(h.DB, c.Params("id"), schoolID, adminID, req)
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Pendaftaran diverifikasi & siswa dibuat", dto.FromModel(*reg))
}

// POST /api/ppdb/:id/reject
func (h *PPDBController) Reject(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.RejectPPDBRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.PPDBModel
	if err := h.DB.
		Where("ppdb_id = ? AND ppdb_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.PPDBStatus != model.PPDBPending {
		return fiber.NewError(fiber.StatusConflict, "Pendaftaran sudah diproses")
	}

	now := time.Now()
	row.PPDBStatus = model.PPDBRejected
	row.PPDBCatatan = &req.Catatan
	row.PPDBVerifiedBy = &adminID
	row.PPDBVerifiedAt = &now
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan penolakan")
	}

	return helper.JsonUpdated(c, "Pendaftaran ditolak", dto.FromModel(row))
}
