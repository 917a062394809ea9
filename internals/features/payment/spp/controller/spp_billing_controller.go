package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/payment/spp/dto"
	model "sekolahku_backend/internals/features/payment/spp/model"
	helper "sekolahku_backend/internals/helpers"
)

type SppBillingController struct {
	DB *gorm.DB
}

func NewSppBillingController(db *gorm.DB) *SppBillingController {
	return &SppBillingController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /api/spp/billings
// Insert header + generate item per siswa aktif di kelas tersebut
// (nominal dari SPP bulanan kelas) dalam satu transaksi.
func (h *SppBillingController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateSppBillingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	m := req.ToModel(schoolID)
	if err := tx.Create(m).Error; err != nil {
		tx.Rollback()
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Batch SPP untuk kombinasi (kelas, bulan, tahun) sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat SPP billing")
	}
	if m.SppBillingID == uuid.Nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperoleh ID billing")
	}

	// Item per siswa aktif di kelas
	res := tx.Exec(`
		INSERT INTO spp_billing_items
			(spp_billing_item_billing_id, spp_billing_item_siswa_id, spp_billing_item_amount_idr)
		SELECT
			?, s.siswa_id, COALESCE(k.kelas_spp_bulanan_idr, 0)
		FROM siswa s
		JOIN kelas k ON k.kelas_id = s.siswa_kelas_id
		WHERE s.siswa_kelas_id = ?
		  AND s.siswa_school_id = ?
		  AND s.siswa_status = 'aktif'
		  AND s.siswa_deleted_at IS NULL
		ON CONFLICT (spp_billing_item_billing_id, spp_billing_item_siswa_id) DO NOTHING
	`, m.SppBillingID, req.SppBillingKelasID, schoolID)
	if res.Error != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate item SPP per siswa: "+res.Error.Error())
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "SPP billing berhasil dibuat & item per siswa digenerate", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/spp/billings/:id
func (h *SppBillingController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.SppBillingModel
	if err := h.DB.
		Where("spp_billing_id = ? AND spp_billing_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/spp/billings?kelas_id=&bulan=&tahun=&q=&page=&per_page=
func (h *SppBillingController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.SppBillingModel{}).
		Where("spp_billing_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("kelas_id")); v != "" {
		base = base.Where("spp_billing_kelas_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("bulan")); v != "" {
		base = base.Where("spp_billing_bulan = ?", v)
	}
	if v := strings.TrimSpace(c.Query("tahun")); v != "" {
		base = base.Where("spp_billing_tahun = ?", v)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(spp_billing_title ILIKE ? OR spp_billing_note ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SppBillingModel
	if err := base.
		Order("spp_billing_tahun DESC, spp_billing_bulan DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== ITEMS ======================== */
// GET /api/spp/billings/:id/items?status=
func (h *SppBillingController) Items(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	// Pastikan header milik sekolah ini
	var header model.SppBillingModel
	if err := h.DB.
		Where("spp_billing_id = ? AND spp_billing_school_id = ?", c.Params("id"), schoolID).
		First(&header).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	base := h.DB.Model(&model.SppBillingItemModel{}).
		Where("spp_billing_item_billing_id = ?", header.SppBillingID)
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		base = base.Where("spp_billing_item_status = ?", v)
	}

	var items []model.SppBillingItemModel
	if err := base.Order("spp_billing_item_created_at ASC").Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromItemModels(items))
}

/* ======================== UPDATE ======================== */
// PUT /api/spp/billings/:id
func (h *SppBillingController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.SppBillingModel
	if err := h.DB.
		Where("spp_billing_id = ? AND spp_billing_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateSppBillingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan SPP billing")
	}

	return helper.JsonUpdated(c, "SPP billing berhasil diperbarui", dto.FromModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/spp/billings/:id: soft delete header + item yang belum dibayar
func (h *SppBillingController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}

	res := tx.
		Where("spp_billing_id = ? AND spp_billing_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.SppBillingModel{})
	if res.Error != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	if err := tx.
		Where("spp_billing_item_billing_id = ? AND spp_billing_item_status = ?", c.Params("id"), model.SppItemUnpaid).
		Delete(&model.SppBillingItemModel{}).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "SPP billing berhasil dihapus", fiber.Map{"spp_billing_id": c.Params("id")})
}
