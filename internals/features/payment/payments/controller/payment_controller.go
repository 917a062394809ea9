package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/segmentio/ksuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/payment/payments/dto"
	model "sekolahku_backend/internals/features/payment/payments/model"
	service "sekolahku_backend/internals/features/payment/payments/service"
	sppModel "sekolahku_backend/internals/features/payment/spp/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /api/payments: buat transaksi Snap, simpan pending.
func (h *PaymentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Data pembayar (nama + email untuk customer detail gateway)
	var payer userModel.UserModel
	if err := h.DB.Select("id", "full_name", "email").
		Where("id = ?", userID).First(&payer).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}

	p := model.PaymentModel{
		PaymentOrderID:  "PAY-" + ksuid.New().String(),
		PaymentSchoolID: schoolID,
		PaymentUserID:   &userID,
	}

	if req.PaymentSppItemID != nil {
		// Bayar tagihan SPP milik sendiri
		var item sppModel.SppBillingItemModel
		if err := h.DB.
			Joins("JOIN siswa s ON s.siswa_id = spp_billing_items.spp_billing_item_siswa_id").
			Where("spp_billing_items.spp_billing_item_id = ? AND s.siswa_user_id = ?", *req.PaymentSppItemID, userID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if item.SppBillingItemStatus != sppModel.SppItemUnpaid {
			return fiber.NewError(fiber.StatusConflict, "Tagihan sudah dibayar atau dibatalkan")
		}

		var header sppModel.SppBillingModel
		if err := h.DB.
			Where("spp_billing_id = ?", item.SppBillingItemBillingID).
			First(&header).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		p.PaymentSppItemID = &item.SppBillingItemID
		p.PaymentType = model.PaymentTypeSPP
		p.PaymentTitle = header.SppBillingTitle
		p.PaymentAmountIDR = item.SppBillingItemAmountIDR
	} else {
		// Pembayaran lepas
		if req.PaymentTitle == nil || req.PaymentAmountIDR == nil {
			return fiber.NewError(fiber.StatusBadRequest, "payment_title dan payment_amount_idr wajib untuk pembayaran lepas")
		}
		p.PaymentType = model.PaymentTypeLainnya
		p.PaymentTitle = *req.PaymentTitle
		p.PaymentAmountIDR = *req.PaymentAmountIDR
	}

	if err := h.DB.Create(&p).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan transaksi")
	}

	token, redirectURL, err := service.GenerateSnapToken(h.DB, p, payer.FullName, payer.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans: "+err.Error())
	}
	p.PaymentSnapToken = &token
	p.PaymentRedirectURL = &redirectURL
	if err := h.DB.Save(&p).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan snap token")
	}

	return helper.JsonCreated(c, "Transaksi pembayaran dibuat", dto.FromModel(p))
}

/* ======================== LIST (milik sendiri) ======================== */
// GET /api/payments/my?status=
func (h *PaymentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	base := h.DB.Model(&model.PaymentModel{}).
		Where("payment_user_id = ?", userID)
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		base = base.Where("payment_status = ?", v)
	}

	var list []model.PaymentModel
	if err := base.Order("payment_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

/* ======================== LIST (admin/bendahara) ======================== */
// GET /api/payments?status=&type=&page=&per_page=
func (h *PaymentController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PaymentModel{}).
		Where("payment_school_id = ?", schoolID)
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		base = base.Where("payment_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("type")); v != "" {
		base = base.Where("payment_type = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PaymentModel
	if err := base.
		Order("payment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/payments/:id: pemilik atau pengurus keuangan.
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromLocals(c)
	if err != nil {
		return err
	}

	var row model.PaymentModel
	if err := h.DB.Where("payment_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	isOwner := row.PaymentUserID != nil && *row.PaymentUserID == userID
	if !isOwner && role != constants.RoleAdmin && role != constants.RoleBendahara {
		return fiber.NewError(fiber.StatusForbidden, "Tidak berhak melihat transaksi ini")
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== WEBHOOK ======================== */
// POST /api/payments/notification: dipanggil Midtrans, tanpa auth.
func (h *PaymentController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandlePaymentNotification(h.DB, body); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			return fiber.NewError(fiber.StatusForbidden, "Signature tidak valid")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{"received": true})
}
