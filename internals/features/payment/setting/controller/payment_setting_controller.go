package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/payment/setting/dto"
	model "sekolahku_backend/internals/features/payment/setting/model"
	helper "sekolahku_backend/internals/helpers"
)

type PaymentSettingController struct {
	DB *gorm.DB
}

func NewPaymentSettingController(db *gorm.DB) *PaymentSettingController {
	return &PaymentSettingController{DB: db}
}

var validate = validator.New()

// GET /api/payment-settings: kredensial gateway sekolah sendiri
func (h *PaymentSettingController) Get(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row model.PaymentSettingModel
	if err := h.DB.
		Where("payment_setting_school_id = ?", schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Setting pembayaran belum dikonfigurasi")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// PUT /api/payment-settings: buat atau perbarui (upsert per sekolah)
func (h *PaymentSettingController) Upsert(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpsertPaymentSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.PaymentSettingModel
	err = h.DB.Where("payment_setting_school_id = ?", schoolID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.PaymentSettingModel{PaymentSettingSchoolID: schoolID}
		req.ApplyTo(&row)
		if err := h.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan setting pembayaran")
		}
		return helper.JsonCreated(c, "Setting pembayaran dibuat", dto.FromModel(row))
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	default:
		req.ApplyTo(&row)
		if err := h.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan setting pembayaran")
		}
		return helper.JsonUpdated(c, "Setting pembayaran diperbarui", dto.FromModel(row))
	}
}

// DELETE /api/payment-settings: kembali ke kredensial global
func (h *PaymentSettingController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("payment_setting_school_id = ?", schoolID).
		Delete(&model.PaymentSettingModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Setting pembayaran belum dikonfigurasi")
	}

	return helper.JsonDeleted(c, "Setting pembayaran dihapus", fiber.Map{"payment_setting_school_id": schoolID})
}
