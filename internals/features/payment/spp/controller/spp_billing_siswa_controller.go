package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/payment/spp/dto"
	model "sekolahku_backend/internals/features/payment/spp/model"
	helper "sekolahku_backend/internals/helpers"
)

// Endpoint sisi siswa: hanya tagihan milik sendiri.
type SppBillingSiswaController struct {
	DB *gorm.DB
}

func NewSppBillingSiswaController(db *gorm.DB) *SppBillingSiswaController {
	return &SppBillingSiswaController{DB: db}
}

// GET /api/spp/my-bills?status=&tahun=
func (h *SppBillingSiswaController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	base := h.DB.Model(&model.SppBillingItemModel{}).
		Joins("JOIN siswa s ON s.siswa_id = spp_billing_items.spp_billing_item_siswa_id").
		Joins("JOIN spp_billings b ON b.spp_billing_id = spp_billing_items.spp_billing_item_billing_id").
		Where("s.siswa_user_id = ?", userID)

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		base = base.Where("spp_billing_items.spp_billing_item_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("tahun")); v != "" {
		base = base.Where("b.spp_billing_tahun = ?", v)
	}

	var items []model.SppBillingItemModel
	if err := base.
		Order("b.spp_billing_tahun DESC, b.spp_billing_bulan DESC").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromItemModels(items))
}
