package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	dto "sekolahku_backend/internals/features/users/people/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

// AdminController mengelola akun pengurus (role 150/160/170) per sekolah.
type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /api/admin
func (h *AdminController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateAdminUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	u := userModel.UserModel{
		FullName: req.FullName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     req.Role,
		SchoolID: &schoolID,
	}
	if err := h.DB.Create(&u).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Akun pengurus berhasil dibuat", dto.FromUserModel(u))
}

/* ======================== LIST ======================== */
// GET /api/admin?role=&q=&page=&per_page=
func (h *AdminController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&userModel.UserModel{}).
		Where("school_id = ?", schoolID).
		Where("role IN ?", constants.NonSiswaRoles)

	if v := strings.TrimSpace(c.Query("role")); v != "" {
		base = base.Where("role = ?", v)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(full_name ILIKE ? OR email ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []userModel.UserModel
	if err := base.
		Order("full_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromUserModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/admin/:id
func (h *AdminController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := h.DB.
		Where("id = ? AND school_id = ? AND role IN ?", c.Params("id"), schoolID, constants.NonSiswaRoles).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromUserModel(u))
}

/* ======================== UPDATE ======================== */
// PUT /api/admin/:id
func (h *AdminController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := h.DB.
		Where("id = ? AND school_id = ? AND role IN ?", c.Params("id"), schoolID, constants.NonSiswaRoles).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateAdminUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&u)
	if err := h.DB.Save(&u).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan akun")
	}

	return helper.JsonUpdated(c, "Akun pengurus berhasil diperbarui", dto.FromUserModel(u))
}

/* ======================== DELETE ======================== */
// DELETE /api/admin/:id (soft delete; akun sendiri tidak boleh dihapus)
func (h *AdminController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	selfID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	if selfID.String() == c.Params("id") {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}

	res := h.DB.
		Where("id = ? AND school_id = ? AND role IN ?", c.Params("id"), schoolID, constants.NonSiswaRoles).
		Delete(&userModel.UserModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Akun pengurus berhasil dihapus", fiber.Map{"id": c.Params("id")})
}
