package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/users/navigation/dto"
	model "sekolahku_backend/internals/features/users/navigation/model"
	service "sekolahku_backend/internals/features/users/navigation/service"
	helper "sekolahku_backend/internals/helpers"
)

type RolePermissionController struct {
	DB *gorm.DB
}

func NewRolePermissionController(db *gorm.DB) *RolePermissionController {
	return &RolePermissionController{DB: db}
}

var validate = validator.New()

/* ======================= PERMISSION MAP ======================= */
// GET /api/rolePermissions?school_id=<uuid>
// Respons: { "<path>": [150, 170], ... }: dikonsumsi guard per request.
func (h *RolePermissionController) GetPermissionMap(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Query("school_id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "school_id wajib diisi")
	}
	schoolID, err := uuid.Parse(idStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "school_id tidak valid")
	}

	m, err := service.FetchPermissionMap(c.UserContext(), h.DB, schoolID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil permission map")
	}
	return helper.JsonOK(c, "OK", m)
}

/* ======================= CREATE ======================= */
// POST /api/rolePermissions
func (h *RolePermissionController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateRolePermissionRequest
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
			return fiber.NewError(fiber.StatusConflict, "Permission untuk path tersebut sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat permission")
	}

	return helper.JsonCreated(c, "Permission berhasil dibuat", dto.FromModel(*m))
}

/* ======================= LIST ======================= */
// GET /api/rolePermissions/list
func (h *RolePermissionController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var rows []model.RolePermissionModel
	if err := h.DB.
		Where("role_permission_school_id = ?", schoolID).
		Order("role_permission_path ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

/* ======================= UPDATE ======================= */
// PUT /api/rolePermissions/:id
func (h *RolePermissionController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	var row model.RolePermissionModel
	if err := h.DB.
		Where("role_permission_id = ? AND role_permission_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateRolePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan permission")
	}

	return helper.JsonUpdated(c, "Permission berhasil diperbarui", dto.FromModel(row))
}

/* ======================= DELETE ======================= */
// DELETE /api/rolePermissions/:id
func (h *RolePermissionController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	res := h.DB.
		Where("role_permission_id = ? AND role_permission_school_id = ?", id, schoolID).
		Delete(&model.RolePermissionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Permission berhasil dihapus", fiber.Map{"role_permission_id": id})
}
