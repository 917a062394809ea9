package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ppdbDTO "sekolahku_backend/internals/features/ppdb/dto"
	ppdbModel "sekolahku_backend/internals/features/ppdb/model"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	siswaModel "sekolahku_backend/internals/features/users/people/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// VerifyRegistration mempromosikan pendaftar pending menjadi siswa:
// buat akun login (role siswa), buat baris siswa, tandai pendaftaran
// verified. Semua dalam satu transaksi.
func VerifyRegistration(
	db *gorm.DB,
	regID string,
	schoolID uuid.UUID,
	adminID uuid.UUID,
	req ppdbDTO.VerifyPPDBRequest,
) (*ppdbModel.PPDBModel, error) {
	var reg ppdbModel.PPDBModel
	if err := db.
		Where("ppdb_id = ? AND ppdb_school_id = ?", regID, schoolID).
		First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if reg.PPDBStatus != ppdbModel.PPDBPending {
		return nil, fiber.NewError(fiber.StatusConflict, "Pendaftaran sudah diproses")
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// 1) Akun login siswa
		u := userModel.UserModel{
			FullName: reg.PPDBNama,
			Email:    strings.ToLower(strings.TrimSpace(reg.PPDBEmail)),
			Password: hashed,
			SchoolID: &schoolID,
		}
		u.SetDefaultValues() // role default siswa
		if err := tx.Create(&u).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email pendaftar sudah terdaftar sebagai akun")
			}
			return err
		}

		// 2) Baris siswa
		s := siswaModel.SiswaModel{
			SiswaSchoolID:  schoolID,
			SiswaUserID:    &u.ID,
			SiswaNIS:       req.SiswaNIS,
			SiswaNama:      reg.PPDBNama,
			SiswaKelasID:   req.SiswaKelasID,
			SiswaJurusanID: reg.PPDBJurusanID,
			SiswaWaliNama:  reg.PPDBWaliNama,
			SiswaWaliPhone: reg.PPDBWaliPhone,
			SiswaAlamat:    reg.PPDBAlamat,
			SiswaExtra:     reg.PPDBExtra,
			SiswaStatus:    siswaModel.SiswaAktif,
		}
		if err := tx.Create(&s).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "NIS sudah terdaftar")
			}
			return err
		}

		// 3) Tandai pendaftaran
		now := time.Now()
		reg.PPDBStatus = ppdbModel.PPDBVerified
		reg.PPDBCatatan = req.Catatan
		reg.PPDBVerifiedBy = &adminID
		reg.PPDBVerifiedAt = &now
		reg.PPDBSiswaID = &s.SiswaID
		return tx.Save(&reg).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memverifikasi pendaftaran")
	}

	return &reg, nil
}
