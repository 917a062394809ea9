// internals/features/users/people/dto/siswa_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/users/people/model"
)

/* =============== REQUESTS =============== */

type CreateSiswaRequest struct {
	SiswaNIS       string         `json:"siswa_nis"        validate:"required,min=3,max=30"`
	SiswaNama      string         `json:"siswa_nama"       validate:"required,min=2"`
	SiswaKelasID   *uuid.UUID     `json:"siswa_kelas_id"   validate:"omitempty"`
	SiswaJurusanID *uuid.UUID     `json:"siswa_jurusan_id" validate:"omitempty"`
	SiswaWaliNama  *string        `json:"siswa_wali_nama"  validate:"omitempty,min=2"`
	SiswaWaliPhone *string        `json:"siswa_wali_phone" validate:"omitempty,min=6,max=20"`
	SiswaAlamat    *string        `json:"siswa_alamat"     validate:"omitempty"`
	SiswaExtra     datatypes.JSON `json:"siswa_extra"      validate:"omitempty"`
}

func (r CreateSiswaRequest) ToModel(schoolID uuid.UUID) *m.SiswaModel {
	return &m.SiswaModel{
		SiswaSchoolID:  schoolID,
		SiswaNIS:       r.SiswaNIS,
		SiswaNama:      r.SiswaNama,
		SiswaKelasID:   r.SiswaKelasID,
		SiswaJurusanID: r.SiswaJurusanID,
		SiswaWaliNama:  r.SiswaWaliNama,
		SiswaWaliPhone: r.SiswaWaliPhone,
		SiswaAlamat:    r.SiswaAlamat,
		SiswaExtra:     r.SiswaExtra,
		SiswaStatus:    m.SiswaAktif,
	}
}

type UpdateSiswaRequest struct {
	SiswaNIS       *string         `json:"siswa_nis"        validate:"omitempty,min=3,max=30"`
	SiswaNama      *string         `json:"siswa_nama"       validate:"omitempty,min=2"`
	SiswaKelasID   *uuid.UUID      `json:"siswa_kelas_id"   validate:"omitempty"`
	SiswaJurusanID *uuid.UUID      `json:"siswa_jurusan_id" validate:"omitempty"`
	SiswaWaliNama  *string         `json:"siswa_wali_nama"  validate:"omitempty,min=2"`
	SiswaWaliPhone *string         `json:"siswa_wali_phone" validate:"omitempty,min=6,max=20"`
	SiswaAlamat    *string         `json:"siswa_alamat"     validate:"omitempty"`
	SiswaExtra     *datatypes.JSON `json:"siswa_extra"      validate:"omitempty"`
	SiswaStatus    *m.SiswaStatus  `json:"siswa_status"     validate:"omitempty,oneof=aktif lulus keluar"`
}

func (r UpdateSiswaRequest) ApplyTo(mo *m.SiswaModel) {
	if r.SiswaNIS != nil {
		mo.SiswaNIS = *r.SiswaNIS
	}
	if r.SiswaNama != nil {
		mo.SiswaNama = *r.SiswaNama
	}
	if r.SiswaKelasID != nil {
		mo.SiswaKelasID = r.SiswaKelasID
	}
	if r.SiswaJurusanID != nil {
		mo.SiswaJurusanID = r.SiswaJurusanID
	}
	if r.SiswaWaliNama != nil {
		mo.SiswaWaliNama = r.SiswaWaliNama
	}
	if r.SiswaWaliPhone != nil {
		mo.SiswaWaliPhone = r.SiswaWaliPhone
	}
	if r.SiswaAlamat != nil {
		mo.SiswaAlamat = r.SiswaAlamat
	}
	if r.SiswaExtra != nil {
		mo.SiswaExtra = *r.SiswaExtra
	}
	if r.SiswaStatus != nil {
		mo.SiswaStatus = *r.SiswaStatus
	}
}

/* =============== RESPONSES =============== */

type SiswaResponse struct {
	SiswaID        uuid.UUID      `json:"siswa_id"`
	SiswaSchoolID  uuid.UUID      `json:"siswa_school_id"`
	SiswaUserID    *uuid.UUID     `json:"siswa_user_id,omitempty"`
	SiswaNIS       string         `json:"siswa_nis"`
	SiswaNama      string         `json:"siswa_nama"`
	SiswaKelasID   *uuid.UUID     `json:"siswa_kelas_id,omitempty"`
	SiswaJurusanID *uuid.UUID     `json:"siswa_jurusan_id,omitempty"`
	SiswaWaliNama  *string        `json:"siswa_wali_nama,omitempty"`
	SiswaWaliPhone *string        `json:"siswa_wali_phone,omitempty"`
	SiswaAlamat    *string        `json:"siswa_alamat,omitempty"`
	SiswaExtra     datatypes.JSON `json:"siswa_extra,omitempty"`
	SiswaStatus    m.SiswaStatus  `json:"siswa_status"`
	SiswaCreatedAt time.Time      `json:"siswa_created_at"`
	SiswaUpdatedAt *time.Time     `json:"siswa_updated_at,omitempty"`
}

func FromSiswaModel(x m.SiswaModel) SiswaResponse {
	return SiswaResponse{
		SiswaID:        x.SiswaID,
		SiswaSchoolID:  x.SiswaSchoolID,
		SiswaUserID:    x.SiswaUserID,
		SiswaNIS:       x.SiswaNIS,
		SiswaNama:      x.SiswaNama,
		SiswaKelasID:   x.SiswaKelasID,
		SiswaJurusanID: x.SiswaJurusanID,
		SiswaWaliNama:  x.SiswaWaliNama,
		SiswaWaliPhone: x.SiswaWaliPhone,
		SiswaAlamat:    x.SiswaAlamat,
		SiswaExtra:     x.SiswaExtra,
		SiswaStatus:    x.SiswaStatus,
		SiswaCreatedAt: x.SiswaCreatedAt,
		SiswaUpdatedAt: x.SiswaUpdatedAt,
	}
}

func FromSiswaModels(list []m.SiswaModel) []SiswaResponse {
	out := make([]SiswaResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromSiswaModel(it))
	}
	return out
}
