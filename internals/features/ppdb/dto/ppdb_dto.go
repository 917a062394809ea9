// internals/features/ppdb/dto/ppdb_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/ppdb/model"
)

/* =============== REQUESTS =============== */

// Register dipanggil tanpa login, jadi school_id ikut di body.
type RegisterPPDBRequest struct {
	PPDBSchoolID  uuid.UUID      `json:"ppdb_school_id"  validate:"required"`
	PPDBNama      string         `json:"ppdb_nama"       validate:"required,min=2"`
	PPDBNISN      *string        `json:"ppdb_nisn"       validate:"omitempty,min=5,max=20"`
	PPDBEmail     string         `json:"ppdb_email"      validate:"required,email"`
	PPDBPhone     string         `json:"ppdb_phone"      validate:"required,min=6,max=20"`
	PPDBJurusanID *uuid.UUID     `json:"ppdb_jurusan_id" validate:"omitempty"`
	PPDBWaliNama  *string        `json:"ppdb_wali_nama"  validate:"omitempty,min=2"`
	PPDBWaliPhone *string        `json:"ppdb_wali_phone" validate:"omitempty,min=6,max=20"`
	PPDBAlamat    *string        `json:"ppdb_alamat"     validate:"omitempty"`
	PPDBExtra     datatypes.JSON `json:"ppdb_extra"      validate:"omitempty"`
}

func (r RegisterPPDBRequest) ToModel(regno string) *m.PPDBModel {
	return &m.PPDBModel{
		PPDBSchoolID:  r.PPDBSchoolID,
		PPDBRegNo:     regno,
		PPDBNama:      r.PPDBNama,
		PPDBNISN:      r.PPDBNISN,
		PPDBEmail:     r.PPDBEmail,
		PPDBPhone:     r.PPDBPhone,
		PPDBJurusanID: r.PPDBJurusanID,
		PPDBWaliNama:  r.PPDBWaliNama,
		PPDBWaliPhone: r.PPDBWaliPhone,
		PPDBAlamat:    r.PPDBAlamat,
		PPDBExtra:     r.PPDBExtra,
		PPDBStatus:    m.PPDBPending,
	}
}

// Verify mempromosikan pendaftar menjadi siswa + akun login.
type VerifyPPDBRequest struct {
	SiswaNIS     string     `json:"siswa_nis"      validate:"required,min=3,max=30"`
	SiswaKelasID *uuid.UUID `json:"siswa_kelas_id" validate:"omitempty"`
	Password     string     `json:"password"       validate:"required,min=8"`
	Catatan      *string    `json:"catatan"        validate:"omitempty"`
}

type RejectPPDBRequest struct {
	Catatan string `json:"catatan" validate:"required,min=3"`
}

/* =============== RESPONSES =============== */

type PPDBResponse struct {
	PPDBID        uuid.UUID      `json:"ppdb_id"`
	PPDBSchoolID  uuid.UUID      `json:"ppdb_school_id"`
	PPDBRegNo     string         `json:"ppdb_regno"`
	PPDBNama      string         `json:"ppdb_nama"`
	PPDBNISN      *string        `json:"ppdb_nisn,omitempty"`
	PPDBEmail     string         `json:"ppdb_email"`
	PPDBPhone     string         `json:"ppdb_phone"`
	PPDBJurusanID *uuid.UUID     `json:"ppdb_jurusan_id,omitempty"`
	PPDBWaliNama  *string        `json:"ppdb_wali_nama,omitempty"`
	PPDBWaliPhone *string        `json:"ppdb_wali_phone,omitempty"`
	PPDBAlamat    *string        `json:"ppdb_alamat,omitempty"`
	PPDBExtra     datatypes.JSON `json:"ppdb_extra,omitempty"`
	PPDBStatus    m.PPDBStatus   `json:"ppdb_status"`
	PPDBCatatan   *string        `json:"ppdb_catatan,omitempty"`
	PPDBSiswaID   *uuid.UUID     `json:"ppdb_siswa_id,omitempty"`
	PPDBCreatedAt time.Time      `json:"ppdb_created_at"`
}

// Status publik: jangan bocorkan kontak & catatan internal.
type PPDBStatusResponse struct {
	PPDBRegNo     string       `json:"ppdb_regno"`
	PPDBNama      string       `json:"ppdb_nama"`
	PPDBStatus    m.PPDBStatus `json:"ppdb_status"`
	PPDBCreatedAt time.Time    `json:"ppdb_created_at"`
}

func FromModel(x m.PPDBModel) PPDBResponse {
	return PPDBResponse{
		PPDBID:        x.PPDBID,
		PPDBSchoolID:  x.PPDBSchoolID,
		PPDBRegNo:     x.PPDBRegNo,
		PPDBNama:      x.PPDBNama,
		PPDBNISN:      x.PPDBNISN,
		PPDBEmail:     x.PPDBEmail,
		PPDBPhone:     x.PPDBPhone,
		PPDBJurusanID: x.PPDBJurusanID,
		PPDBWaliNama:  x.PPDBWaliNama,
		PPDBWaliPhone: x.PPDBWaliPhone,
		PPDBAlamat:    x.PPDBAlamat,
		PPDBExtra:     x.PPDBExtra,
		PPDBStatus:    x.PPDBStatus,
		PPDBCatatan:   x.PPDBCatatan,
		PPDBSiswaID:   x.PPDBSiswaID,
		PPDBCreatedAt: x.PPDBCreatedAt,
	}
}

func FromModels(list []m.PPDBModel) []PPDBResponse {
	out := make([]PPDBResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

func ToStatusResponse(x m.PPDBModel) PPDBStatusResponse {
	return PPDBStatusResponse{
		PPDBRegNo:     x.PPDBRegNo,
		PPDBNama:      x.PPDBNama,
		PPDBStatus:    x.PPDBStatus,
		PPDBCreatedAt: x.PPDBCreatedAt,
	}
}
