package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PPDBStatus string

const (
	PPDBPending  PPDBStatus = "pending"
	PPDBVerified PPDBStatus = "verified"
	PPDBRejected PPDBStatus = "rejected"
)

// Pendaftaran PPDB (Penerimaan Peserta Didik Baru). Masuk lewat endpoint
// publik, diverifikasi admin menjadi data siswa.
type PPDBModel struct {
	PPDBID uuid.UUID `gorm:"column:ppdb_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ppdb_id"`

	PPDBSchoolID uuid.UUID `gorm:"column:ppdb_school_id;type:uuid;not null;index:idx_ppdb_school" json:"ppdb_school_id"`

	// Nomor registrasi publik (PPDB-<ksuid>)
	PPDBRegNo string `gorm:"column:ppdb_regno;type:varchar(40);not null;uniqueIndex:uq_ppdb_regno" json:"ppdb_regno"`

	PPDBNama  string  `gorm:"column:ppdb_nama;type:text;not null" json:"ppdb_nama"`
	PPDBNISN  *string `gorm:"column:ppdb_nisn;type:varchar(20)" json:"ppdb_nisn,omitempty"`
	PPDBEmail string  `gorm:"column:ppdb_email;type:varchar(255);not null" json:"ppdb_email"`
	PPDBPhone string  `gorm:"column:ppdb_phone;type:varchar(20);not null" json:"ppdb_phone"`

	// Pilihan jurusan (nullable → SET NULL)
	PPDBJurusanID *uuid.UUID `gorm:"column:ppdb_jurusan_id;type:uuid" json:"ppdb_jurusan_id,omitempty"`

	PPDBWaliNama  *string `gorm:"column:ppdb_wali_nama;type:text" json:"ppdb_wali_nama,omitempty"`
	PPDBWaliPhone *string `gorm:"column:ppdb_wali_phone;type:varchar(20)" json:"ppdb_wali_phone,omitempty"`
	PPDBAlamat    *string `gorm:"column:ppdb_alamat;type:text" json:"ppdb_alamat,omitempty"`

	PPDBExtra datatypes.JSON `gorm:"column:ppdb_extra;type:jsonb" json:"ppdb_extra,omitempty"`

	PPDBStatus  PPDBStatus `gorm:"column:ppdb_status;type:varchar(10);not null;default:pending;index:idx_ppdb_status" json:"ppdb_status"`
	PPDBCatatan *string    `gorm:"column:ppdb_catatan;type:text" json:"ppdb_catatan,omitempty"`

	// Jejak verifikasi
	PPDBVerifiedBy *uuid.UUID `gorm:"column:ppdb_verified_by;type:uuid" json:"ppdb_verified_by,omitempty"`
	PPDBVerifiedAt *time.Time `gorm:"column:ppdb_verified_at" json:"ppdb_verified_at,omitempty"`
	PPDBSiswaID    *uuid.UUID `gorm:"column:ppdb_siswa_id;type:uuid" json:"ppdb_siswa_id,omitempty"`

	PPDBCreatedAt time.Time      `gorm:"column:ppdb_created_at;autoCreateTime" json:"ppdb_created_at"`
	PPDBUpdatedAt *time.Time     `gorm:"column:ppdb_updated_at;autoUpdateTime" json:"ppdb_updated_at,omitempty"`
	PPDBDeletedAt gorm.DeletedAt `gorm:"column:ppdb_deleted_at;index" json:"ppdb_deleted_at,omitempty"`
}

func (PPDBModel) TableName() string { return "ppdb_registrations" }
