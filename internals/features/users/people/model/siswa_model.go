package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SiswaStatus string

const (
	SiswaAktif  SiswaStatus = "aktif"
	SiswaLulus  SiswaStatus = "lulus"
	SiswaKeluar SiswaStatus = "keluar"
)

type SiswaModel struct {
	SiswaID uuid.UUID `gorm:"column:siswa_id;type:uuid;default:gen_random_uuid();primaryKey" json:"siswa_id"`

	SiswaSchoolID uuid.UUID `gorm:"column:siswa_school_id;type:uuid;not null;uniqueIndex:uq_siswa_school_nis" json:"siswa_school_id"`

	// Akun login siswa (nullable → SET NULL; diisi saat PPDB diverifikasi)
	SiswaUserID *uuid.UUID `gorm:"column:siswa_user_id;type:uuid;index:idx_siswa_user" json:"siswa_user_id,omitempty"`

	// NIS unik per sekolah
	SiswaNIS  string `gorm:"column:siswa_nis;type:varchar(30);not null;uniqueIndex:uq_siswa_school_nis" json:"siswa_nis"`
	SiswaNama string `gorm:"column:siswa_nama;type:text;not null" json:"siswa_nama"`

	// FK referensi (nullable → SET NULL)
	SiswaKelasID   *uuid.UUID `gorm:"column:siswa_kelas_id;type:uuid;index:idx_siswa_kelas" json:"siswa_kelas_id,omitempty"`
	SiswaJurusanID *uuid.UUID `gorm:"column:siswa_jurusan_id;type:uuid" json:"siswa_jurusan_id,omitempty"`

	// Data wali
	SiswaWaliNama  *string `gorm:"column:siswa_wali_nama;type:text" json:"siswa_wali_nama,omitempty"`
	SiswaWaliPhone *string `gorm:"column:siswa_wali_phone;type:varchar(20)" json:"siswa_wali_phone,omitempty"`

	SiswaAlamat *string `gorm:"column:siswa_alamat;type:text" json:"siswa_alamat,omitempty"`

	// Atribut tambahan bebas (NISN, golongan darah, dst.)
	SiswaExtra datatypes.JSON `gorm:"column:siswa_extra;type:jsonb" json:"siswa_extra,omitempty"`

	SiswaStatus SiswaStatus `gorm:"column:siswa_status;type:varchar(10);not null;default:aktif" json:"siswa_status"`

	SiswaCreatedAt time.Time      `gorm:"column:siswa_created_at;autoCreateTime" json:"siswa_created_at"`
	SiswaUpdatedAt *time.Time     `gorm:"column:siswa_updated_at;autoUpdateTime" json:"siswa_updated_at,omitempty"`
	SiswaDeletedAt gorm.DeletedAt `gorm:"column:siswa_deleted_at;index" json:"siswa_deleted_at,omitempty"`
}

func (SiswaModel) TableName() string { return "siswa" }
