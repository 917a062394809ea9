package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnggotaStatus string

const (
	AnggotaAktif    AnggotaStatus = "aktif"
	AnggotaNonaktif AnggotaStatus = "nonaktif"
)

// Keanggotaan (guru/karyawan/komite) di luar akun login.
type AnggotaModel struct {
	AnggotaID uuid.UUID `gorm:"column:anggota_id;type:uuid;default:gen_random_uuid();primaryKey" json:"anggota_id"`

	AnggotaSchoolID uuid.UUID `gorm:"column:anggota_school_id;type:uuid;not null;uniqueIndex:uq_anggota_school_nomor" json:"anggota_school_id"`

	AnggotaUserID *uuid.UUID `gorm:"column:anggota_user_id;type:uuid;index:idx_anggota_user" json:"anggota_user_id,omitempty"`

	// Nomor anggota unik per sekolah
	AnggotaNomor    string     `gorm:"column:anggota_nomor;type:varchar(30);not null;uniqueIndex:uq_anggota_school_nomor" json:"anggota_nomor"`
	AnggotaNama     string     `gorm:"column:anggota_nama;type:text;not null" json:"anggota_nama"`
	AnggotaJabatan  *string    `gorm:"column:anggota_jabatan;type:text" json:"anggota_jabatan,omitempty"`
	AnggotaPhone    *string    `gorm:"column:anggota_phone;type:varchar(20)" json:"anggota_phone,omitempty"`
	AnggotaJoinedAt *time.Time `gorm:"column:anggota_joined_at;type:date" json:"anggota_joined_at,omitempty"`

	AnggotaStatus AnggotaStatus `gorm:"column:anggota_status;type:varchar(10);not null;default:aktif" json:"anggota_status"`

	AnggotaCreatedAt time.Time      `gorm:"column:anggota_created_at;autoCreateTime" json:"anggota_created_at"`
	AnggotaUpdatedAt *time.Time     `gorm:"column:anggota_updated_at;autoUpdateTime" json:"anggota_updated_at,omitempty"`
	AnggotaDeletedAt gorm.DeletedAt `gorm:"column:anggota_deleted_at;index" json:"anggota_deleted_at,omitempty"`
}

func (AnggotaModel) TableName() string { return "anggota" }
