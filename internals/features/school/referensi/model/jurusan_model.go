package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JurusanModel struct {
	JurusanID uuid.UUID `gorm:"column:jurusan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"jurusan_id"`

	JurusanSchoolID uuid.UUID `gorm:"column:jurusan_school_id;type:uuid;not null;uniqueIndex:uq_jurusan_school_kode" json:"jurusan_school_id"`

	// Kode singkat (mis. "RPL", "TKJ") unik per sekolah
	JurusanKode string `gorm:"column:jurusan_kode;type:varchar(20);not null;uniqueIndex:uq_jurusan_school_kode" json:"jurusan_kode"`
	JurusanNama string `gorm:"column:jurusan_nama;type:text;not null" json:"jurusan_nama"`

	JurusanCreatedAt time.Time      `gorm:"column:jurusan_created_at;autoCreateTime" json:"jurusan_created_at"`
	JurusanUpdatedAt *time.Time     `gorm:"column:jurusan_updated_at;autoUpdateTime" json:"jurusan_updated_at,omitempty"`
	JurusanDeletedAt gorm.DeletedAt `gorm:"column:jurusan_deleted_at;index" json:"jurusan_deleted_at,omitempty"`
}

func (JurusanModel) TableName() string { return "jurusan" }
