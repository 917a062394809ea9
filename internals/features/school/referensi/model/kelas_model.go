package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KelasModel struct {
	KelasID uuid.UUID `gorm:"column:kelas_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kelas_id"`

	KelasSchoolID uuid.UUID `gorm:"column:kelas_school_id;type:uuid;not null;uniqueIndex:uq_kelas_school_nama" json:"kelas_school_id"`

	// FK (nullable → SET NULL)
	KelasJurusanID *uuid.UUID `gorm:"column:kelas_jurusan_id;type:uuid;index:idx_kelas_jurusan" json:"kelas_jurusan_id,omitempty"`

	// Nama kelas (mis. "X RPL 1") unik per sekolah
	KelasNama    string `gorm:"column:kelas_nama;type:text;not null;uniqueIndex:uq_kelas_school_nama" json:"kelas_nama"`
	KelasTingkat int16  `gorm:"column:kelas_tingkat;type:smallint;not null" json:"kelas_tingkat"` // 10..12

	// SPP bulanan default untuk kelas ini
	KelasSppBulananIDR int `gorm:"column:kelas_spp_bulanan_idr;not null;default:0;check:kelas_spp_bulanan_idr >= 0" json:"kelas_spp_bulanan_idr"`

	KelasCreatedAt time.Time      `gorm:"column:kelas_created_at;autoCreateTime" json:"kelas_created_at"`
	KelasUpdatedAt *time.Time     `gorm:"column:kelas_updated_at;autoUpdateTime" json:"kelas_updated_at,omitempty"`
	KelasDeletedAt gorm.DeletedAt `gorm:"column:kelas_deleted_at;index" json:"kelas_deleted_at,omitempty"`
}

func (KelasModel) TableName() string { return "kelas" }
