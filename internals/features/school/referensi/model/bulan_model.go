package model

import (
	"time"

	"github.com/google/uuid"
)

// Referensi bulan tagihan (1..12). Data global, bukan per sekolah.
type BulanModel struct {
	BulanID uuid.UUID `gorm:"column:bulan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bulan_id"`

	BulanNomor int16  `gorm:"column:bulan_nomor;type:smallint;not null;uniqueIndex:uq_bulan_nomor" json:"bulan_nomor"` // 1..12
	BulanNama  string `gorm:"column:bulan_nama;type:varchar(20);not null" json:"bulan_nama"`

	BulanCreatedAt time.Time  `gorm:"column:bulan_created_at;autoCreateTime" json:"bulan_created_at"`
	BulanUpdatedAt *time.Time `gorm:"column:bulan_updated_at;autoUpdateTime" json:"bulan_updated_at,omitempty"`
}

func (BulanModel) TableName() string { return "bulan" }
