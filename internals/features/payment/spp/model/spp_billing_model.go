package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Header batch tagihan SPP bulanan per kelas.
type SppBillingModel struct {
	SppBillingID uuid.UUID `gorm:"column:spp_billing_id;type:uuid;default:gen_random_uuid();primaryKey" json:"spp_billing_id"`

	SppBillingSchoolID uuid.UUID `gorm:"column:spp_billing_school_id;type:uuid;not null;uniqueIndex:uq_spp_billing_periode" json:"spp_billing_school_id"`
	SppBillingKelasID  uuid.UUID `gorm:"column:spp_billing_kelas_id;type:uuid;not null;uniqueIndex:uq_spp_billing_periode" json:"spp_billing_kelas_id"`

	// Periode (bulan mengacu tabel referensi bulan, 1..12)
	SppBillingBulan int16 `gorm:"column:spp_billing_bulan;type:smallint;not null;uniqueIndex:uq_spp_billing_periode" json:"spp_billing_bulan"`
	SppBillingTahun int16 `gorm:"column:spp_billing_tahun;type:smallint;not null;uniqueIndex:uq_spp_billing_periode" json:"spp_billing_tahun"`

	SppBillingTitle   string     `gorm:"column:spp_billing_title;type:text;not null" json:"spp_billing_title"`
	SppBillingDueDate *time.Time `gorm:"column:spp_billing_due_date;type:date" json:"spp_billing_due_date,omitempty"`
	SppBillingNote    *string    `gorm:"column:spp_billing_note;type:text" json:"spp_billing_note,omitempty"`

	SppBillingCreatedAt time.Time      `gorm:"column:spp_billing_created_at;autoCreateTime" json:"spp_billing_created_at"`
	SppBillingUpdatedAt *time.Time     `gorm:"column:spp_billing_updated_at;autoUpdateTime" json:"spp_billing_updated_at,omitempty"`
	SppBillingDeletedAt gorm.DeletedAt `gorm:"column:spp_billing_deleted_at;index" json:"spp_billing_deleted_at,omitempty"`
}

func (SppBillingModel) TableName() string { return "spp_billings" }
