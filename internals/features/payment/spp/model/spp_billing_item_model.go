package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SppItemStatus string

const (
	SppItemUnpaid   SppItemStatus = "unpaid"
	SppItemPaid     SppItemStatus = "paid"
	SppItemCanceled SppItemStatus = "canceled"
)

// Tagihan SPP per siswa, digenerate dari header batch.
type SppBillingItemModel struct {
	SppBillingItemID uuid.UUID `gorm:"column:spp_billing_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"spp_billing_item_id"`

	SppBillingItemBillingID uuid.UUID `gorm:"column:spp_billing_item_billing_id;type:uuid;not null;uniqueIndex:uq_spp_item_billing_siswa" json:"spp_billing_item_billing_id"`
	SppBillingItemSiswaID   uuid.UUID `gorm:"column:spp_billing_item_siswa_id;type:uuid;not null;uniqueIndex:uq_spp_item_billing_siswa" json:"spp_billing_item_siswa_id"`

	SppBillingItemAmountIDR int           `gorm:"column:spp_billing_item_amount_idr;not null;check:spp_billing_item_amount_idr >= 0" json:"spp_billing_item_amount_idr"`
	SppBillingItemStatus    SppItemStatus `gorm:"column:spp_billing_item_status;type:varchar(20);not null;default:unpaid;index:idx_spp_item_status" json:"spp_billing_item_status"`
	SppBillingItemPaidAt    *time.Time    `gorm:"column:spp_billing_item_paid_at" json:"spp_billing_item_paid_at,omitempty"`
	SppBillingItemNote      *string       `gorm:"column:spp_billing_item_note;type:text" json:"spp_billing_item_note,omitempty"`

	SppBillingItemCreatedAt time.Time      `gorm:"column:spp_billing_item_created_at;autoCreateTime" json:"spp_billing_item_created_at"`
	SppBillingItemUpdatedAt *time.Time     `gorm:"column:spp_billing_item_updated_at;autoUpdateTime" json:"spp_billing_item_updated_at,omitempty"`
	SppBillingItemDeletedAt gorm.DeletedAt `gorm:"column:spp_billing_item_deleted_at;index" json:"spp_billing_item_deleted_at,omitempty"`
}

func (SppBillingItemModel) TableName() string { return "spp_billing_items" }
