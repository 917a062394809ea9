package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentExpired  PaymentStatus = "expired"
	PaymentCanceled PaymentStatus = "canceled"
)

type PaymentType string

const (
	PaymentTypeSPP     PaymentType = "spp"
	PaymentTypeLainnya PaymentType = "lainnya"
)

// Transaksi pembayaran via Midtrans Snap. Satu baris per order.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	// Order ID yang dikirim ke gateway (PAY-<ksuid>)
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(40);not null;uniqueIndex:uq_payment_order_id" json:"payment_order_id"`

	PaymentSchoolID uuid.UUID  `gorm:"column:payment_school_id;type:uuid;not null;index:idx_payment_school" json:"payment_school_id"`
	PaymentUserID   *uuid.UUID `gorm:"column:payment_user_id;type:uuid;index:idx_payment_user" json:"payment_user_id,omitempty"`

	// Item SPP yang dibayar (NULL untuk pembayaran lepas)
	PaymentSppItemID *uuid.UUID `gorm:"column:payment_spp_item_id;type:uuid;index:idx_payment_spp_item" json:"payment_spp_item_id,omitempty"`

	PaymentType      PaymentType `gorm:"column:payment_type;type:varchar(10);not null;default:lainnya" json:"payment_type"`
	PaymentTitle     string      `gorm:"column:payment_title;type:text;not null" json:"payment_title"`
	PaymentAmountIDR int         `gorm:"column:payment_amount_idr;not null;check:payment_amount_idr > 0" json:"payment_amount_idr"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(10);not null;default:pending;index:idx_payment_status" json:"payment_status"`

	// Metode dari notifikasi gateway (bank_transfer, gopay, ...)
	PaymentMethod *string `gorm:"column:payment_method;type:varchar(30)" json:"payment_method,omitempty"`

	PaymentSnapToken   *string `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string `gorm:"column:payment_redirect_url;type:text" json:"payment_redirect_url,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	// Payload notifikasi terakhir, untuk audit
	PaymentRawNotif datatypes.JSON `gorm:"column:payment_raw_notif;type:jsonb" json:"payment_raw_notif,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time     `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
