package model

import (
	"time"

	"github.com/google/uuid"
)

// Kredensial Midtrans per sekolah. Kosong → pakai kredensial global dari env.
type PaymentSettingModel struct {
	PaymentSettingID uuid.UUID `gorm:"column:payment_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_setting_id"`

	PaymentSettingSchoolID uuid.UUID `gorm:"column:payment_setting_school_id;type:uuid;not null;uniqueIndex:uq_payment_setting_school" json:"payment_setting_school_id"`

	PaymentSettingServerKey string `gorm:"column:payment_setting_server_key;type:text;not null" json:"-"`
	PaymentSettingClientKey string `gorm:"column:payment_setting_client_key;type:text;not null" json:"payment_setting_client_key"`

	PaymentSettingUseProd bool `gorm:"column:payment_setting_use_prod;not null;default:false" json:"payment_setting_use_prod"`

	PaymentSettingCreatedAt time.Time  `gorm:"column:payment_setting_created_at;autoCreateTime" json:"payment_setting_created_at"`
	PaymentSettingUpdatedAt *time.Time `gorm:"column:payment_setting_updated_at;autoUpdateTime" json:"payment_setting_updated_at,omitempty"`
}

func (PaymentSettingModel) TableName() string { return "payment_settings" }
