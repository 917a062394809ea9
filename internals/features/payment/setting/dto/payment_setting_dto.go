// internals/features/payment/setting/dto/payment_setting_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/payment/setting/model"
)

type UpsertPaymentSettingRequest struct {
	PaymentSettingServerKey string `json:"payment_setting_server_key" validate:"required,min=10"`
	PaymentSettingClientKey string `json:"payment_setting_client_key" validate:"required,min=10"`
	PaymentSettingUseProd   bool   `json:"payment_setting_use_prod"`
}

func (r UpsertPaymentSettingRequest) ApplyTo(mo *m.PaymentSettingModel) {
	mo.PaymentSettingServerKey = r.PaymentSettingServerKey
	mo.PaymentSettingClientKey = r.PaymentSettingClientKey
	mo.PaymentSettingUseProd = r.PaymentSettingUseProd
}

// Server key tidak pernah ikut response.
type PaymentSettingResponse struct {
	PaymentSettingID        uuid.UUID  `json:"payment_setting_id"`
	PaymentSettingSchoolID  uuid.UUID  `json:"payment_setting_school_id"`
	PaymentSettingClientKey string     `json:"payment_setting_client_key"`
	PaymentSettingUseProd   bool       `json:"payment_setting_use_prod"`
	PaymentSettingCreatedAt time.Time  `json:"payment_setting_created_at"`
	PaymentSettingUpdatedAt *time.Time `json:"payment_setting_updated_at,omitempty"`
}

func FromModel(x m.PaymentSettingModel) PaymentSettingResponse {
	return PaymentSettingResponse{
		PaymentSettingID:        x.PaymentSettingID,
		PaymentSettingSchoolID:  x.PaymentSettingSchoolID,
		PaymentSettingClientKey: x.PaymentSettingClientKey,
		PaymentSettingUseProd:   x.PaymentSettingUseProd,
		PaymentSettingCreatedAt: x.PaymentSettingCreatedAt,
		PaymentSettingUpdatedAt: x.PaymentSettingUpdatedAt,
	}
}
