// internals/features/payment/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/payment/payments/model"
)

/* =============== REQUESTS =============== */

// Bayar tagihan SPP: payment_spp_item_id diisi, amount/title dari item.
// Pembayaran lepas: payment_spp_item_id kosong, title + amount wajib.
type CreatePaymentRequest struct {
	PaymentSppItemID *uuid.UUID `json:"payment_spp_item_id" validate:"omitempty"`
	PaymentTitle     *string    `json:"payment_title"       validate:"omitempty,min=3"`
	PaymentAmountIDR *int       `json:"payment_amount_idr"  validate:"omitempty,gt=0"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID          uuid.UUID       `json:"payment_id"`
	PaymentOrderID     string          `json:"payment_order_id"`
	PaymentSchoolID    uuid.UUID       `json:"payment_school_id"`
	PaymentUserID      *uuid.UUID      `json:"payment_user_id,omitempty"`
	PaymentSppItemID   *uuid.UUID      `json:"payment_spp_item_id,omitempty"`
	PaymentType        m.PaymentType   `json:"payment_type"`
	PaymentTitle       string          `json:"payment_title"`
	PaymentAmountIDR   int             `json:"payment_amount_idr"`
	PaymentStatus      m.PaymentStatus `json:"payment_status"`
	PaymentMethod      *string         `json:"payment_method,omitempty"`
	PaymentSnapToken   *string         `json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string         `json:"payment_redirect_url,omitempty"`
	PaymentPaidAt      *time.Time      `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt   time.Time       `json:"payment_created_at"`
}

func FromModel(x m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:          x.PaymentID,
		PaymentOrderID:     x.PaymentOrderID,
		PaymentSchoolID:    x.PaymentSchoolID,
		PaymentUserID:      x.PaymentUserID,
		PaymentSppItemID:   x.PaymentSppItemID,
		PaymentType:        x.PaymentType,
		PaymentTitle:       x.PaymentTitle,
		PaymentAmountIDR:   x.PaymentAmountIDR,
		PaymentStatus:      x.PaymentStatus,
		PaymentMethod:      x.PaymentMethod,
		PaymentSnapToken:   x.PaymentSnapToken,
		PaymentRedirectURL: x.PaymentRedirectURL,
		PaymentPaidAt:      x.PaymentPaidAt,
		PaymentCreatedAt:   x.PaymentCreatedAt,
	}
}

func FromModels(list []m.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
