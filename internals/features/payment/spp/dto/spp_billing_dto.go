// internals/features/payment/spp/dto/spp_billing_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/payment/spp/model"
)

/* =============== REQUESTS =============== */

// Create
type CreateSppBillingRequest struct {
	SppBillingKelasID uuid.UUID `json:"spp_billing_kelas_id" validate:"required"`

	SppBillingBulan int16  `json:"spp_billing_bulan" validate:"required,min=1,max=12"`
	SppBillingTahun int16  `json:"spp_billing_tahun" validate:"required,gte=2000,lte=2100"`
	SppBillingTitle string `json:"spp_billing_title" validate:"required,min=3"`

	SppBillingDueDate *time.Time `json:"spp_billing_due_date" validate:"omitempty"`
	SppBillingNote    *string    `json:"spp_billing_note"     validate:"omitempty"`
}

func (r CreateSppBillingRequest) ToModel(schoolID uuid.UUID) *m.SppBillingModel {
	return &m.SppBillingModel{
		SppBillingSchoolID: schoolID,
		SppBillingKelasID:  r.SppBillingKelasID,
		SppBillingBulan:    r.SppBillingBulan,
		SppBillingTahun:    r.SppBillingTahun,
		SppBillingTitle:    r.SppBillingTitle,
		SppBillingDueDate:  r.SppBillingDueDate,
		SppBillingNote:     r.SppBillingNote,
	}
}

// Update (partial)
type UpdateSppBillingRequest struct {
	SppBillingTitle   *string    `json:"spp_billing_title"    validate:"omitempty,min=1"`
	SppBillingDueDate *time.Time `json:"spp_billing_due_date" validate:"omitempty"`
	SppBillingNote    *string    `json:"spp_billing_note"     validate:"omitempty"`
}

func (r UpdateSppBillingRequest) ApplyTo(mo *m.SppBillingModel) {
	if r.SppBillingTitle != nil {
		mo.SppBillingTitle = *r.SppBillingTitle
	}
	if r.SppBillingDueDate != nil {
		mo.SppBillingDueDate = r.SppBillingDueDate
	}
	if r.SppBillingNote != nil {
		mo.SppBillingNote = r.SppBillingNote
	}
}

/* =============== RESPONSES =============== */

type SppBillingResponse struct {
	SppBillingID       uuid.UUID  `json:"spp_billing_id"`
	SppBillingSchoolID uuid.UUID  `json:"spp_billing_school_id"`
	SppBillingKelasID  uuid.UUID  `json:"spp_billing_kelas_id"`
	SppBillingBulan    int16      `json:"spp_billing_bulan"`
	SppBillingTahun    int16      `json:"spp_billing_tahun"`
	SppBillingTitle    string     `json:"spp_billing_title"`
	SppBillingDueDate  *time.Time `json:"spp_billing_due_date,omitempty"`
	SppBillingNote     *string    `json:"spp_billing_note,omitempty"`

	SppBillingCreatedAt time.Time  `json:"spp_billing_created_at"`
	SppBillingUpdatedAt *time.Time `json:"spp_billing_updated_at,omitempty"`
}

func FromModel(x m.SppBillingModel) SppBillingResponse {
	return SppBillingResponse{
		SppBillingID:        x.SppBillingID,
		SppBillingSchoolID:  x.SppBillingSchoolID,
		SppBillingKelasID:   x.SppBillingKelasID,
		SppBillingBulan:     x.SppBillingBulan,
		SppBillingTahun:     x.SppBillingTahun,
		SppBillingTitle:     x.SppBillingTitle,
		SppBillingDueDate:   x.SppBillingDueDate,
		SppBillingNote:      x.SppBillingNote,
		SppBillingCreatedAt: x.SppBillingCreatedAt,
		SppBillingUpdatedAt: x.SppBillingUpdatedAt,
	}
}

func FromModels(list []m.SppBillingModel) []SppBillingResponse {
	out := make([]SppBillingResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

/* =============== ITEM RESPONSES =============== */

type SppBillingItemResponse struct {
	SppBillingItemID        uuid.UUID       `json:"spp_billing_item_id"`
	SppBillingItemBillingID uuid.UUID       `json:"spp_billing_item_billing_id"`
	SppBillingItemSiswaID   uuid.UUID       `json:"spp_billing_item_siswa_id"`
	SppBillingItemAmountIDR int             `json:"spp_billing_item_amount_idr"`
	SppBillingItemStatus    m.SppItemStatus `json:"spp_billing_item_status"`
	SppBillingItemPaidAt    *time.Time      `json:"spp_billing_item_paid_at,omitempty"`
	SppBillingItemNote      *string         `json:"spp_billing_item_note,omitempty"`
	SppBillingItemCreatedAt time.Time       `json:"spp_billing_item_created_at"`
}

func FromItemModel(x m.SppBillingItemModel) SppBillingItemResponse {
	return SppBillingItemResponse{
		SppBillingItemID:        x.SppBillingItemID,
		SppBillingItemBillingID: x.SppBillingItemBillingID,
		SppBillingItemSiswaID:   x.SppBillingItemSiswaID,
		SppBillingItemAmountIDR: x.SppBillingItemAmountIDR,
		SppBillingItemStatus:    x.SppBillingItemStatus,
		SppBillingItemPaidAt:    x.SppBillingItemPaidAt,
		SppBillingItemNote:      x.SppBillingItemNote,
		SppBillingItemCreatedAt: x.SppBillingItemCreatedAt,
	}
}

func FromItemModels(list []m.SppBillingItemModel) []SppBillingItemResponse {
	out := make([]SppBillingItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromItemModel(it))
	}
	return out
}
