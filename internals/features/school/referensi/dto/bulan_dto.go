// internals/features/school/referensi/dto/bulan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/referensi/model"
)

type CreateBulanRequest struct {
	BulanNomor int16  `json:"bulan_nomor" validate:"required,min=1,max=12"`
	BulanNama  string `json:"bulan_nama"  validate:"required,min=3,max=20"`
}

func (r CreateBulanRequest) ToModel() *m.BulanModel {
	return &m.BulanModel{
		BulanNomor: r.BulanNomor,
		BulanNama:  r.BulanNama,
	}
}

type UpdateBulanRequest struct {
	BulanNomor *int16  `json:"bulan_nomor" validate:"omitempty,min=1,max=12"`
	BulanNama  *string `json:"bulan_nama"  validate:"omitempty,min=3,max=20"`
}

func (r UpdateBulanRequest) ApplyTo(mo *m.BulanModel) {
	if r.BulanNomor != nil {
		mo.BulanNomor = *r.BulanNomor
	}
	if r.BulanNama != nil {
		mo.BulanNama = *r.BulanNama
	}
}

type BulanResponse struct {
	BulanID        uuid.UUID  `json:"bulan_id"`
	BulanNomor     int16      `json:"bulan_nomor"`
	BulanNama      string     `json:"bulan_nama"`
	BulanCreatedAt time.Time  `json:"bulan_created_at"`
	BulanUpdatedAt *time.Time `json:"bulan_updated_at,omitempty"`
}

func FromBulanModel(x m.BulanModel) BulanResponse {
	return BulanResponse{
		BulanID:        x.BulanID,
		BulanNomor:     x.BulanNomor,
		BulanNama:      x.BulanNama,
		BulanCreatedAt: x.BulanCreatedAt,
		BulanUpdatedAt: x.BulanUpdatedAt,
	}
}

func FromBulanModels(list []m.BulanModel) []BulanResponse {
	out := make([]BulanResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromBulanModel(it))
	}
	return out
}
