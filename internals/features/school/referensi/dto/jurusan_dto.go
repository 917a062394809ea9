// internals/features/school/referensi/dto/jurusan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/referensi/model"
)

/* =============== REQUESTS =============== */

type CreateJurusanRequest struct {
	JurusanKode string `json:"jurusan_kode" validate:"required,min=1,max=20"`
	JurusanNama string `json:"jurusan_nama" validate:"required,min=2"`
}

func (r CreateJurusanRequest) ToModel(schoolID uuid.UUID) *m.JurusanModel {
	return &m.JurusanModel{
		JurusanSchoolID: schoolID,
		JurusanKode:     r.JurusanKode,
		JurusanNama:     r.JurusanNama,
	}
}

type UpdateJurusanRequest struct {
	JurusanKode *string `json:"jurusan_kode" validate:"omitempty,min=1,max=20"`
	JurusanNama *string `json:"jurusan_nama" validate:"omitempty,min=2"`
}

func (r UpdateJurusanRequest) ApplyTo(mo *m.JurusanModel) {
	if r.JurusanKode != nil {
		mo.JurusanKode = *r.JurusanKode
	}
	if r.JurusanNama != nil {
		mo.JurusanNama = *r.JurusanNama
	}
}

/* =============== RESPONSES =============== */

type JurusanResponse struct {
	JurusanID        uuid.UUID  `json:"jurusan_id"`
	JurusanSchoolID  uuid.UUID  `json:"jurusan_school_id"`
	JurusanKode      string     `json:"jurusan_kode"`
	JurusanNama      string     `json:"jurusan_nama"`
	JurusanCreatedAt time.Time  `json:"jurusan_created_at"`
	JurusanUpdatedAt *time.Time `json:"jurusan_updated_at,omitempty"`
}

func FromJurusanModel(x m.JurusanModel) JurusanResponse {
	return JurusanResponse{
		JurusanID:        x.JurusanID,
		JurusanSchoolID:  x.JurusanSchoolID,
		JurusanKode:      x.JurusanKode,
		JurusanNama:      x.JurusanNama,
		JurusanCreatedAt: x.JurusanCreatedAt,
		JurusanUpdatedAt: x.JurusanUpdatedAt,
	}
}

func FromJurusanModels(list []m.JurusanModel) []JurusanResponse {
	out := make([]JurusanResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromJurusanModel(it))
	}
	return out
}
