// internals/features/school/referensi/dto/kelas_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/referensi/model"
)

/* =============== REQUESTS =============== */

type CreateKelasRequest struct {
	KelasJurusanID     *uuid.UUID `json:"kelas_jurusan_id"      validate:"omitempty"`
	KelasNama          string     `json:"kelas_nama"            validate:"required,min=1"`
	KelasTingkat       int16      `json:"kelas_tingkat"         validate:"required,min=1,max=13"`
	KelasSppBulananIDR int        `json:"kelas_spp_bulanan_idr" validate:"omitempty,gte=0"`
}

func (r CreateKelasRequest) ToModel(schoolID uuid.UUID) *m.KelasModel {
	return &m.KelasModel{
		KelasSchoolID:      schoolID,
		KelasJurusanID:     r.KelasJurusanID,
		KelasNama:          r.KelasNama,
		KelasTingkat:       r.KelasTingkat,
		KelasSppBulananIDR: r.KelasSppBulananIDR,
	}
}

type UpdateKelasRequest struct {
	KelasJurusanID     *uuid.UUID `json:"kelas_jurusan_id"      validate:"omitempty"`
	KelasNama          *string    `json:"kelas_nama"            validate:"omitempty,min=1"`
	KelasTingkat       *int16     `json:"kelas_tingkat"         validate:"omitempty,min=1,max=13"`
	KelasSppBulananIDR *int       `json:"kelas_spp_bulanan_idr" validate:"omitempty,gte=0"`
}

func (r UpdateKelasRequest) ApplyTo(mo *m.KelasModel) {
	if r.KelasJurusanID != nil {
		mo.KelasJurusanID = r.KelasJurusanID
	}
	if r.KelasNama != nil {
		mo.KelasNama = *r.KelasNama
	}
	if r.KelasTingkat != nil {
		mo.KelasTingkat = *r.KelasTingkat
	}
	if r.KelasSppBulananIDR != nil {
		mo.KelasSppBulananIDR = *r.KelasSppBulananIDR
	}
}

/* =============== RESPONSES =============== */

type KelasResponse struct {
	KelasID            uuid.UUID  `json:"kelas_id"`
	KelasSchoolID      uuid.UUID  `json:"kelas_school_id"`
	KelasJurusanID     *uuid.UUID `json:"kelas_jurusan_id,omitempty"`
	KelasNama          string     `json:"kelas_nama"`
	KelasTingkat       int16      `json:"kelas_tingkat"`
	KelasSppBulananIDR int        `json:"kelas_spp_bulanan_idr"`
	KelasCreatedAt     time.Time  `json:"kelas_created_at"`
	KelasUpdatedAt     *time.Time `json:"kelas_updated_at,omitempty"`
}

func FromKelasModel(x m.KelasModel) KelasResponse {
	return KelasResponse{
		KelasID:            x.KelasID,
		KelasSchoolID:      x.KelasSchoolID,
		KelasJurusanID:     x.KelasJurusanID,
		KelasNama:          x.KelasNama,
		KelasTingkat:       x.KelasTingkat,
		KelasSppBulananIDR: x.KelasSppBulananIDR,
		KelasCreatedAt:     x.KelasCreatedAt,
		KelasUpdatedAt:     x.KelasUpdatedAt,
	}
}

func FromKelasModels(list []m.KelasModel) []KelasResponse {
	out := make([]KelasResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromKelasModel(it))
	}
	return out
}
