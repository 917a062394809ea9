// internals/features/users/people/dto/anggota_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/users/people/model"
)

type CreateAnggotaRequest struct {
	AnggotaNomor    string     `json:"anggota_nomor"     validate:"required,min=2,max=30"`
	AnggotaNama     string     `json:"anggota_nama"      validate:"required,min=2"`
	AnggotaJabatan  *string    `json:"anggota_jabatan"   validate:"omitempty,min=2"`
	AnggotaPhone    *string    `json:"anggota_phone"     validate:"omitempty,min=6,max=20"`
	AnggotaJoinedAt *time.Time `json:"anggota_joined_at" validate:"omitempty"`
	AnggotaUserID   *uuid.UUID `json:"anggota_user_id"   validate:"omitempty"`
}

func (r CreateAnggotaRequest) ToModel(schoolID uuid.UUID) *m.AnggotaModel {
	return &m.AnggotaModel{
		AnggotaSchoolID: schoolID,
		AnggotaUserID:   r.AnggotaUserID,
		AnggotaNomor:    r.AnggotaNomor,
		AnggotaNama:     r.AnggotaNama,
		AnggotaJabatan:  r.AnggotaJabatan,
		AnggotaPhone:    r.AnggotaPhone,
		AnggotaJoinedAt: r.AnggotaJoinedAt,
		AnggotaStatus:   m.AnggotaAktif,
	}
}

type UpdateAnggotaRequest struct {
	AnggotaNomor    *string          `json:"anggota_nomor"     validate:"omitempty,min=2,max=30"`
	AnggotaNama     *string          `json:"anggota_nama"      validate:"omitempty,min=2"`
	AnggotaJabatan  *string          `json:"anggota_jabatan"   validate:"omitempty,min=2"`
	AnggotaPhone    *string          `json:"anggota_phone"     validate:"omitempty,min=6,max=20"`
	AnggotaJoinedAt *time.Time       `json:"anggota_joined_at" validate:"omitempty"`
	AnggotaStatus   *m.AnggotaStatus `json:"anggota_status"    validate:"omitempty,oneof=aktif nonaktif"`
}

func (r UpdateAnggotaRequest) ApplyTo(mo *m.AnggotaModel) {
	if r.AnggotaNomor != nil {
		mo.AnggotaNomor = *r.AnggotaNomor
	}
	if r.AnggotaNama != nil {
		mo.AnggotaNama = *r.AnggotaNama
	}
	if r.AnggotaJabatan != nil {
		mo.AnggotaJabatan = r.AnggotaJabatan
	}
	if r.AnggotaPhone != nil {
		mo.AnggotaPhone = r.AnggotaPhone
	}
	if r.AnggotaJoinedAt != nil {
		mo.AnggotaJoinedAt = r.AnggotaJoinedAt
	}
	if r.AnggotaStatus != nil {
		mo.AnggotaStatus = *r.AnggotaStatus
	}
}

type AnggotaResponse struct {
	AnggotaID        uuid.UUID       `json:"anggota_id"`
	AnggotaSchoolID  uuid.UUID       `json:"anggota_school_id"`
	AnggotaUserID    *uuid.UUID      `json:"anggota_user_id,omitempty"`
	AnggotaNomor     string          `json:"anggota_nomor"`
	AnggotaNama      string          `json:"anggota_nama"`
	AnggotaJabatan   *string         `json:"anggota_jabatan,omitempty"`
	AnggotaPhone     *string         `json:"anggota_phone,omitempty"`
	AnggotaJoinedAt  *time.Time      `json:"anggota_joined_at,omitempty"`
	AnggotaStatus    m.AnggotaStatus `json:"anggota_status"`
	AnggotaCreatedAt time.Time       `json:"anggota_created_at"`
	AnggotaUpdatedAt *time.Time      `json:"anggota_updated_at,omitempty"`
}

func FromAnggotaModel(x m.AnggotaModel) AnggotaResponse {
	return AnggotaResponse{
		AnggotaID:        x.AnggotaID,
		AnggotaSchoolID:  x.AnggotaSchoolID,
		AnggotaUserID:    x.AnggotaUserID,
		AnggotaNomor:     x.AnggotaNomor,
		AnggotaNama:      x.AnggotaNama,
		AnggotaJabatan:   x.AnggotaJabatan,
		AnggotaPhone:     x.AnggotaPhone,
		AnggotaJoinedAt:  x.AnggotaJoinedAt,
		AnggotaStatus:    x.AnggotaStatus,
		AnggotaCreatedAt: x.AnggotaCreatedAt,
		AnggotaUpdatedAt: x.AnggotaUpdatedAt,
	}
}

func FromAnggotaModels(list []m.AnggotaModel) []AnggotaResponse {
	out := make([]AnggotaResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromAnggotaModel(it))
	}
	return out
}
