package dto_test

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	dto "sekolahku_backend/internals/features/ppdb/dto"
	model "sekolahku_backend/internals/features/ppdb/model"
)

func TestRegisterToModelStatusPending(t *testing.T) {
	req := dto.RegisterPPDBRequest{
		PPDBSchoolID: uuid.New(),
		PPDBNama:     "Siti Rahma",
		PPDBEmail:    "siti@example.com",
		PPDBPhone:    "081234567890",
	}

	m := req.ToModel("PPDB-2bVJnQxLm0abc")
	require.Equal(t, model.PPDBPending, m.PPDBStatus)
	require.Equal(t, "PPDB-2bVJnQxLm0abc", m.PPDBRegNo)
	require.Equal(t, req.PPDBSchoolID, m.PPDBSchoolID)
}

// Cek status publik tidak membocorkan kontak & catatan internal.
func TestStatusResponseTanpaDataKontak(t *testing.T) {
	catatan := "nilai ujian kurang"
	m := model.PPDBModel{
		PPDBRegNo:   "PPDB-xyz",
		PPDBNama:    "Siti Rahma",
		PPDBEmail:   "siti@example.com",
		PPDBPhone:   "081234567890",
		PPDBStatus:  model.PPDBRejected,
		PPDBCatatan: &catatan,
	}

	raw, err := sonic.Marshal(dto.ToStatusResponse(m))
	require.NoError(t, err)

	s := string(raw)
	require.Contains(t, s, "PPDB-xyz")
	require.Contains(t, s, "rejected")
	require.NotContains(t, s, "siti@example.com")
	require.NotContains(t, s, "081234567890")
	require.NotContains(t, s, "nilai ujian kurang")
}
