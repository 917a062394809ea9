package dto_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	dto "sekolahku_backend/internals/features/payment/spp/dto"
	m "sekolahku_backend/internals/features/payment/spp/model"
)

func TestCreateToModelMembawaTenant(t *testing.T) {
	schoolID := uuid.New()
	kelasID := uuid.New()
	req := dto.CreateSppBillingRequest{
		SppBillingKelasID: kelasID,
		SppBillingBulan:   7,
		SppBillingTahun:   2026,
		SppBillingTitle:   "SPP Juli 2026",
	}

	mo := req.ToModel(schoolID)
	require.Equal(t, schoolID, mo.SppBillingSchoolID)
	require.Equal(t, kelasID, mo.SppBillingKelasID)
	require.EqualValues(t, 7, mo.SppBillingBulan)
	require.EqualValues(t, 2026, mo.SppBillingTahun)
}

func TestUpdateApplyToPartial(t *testing.T) {
	due := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	mo := m.SppBillingModel{
		SppBillingTitle: "SPP Juli 2026",
		SppBillingBulan: 7,
		SppBillingTahun: 2026,
	}

	title := "SPP Juli 2026 (revisi)"
	dto.UpdateSppBillingRequest{
		SppBillingTitle:   &title,
		SppBillingDueDate: &due,
	}.ApplyTo(&mo)

	require.Equal(t, title, mo.SppBillingTitle)
	require.Equal(t, due, *mo.SppBillingDueDate)
	// Periode tidak boleh berubah lewat update
	require.EqualValues(t, 7, mo.SppBillingBulan)
	require.EqualValues(t, 2026, mo.SppBillingTahun)
}
