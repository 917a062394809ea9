package service_test

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	paymentModel "sekolahku_backend/internals/features/payment/payments/model"
	service "sekolahku_backend/internals/features/payment/payments/service"
)

func TestMidtransSignatureCocokDenganSkemaGateway(t *testing.T) {
	orderID := "PAY-2bVJnQxLm0abc"
	statusCode := "200"
	grossAmount := "350000.00"
	serverKey := "SB-Mid-server-abcdef"

	// sha512(order_id + status_code + gross_amount + server_key)
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	want := hex.EncodeToString(sum[:])

	got := service.MidtransSignature(orderID, statusCode, grossAmount, serverKey)
	require.Equal(t, want, got)
}

func TestMidtransSignatureBedaServerKey(t *testing.T) {
	a := service.MidtransSignature("PAY-1", "200", "1000.00", "key-satu")
	b := service.MidtransSignature("PAY-1", "200", "1000.00", "key-dua")
	require.NotEqual(t, a, b)
}

func TestMidtransSignatureSensitifTerhadapAmount(t *testing.T) {
	a := service.MidtransSignature("PAY-1", "200", "1000.00", "key")
	b := service.MidtransSignature("PAY-1", "200", "1000.01", "key")
	require.NotEqual(t, a, b)
}

/* ==========================
   Notifikasi (fake store)
========================== */

// fakeNotificationStore merekam save supaya idempotensi bisa diuji.
type fakeNotificationStore struct {
	payment   *paymentModel.PaymentModel
	serverKey string

	saveCount  int
	lastMarked bool
}

func (f *fakeNotificationStore) FindPaymentByOrderID(orderID string) (*paymentModel.PaymentModel, error) {
	return f.payment, nil
}

func (f *fakeNotificationStore) ServerKeyForSchool(schoolID uuid.UUID) (string, error) {
	return f.serverKey, nil
}

func (f *fakeNotificationStore) SavePaymentStatus(p *paymentModel.PaymentModel, markItemPaid bool) error {
	f.saveCount++
	f.lastMarked = markItemPaid
	return nil
}

func notifBody(orderID, status, statusCode, grossAmount, serverKey string) map[string]interface{} {
	return map[string]interface{}{
		"order_id":           orderID,
		"transaction_status": status,
		"status_code":        statusCode,
		"gross_amount":       grossAmount,
		"signature_key":      service.MidtransSignature(orderID, statusCode, grossAmount, serverKey),
		"payment_type":       "bank_transfer",
	}
}

func pendingPayment(orderID string) *paymentModel.PaymentModel {
	itemID := uuid.New()
	return &paymentModel.PaymentModel{
		PaymentID:        uuid.New(),
		PaymentOrderID:   orderID,
		PaymentSchoolID:  uuid.New(),
		PaymentSppItemID: &itemID,
		PaymentType:      paymentModel.PaymentTypeSPP,
		PaymentTitle:     "SPP Januari",
		PaymentAmountIDR: 350000,
		PaymentStatus:    paymentModel.PaymentPending,
	}
}

func TestNotifikasiSettlementMenandaiLunas(t *testing.T) {
	store := &fakeNotificationStore{
		payment:   pendingPayment("PAY-abc"),
		serverKey: "SB-Mid-server-abcdef",
	}

	err := service.ProcessPaymentNotification(store,
		notifBody("PAY-abc", "settlement", "200", "350000.00", store.serverKey))
	require.NoError(t, err)

	require.Equal(t, paymentModel.PaymentPaid, store.payment.PaymentStatus)
	require.NotNil(t, store.payment.PaymentPaidAt)
	require.Equal(t, 1, store.saveCount)
	require.True(t, store.lastMarked, "item SPP terkait harus ikut lunas")
	require.NotNil(t, store.payment.PaymentMethod)
	require.Equal(t, "bank_transfer", *store.payment.PaymentMethod)
}

func TestNotifikasiReplaySetelahLunasDiabaikan(t *testing.T) {
	store := &fakeNotificationStore{
		payment:   pendingPayment("PAY-abc"),
		serverKey: "SB-Mid-server-abcdef",
	}
	body := notifBody("PAY-abc", "settlement", "200", "350000.00", store.serverKey)

	require.NoError(t, service.ProcessPaymentNotification(store, body))
	require.Equal(t, 1, store.saveCount)

	// Replay: status sudah final, tidak boleh ada save kedua
	require.NoError(t, service.ProcessPaymentNotification(store, body))
	require.Equal(t, 1, store.saveCount)
	require.Equal(t, paymentModel.PaymentPaid, store.payment.PaymentStatus)
}

func TestNotifikasiSignatureSalahDitolak(t *testing.T) {
	store := &fakeNotificationStore{
		payment:   pendingPayment("PAY-abc"),
		serverKey: "SB-Mid-server-abcdef",
	}

	// Signature dihitung dengan server key lain
	body := notifBody("PAY-abc", "settlement", "200", "350000.00", "key-penyerang")

	err := service.ProcessPaymentNotification(store, body)
	require.ErrorIs(t, err, service.ErrInvalidSignature)
	require.Equal(t, 0, store.saveCount)
	require.Equal(t, paymentModel.PaymentPending, store.payment.PaymentStatus)
}

func TestNotifikasiExpireTanpaTandaiItem(t *testing.T) {
	store := &fakeNotificationStore{
		payment:   pendingPayment("PAY-abc"),
		serverKey: "SB-Mid-server-abcdef",
	}

	err := service.ProcessPaymentNotification(store,
		notifBody("PAY-abc", "expire", "407", "350000.00", store.serverKey))
	require.NoError(t, err)

	require.Equal(t, paymentModel.PaymentExpired, store.payment.PaymentStatus)
	require.Equal(t, 1, store.saveCount)
	require.False(t, store.lastMarked)
}

func TestNotifikasiPayloadTidakLengkapDitolak(t *testing.T) {
	store := &fakeNotificationStore{serverKey: "key"}

	err := service.ProcessPaymentNotification(store, map[string]interface{}{
		"order_id": "PAY-abc",
	})
	require.Error(t, err)
	require.Equal(t, 0, store.saveCount)
}
