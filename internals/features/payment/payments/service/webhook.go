package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "sekolahku_backend/internals/features/payment/payments/model"
	sppModel "sekolahku_backend/internals/features/payment/spp/model"
)

var ErrInvalidSignature = errors.New("signature key tidak valid")

// MidtransSignature menghitung signature notifikasi:
// sha512(order_id + status_code + gross_amount + server_key).
func MidtransSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

/* ==========================
   Notification store
========================== */

// NotificationStore abstraksi akses data jalur webhook. Produksi memakai
// gorm (NewGormNotificationStore); test bisa memasang fake.
type NotificationStore interface {
	FindPaymentByOrderID(orderID string) (*paymentModel.PaymentModel, error)
	ServerKeyForSchool(schoolID uuid.UUID) (string, error)
	SavePaymentStatus(p *paymentModel.PaymentModel, markItemPaid bool) error
}

type gormNotificationStore struct{ db *gorm.DB }

func NewGormNotificationStore(db *gorm.DB) NotificationStore { return gormNotificationStore{db: db} }

func (s gormNotificationStore) FindPaymentByOrderID(orderID string) (*paymentModel.PaymentModel, error) {
	var payment paymentModel.PaymentModel
	if err := s.db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s gormNotificationStore) ServerKeyForSchool(schoolID uuid.UUID) (string, error) {
	_, serverKey, err := resolveSnapClient(s.db, schoolID)
	return serverKey, err
}

func (s gormNotificationStore) SavePaymentStatus(p *paymentModel.PaymentModel, markItemPaid bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			log.Println("[ERROR] Gagal menyimpan status payment:", err)
			return err
		}

		// Tagihan SPP terkait ikut lunas
		if markItemPaid && p.PaymentSppItemID != nil {
			if err := tx.Model(&sppModel.SppBillingItemModel{}).
				Where("spp_billing_item_id = ?", *p.PaymentSppItemID).
				Updates(map[string]interface{}{
					"spp_billing_item_status":  sppModel.SppItemPaid,
					"spp_billing_item_paid_at": p.PaymentPaidAt,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// HandlePaymentNotification memproses notifikasi Midtrans. Idempoten:
// replay notifikasi yang sama tidak mengubah status final.
func HandlePaymentNotification(db *gorm.DB, body map[string]interface{}) error {
	return ProcessPaymentNotification(NewGormNotificationStore(db), body)
}

func ProcessPaymentNotification(store NotificationStore, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	statusCode, ok3 := body["status_code"].(string)
	grossAmount, ok4 := body["gross_amount"].(string)
	signatureKey, ok5 := body["signature_key"].(string)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	payment, err := store.FindPaymentByOrderID(orderID)
	if err != nil {
		log.Println("[ERROR] Payment tidak ditemukan:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	// Verifikasi signature dengan server key sekolah ybs (atau global)
	serverKey, err := store.ServerKeyForSchool(payment.PaymentSchoolID)
	if err != nil {
		return err
	}
	if MidtransSignature(orderID, statusCode, grossAmount, serverKey) != signatureKey {
		log.Println("[WARN] Signature webhook tidak cocok untuk order:", orderID)
		return ErrInvalidSignature
	}

	// Status final tidak diproses ulang (replay)
	if payment.PaymentStatus == paymentModel.PaymentPaid {
		log.Println("[INFO] Order sudah paid, notifikasi diabaikan:", orderID)
		return nil
	}

	markItemPaid := false
	switch status {
	case "capture", "settlement":
		now := time.Now()
		payment.PaymentStatus = paymentModel.PaymentPaid
		payment.PaymentPaidAt = &now
		markItemPaid = true
	case "expire":
		payment.PaymentStatus = paymentModel.PaymentExpired
	case "cancel", "deny":
		payment.PaymentStatus = paymentModel.PaymentCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if method, ok := body["payment_type"].(string); ok && method != "" {
		payment.PaymentMethod = &method
	}
	if raw, err := sonic.Marshal(body); err == nil {
		payment.PaymentRawNotif = raw
	}

	return store.SavePaymentStatus(payment, markItemPaid)
}
