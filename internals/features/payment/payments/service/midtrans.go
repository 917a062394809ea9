package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	paymentModel "sekolahku_backend/internals/features/payment/payments/model"
	settingModel "sekolahku_backend/internals/features/payment/setting/model"
)

// Client global (kredensial env). Sekolah dengan payment_settings sendiri
// memakai client per-request dari resolveSnapClient.
var SnapClient snap.Client

var globalServerKey string

// Panggil saat bootstrap app.
func InitMidtrans(serverKey string, useProd bool) {
	globalServerKey = serverKey
	SnapClient.New(serverKey, envFor(useProd))
}

func envFor(useProd bool) midtrans.EnvironmentType {
	if useProd {
		return midtrans.Production
	}
	return midtrans.Sandbox
}

// resolveSnapClient memilih kredensial: setting sekolah bila ada, selain itu
// client global. Mengembalikan juga server key untuk verifikasi signature.
func resolveSnapClient(db *gorm.DB, schoolID interface{}) (*snap.Client, string, error) {
	var setting settingModel.PaymentSettingModel
	err := db.Where("payment_setting_school_id = ?", schoolID).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if globalServerKey == "" {
				return nil, "", errors.New("kredensial midtrans belum dikonfigurasi")
			}
			return &SnapClient, globalServerKey, nil
		}
		return nil, "", err
	}

	var sc snap.Client
	sc.New(setting.PaymentSettingServerKey, envFor(setting.PaymentSettingUseProd))
	return &sc, setting.PaymentSettingServerKey, nil
}

// GenerateSnapToken membuat transaksi Snap, mengembalikan token + redirect_url.
func GenerateSnapToken(db *gorm.DB, p paymentModel.PaymentModel, name, email string) (string, string, error) {
	sc, _, err := resolveSnapClient(db, p.PaymentSchoolID)
	if err != nil {
		return "", "", err
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: int64(p.PaymentAmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    p.PaymentID.String(),
				Name:  p.PaymentTitle,
				Price: int64(p.PaymentAmountIDR),
				Qty:   1,
			},
		},
	}

	resp, errSnap := sc.CreateTransaction(req)
	if errSnap != nil {
		return "", "", errSnap
	}

	return resp.Token, resp.RedirectURL, nil
}
