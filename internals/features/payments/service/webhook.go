package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"beasiswaku_backend/internals/features/payments/model"
	userModel "beasiswaku_backend/internals/features/users/user/model"
)

// Masa berlaku premium per pembayaran sukses.
const PremiumDuration = 365 * 24 * time.Hour

var ErrPaymentNotFound = errors.New("payment tidak ditemukan untuk order_id tersebut")

// MidtransNotification: payload webhook Midtrans. Field lain di payload aman diabaikan.
type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, refund, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

// VerifySignature — SHA512(order_id + status_code + gross_amount + ServerKey)
func VerifySignature(n MidtransNotification, serverKey string) bool {
	want := strings.ToLower(n.SignatureKey)
	if want == "" {
		return false
	}
	raw := n.OrderID + n.StatusCode + n.GrossAmount + serverKey
	sum := sha512.Sum512([]byte(raw))
	return hex.EncodeToString(sum[:]) == want
}

// MapNotificationStatus memetakan status Midtrans → status internal.
// capture hanya dianggap sukses kalau fraud_status=accept.
func MapNotificationStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "settlement":
		return model.PaymentStatusPaid
	case "capture":
		if fraudStatus == "accept" {
			return model.PaymentStatusPaid
		}
		return model.PaymentStatusPending
	case "pending":
		return model.PaymentStatusPending
	case "expire":
		return model.PaymentStatusExpired
	case "cancel":
		return model.PaymentStatusCancelled
	case "deny", "failure":
		return model.PaymentStatusFailed
	default:
		return model.PaymentStatusPending
	}
}

// ApplyNotification update payment + grant premium dalam satu transaksi.
// Idempotent: payment yang sudah paid tidak diproses dua kali.
func ApplyNotification(db *gorm.DB, n MidtransNotification) (*model.PaymentModel, error) {
	var p model.PaymentModel
	if err := db.First(&p, "payment_order_id = ?", n.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	newStatus := MapNotificationStatus(n.TransactionStatus, n.FraudStatus)

	// webhook Midtrans bisa datang berulang untuk transaksi yang sama
	if p.PaymentStatus == model.PaymentStatusPaid {
		return &p, nil
	}
	if newStatus == p.PaymentStatus && n.TransactionID == "" {
		return &p, nil
	}

	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		p.PaymentStatus = newStatus
		if n.TransactionID != "" {
			ref := n.TransactionID
			p.PaymentGatewayReference = &ref
		}
		if newStatus == model.PaymentStatusPaid {
			p.PaymentPaidAt = &now
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}

		if newStatus == model.PaymentStatusPaid {
			return grantPremium(tx, p, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// grantPremium: nyalakan flag premium + perpanjang premium_until 1 tahun.
// Kalau masih ada sisa masa aktif, perpanjangan dihitung dari situ.
func grantPremium(tx *gorm.DB, p model.PaymentModel, now time.Time) error {
	var user userModel.UserModel
	if err := tx.First(&user, "id = ?", p.PaymentUserID).Error; err != nil {
		return err
	}

	base := now
	if user.PremiumUntil != nil && user.PremiumUntil.After(now) {
		base = *user.PremiumUntil
	}
	until := base.Add(PremiumDuration)

	return tx.Model(&userModel.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"is_premium":    true,
			"premium_until": until,
		}).Error
}
