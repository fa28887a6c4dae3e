package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"beasiswaku_backend/internals/features/payments/model"
)

func TestMapNotificationStatus(t *testing.T) {
	tests := []struct {
		transaction, fraud string
		want               string
	}{
		{"settlement", "", model.PaymentStatusPaid},
		{"capture", "accept", model.PaymentStatusPaid},
		// capture dengan fraud challenge belum dianggap sukses
		{"capture", "challenge", model.PaymentStatusPending},
		{"pending", "", model.PaymentStatusPending},
		{"expire", "", model.PaymentStatusExpired},
		{"cancel", "", model.PaymentStatusCancelled},
		{"deny", "", model.PaymentStatusFailed},
		{"failure", "", model.PaymentStatusFailed},
		{"refund", "", model.PaymentStatusPending},
	}

	for _, tt := range tests {
		if got := MapNotificationStatus(tt.transaction, tt.fraud); got != tt.want {
			t.Errorf("MapNotificationStatus(%q, %q) = %q, want %q", tt.transaction, tt.fraud, got, tt.want)
		}
	}
}

func TestVerifySignature(t *testing.T) {
	serverKey := "SB-Mid-server-test"
	n := MidtransNotification{
		OrderID:     "PREMIUM-1700000000000000000",
		StatusCode:  "200",
		GrossAmount: "99000.00",
	}

	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	n.SignatureKey = hex.EncodeToString(sum[:])

	if !VerifySignature(n, serverKey) {
		t.Error("signature valid ditolak")
	}

	n.SignatureKey = "deadbeef"
	if VerifySignature(n, serverKey) {
		t.Error("signature salah diterima")
	}

	n.SignatureKey = ""
	if VerifySignature(n, serverKey) {
		t.Error("signature kosong diterima")
	}
}
