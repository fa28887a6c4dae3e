package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusExpired   = "expired"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusFailed    = "failed"
)

// PaymentModel: satu transaksi upgrade premium via Midtrans Snap.
// PaymentOrderID dipakai sebagai OrderID Midtrans dan kunci lookup webhook.
type PaymentModel struct {
	PaymentID     uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentUserID uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`

	PaymentOrderID   string `gorm:"column:payment_order_id;type:varchar(64);not null;unique" json:"payment_order_id"`
	PaymentAmountIDR int    `gorm:"column:payment_amount_idr;not null" json:"payment_amount_idr"`
	PaymentStatus    string `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`

	PaymentSnapToken        *string    `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`
	PaymentGatewayReference *string    `gorm:"column:payment_gateway_reference;type:varchar(100)" json:"payment_gateway_reference,omitempty"`
	PaymentPaidAt           *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
