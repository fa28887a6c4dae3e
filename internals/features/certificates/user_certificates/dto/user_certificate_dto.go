package dto

import "time"

type CreateUserCertificateRequest struct {
	CertificateTypeID string    `json:"certificate_type_id" validate:"required,uuid"`
	Score             float64   `json:"score" validate:"gte=0"`
	Date              time.Time `json:"date" validate:"required"`
}

type UpdateUserCertificateRequest struct {
	Score *float64   `json:"score" validate:"omitempty,gte=0"`
	Date  *time.Time `json:"date"`
}
