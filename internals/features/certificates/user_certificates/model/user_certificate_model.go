package model

import (
	"time"

	"github.com/google/uuid"

	certTypeModel "beasiswaku_backend/internals/features/certificates/certificate_types/model"
)

// UserCertificate adalah sertifikat yang dipegang siswa (tipe + skor + tanggal).
// Satu siswa diasumsikan satu skor per tipe; lookup selalu ambil match pertama.
type UserCertificate struct {
	UserCertID     uuid.UUID `gorm:"column:user_cert_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_cert_id"`
	UserCertUserID uuid.UUID `gorm:"column:user_cert_user_id;type:uuid;not null;index" json:"user_cert_user_id"`
	UserCertTypeID uuid.UUID `gorm:"column:user_cert_type_id;type:uuid;not null" json:"user_cert_type_id"`
	UserCertScore  float64   `gorm:"column:user_cert_score;not null" json:"user_cert_score"`
	UserCertDate   time.Time `gorm:"column:user_cert_date;not null" json:"user_cert_date"`

	// Preload; bisa nil kalau jenis sertifikatnya sudah dihapus admin
	CertificateType *certTypeModel.CertificateTypeModel `gorm:"foreignKey:UserCertTypeID;references:CertificateTypeID" json:"certificate_type,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserCertificate) TableName() string {
	return "user_certificates"
}
