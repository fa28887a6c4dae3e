package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateTypeModel adalah data referensi jenis sertifikat (IELTS, TOEIC, SAT, dst).
// Soft delete dipakai supaya requirement lama yang masih menunjuk ke sini
// tidak bikin error — kondisi itu dihitung tidak terpenuhi, bukan exception.
type CertificateTypeModel struct {
	CertificateTypeID          uuid.UUID      `gorm:"column:certificate_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"certificate_type_id"`
	CertificateTypeName        string         `gorm:"column:certificate_type_name;size:100;unique;not null" json:"certificate_type_name" validate:"required,min=2,max=100"`
	CertificateTypeDescription *string        `gorm:"column:certificate_type_description;type:text" json:"certificate_type_description,omitempty"`
	CertificateTypeMaxScore    *float64       `gorm:"column:certificate_type_max_score" json:"certificate_type_max_score,omitempty" validate:"omitempty,gt=0"`
	CreatedAt                  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt                  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CertificateTypeModel) TableName() string {
	return "certificate_types"
}
