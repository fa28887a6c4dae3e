package model

import (
	"time"

	"github.com/google/uuid"

	certTypeModel "beasiswaku_backend/internals/features/certificates/certificate_types/model"
)

// ScholarshipRequirementModel adalah satu set syarat kelayakan:
// GPA minimum opsional, daftar sertifikat wajib (cukup dimiliki, skor diabaikan),
// daftar skor minimum per jenis sertifikat, plus catatan bebas yang
// tidak pernah dievaluasi mesin.
type ScholarshipRequirementModel struct {
	RequirementID            uuid.UUID `gorm:"column:requirement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"requirement_id"`
	RequirementScholarshipID uuid.UUID `gorm:"column:requirement_scholarship_id;type:uuid;not null;index" json:"requirement_scholarship_id"`
	RequirementMinGPA        *float64  `gorm:"column:requirement_min_gpa" json:"requirement_min_gpa,omitempty"`
	RequirementOtherNotes    *string   `gorm:"column:requirement_other_notes;type:text" json:"requirement_other_notes,omitempty"`

	RequiredCertificates []RequirementCertificateModel `gorm:"foreignKey:ReqCertRequirementID;references:RequirementID" json:"required_certificates,omitempty"`
	MinCertificateScores []RequirementMinScoreModel    `gorm:"foreignKey:ReqMinScoreRequirementID;references:RequirementID" json:"min_certificate_scores,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ScholarshipRequirementModel) TableName() string {
	return "scholarship_requirements"
}

// RequirementCertificateModel: sertifikat yang WAJIB dimiliki (existence only).
type RequirementCertificateModel struct {
	ReqCertID            uuid.UUID `gorm:"column:req_cert_id;type:uuid;default:gen_random_uuid();primaryKey" json:"req_cert_id"`
	ReqCertRequirementID uuid.UUID `gorm:"column:req_cert_requirement_id;type:uuid;not null;index" json:"req_cert_requirement_id"`
	ReqCertTypeID        uuid.UUID `gorm:"column:req_cert_type_id;type:uuid;not null" json:"req_cert_type_id"`

	// Preload; nil kalau jenis sertifikat sudah dihapus → kondisi dianggap tak terpenuhi
	CertificateType *certTypeModel.CertificateTypeModel `gorm:"foreignKey:ReqCertTypeID;references:CertificateTypeID" json:"certificate_type,omitempty"`
}

func (RequirementCertificateModel) TableName() string {
	return "scholarship_requirement_certificates"
}

// RequirementMinScoreModel: skor minimum untuk satu jenis sertifikat.
type RequirementMinScoreModel struct {
	ReqMinScoreID            uuid.UUID `gorm:"column:req_min_score_id;type:uuid;default:gen_random_uuid();primaryKey" json:"req_min_score_id"`
	ReqMinScoreRequirementID uuid.UUID `gorm:"column:req_min_score_requirement_id;type:uuid;not null;index" json:"req_min_score_requirement_id"`
	ReqMinScoreTypeID        uuid.UUID `gorm:"column:req_min_score_type_id;type:uuid;not null" json:"req_min_score_type_id"`
	ReqMinScoreValue         float64   `gorm:"column:req_min_score_value;not null" json:"req_min_score_value"`

	CertificateType *certTypeModel.CertificateTypeModel `gorm:"foreignKey:ReqMinScoreTypeID;references:CertificateTypeID" json:"certificate_type,omitempty"`
}

func (RequirementMinScoreModel) TableName() string {
	return "scholarship_requirement_min_scores"
}
