package dto

import "time"

type CreateScholarshipRequest struct {
	SchoolID    string     `json:"school_id" validate:"required,uuid"`
	Name        string     `json:"name" validate:"required,min=2,max=255"`
	Field       string     `json:"field" validate:"max=100"`
	Location    string     `json:"location" validate:"max=255"`
	Amount      *int64     `json:"amount" validate:"omitempty,gt=0"`
	Deadline    *time.Time `json:"deadline"`
	Description *string    `json:"description" validate:"omitempty,max=10000"`
}

type UpdateScholarshipRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=2,max=255"`
	Field       *string    `json:"field" validate:"omitempty,max=100"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	Amount      *int64     `json:"amount" validate:"omitempty,gt=0"`
	Deadline    *time.Time `json:"deadline"`
	Description *string    `json:"description" validate:"omitempty,max=10000"`
}

// ========== REQUIREMENT ==========

type MinScoreEntryRequest struct {
	CertificateTypeID string  `json:"certificate_type_id" validate:"required,uuid"`
	MinScore          float64 `json:"min_score" validate:"gte=0"`
}

type CreateRequirementRequest struct {
	MinGPA               *float64               `json:"min_gpa" validate:"omitempty,gte=0,lte=10"`
	RequiredCertificates []string               `json:"required_certificates" validate:"dive,uuid"`
	MinCertificateScores []MinScoreEntryRequest `json:"min_certificate_scores" validate:"dive"`
	OtherNotes           *string                `json:"other_notes" validate:"omitempty,max=5000"`
}
