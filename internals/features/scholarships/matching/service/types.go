package service

import (
	"github.com/google/uuid"

	userModel "beasiswaku_backend/internals/features/users/user/model"
)

// HeldCertificate adalah sertifikat di tangan kandidat, sudah di-resolve nama tipenya.
type HeldCertificate struct {
	TypeID   uuid.UUID `json:"type_id"`
	TypeName string    `json:"type_name"`
	Score    float64   `json:"score"`
}

// CandidateProfile adalah input murni mesin matching: rapor tiga tahun + sertifikat.
type CandidateProfile struct {
	Grades10     []userModel.GradeEntry
	Grades11     []userModel.GradeEntry
	Grades12     []userModel.GradeEntry
	Certificates []HeldCertificate
}

// MinScoreRule: skor minimum untuk satu jenis sertifikat.
// TypeName ikut dibawa karena Policy B mencocokkan berdasarkan nama (case-insensitive).
type MinScoreRule struct {
	TypeID   uuid.UUID
	TypeName string
	MinScore float64
}

// RequirementRule adalah bentuk ter-normalisasi satu set requirement.
// Entri dengan TypeID == uuid.Nil berasal dari jenis sertifikat yang sudah
// dihapus: tidak pernah match, tapi juga tidak pernah error.
type RequirementRule struct {
	MinGPA              *float64
	RequiredCertTypeIDs []uuid.UUID
	MinScores           []MinScoreRule
}

// FieldValues adalah input Policy B: nilai-nilai lepas yang disuplai caller.
// Field nil artinya caller tidak menyuplai nilai itu.
type FieldValues struct {
	GPA   *float64
	IELTS *float64
	TOEIC *float64
	SAT   *float64
}
