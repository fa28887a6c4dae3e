package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	scholarshipModel "beasiswaku_backend/internals/features/scholarships/scholarships/model"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// ApplicationModel: satu aplikasi (siswa, beasiswa).
// Invariant: maksimal SATU aplikasi non-terminal (pending/approved) per pasangan —
// dijaga index unik parsial di bawah, bukan cuma check di kode, supaya aman
// terhadap dua submit bersamaan.
type ApplicationModel struct {
	ApplicationID            uuid.UUID `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"application_id"`
	ApplicationStudentID     uuid.UUID `gorm:"column:application_student_id;type:uuid;not null;uniqueIndex:uq_application_active,where:application_status IN ('pending','approved')" json:"application_student_id"`
	ApplicationScholarshipID uuid.UUID `gorm:"column:application_scholarship_id;type:uuid;not null;uniqueIndex:uq_application_active,where:application_status IN ('pending','approved')" json:"application_scholarship_id"`

	ApplicationStatus string `gorm:"column:application_status;type:varchar(20);not null;default:'pending'" json:"application_status"`

	// Snapshot profil saat submit: rapor + sertifikat (nama tipe di-resolve
	// saat snapshot, tidak pernah di-resolve ulang). Immutable setelah create.
	ApplicationProfileSnapshot datatypes.JSON `gorm:"column:application_profile_snapshot;type:jsonb;not null" json:"application_profile_snapshot"`

	ApplicationEssay     *string        `gorm:"column:application_essay;type:text" json:"application_essay,omitempty"`
	ApplicationDocuments datatypes.JSON `gorm:"column:application_documents;type:jsonb;not null;default:'[]'" json:"application_documents"`

	Scholarship *scholarshipModel.ScholarshipModel `gorm:"foreignKey:ApplicationScholarshipID;references:ScholarshipID" json:"scholarship,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ApplicationModel) TableName() string {
	return "applications"
}

// IsTerminal: semua status selain pending bersifat final.
func IsTerminal(status string) bool {
	return status == StatusApproved || status == StatusRejected || status == StatusCancelled
}

// BlocksResubmission: pending/approved memblokir aplikasi baru untuk
// pasangan yang sama; rejected/cancelled tidak.
func BlocksResubmission(status string) bool {
	return status == StatusPending || status == StatusApproved
}

// ResubmissionBlockingStatuses: daftar status untuk query guard duplikat.
// Harus sejalan dengan predikat BlocksResubmission DAN klausa WHERE index
// unik parsial uq_application_active.
func ResubmissionBlockingStatuses() []string {
	all := []string{StatusPending, StatusApproved, StatusRejected, StatusCancelled}
	blocking := make([]string, 0, 2)
	for _, s := range all {
		if BlocksResubmission(s) {
			blocking = append(blocking, s)
		}
	}
	return blocking
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}
