package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "beasiswaku_backend/internals/features/schools/model"
)

// ScholarshipModel: satu beasiswa milik tepat satu sekolah,
// punya nol-atau-lebih set requirement.
type ScholarshipModel struct {
	ScholarshipID          uuid.UUID  `gorm:"column:scholarship_id;type:uuid;default:gen_random_uuid();primaryKey" json:"scholarship_id"`
	ScholarshipSchoolID    uuid.UUID  `gorm:"column:scholarship_school_id;type:uuid;not null;index" json:"scholarship_school_id"`
	ScholarshipName        string     `gorm:"column:scholarship_name;size:255;not null" json:"scholarship_name"`
	ScholarshipField       string     `gorm:"column:scholarship_field;size:100" json:"scholarship_field"`
	ScholarshipLocation    string     `gorm:"column:scholarship_location;size:255" json:"scholarship_location"`
	ScholarshipAmount      *int64     `gorm:"column:scholarship_amount" json:"scholarship_amount,omitempty"`
	ScholarshipDeadline    *time.Time `gorm:"column:scholarship_deadline" json:"scholarship_deadline,omitempty"`
	ScholarshipDescription *string    `gorm:"column:scholarship_description;type:text" json:"scholarship_description,omitempty"`

	School       *schoolModel.SchoolModel       `gorm:"foreignKey:ScholarshipSchoolID;references:SchoolID" json:"school,omitempty"`
	Requirements []ScholarshipRequirementModel  `gorm:"foreignKey:RequirementScholarshipID;references:ScholarshipID" json:"requirements,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ScholarshipModel) TableName() string {
	return "scholarships"
}
