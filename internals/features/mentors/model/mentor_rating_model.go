package model

import (
	"time"

	"github.com/google/uuid"
)

// MentorRatingModel: rating 1–5 + komentar, SATU per pasangan (siswa, mentor).
// Submit ulang = upsert (ganti nilai lama).
type MentorRatingModel struct {
	MentorRatingID        uuid.UUID `gorm:"column:mentor_rating_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mentor_rating_id"`
	MentorRatingStudentID uuid.UUID `gorm:"column:mentor_rating_student_id;type:uuid;not null;uniqueIndex:uq_mentor_rating_pair" json:"mentor_rating_student_id"`
	MentorRatingMentorID  uuid.UUID `gorm:"column:mentor_rating_mentor_id;type:uuid;not null;uniqueIndex:uq_mentor_rating_pair" json:"mentor_rating_mentor_id"`

	MentorRatingValue   int     `gorm:"column:mentor_rating_value;not null" json:"mentor_rating_value"`
	MentorRatingComment *string `gorm:"column:mentor_rating_comment;type:text" json:"mentor_rating_comment,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MentorRatingModel) TableName() string {
	return "mentor_ratings"
}
