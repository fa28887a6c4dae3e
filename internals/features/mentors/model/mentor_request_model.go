package model

import (
	"time"

	"github.com/google/uuid"

	userModel "beasiswaku_backend/internals/features/users/user/model"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// MentorRequestModel: permintaan koneksi siswa premium → mentor.
// Maksimal satu request pending per pasangan (dijaga index unik parsial).
type MentorRequestModel struct {
	MentorRequestID        uuid.UUID `gorm:"column:mentor_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mentor_request_id"`
	MentorRequestStudentID uuid.UUID `gorm:"column:mentor_request_student_id;type:uuid;not null;uniqueIndex:uq_mentor_request_pending,where:mentor_request_status = 'pending'" json:"mentor_request_student_id"`
	MentorRequestMentorID  uuid.UUID `gorm:"column:mentor_request_mentor_id;type:uuid;not null;uniqueIndex:uq_mentor_request_pending,where:mentor_request_status = 'pending'" json:"mentor_request_mentor_id"`

	MentorRequestStatus  string  `gorm:"column:mentor_request_status;type:varchar(20);not null;default:'pending'" json:"mentor_request_status"`
	MentorRequestMessage *string `gorm:"column:mentor_request_message;type:text" json:"mentor_request_message,omitempty"`
	MentorRequestAnswer  *string `gorm:"column:mentor_request_answer;type:text" json:"mentor_request_answer,omitempty"`

	Mentor  *userModel.UserModel `gorm:"foreignKey:MentorRequestMentorID;references:ID" json:"mentor,omitempty"`
	Student *userModel.UserModel `gorm:"foreignKey:MentorRequestStudentID;references:ID" json:"student,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MentorRequestModel) TableName() string {
	return "mentor_requests"
}
