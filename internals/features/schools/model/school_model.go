package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolModel struct {
	SchoolID          uuid.UUID      `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`
	SchoolName        string         `gorm:"column:school_name;size:255;not null" json:"school_name" validate:"required,min=2,max=255"`
	SchoolLocation    string         `gorm:"column:school_location;size:255" json:"school_location"`
	SchoolWebsite     *string        `gorm:"column:school_website;size:255" json:"school_website,omitempty"`
	SchoolDescription *string        `gorm:"column:school_description;type:text" json:"school_description,omitempty"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
