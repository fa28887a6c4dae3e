package model

import (
	"time"

	"github.com/google/uuid"
)

// MentorMessageModel: pesan chat tersimpan antar pasangan yang sudah terhubung.
// Delivery realtime bukan urusan tabel ini.
type MentorMessageModel struct {
	MentorMessageID          uuid.UUID `gorm:"column:mentor_message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mentor_message_id"`
	MentorMessageSenderID    uuid.UUID `gorm:"column:mentor_message_sender_id;type:uuid;not null;index" json:"mentor_message_sender_id"`
	MentorMessageRecipientID uuid.UUID `gorm:"column:mentor_message_recipient_id;type:uuid;not null;index" json:"mentor_message_recipient_id"`

	MentorMessageBody string `gorm:"column:mentor_message_body;type:text;not null" json:"mentor_message_body"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MentorMessageModel) TableName() string {
	return "mentor_messages"
}
