package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/features/mentors/dto"
	"beasiswaku_backend/internals/features/mentors/model"
	helper "beasiswaku_backend/internals/helpers"
)

type MentorMessageController struct {
	DB *gorm.DB
}

func NewMentorMessageController(db *gorm.DB) *MentorMessageController {
	return &MentorMessageController{DB: db}
}

// Pasangan dianggap terhubung kalau ada request approved di salah satu arah.
func (ctrl *MentorMessageController) isConnected(a, b uuid.UUID) (bool, error) {
	var n int64
	err := ctrl.DB.Model(&model.MentorRequestModel{}).
		Where(`mentor_request_status = ? AND (
			(mentor_request_student_id = ? AND mentor_request_mentor_id = ?) OR
			(mentor_request_student_id = ? AND mentor_request_mentor_id = ?))`,
			model.RequestStatusApproved, a, b, b, a).
		Count(&n).Error
	return n > 0, err
}

// 🟢 POST /api/u/messages — kirim pesan ke pasangan yang terhubung
func (ctrl *MentorMessageController) Send(c *fiber.Ctx) error {
	senderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.SendMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	recipientID, _ := uuid.Parse(body.RecipientID)
	ok, err := ctrl.isConnected(senderID, recipientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek koneksi")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Belum terhubung dengan user ini")
	}

	msg := model.MentorMessageModel{
		MentorMessageSenderID:    senderID,
		MentorMessageRecipientID: recipientID,
		MentorMessageBody:        body.Body,
	}
	if err := ctrl.DB.Create(&msg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	return helper.JsonCreated(c, "Pesan terkirim", msg)
}

// 🟢 GET /api/u/messages/:partner_id — percakapan dengan satu partner
func (ctrl *MentorMessageController) Conversation(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	partnerID, err := uuid.Parse(c.Params("partner_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "partner_id tidak valid")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	base := ctrl.DB.Model(&model.MentorMessageModel{}).
		Where(`(mentor_message_sender_id = ? AND mentor_message_recipient_id = ?) OR
		       (mentor_message_sender_id = ? AND mentor_message_recipient_id = ?)`,
			userID, partnerID, partnerID, userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var msgs []model.MentorMessageModel
	if err := base.
		Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&msgs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	return helper.JsonList(c, "ok", msgs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
