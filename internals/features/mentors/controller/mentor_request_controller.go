package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/constants"
	"beasiswaku_backend/internals/features/mentors/dto"
	"beasiswaku_backend/internals/features/mentors/model"
	userModel "beasiswaku_backend/internals/features/users/user/model"
	helper "beasiswaku_backend/internals/helpers"
)

type MentorRequestController struct {
	DB *gorm.DB
}

func NewMentorRequestController(db *gorm.DB) *MentorRequestController {
	return &MentorRequestController{DB: db}
}

// 🟢 POST /api/u/mentor-requests (premium)
func (ctrl *MentorRequestController) Create(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateMentorRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	mentorID, _ := uuid.Parse(body.MentorID)
	if mentorID == studentID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa mengirim request ke diri sendiri")
	}

	var mentor userModel.UserModel
	if err := ctrl.DB.
		First(&mentor, "id = ? AND role = ? AND is_active = true", mentorID, constants.RoleMentor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mentor tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek mentor")
	}

	req := model.MentorRequestModel{
		MentorRequestStudentID: studentID,
		MentorRequestMentorID:  mentorID,
		MentorRequestStatus:    model.RequestStatusPending,
		MentorRequestMessage:   body.Message,
	}
	if err := ctrl.DB.Create(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Masih ada request pending ke mentor ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat request")
	}
	req.Mentor = &mentor

	return helper.JsonCreated(c, "Request terkirim", req)
}

// 🟢 GET /api/u/mentor-requests — request milik siswa
func (ctrl *MentorRequestController) Mine(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var reqs []model.MentorRequestModel
	if err := ctrl.DB.
		Preload("Mentor").
		Where("mentor_request_student_id = ?", studentID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil request")
	}

	return helper.JsonOK(c, "ok", reqs)
}

// 🟢 GET /api/u/mentor-requests/incoming — request masuk untuk mentor
func (ctrl *MentorRequestController) Incoming(c *fiber.Ctx) error {
	mentorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var reqs []model.MentorRequestModel
	if err := ctrl.DB.
		Preload("Student").
		Where("mentor_request_mentor_id = ?", mentorID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil request")
	}

	return helper.JsonOK(c, "ok", reqs)
}

// 🟡 PATCH /api/u/mentor-requests/:id/answer — mentor jawab (approve/reject)
func (ctrl *MentorRequestController) Answer(c *fiber.Ctx) error {
	mentorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "request_id tidak valid")
	}

	var body dto.AnswerMentorRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var req model.MentorRequestModel
	if err := ctrl.DB.
		First(&req, "mentor_request_id = ? AND mentor_request_mentor_id = ?", id, mentorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Request tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil request")
	}
	if req.MentorRequestStatus != model.RequestStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Request sudah dijawab")
	}

	req.MentorRequestStatus = body.Status
	req.MentorRequestAnswer = body.Answer
	if err := ctrl.DB.Save(&req).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
	}

	return helper.JsonUpdated(c, "Request dijawab", req)
}
