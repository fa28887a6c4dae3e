package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"beasiswaku_backend/internals/features/mentors/dto"
	"beasiswaku_backend/internals/features/mentors/model"
	helper "beasiswaku_backend/internals/helpers"
)

type MentorRatingController struct {
	DB *gorm.DB
}

func NewMentorRatingController(db *gorm.DB) *MentorRatingController {
	return &MentorRatingController{DB: db}
}

// 🟢 PUT /api/u/mentor-ratings — beri/ubah rating (upsert per pasangan).
// Hanya boleh untuk mentor yang pernah approve koneksi dengan siswa ini.
func (ctrl *MentorRatingController) Upsert(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.UpsertMentorRatingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	mentorID, _ := uuid.Parse(body.MentorID)

	var connected int64
	if err := ctrl.DB.Model(&model.MentorRequestModel{}).
		Where("mentor_request_student_id = ? AND mentor_request_mentor_id = ? AND mentor_request_status = ?",
			studentID, mentorID, model.RequestStatusApproved).
		Count(&connected).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek koneksi")
	}
	if connected == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Belum terhubung dengan mentor ini")
	}

	rating := model.MentorRatingModel{
		MentorRatingStudentID: studentID,
		MentorRatingMentorID:  mentorID,
		MentorRatingValue:     body.Value,
		MentorRatingComment:   body.Comment,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "mentor_rating_student_id"},
			{Name: "mentor_rating_mentor_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"mentor_rating_value", "mentor_rating_comment", "updated_at"}),
	}).Create(&rating).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rating")
	}

	return helper.JsonUpdated(c, "Rating tersimpan", rating)
}

// 🟢 GET /api/public/mentors/:id/ratings
func (ctrl *MentorRatingController) ListForMentor(c *fiber.Ctx) error {
	mentorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "mentor_id tidak valid")
	}

	var ratings []model.MentorRatingModel
	if err := ctrl.DB.
		Where("mentor_rating_mentor_id = ?", mentorID).
		Order("updated_at DESC").
		Find(&ratings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rating")
	}

	return helper.JsonOK(c, "ok", ratings)
}
