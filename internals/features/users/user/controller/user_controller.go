package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"beasiswaku_backend/internals/features/users/user/dto"
	"beasiswaku_backend/internals/features/users/user/model"
	helper "beasiswaku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/u/users/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonOK(c, "ok", dto.ToUserResponse(user))
}

// 🟡 PATCH /api/u/users/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if body.UserName != nil {
		user.UserName = *body.UserName
	}
	if body.MentorBio != nil {
		user.MentorBio = body.MentorBio
	}
	if body.MentorExpertise != nil {
		user.MentorExpertise = body.MentorExpertise
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToUserResponse(user))
}

// 🟢 GET /api/u/users/me/grades
func (ctrl *UserController) MyGrades(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile model.StudentProfileModel
	if err := ctrl.DB.First(&profile, "student_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// profil belum pernah diisi → rapor kosong, bukan 404
			return helper.JsonOK(c, "ok", fiber.Map{
				"grades_10": []model.GradeEntry{},
				"grades_11": []model.GradeEntry{},
				"grades_12": []model.GradeEntry{},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rapor")
	}

	g10, g11, g12, err := profile.GradeYears()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Data rapor rusak")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"grades_10": g10,
		"grades_11": g11,
		"grades_12": g12,
	})
}

// 🟡 PUT /api/u/users/me/grades — replace seluruh rapor
func (ctrl *UserController) UpdateMyGrades(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpdateGradesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	g10, err := model.EncodeGrades(dto.ToGradeEntries(body.Grades10))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "grades_10 tidak valid")
	}
	g11, err := model.EncodeGrades(dto.ToGradeEntries(body.Grades11))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "grades_11 tidak valid")
	}
	g12, err := model.EncodeGrades(dto.ToGradeEntries(body.Grades12))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "grades_12 tidak valid")
	}

	profile := model.StudentProfileModel{
		StudentProfileUserID: userID,
		Grades10:             g10,
		Grades11:             g11,
		Grades12:             g12,
	}

	// upsert per user
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_profile_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_profile_grades_10",
			"student_profile_grades_11",
			"student_profile_grades_12",
			"updated_at",
		}),
	}).Create(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rapor")
	}

	return helper.JsonUpdated(c, "Rapor berhasil disimpan", nil)
}
