package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "beasiswaku_backend/internals/features/schools/model"
	"beasiswaku_backend/internals/features/scholarships/scholarships/dto"
	"beasiswaku_backend/internals/features/scholarships/scholarships/model"
	helper "beasiswaku_backend/internals/helpers"
)

type ScholarshipController struct {
	DB *gorm.DB
}

func NewScholarshipController(db *gorm.DB) *ScholarshipController {
	return &ScholarshipController{DB: db}
}

// 🟢 GET /api/public/scholarships/:id — detail + school + requirements
func (ctrl *ScholarshipController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "scholarship_id tidak valid")
	}

	var sch model.ScholarshipModel
	if err := ctrl.DB.
		Preload("School").
		Preload("Requirements").
		Preload("Requirements.RequiredCertificates.CertificateType").
		Preload("Requirements.MinCertificateScores.CertificateType").
		First(&sch, "scholarship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Beasiswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil beasiswa")
	}

	return helper.JsonOK(c, "ok", sch)
}

// 🟢 POST /api/a/scholarships (admin)
func (ctrl *ScholarshipController) Create(c *fiber.Ctx) error {
	var body dto.CreateScholarshipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	schoolID, _ := uuid.Parse(body.SchoolID)
	var school schoolModel.SchoolModel
	if err := ctrl.DB.First(&school, "school_id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek sekolah")
	}

	sch := model.ScholarshipModel{
		ScholarshipSchoolID:    schoolID,
		ScholarshipName:        body.Name,
		ScholarshipField:       body.Field,
		ScholarshipLocation:    body.Location,
		ScholarshipAmount:      body.Amount,
		ScholarshipDeadline:    body.Deadline,
		ScholarshipDescription: body.Description,
	}
	if sch.ScholarshipLocation == "" {
		// default ke lokasi sekolah biar filter location tetap kepake
		sch.ScholarshipLocation = school.SchoolLocation
	}

	if err := ctrl.DB.Create(&sch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat beasiswa")
	}
	sch.School = &school

	return helper.JsonCreated(c, "Beasiswa berhasil dibuat", sch)
}

// 🟡 PATCH /api/a/scholarships/:id (admin)
func (ctrl *ScholarshipController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "scholarship_id tidak valid")
	}

	var body dto.UpdateScholarshipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var sch model.ScholarshipModel
	if err := ctrl.DB.First(&sch, "scholarship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Beasiswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil beasiswa")
	}

	if body.Name != nil {
		sch.ScholarshipName = *body.Name
	}
	if body.Field != nil {
		sch.ScholarshipField = *body.Field
	}
	if body.Location != nil {
		sch.ScholarshipLocation = *body.Location
	}
	if body.Amount != nil {
		sch.ScholarshipAmount = body.Amount
	}
	if body.Deadline != nil {
		sch.ScholarshipDeadline = body.Deadline
	}
	if body.Description != nil {
		sch.ScholarshipDescription = body.Description
	}

	if err := ctrl.DB.Save(&sch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan beasiswa")
	}

	return helper.JsonUpdated(c, "Beasiswa berhasil diperbarui", sch)
}

// 🔴 DELETE /api/a/scholarships/:id (admin, soft delete)
func (ctrl *ScholarshipController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "scholarship_id tidak valid")
	}

	res := ctrl.DB.Delete(&model.ScholarshipModel{}, "scholarship_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus beasiswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Beasiswa tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Beasiswa berhasil dihapus", nil)
}
