package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/features/scholarships/scholarships/dto"
	"beasiswaku_backend/internals/features/scholarships/scholarships/model"
	helper "beasiswaku_backend/internals/helpers"
)

type RequirementController struct {
	DB *gorm.DB
}

func NewRequirementController(db *gorm.DB) *RequirementController {
	return &RequirementController{DB: db}
}

// 🟢 POST /api/a/scholarships/:id/requirements (admin)
// Satu beasiswa boleh punya beberapa set requirement; mesin matching
// mengevaluasi semuanya dan mengambil skor terbaik.
func (ctrl *RequirementController) Create(c *fiber.Ctx) error {
	scholarshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "scholarship_id tidak valid")
	}

	var body dto.CreateRequirementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var sch model.ScholarshipModel
	if err := ctrl.DB.First(&sch, "scholarship_id = ?", scholarshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Beasiswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek beasiswa")
	}

	req := model.ScholarshipRequirementModel{
		RequirementScholarshipID: scholarshipID,
		RequirementMinGPA:        body.MinGPA,
		RequirementOtherNotes:    body.OtherNotes,
	}
	for _, raw := range body.RequiredCertificates {
		typeID, _ := uuid.Parse(raw)
		req.RequiredCertificates = append(req.RequiredCertificates, model.RequirementCertificateModel{
			ReqCertTypeID: typeID,
		})
	}
	for _, ms := range body.MinCertificateScores {
		typeID, _ := uuid.Parse(ms.CertificateTypeID)
		req.MinCertificateScores = append(req.MinCertificateScores, model.RequirementMinScoreModel{
			ReqMinScoreTypeID: typeID,
			ReqMinScoreValue:  ms.MinScore,
		})
	}

	// create beserta anak-anaknya dalam satu transaksi
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&req).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat requirement")
	}

	return helper.JsonCreated(c, "Requirement berhasil dibuat", req)
}

// 🔴 DELETE /api/a/requirements/:id (admin)
func (ctrl *RequirementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "requirement_id tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.RequirementCertificateModel{}, "req_cert_requirement_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.RequirementMinScoreModel{}, "req_min_score_requirement_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ScholarshipRequirementModel{}, "requirement_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Requirement tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus requirement")
	}

	return helper.JsonDeleted(c, "Requirement berhasil dihapus", nil)
}
