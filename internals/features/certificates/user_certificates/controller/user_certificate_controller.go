package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certTypeModel "beasiswaku_backend/internals/features/certificates/certificate_types/model"
	"beasiswaku_backend/internals/features/certificates/user_certificates/dto"
	"beasiswaku_backend/internals/features/certificates/user_certificates/model"
	helper "beasiswaku_backend/internals/helpers"
)

type UserCertificateController struct {
	DB *gorm.DB
}

func NewUserCertificateController(db *gorm.DB) *UserCertificateController {
	return &UserCertificateController{DB: db}
}

// 🟢 GET /api/u/certificates — sertifikat milik caller
func (ctrl *UserCertificateController) MyCertificates(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var certs []model.UserCertificate
	if err := ctrl.DB.Preload("CertificateType").
		Where("user_cert_user_id = ?", userID).
		Order("user_cert_date DESC").
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	return helper.JsonOK(c, "ok", certs)
}

// 🟢 POST /api/u/certificates
func (ctrl *UserCertificateController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateUserCertificateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	typeID, _ := uuid.Parse(body.CertificateTypeID)

	// Pastikan jenis sertifikatnya ada & skor tidak melampaui max_score
	var ct certTypeModel.CertificateTypeModel
	if err := ctrl.DB.First(&ct, "certificate_type_id = ?", typeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek jenis sertifikat")
	}
	if ct.CertificateTypeMaxScore != nil && body.Score > *ct.CertificateTypeMaxScore {
		return helper.JsonValidationError(c, map[string][]string{
			"score": {fmt.Sprintf("score melebihi skor maksimum %s (%.1f)", ct.CertificateTypeName, *ct.CertificateTypeMaxScore)},
		})
	}

	cert := model.UserCertificate{
		UserCertUserID: userID,
		UserCertTypeID: typeID,
		UserCertScore:  body.Score,
		UserCertDate:   body.Date,
	}
	if err := ctrl.DB.Create(&cert).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sertifikat")
	}
	cert.CertificateType = &ct

	return helper.JsonCreated(c, "Sertifikat berhasil ditambahkan", cert)
}

// 🟡 PATCH /api/u/certificates/:id
func (ctrl *UserCertificateController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_cert_id tidak valid")
	}

	var body dto.UpdateUserCertificateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var cert model.UserCertificate
	if err := ctrl.DB.Preload("CertificateType").
		First(&cert, "user_cert_id = ? AND user_cert_user_id = ?", certID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	if body.Score != nil {
		if cert.CertificateType != nil && cert.CertificateType.CertificateTypeMaxScore != nil &&
			*body.Score > *cert.CertificateType.CertificateTypeMaxScore {
			return helper.JsonValidationError(c, map[string][]string{
				"score": {fmt.Sprintf("score melebihi skor maksimum %.1f", *cert.CertificateType.CertificateTypeMaxScore)},
			})
		}
		cert.UserCertScore = *body.Score
	}
	if body.Date != nil {
		cert.UserCertDate = *body.Date
	}

	if err := ctrl.DB.Save(&cert).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sertifikat")
	}

	return helper.JsonUpdated(c, "Sertifikat berhasil diperbarui", cert)
}

// 🔴 DELETE /api/u/certificates/:id
func (ctrl *UserCertificateController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_cert_id tidak valid")
	}

	res := ctrl.DB.Delete(&model.UserCertificate{}, "user_cert_id = ? AND user_cert_user_id = ?", certID, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sertifikat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Sertifikat berhasil dihapus", nil)
}
