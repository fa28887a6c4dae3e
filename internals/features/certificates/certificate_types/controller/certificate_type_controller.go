package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/features/certificates/certificate_types/dto"
	"beasiswaku_backend/internals/features/certificates/certificate_types/model"
	helper "beasiswaku_backend/internals/helpers"
)

type CertificateTypeController struct {
	DB *gorm.DB
}

func NewCertificateTypeController(db *gorm.DB) *CertificateTypeController {
	return &CertificateTypeController{DB: db}
}

// 🟢 GET /api/public/certificate-types
func (ctrl *CertificateTypeController) List(c *fiber.Ctx) error {
	var types []model.CertificateTypeModel
	if err := ctrl.DB.Order("certificate_type_name ASC").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis sertifikat")
	}
	return helper.JsonOK(c, "ok", types)
}

// 🟢 POST /api/a/certificate-types (admin)
func (ctrl *CertificateTypeController) Create(c *fiber.Ctx) error {
	var body dto.CreateCertificateTypeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	ct := model.CertificateTypeModel{
		CertificateTypeName:        body.Name,
		CertificateTypeDescription: body.Description,
		CertificateTypeMaxScore:    body.MaxScore,
	}
	if err := ctrl.DB.Create(&ct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Jenis sertifikat dengan nama itu sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jenis sertifikat")
	}

	return helper.JsonCreated(c, "Jenis sertifikat berhasil dibuat", ct)
}

// 🟡 PATCH /api/a/certificate-types/:id (admin)
func (ctrl *CertificateTypeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "certificate_type_id tidak valid")
	}

	var body dto.UpdateCertificateTypeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var ct model.CertificateTypeModel
	if err := ctrl.DB.First(&ct, "certificate_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis sertifikat")
	}

	if body.Name != nil {
		ct.CertificateTypeName = *body.Name
	}
	if body.Description != nil {
		ct.CertificateTypeDescription = body.Description
	}
	if body.MaxScore != nil {
		ct.CertificateTypeMaxScore = body.MaxScore
	}

	if err := ctrl.DB.Save(&ct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Jenis sertifikat dengan nama itu sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jenis sertifikat")
	}

	return helper.JsonUpdated(c, "Jenis sertifikat berhasil diperbarui", ct)
}

// 🔴 DELETE /api/a/certificate-types/:id (admin, soft delete)
func (ctrl *CertificateTypeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "certificate_type_id tidak valid")
	}

	res := ctrl.DB.Delete(&model.CertificateTypeModel{}, "certificate_type_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jenis sertifikat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jenis sertifikat tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jenis sertifikat berhasil dihapus", nil)
}
