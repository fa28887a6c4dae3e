package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/features/applications/dto"
	"beasiswaku_backend/internals/features/applications/model"
	"beasiswaku_backend/internals/features/applications/service"
	helper "beasiswaku_backend/internals/helpers"
	"beasiswaku_backend/internals/services/mailer"
)

type ApplicationController struct {
	DB      *gorm.DB
	Service *service.ApplicationService
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{
		DB:      db,
		Service: service.NewApplicationService(db, mailer.NewMailer()),
	}
}

// 🟢 POST /api/u/applications (premium)
func (ctrl *ApplicationController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.SubmitApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	scholarshipID, err := uuid.Parse(body.ScholarshipID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "scholarship_id tidak valid")
	}

	docsJSON, err := json.Marshal(body.Documents)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "documents tidak valid")
	}

	app, err := ctrl.Service.Submit(c.UserContext(), service.SubmitInput{
		StudentID:     userID,
		ScholarshipID: scholarshipID,
		Essay:         body.Essay,
		Documents:     datatypes.JSON(docsJSON),
	})
	if err != nil {
		return ctrl.mapSubmitError(c, err)
	}

	return helper.JsonCreated(c, "Aplikasi berhasil dikirim", app)
}

func (ctrl *ApplicationController) mapSubmitError(c *fiber.Ctx, err error) error {
	var incomplete service.ErrIncompleteGrades
	switch {
	case errors.Is(err, service.ErrNotPremium):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrScholarshipNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateApplication):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.As(err, &incomplete):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("[ERROR] Submit aplikasi gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim aplikasi")
	}
}

// 🟢 GET /api/u/applications — daftar aplikasi milik caller
func (ctrl *ApplicationController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var apps []model.ApplicationModel
	if err := ctrl.DB.
		Preload("Scholarship").
		Preload("Scholarship.School").
		Where("application_student_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil aplikasi")
	}

	return helper.JsonOK(c, "ok", apps)
}

// 🟢 GET /api/u/applications/:id — detail aplikasi milik caller (termasuk snapshot)
func (ctrl *ApplicationController) Detail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "application_id tidak valid")
	}

	var app model.ApplicationModel
	if err := ctrl.DB.
		Preload("Scholarship").
		Preload("Scholarship.School").
		First(&app, "application_id = ? AND application_student_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aplikasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil aplikasi")
	}

	return helper.JsonOK(c, "ok", app)
}

// 🟢 GET /api/a/applications (admin) — semua aplikasi, filter status opsional
func (ctrl *ApplicationController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ApplicationModel{})
	if status := c.Query("status"); status != "" {
		if !model.ValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak dikenal")
		}
		q = q.Where("application_status = ?", status)
	}
	if schID := c.Query("scholarship_id"); schID != "" {
		id, err := uuid.Parse(schID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "scholarship_id tidak valid")
		}
		q = q.Where("application_scholarship_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung aplikasi")
	}

	var apps []model.ApplicationModel
	if err := q.
		Preload("Scholarship").
		Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil aplikasi")
	}

	return helper.JsonList(c, "ok", apps, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/a/applications/:id/status (admin)
func (ctrl *ApplicationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "application_id tidak valid")
	}

	var body dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	app, err := ctrl.Service.UpdateStatus(c.UserContext(), id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStatus):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStatusTerminal):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			log.Printf("[ERROR] Update status aplikasi gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
		}
	}

	return helper.JsonUpdated(c, "Status aplikasi diperbarui", app)
}
