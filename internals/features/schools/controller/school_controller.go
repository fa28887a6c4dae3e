package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/features/schools/dto"
	"beasiswaku_backend/internals/features/schools/model"
	helper "beasiswaku_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// 🟢 GET /api/public/schools?search=&location=&page=&per_page=
func (ctrl *SchoolController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SchoolModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("school_name ILIKE ?", "%"+search+"%")
	}
	if location := strings.TrimSpace(c.Query("location")); location != "" {
		q = q.Where("school_location ILIKE ?", "%"+location+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sekolah")
	}

	var schools []model.SchoolModel
	if err := q.Order("school_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	return helper.JsonList(c, "ok", schools, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/public/schools/:id
func (ctrl *SchoolController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id tidak valid")
	}

	var school model.SchoolModel
	if err := ctrl.DB.First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	return helper.JsonOK(c, "ok", school)
}

// 🟢 POST /api/a/schools (admin)
func (ctrl *SchoolController) Create(c *fiber.Ctx) error {
	var body dto.CreateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	school := model.SchoolModel{
		SchoolName:        body.Name,
		SchoolLocation:    body.Location,
		SchoolWebsite:     body.Website,
		SchoolDescription: body.Description,
	}
	if err := ctrl.DB.Create(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sekolah")
	}

	return helper.JsonCreated(c, "Sekolah berhasil dibuat", school)
}

// 🟡 PATCH /api/a/schools/:id (admin)
func (ctrl *SchoolController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id tidak valid")
	}

	var body dto.UpdateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var school model.SchoolModel
	if err := ctrl.DB.First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	if body.Name != nil {
		school.SchoolName = *body.Name
	}
	if body.Location != nil {
		school.SchoolLocation = *body.Location
	}
	if body.Website != nil {
		school.SchoolWebsite = body.Website
	}
	if body.Description != nil {
		school.SchoolDescription = body.Description
	}

	if err := ctrl.DB.Save(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sekolah")
	}

	return helper.JsonUpdated(c, "Sekolah berhasil diperbarui", school)
}

// 🔴 DELETE /api/a/schools/:id (admin, soft delete)
func (ctrl *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id tidak valid")
	}

	res := ctrl.DB.Delete(&model.SchoolModel{}, "school_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Sekolah berhasil dihapus", nil)
}
