package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/constants"
	"beasiswaku_backend/internals/features/mentors/dto"
	userModel "beasiswaku_backend/internals/features/users/user/model"
	helper "beasiswaku_backend/internals/helpers"
)

type MentorController struct {
	DB *gorm.DB
}

func NewMentorController(db *gorm.DB) *MentorController {
	return &MentorController{DB: db}
}

// 🟢 GET /api/public/mentors — direktori mentor + rata-rata rating
func (ctrl *MentorController) Directory(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = true", constants.RoleMentor)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		base = base.Where("user_name ILIKE ? OR mentor_expertise ILIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung mentor")
	}

	var rows []dto.MentorListItem
	if err := base.
		Select(`users.id::text AS id,
		        users.user_name,
		        users.mentor_bio,
		        users.mentor_expertise,
		        AVG(r.mentor_rating_value) AS average_rating,
		        COUNT(r.mentor_rating_id) AS rating_count`).
		Joins("LEFT JOIN mentor_ratings r ON r.mentor_rating_mentor_id = users.id").
		Group("users.id, users.user_name, users.mentor_bio, users.mentor_expertise").
		Order("rating_count DESC, users.user_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mentor")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/public/mentors/:id
func (ctrl *MentorController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "mentor_id tidak valid")
	}

	var mentor userModel.UserModel
	if err := ctrl.DB.
		First(&mentor, "id = ? AND role = ? AND is_active = true", id, constants.RoleMentor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mentor tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mentor")
	}

	var item dto.MentorListItem
	item.ID = mentor.ID.String()
	item.UserName = mentor.UserName
	item.MentorBio = mentor.MentorBio
	item.MentorExpertise = mentor.MentorExpertise

	type agg struct {
		Avg   *float64
		Count int64
	}
	var a agg
	if err := ctrl.DB.Raw(`
		SELECT AVG(mentor_rating_value) AS avg, COUNT(*) AS count
		FROM mentor_ratings
		WHERE mentor_rating_mentor_id = ?`, id).Scan(&a).Error; err == nil {
		item.AverageRating = a.Avg
		item.RatingCount = a.Count
	}

	return helper.JsonOK(c, "ok", item)
}
