package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/constants"
	userModel "beasiswaku_backend/internals/features/users/user/model"
)

// PremiumOnly memastikan caller memegang status premium (VIP).
// Status dibaca fresh dari tabel users, bukan dari klaim token,
// supaya upgrade via webhook Midtrans langsung berlaku.
func PremiumOnly(db *gorm.DB, feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}

		var user userModel.UserModel
		if err := db.Select("id", "is_premium", "premium_until").
			First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
			}
			log.Println("[ERROR] DB error saat cek premium:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		if !user.HasActivePremium() {
			return fiber.NewError(fiber.StatusForbidden, constants.PremiumError(feature))
		}

		c.Locals("is_premium", true)
		return c.Next()
	}
}
