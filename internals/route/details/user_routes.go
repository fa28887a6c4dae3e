package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "beasiswaku_backend/internals/features/users/user/controller"
)

func UserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	private.Get("/users/me", ctrl.Me)
	private.Patch("/users/me", ctrl.UpdateMe)
	private.Get("/users/me/grades", ctrl.MyGrades)
	private.Put("/users/me/grades", ctrl.UpdateMyGrades)
}
