package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/constants"
	mentorController "beasiswaku_backend/internals/features/mentors/controller"
	authMiddleware "beasiswaku_backend/internals/middlewares/auth"
)

func MentorRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	mentorCtrl := mentorController.NewMentorController(db)
	requestCtrl := mentorController.NewMentorRequestController(db)
	ratingCtrl := mentorController.NewMentorRatingController(db)
	messageCtrl := mentorController.NewMentorMessageController(db)

	public.Get("/mentors", mentorCtrl.Directory)
	public.Get("/mentors/:id", mentorCtrl.Detail)
	public.Get("/mentors/:id/ratings", ratingCtrl.ListForMentor)

	// request koneksi: kirim khusus premium, jawab khusus mentor
	private.Post("/mentor-requests",
		authMiddleware.PremiumOnly(db, "koneksi mentor"),
		requestCtrl.Create)
	private.Get("/mentor-requests", requestCtrl.Mine)
	private.Get("/mentor-requests/incoming",
		authMiddleware.OnlyRoles(constants.RoleErrorMentor("request masuk"), constants.MentorAndAdmin...),
		requestCtrl.Incoming)
	private.Patch("/mentor-requests/:id/answer",
		authMiddleware.OnlyRoles(constants.RoleErrorMentor("jawab request"), constants.MentorAndAdmin...),
		requestCtrl.Answer)

	private.Put("/mentor-ratings", ratingCtrl.Upsert)

	private.Post("/messages", messageCtrl.Send)
	private.Get("/messages/:partner_id", messageCtrl.Conversation)
}
