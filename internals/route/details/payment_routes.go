package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "beasiswaku_backend/internals/features/payments/controller"
)

func PaymentRoutes(app *fiber.App, private fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	private.Post("/payments/checkout", ctrl.Checkout)
	private.Get("/payments", ctrl.Mine)

	// webhook Midtrans: tanpa auth, signature diverifikasi di handler
	app.Post("/api/payments/notification", ctrl.MidtransWebhook)
}
