package controller

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/configs"
	"beasiswaku_backend/internals/features/payments/dto"
	"beasiswaku_backend/internals/features/payments/model"
	"beasiswaku_backend/internals/features/payments/service"
	userModel "beasiswaku_backend/internals/features/users/user/model"
	helper "beasiswaku_backend/internals/helpers"
)

// Harga default premium 1 tahun (IDR), bisa dioverride via env.
const defaultPremiumPriceIDR = 99000

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func premiumPriceIDR() int {
	if v := os.Getenv("PREMIUM_PRICE_IDR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultPremiumPriceIDR
}

// 🟢 POST /api/u/payments/checkout — buat transaksi premium + snap token
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	payment := model.PaymentModel{
		PaymentUserID:    userID,
		PaymentOrderID:   fmt.Sprintf("PREMIUM-%d", time.Now().UnixNano()),
		PaymentAmountIDR: premiumPriceIDR(),
		PaymentStatus:    model.PaymentStatusPending,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat payment")
	}

	token, redirectURL, err := service.GenerateSnapToken(payment, service.CustomerInput{
		Name:  user.UserName,
		Email: user.Email,
	})
	if err != nil {
		log.Printf("[ERROR] Midtrans snap gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "midtrans error: "+err.Error())
	}

	payment.PaymentSnapToken = &token
	if err := ctrl.DB.Save(&payment).Error; err != nil {
		log.Printf("[WARNING] Gagal simpan snap token: %v", err)
	}

	return helper.JsonCreated(c, "Checkout dibuat", dto.CheckoutResponse{
		PaymentID:   payment.PaymentID.String(),
		OrderID:     payment.PaymentOrderID,
		AmountIDR:   payment.PaymentAmountIDR,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// 🟢 GET /api/u/payments — riwayat pembayaran caller
func (ctrl *PaymentController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.
		Where("payment_user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil payment")
	}

	return helper.JsonOK(c, "ok", payments)
}

// 🟢 POST /api/payments/notification — webhook Midtrans (tanpa auth)
func (ctrl *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var notif service.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if !service.VerifySignature(notif, configs.MidtransServerKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	payment, err := service.ApplyNotification(ctrl.DB, notif)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			// balas 200 supaya Midtrans tidak retry terus untuk order asing
			return c.JSON(fiber.Map{"status": "ignored", "reason": "payment not found"})
		}
		log.Printf("[ERROR] Webhook Midtrans gagal diproses: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "update payment failed")
	}

	return c.JSON(fiber.Map{
		"status":             "ok",
		"payment_id":         payment.PaymentID,
		"payment_status":     payment.PaymentStatus,
		"transaction_status": notif.TransactionStatus,
	})
}
