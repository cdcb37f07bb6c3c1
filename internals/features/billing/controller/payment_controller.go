package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/billing/dto"
	model "hostelku_backend/internals/features/billing/model"
	service "hostelku_backend/internals/features/billing/service"
	helper "hostelku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= INITIATE ======================= */
// POST /api/payments/initiate  body: {"payment_id": "..."}
func (h *PaymentController) Initiate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req struct {
		PaymentID uuid.UUID `json:"payment_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.PaymentID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "payment_id is required")
	}

	payment, err := h.ownPayment(c, userID, req.PaymentID)
	if err != nil {
		return err
	}

	// Retry after failure is fine; paid and cancelled are final.
	if payment.PaymentStatus != model.PaymentUnpaid && payment.PaymentStatus != model.PaymentFailed {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Payment is %s and cannot be initiated", payment.PaymentStatus))
	}

	var user struct {
		UserName string
		Email    string
	}
	if err := h.DB.Table("users").
		Select("user_name, email").
		Where("id = ?", userID).
		Scan(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	orderID := fmt.Sprintf("HSTL-ELEC-%s", strings.ToUpper(uuid.NewString()[:12]))

	token, redirectURL, err := service.GenerateSnapToken(*payment, orderID, user.UserName, user.Email)
	if err != nil {
		log.Println("[ERROR] Gateway session creation failed:", err)
		return fiber.NewError(fiber.StatusBadGateway, "Payment gateway is unavailable, try again later")
	}

	// Guard on the pre-initiate status so double-clicked initiates race safely.
	res := h.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_status = ?", payment.PaymentID, payment.PaymentStatus).
		Updates(map[string]interface{}{
			"payment_status":         model.PaymentPending,
			"payment_order_id":       orderID,
			"payment_failure_reason": nil,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Payment was updated by another request, reload and retry")
	}

	return helper.JsonOK(c, "Payment session created", dto.InitiatePaymentResponse{
		PaymentID:   payment.PaymentID,
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
		AmountINR:   payment.PaymentAmountINR,
	})
}

/* ======================= STATUS ======================= */
// GET /api/payments/status/:id — the poll target. While the share is pending
// we also ask the gateway, so a missed webhook still settles the row.
func (h *PaymentController) Status(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment ID")
	}

	payment, err := h.ownPayment(c, userID, paymentID)
	if err != nil {
		return err
	}

	if payment.PaymentStatus == model.PaymentPending && payment.PaymentOrderID != nil {
		if refreshed, err := h.consultGateway(payment); err == nil {
			payment = refreshed
		} else {
			log.Println("[WARN] Gateway status check failed:", err)
		}
	}

	return helper.JsonOK(c, "OK", dto.FromPaymentModel(*payment))
}

/* ======================= VERIFY ======================= */
// POST /api/payments/verify/:id — explicit re-check after the checkout
// window closes. Terminal rows come back unchanged.
func (h *PaymentController) Verify(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment ID")
	}

	payment, err := h.ownPayment(c, userID, paymentID)
	if err != nil {
		return err
	}

	if payment.PaymentStatus == model.PaymentPending && payment.PaymentOrderID != nil {
		refreshed, err := h.consultGateway(payment)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Could not verify with the payment gateway")
		}
		payment = refreshed
	}

	return helper.JsonOK(c, "Payment verified", dto.FromPaymentModel(*payment))
}

/* ======================= CANCEL ======================= */
// DELETE /api/payments/cancel/:id
func (h *PaymentController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment ID")
	}

	payment, err := h.ownPayment(c, userID, paymentID)
	if err != nil {
		return err
	}

	if payment.PaymentStatus != model.PaymentPending {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Only pending payments can be cancelled, this one is %s", payment.PaymentStatus))
	}

	// Best effort: the local row is the source of truth even if the gateway call fails.
	if payment.PaymentOrderID != nil {
		if err := service.CancelGatewayOrder(*payment.PaymentOrderID); err != nil {
			log.Println("[WARN] Gateway cancel failed:", err)
		}
	}

	res := h.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_status = ?", payment.PaymentID, model.PaymentPending).
		Update("payment_status", model.PaymentCancelled)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Payment already settled, refresh its status")
	}

	payment.PaymentStatus = model.PaymentCancelled
	return helper.JsonDeleted(c, "Payment cancelled", dto.FromPaymentModel(*payment))
}

/* ======================= WEBHOOK ======================= */
// POST /api/payments/notification — unauthenticated, called by the gateway.
func (h *PaymentController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	if err := service.HandlePaymentStatusWebhook(h.DB, body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Notification processed", nil)
}

/* ======================= internals ======================= */

// ownPayment loads the payment and rejects callers that do not own it.
// Staff with the electricity permission go through the admin bill routes
// instead, so ownership here is strict.
func (h *PaymentController) ownPayment(c *fiber.Ctx, userID, paymentID uuid.UUID) (*model.PaymentModel, error) {
	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return nil, err
	}

	var payment model.PaymentModel
	if err := h.DB.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if payment.PaymentStudentID != studentID {
		return nil, fiber.NewError(fiber.StatusForbidden, "This payment belongs to another student")
	}
	return &payment, nil
}

// consultGateway asks the gateway for the order status and applies at most
// one transition, guarded on the current status.
func (h *PaymentController) consultGateway(payment *model.PaymentModel) (*model.PaymentModel, error) {
	status, gatewayRef, message, err := service.CheckGatewayStatus(*payment.PaymentOrderID)
	if err != nil {
		return nil, err
	}

	next, changed := service.ApplyGatewayStatus(payment.PaymentStatus, status)
	if !changed {
		return payment, nil
	}

	updates := map[string]interface{}{
		"payment_status": next,
	}
	if gatewayRef != "" {
		updates["payment_gateway_ref"] = gatewayRef
	}
	var paidAt *time.Time
	if next == model.PaymentPaid {
		now := time.Now()
		paidAt = &now
		updates["payment_paid_at"] = now
	}
	if next == model.PaymentFailed {
		updates["payment_failure_reason"] = fmt.Sprintf("%s: %s", status, message)
	}

	res := h.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_status = ?", payment.PaymentID, payment.PaymentStatus).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// The webhook won the race; reload instead of overwriting.
		var fresh model.PaymentModel
		if err := h.DB.First(&fresh, "payment_id = ?", payment.PaymentID).Error; err != nil {
			return nil, err
		}
		return &fresh, nil
	}

	payment.PaymentStatus = next
	if gatewayRef != "" {
		payment.PaymentGatewayRef = &gatewayRef
	}
	if paidAt != nil {
		payment.PaymentPaidAt = paidAt
	}
	return payment, nil
}
