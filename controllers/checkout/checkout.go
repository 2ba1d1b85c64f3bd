package checkoutController

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"docseva/database"
	"docseva/middleware"
	"docseva/models"
	"docseva/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// loadCart returns the user's live cart rows.
func loadCart(db *gorm.DB, userId uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at asc").
		Find(&items).Error
	return items, err
}

// loadSession fetches the user's live checkout session, creating one if none
// exists yet.
func loadSession(db *gorm.DB, userId uint) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := db.Where("user_id = ? AND consumed = false AND is_deleted = false", userId).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		session = models.CheckoutSession{UserID: userId, Step: models.StepIdentity}
		if err := db.Create(&session).Error; err != nil {
			return nil, err
		}
		return &session, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// identityCaptured reports whether the session's linked form covers the
// requirement. A none requirement is always covered.
func identityCaptured(db *gorm.DB, session *models.CheckoutSession, requirement string) bool {
	if requirement == utils.RequirementNone {
		return true
	}
	if session.IdentityFormID == nil {
		return false
	}

	var form models.IdentityForm
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false",
		*session.IdentityFormID, session.UserID).First(&form).Error; err != nil {
		return false
	}
	return utils.RequirementSatisfiedBy(requirement, form.FormType)
}

// reconcileSession re-derives the identity requirement from the live cart and
// forces the workflow back to the identity step when a requirement newly
// appeared without a matching submission. Persists any change.
func reconcileSession(db *gorm.DB, session *models.CheckoutSession, cart []models.CartItem) string {
	requirement := utils.ResolveIdentityRequirement(cart)

	changed := session.RequiredForm != requirement
	session.RequiredForm = requirement

	if !identityCaptured(db, session, requirement) && session.Step != models.StepIdentity {
		session.Step = models.StepIdentity
		changed = true
	}

	if changed {
		if err := db.Save(session).Error; err != nil {
			log.Printf("Failed to persist checkout session %d: %v", session.ID, err)
		}
	}
	return requirement
}

// GetSession resumes (or begins) the user's checkout. A page reload lands
// here and gets back the step, saved answers and the current requirement.
func GetSession(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	session, err := loadSession(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load checkout!", nil)
	}

	cart, err := loadCart(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load cart!", nil)
	}

	requirement := reconcileSession(db, session, cart)
	totals := ComputeTotals(cart)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session fetched!", fiber.Map{
		"session":      session,
		"requiredForm": requirement,
		"items":        cart,
		"totals": fiber.Map{
			"subtotal": totals.Subtotal,
			"tax":      totals.Tax,
			"shipping": totals.ShippingCharge,
			"total":    totals.Total,
		},
	})
}

// SaveIdentityLink attaches an identity submission to the checkout and moves
// the workflow to the delivery step.
func SaveIdentityLink(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedIdentityLink").(*struct {
		IdentityFormID uint `json:"identityFormId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	session, err := loadSession(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load checkout!", nil)
	}

	var form models.IdentityForm
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false",
		reqData.IdentityFormID, userId).First(&form).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Identity submission not found!", nil)
	}

	cart, err := loadCart(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load cart!", nil)
	}

	requirement := utils.ResolveIdentityRequirement(cart)
	if !utils.RequirementSatisfiedBy(requirement, form.FormType) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Submission does not cover the required identity form!", fiber.Map{
			"requiredForm": requirement,
			"formType":     form.FormType,
		})
	}

	session.IdentityFormID = &form.ID
	session.RequiredForm = requirement
	session.Step = models.StepDelivery
	if err := db.Save(session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save checkout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Identity linked!", session)
}

// SaveDelivery captures the shipping address and moves the workflow to review.
func SaveDelivery(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedDelivery").(*models.ShippingAddress)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	session, err := loadSession(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load checkout!", nil)
	}

	cart, err := loadCart(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load cart!", nil)
	}

	// Identity step cannot be skipped by posting delivery directly.
	requirement := reconcileSession(db, session, cart)
	if !identityCaptured(db, session, requirement) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Identity form required before delivery!", fiber.Map{
			"requiredForm": requirement,
			"step":         session.Step,
		})
	}

	session.Shipping = *reqData
	session.DeliveryCaptured = true
	session.Step = models.StepReview
	if err := db.Save(session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save checkout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Delivery saved!", session)
}

// PlaceOrder is the payment handoff. Refused unless identity (if required)
// and delivery are captured. Snapshots the cart, prices it, creates the
// gateway payment request, then creates the order in pending state and hands
// the hosted payment URL back.
func PlaceOrder(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	session, err := loadSession(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load checkout!", nil)
	}

	cart, err := loadCart(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load cart!", nil)
	}
	if len(cart) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
	}

	// Workflow guards: both must hold or the workflow is forced backward.
	requirement := reconcileSession(db, session, cart)
	if !identityCaptured(db, session, requirement) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Identity form required before payment!", fiber.Map{
			"requiredForm": requirement,
			"step":         models.StepIdentity,
		})
	}
	if !session.DeliveryCaptured {
		session.Step = models.StepDelivery
		db.Save(session)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Delivery address required before payment!", fiber.Map{
			"step": models.StepDelivery,
		})
	}

	totals := ComputeTotals(cart)

	phone := session.Shipping.Mobile
	if phone == "" {
		phone = user.Mobile
	}

	purpose := "DocSeva Order " + uuid.NewString()[:8]
	paymentRequest, err := utils.CreatePaymentRequest(totals.Total, purpose, user.Name, user.Email, phone)
	if err != nil {
		var invalidPhone *utils.ErrInvalidPhone
		if errors.As(err, &invalidPhone) {
			return middleware.ValidationErrorResponse(c, map[string]string{"mobile": "A valid 10-digit mobile number is required!"})
		}
		log.Printf("Payment request creation failed for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment gateway error, please try again!", nil)
	}

	items := make([]models.OrderItem, 0, len(cart))
	for _, row := range cart {
		items = append(items, models.OrderItem{
			ProductID:   row.ProductID,
			Title:       row.Title,
			Price:       row.Price,
			Quantity:    row.Quantity,
			ProductType: row.ProductType,
		})
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		log.Printf("Failed to marshal order items for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to place order!", nil)
	}

	order := models.Order{
		UserID:    userId,
		UserEmail: user.Email,
		UserName:  user.Name,
		Items:     datatypes.JSON(itemsJSON),
		Shipping:  session.Shipping,
		Payment: models.PaymentDetails{
			RequestID: paymentRequest.ID,
			Amount:    totals.Total,
			Currency:  "INR",
			Status:    models.PaymentStatusPending,
		},
		IdentityFormID:      session.IdentityFormID,
		NeedsIdentityReview: requirement != utils.RequirementNone && session.IdentityFormID == nil,
		Subtotal:            totals.Subtotal,
		Tax:                 totals.Tax,
		ShippingCharge:      totals.ShippingCharge,
		Total:               totals.Total,
		Status:              models.OrderStatusPending,
		OrderDate:           time.Now(),
	}

	if err := db.Create(&order).Error; err != nil {
		log.Printf("Failed to create order for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to place order!", nil)
	}

	session.Step = models.StepPayment
	session.Consumed = true
	if err := db.Save(session).Error; err != nil {
		log.Printf("Failed to consume checkout session %d: %v", session.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order placed, complete payment!", fiber.Map{
		"orderId":          order.ID,
		"paymentRequestId": paymentRequest.ID,
		"paymentUrl":       paymentRequest.LongURL,
		"total":            totals.Total,
	})
}
