package orderController

import (
	"log"

	"docseva/database"
	"docseva/middleware"
	"docseva/models"
	"docseva/utils"

	"github.com/gofiber/fiber/v2"
)

// ListAllOrders returns orders across all users (Admin only). Supports
// filtering by lifecycle status and by the needs-identity-review flag.
func ListAllOrders(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	status := c.Query("status")
	needsReview := c.Query("needsIdentityReview")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.Order{}).Where("is_deleted = false")

	if status != "" {
		if !models.ValidOrderStatus(status) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown order status!", nil)
		}
		query = query.Where("status = ?", status)
	}
	if needsReview == "true" {
		query = query.Where("needs_identity_review = true")
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.
		Order("order_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched!", fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// SetOrderStatus moves an order to any of the six lifecycle statuses
// (Admin only). Intentionally unconstrained beyond enum membership so
// operators can manually correct records regardless of payment state.
func SetOrderStatus(c *fiber.Ctx) error {
	orderId, err := c.ParamsInt("id")
	if err != nil || orderId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	reqData, ok := c.Locals("validatedSetStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var order models.Order
	if err := db.Where("id = ? AND is_deleted = false", orderId).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if err := db.Model(&order).Update("status", reqData.Status).Error; err != nil {
		log.Printf("Failed to set status on order %d: %v", order.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}
	order.Status = reqData.Status

	utils.SendOrderStatusEmail(order.UserEmail, order.UserName, &order)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order status updated!", order)
}

// Dashboard returns order counts per status plus review flags (Admin only)
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	counts := fiber.Map{}
	for _, status := range []string{
		models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled,
	} {
		var n int64
		db.Model(&models.Order{}).Where("status = ? AND is_deleted = false", status).Count(&n)
		counts[status] = n
	}

	var needsReview int64
	db.Model(&models.Order{}).Where("needs_identity_review = true AND is_deleted = false").Count(&needsReview)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched!", fiber.Map{
		"orders":              counts,
		"needsIdentityReview": needsReview,
	})
}
