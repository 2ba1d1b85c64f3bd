package identityController

import (
	"encoding/json"
	"log"

	"docseva/database"
	"docseva/middleware"
	"docseva/models"
	identityValidator "docseva/validators/identity"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// SubmitForm persists one identity document submission for the current
// checkout attempt. The owner comes from the JWT, never from the body, and
// the cart snapshot is stored verbatim for audit. The record is immutable
// after creation.
func SubmitForm(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSubmission").(*identityValidator.SubmissionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	snapshot, err := json.Marshal(reqData.CartSnapshot)
	if err != nil {
		log.Printf("Failed to marshal cart snapshot for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save submission!", nil)
	}

	form := models.IdentityForm{
		UserID:        userId,
		FormType:      reqData.FormType,
		FullName:      reqData.FullName,
		DOB:           reqData.DOB,
		Mobile:        reqData.Mobile,
		Consent:       reqData.Consent,
		AadhaarNumber: reqData.AadhaarNumber,
		PanNumber:     reqData.PanNumber,
		FatherName:    reqData.FatherName,
		AadhaarPhoto:  reqData.AadhaarPhoto,
		PanPhoto:      reqData.PanPhoto,
		CartSnapshot:  datatypes.JSON(snapshot),
	}

	if err := database.Database.Db.Create(&form).Error; err != nil {
		log.Printf("Failed to save identity form for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Identity form submitted!", form.View())
}

// ListMyForms returns the user's own submissions as non-sensitive projections
func ListMyForms(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var forms []models.IdentityForm
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at desc").
		Find(&forms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	views := make([]models.IdentityFormView, 0, len(forms))
	for i := range forms {
		views = append(views, forms[i].View())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched!", views)
}

// AdminGetForm returns a full submission, document numbers included (Admin only)
func AdminGetForm(c *fiber.Ctx) error {
	formId, err := c.ParamsInt("id")
	if err != nil || formId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid form id!", nil)
	}

	var form models.IdentityForm
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", formId).
		First(&form).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	// Explicit privileged read: include the write-restricted fields.
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission fetched!", fiber.Map{
		"id":            form.ID,
		"userId":        form.UserID,
		"formType":      form.FormType,
		"fullName":      form.FullName,
		"dob":           form.DOB,
		"mobile":        form.Mobile,
		"aadhaarNumber": form.AadhaarNumber,
		"panNumber":     form.PanNumber,
		"fatherName":    form.FatherName,
		"aadhaarPhoto":  form.AadhaarPhoto,
		"panPhoto":      form.PanPhoto,
		"cartSnapshot":  form.CartSnapshot,
		"createdAt":     form.CreatedAt,
	})
}
