package identityRoutes

import (
	identityController "docseva/controllers/identity"
	"docseva/middleware"
	identityValidator "docseva/validators/identity"

	"github.com/gofiber/fiber/v2"
)

func SetupIdentityRoutes(app *fiber.App) {
	identityGroup := app.Group("/identity", middleware.JWTMiddleware)

	identityGroup.Post("/forms", identityValidator.Submission(), identityController.SubmitForm)
	identityGroup.Get("/forms", identityController.ListMyForms)

	// Admin: privileged read includes raw document numbers
	adminGroup := identityGroup.Group("/admin", middleware.AdminOnly)
	adminGroup.Get("/forms/:id", identityController.AdminGetForm)
}
