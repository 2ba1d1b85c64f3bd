package identityValidator

import (
	"docseva/middleware"
	"docseva/models"
	"docseva/utils"

	"github.com/gofiber/fiber/v2"
)

// SnapshotItem is one cart line item captured with the submission for audit.
type SnapshotItem struct {
	ProductID   uint    `json:"productId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ProductType string  `json:"productType"`
}

// SubmissionPayload is the identity form submission body. Document numbers
// are normalized in place during validation.
type SubmissionPayload struct {
	FormType      string         `json:"formType"`
	FullName      string         `json:"fullName"`
	DOB           string         `json:"dob"`
	Mobile        string         `json:"mobile"`
	Consent       bool           `json:"consent"`
	AadhaarNumber string         `json:"aadhaarNumber"`
	PanNumber     string         `json:"panNumber"`
	FatherName    string         `json:"fatherName"`
	AadhaarPhoto  string         `json:"aadhaarPhoto"`
	PanPhoto      string         `json:"panPhoto"`
	CartSnapshot  []SnapshotItem `json:"cartSnapshot"`
}

// ValidateSubmission checks the payload in a fixed order and stops at the
// first violation, returning the offending field and an error code. Document
// numbers and the mobile are normalized in place before length checks.
func ValidateSubmission(p *SubmissionPayload) (field, code string, ok bool) {
	switch p.FormType {
	case models.FormTypeAadhaar, models.FormTypePan, models.FormTypeUniversal:
	default:
		return "formType", "InvalidFormType", false
	}

	if p.FullName == "" {
		return "fullName", "MissingRequiredField", false
	}
	if p.DOB == "" {
		return "dob", "MissingRequiredField", false
	}

	if !p.Consent {
		return "consent", "ConsentRequired", false
	}

	if p.FormType == models.FormTypeAadhaar || p.FormType == models.FormTypeUniversal {
		p.AadhaarNumber = utils.NormalizeAadhaar(p.AadhaarNumber)
		if len(p.AadhaarNumber) != 12 {
			return "aadhaarNumber", "InvalidAadhaar", false
		}
		p.Mobile = utils.NormalizeMobile(p.Mobile)
		if len(p.Mobile) != 10 {
			return "mobile", "InvalidMobile", false
		}
	}

	if p.FormType == models.FormTypePan || p.FormType == models.FormTypeUniversal {
		p.PanNumber = utils.NormalizePan(p.PanNumber)
		if len(p.PanNumber) != 10 {
			return "panNumber", "InvalidPan", false
		}
		if p.FatherName == "" {
			return "fatherName", "MissingFatherName", false
		}
	}

	return "", "", true
}

// Submission parses and validates an identity form submission
func Submission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmissionPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if field, code, ok := ValidateSubmission(reqData); !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{field: code})
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
