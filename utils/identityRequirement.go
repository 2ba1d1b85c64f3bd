package utils

import (
	"strings"

	"docseva/models"
)

// RequiredForm values returned by ResolveIdentityRequirement.
const (
	RequirementNone      = "none"
	RequirementAadhaar   = "aadhaar"
	RequirementPan       = "pan"
	RequirementUniversal = "universal"
)

var aadhaarTokens = []string{"aadhaar", "aadhar", "adhar"}
var panTokens = []string{"pan"}

// requirementFromTag reads the explicit productType tag on a cart item.
// Returns (needsAadhaar, needsPan, recognized).
func requirementFromTag(productType string) (bool, bool, bool) {
	switch productType {
	case models.ProductTypeAadhaar:
		return true, false, true
	case models.ProductTypePan:
		return false, true, true
	case models.ProductTypeBoth:
		return true, true, true
	case models.ProductTypeNone:
		return false, false, true
	}
	return false, false, false
}

// requirementFromText guesses the identity requirement from free text.
// Fallback for legacy catalog rows that predate the productType tag.
func requirementFromText(text string) (needsAadhaar, needsPan bool) {
	lower := strings.ToLower(text)
	for _, t := range aadhaarTokens {
		if strings.Contains(lower, t) {
			needsAadhaar = true
			break
		}
	}
	for _, t := range panTokens {
		if strings.Contains(lower, t) {
			needsPan = true
			break
		}
	}
	return
}

// ResolveIdentityRequirement inspects the whole cart and decides which
// identity form is mandatory before checkout. Flags accumulate across items
// because one checkout produces a single combined submission for the order.
func ResolveIdentityRequirement(items []models.CartItem) string {
	needsAadhaar := false
	needsPan := false

	for _, item := range items {
		a, p, recognized := requirementFromTag(item.ProductType)
		if !recognized {
			a, p = requirementFromText(item.Title + " " + item.CategoryName + " " + item.SubCategoryName)
		}
		needsAadhaar = needsAadhaar || a
		needsPan = needsPan || p
	}

	switch {
	case needsAadhaar && needsPan:
		return RequirementUniversal
	case needsAadhaar:
		return RequirementAadhaar
	case needsPan:
		return RequirementPan
	}
	return RequirementNone
}

// RequirementSatisfiedBy reports whether a submission of formType covers the
// resolved requirement.
func RequirementSatisfiedBy(requirement, formType string) bool {
	switch requirement {
	case RequirementNone:
		return true
	case RequirementAadhaar:
		return formType == models.FormTypeAadhaar || formType == models.FormTypeUniversal
	case RequirementPan:
		return formType == models.FormTypePan || formType == models.FormTypeUniversal
	case RequirementUniversal:
		return formType == models.FormTypeUniversal
	}
	return false
}
