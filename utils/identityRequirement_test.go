package utils

import (
	"testing"

	"docseva/models"

	"github.com/stretchr/testify/assert"
)

func item(productType, title string) models.CartItem {
	return models.CartItem{ProductType: productType, Title: title, Price: 100, Quantity: 1}
}

func TestResolveIdentityRequirement_TaggedItems(t *testing.T) {
	tests := []struct {
		name  string
		items []models.CartItem
		want  string
	}{
		{"empty cart", nil, RequirementNone},
		{"only aadhaar tagged", []models.CartItem{item("aadhaar", "Card Print"), item("aadhaar", "Address Update")}, RequirementAadhaar},
		{"only pan tagged", []models.CartItem{item("pan", "New Card")}, RequirementPan},
		{"aadhaar and pan mixed", []models.CartItem{item("pan", "Correction"), item("aadhaar", "Update")}, RequirementUniversal},
		{"mixed in reverse order", []models.CartItem{item("aadhaar", "Update"), item("pan", "Correction")}, RequirementUniversal},
		{"both tag alone", []models.CartItem{item("both", "Combo Pack")}, RequirementUniversal},
		{"none tagged only", []models.CartItem{item("none", "Stamp Paper")}, RequirementNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIdentityRequirement(tt.items))
		})
	}
}

func TestResolveIdentityRequirement_KeywordFallback(t *testing.T) {
	// Legacy rows carry no tag; the title/category text decides.
	assert.Equal(t, RequirementPan, ResolveIdentityRequirement([]models.CartItem{item("", "PAN Correction")}))
	assert.Equal(t, RequirementAadhaar, ResolveIdentityRequirement([]models.CartItem{item("", "Aadhar Card Reprint")}))
	assert.Equal(t, RequirementAadhaar, ResolveIdentityRequirement([]models.CartItem{item("", "ADHAR update")}))
	assert.Equal(t, RequirementNone, ResolveIdentityRequirement([]models.CartItem{item("", "Passport Photo")}))

	// Category text participates in the fallback too.
	withCategory := models.CartItem{Title: "Name Correction", CategoryName: "Aadhaar Services"}
	assert.Equal(t, RequirementAadhaar, ResolveIdentityRequirement([]models.CartItem{withCategory}))

	// Unrecognized tags fall back to text as well.
	assert.Equal(t, RequirementPan, ResolveIdentityRequirement([]models.CartItem{item("misc", "Pan Card")}))
}

func TestResolveIdentityRequirement_TagBeatsText(t *testing.T) {
	// An explicit none tag suppresses the keyword fallback for that item.
	tagged := item("none", "PAN themed notebook")
	assert.Equal(t, RequirementNone, ResolveIdentityRequirement([]models.CartItem{tagged}))
}

func TestRequirementSatisfiedBy(t *testing.T) {
	assert.True(t, RequirementSatisfiedBy(RequirementNone, ""))
	assert.True(t, RequirementSatisfiedBy(RequirementAadhaar, models.FormTypeAadhaar))
	assert.True(t, RequirementSatisfiedBy(RequirementAadhaar, models.FormTypeUniversal))
	assert.False(t, RequirementSatisfiedBy(RequirementAadhaar, models.FormTypePan))
	assert.True(t, RequirementSatisfiedBy(RequirementPan, models.FormTypeUniversal))
	assert.False(t, RequirementSatisfiedBy(RequirementUniversal, models.FormTypeAadhaar))
	assert.True(t, RequirementSatisfiedBy(RequirementUniversal, models.FormTypeUniversal))
}
