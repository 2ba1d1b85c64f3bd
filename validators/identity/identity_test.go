package identityValidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAadhaarPayload() *SubmissionPayload {
	return &SubmissionPayload{
		FormType:      "aadhaar",
		FullName:      "Ram Kumar",
		DOB:           "1990-01-15",
		Mobile:        "98765 43210",
		Consent:       true,
		AadhaarNumber: "1234 5678 9012",
	}
}

func validPanPayload() *SubmissionPayload {
	return &SubmissionPayload{
		FormType:   "pan",
		FullName:   "Ram Kumar",
		DOB:        "1990-01-15",
		Consent:    true,
		PanNumber:  "abcde1234f",
		FatherName: "Shyam Kumar",
	}
}

func TestValidateSubmission_ValidAadhaar(t *testing.T) {
	p := validAadhaarPayload()
	_, _, ok := ValidateSubmission(p)
	assert.True(t, ok)
	assert.Equal(t, "123456789012", p.AadhaarNumber)
	assert.Equal(t, "9876543210", p.Mobile)
}

func TestValidateSubmission_ValidPan(t *testing.T) {
	p := validPanPayload()
	_, _, ok := ValidateSubmission(p)
	assert.True(t, ok)
	assert.Equal(t, "ABCDE1234F", p.PanNumber)
}

func TestValidateSubmission_ValidUniversal(t *testing.T) {
	p := validAadhaarPayload()
	p.FormType = "universal"
	p.PanNumber = "ABCDE1234F"
	p.FatherName = "Shyam Kumar"
	_, _, ok := ValidateSubmission(p)
	assert.True(t, ok)
}

func TestValidateSubmission_ErrorCodes(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SubmissionPayload)
		base      func() *SubmissionPayload
		wantField string
		wantCode  string
	}{
		{"unknown form type", func(p *SubmissionPayload) { p.FormType = "voter-id" }, validAadhaarPayload, "formType", "InvalidFormType"},
		{"empty form type", func(p *SubmissionPayload) { p.FormType = "" }, validAadhaarPayload, "formType", "InvalidFormType"},
		{"missing name", func(p *SubmissionPayload) { p.FullName = "" }, validAadhaarPayload, "fullName", "MissingRequiredField"},
		{"missing dob", func(p *SubmissionPayload) { p.DOB = "" }, validAadhaarPayload, "dob", "MissingRequiredField"},
		{"consent not given", func(p *SubmissionPayload) { p.Consent = false }, validAadhaarPayload, "consent", "ConsentRequired"},
		{"short aadhaar", func(p *SubmissionPayload) { p.AadhaarNumber = "1234" }, validAadhaarPayload, "aadhaarNumber", "InvalidAadhaar"},
		{"short mobile", func(p *SubmissionPayload) { p.Mobile = "12345" }, validAadhaarPayload, "mobile", "InvalidMobile"},
		{"nine char pan", func(p *SubmissionPayload) { p.PanNumber = "ABCDE1234" }, validPanPayload, "panNumber", "InvalidPan"},
		{"pan without father name", func(p *SubmissionPayload) { p.FatherName = "" }, validPanPayload, "fatherName", "MissingFatherName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.base()
			tt.mutate(p)
			field, code, ok := ValidateSubmission(p)
			assert.False(t, ok)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestValidateSubmission_FirstViolationWins(t *testing.T) {
	// Multiple problems: the form-type check fires before everything else.
	p := &SubmissionPayload{FormType: "bogus", Consent: false}
	field, code, ok := ValidateSubmission(p)
	assert.False(t, ok)
	assert.Equal(t, "formType", field)
	assert.Equal(t, "InvalidFormType", code)

	// Consent fires before document number checks.
	p = validAadhaarPayload()
	p.Consent = false
	p.AadhaarNumber = "bad"
	_, code, _ = ValidateSubmission(p)
	assert.Equal(t, "ConsentRequired", code)
}

func TestValidateSubmission_UniversalNeedsBothDocuments(t *testing.T) {
	p := validAadhaarPayload()
	p.FormType = "universal"
	// No PAN supplied yet.
	field, code, ok := ValidateSubmission(p)
	assert.False(t, ok)
	assert.Equal(t, "panNumber", field)
	assert.Equal(t, "InvalidPan", code)
}
