package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Identity form types
const (
	FormTypeAadhaar   = "aadhaar"
	FormTypePan       = "pan"
	FormTypeUniversal = "universal" // combined Aadhaar + PAN declaration
)

// IdentityForm is one identity document submission per checkout attempt.
// Immutable after creation; kept as an audit record, never deleted by the
// normal flow. Raw document numbers are excluded from JSON serialization
// and must be fetched through the admin projection explicitly.
type IdentityForm struct {
	gorm.Model
	UserID        uint           `gorm:"index;not null"`
	FormType      string         `gorm:"not null"`
	FullName      string         `gorm:"not null"`
	DOB           string         `gorm:"not null"` // YYYY-MM-DD
	Mobile        string         `gorm:"default:''"`
	Consent       bool           `gorm:"not null"`
	AadhaarNumber string         `gorm:"default:''" json:"-"`
	PanNumber     string         `gorm:"default:''" json:"-"`
	FatherName    string         `gorm:"default:''"`
	AadhaarPhoto  string         `gorm:"default:''"` // upload reference
	PanPhoto      string         `gorm:"default:''"` // upload reference
	CartSnapshot  datatypes.JSON `gorm:"type:jsonb"`
	IsDeleted     bool           `gorm:"default:false"`
}

// IdentityFormView is the non-sensitive projection returned to users.
type IdentityFormView struct {
	ID         uint      `json:"id"`
	FormType   string    `json:"formType"`
	FullName   string    `json:"fullName"`
	DOB        string    `json:"dob"`
	Mobile     string    `json:"mobile"`
	FatherName string    `json:"fatherName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// View returns the non-sensitive projection of the form.
func (f *IdentityForm) View() IdentityFormView {
	return IdentityFormView{
		ID:         f.ID,
		FormType:   f.FormType,
		FullName:   f.FullName,
		DOB:        f.DOB,
		Mobile:     f.Mobile,
		FatherName: f.FatherName,
		CreatedAt:  f.CreatedAt,
	}
}
