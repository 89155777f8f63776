package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown next to form
// fields in the dashboard.
var FieldLabels = map[string]string{
	// Auth forms
	"Email":       "Email",
	"Password":    "Password",
	"NewPassword": "New Password",

	// User form
	"UserName": "Username",
	"Role":     "Role",

	// Career form (English/Arabic pairs)
	"TitleEn":          "Title (English)",
	"TitleAr":          "Title (Arabic)",
	"DepartmentEn":     "Department (English)",
	"DepartmentAr":     "Department (Arabic)",
	"LocationEn":       "Location (English)",
	"LocationAr":       "Location (Arabic)",
	"EmploymentTypeEn": "Employment Type (English)",
	"EmploymentTypeAr": "Employment Type (Arabic)",

	// Service section / item forms
	"SubTitleEn":    "Subtitle (English)",
	"SubTitleAr":    "Subtitle (Arabic)",
	"DescriptionEn": "Description (English)",
	"DescriptionAr": "Description (Arabic)",
	"CategoryEn":    "Category (English)",
	"CategoryAr":    "Category (Arabic)",
	"Order":         "Order",

	// Application status form
	"Status": "Status",
}

func label(field string) string {
	if l, ok := FieldLabels[field]; ok {
		return l
	}
	return field
}

// Message renders one validation failure as a sentence a staff member can
// act on.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label(fe.Field()))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label(fe.Field()))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label(fe.Field()), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label(fe.Field()), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label(fe.Field()), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label(fe.Field()), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", label(fe.Field()))
}

// Messages flattens a validator error into per-field messages keyed by
// struct field name. Non-validation errors yield a single generic entry.
func Messages(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		out[""] = "Invalid input"
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = Message(fe)
	}
	return out
}

// First returns one representative message for flash-style reporting.
func First(err error) string {
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) || len(verrs) == 0 {
		return "Invalid input"
	}
	return Message(verrs[0])
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}
