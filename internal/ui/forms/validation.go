package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
)

const (
	// MessageFieldName names the free-text field that has a minimum length.
	MessageFieldName = "message"
	// MinMessageLength is the shortest accepted non-empty message.
	MinMessageLength = 10

	invalidEmailText  = "Please enter a valid email address"
	invalidPhoneText  = "Please enter a valid phone number"
	shortMessageText  = "Message must be at least 10 characters long"
	requiredSuffix    = " is required"
	requiredLabelMark = " *"
)

var (
	// Browsers treat Unicode separators and the BOM as whitespace too.
	emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)
	phonePattern = regexp.MustCompile(`^\(\d{3}\)[\s\p{Z}\x{FEFF}]\d{3}-\d{4}$|^\d{3}-\d{3}-\d{4}$|^\d{10}$`)
)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone accepts an empty string, (555) 123-4567, 555-123-4567 or 5551234567.
func IsValidPhone(s string) bool {
	return s == "" || phonePattern.MatchString(s)
}

// FormatPhone rewrites input holding exactly ten digits as (ddd) ddd-dddd.
// Anything else is returned unchanged so partial input is left alone.
func FormatPhone(s string) string {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) != 10 {
		return s
	}
	return "(" + string(digits[:3]) + ") " + string(digits[3:6]) + "-" + string(digits[6:])
}

// ValidateField applies the rules in priority order; the first failing rule wins.
func ValidateField(field model.Field) model.FieldResult {
	value := strings.TrimSpace(field.Value)

	switch {
	case field.Required && value == "":
		return invalid(fieldLabel(field) + requiredSuffix)
	case field.Kind == model.FieldEmail && value != "" && !IsValidEmail(value):
		return invalid(invalidEmailText)
	case field.Kind == model.FieldTel && value != "" && !IsValidPhone(value):
		return invalid(invalidPhoneText)
	case field.Name == MessageFieldName && value != "" && utf8.RuneCountInString(value) < MinMessageLength:
		return invalid(shortMessageText)
	}

	if value == "" {
		return model.FieldResult{Valid: true, Status: model.StatusNone}
	}
	return model.FieldResult{Valid: true, Status: model.StatusSuccess}
}

func invalid(message string) model.FieldResult {
	return model.FieldResult{Valid: false, Message: message, Status: model.StatusError}
}

func fieldLabel(field model.Field) string {
	label := strings.TrimSpace(strings.ReplaceAll(field.Label, requiredLabelMark, ""))
	if label != "" {
		return label
	}
	if field.Name != "" {
		return field.Name
	}
	return field.ID
}
