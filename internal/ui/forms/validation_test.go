package forms

import (
	"testing"

	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"a@b.co":                        true,
		"jane.doe@example.io":           true,
		"a@b":                           false,
		"":                              false,
		"a b@c.de":                      false,
		"a@@b.co":                       false,
		"@b.co":                         false,
		"ada\u00a0lovelace@example.com": false,
		"ada@exa\u2003mple.com":         false,
		"a@b.c\u00a0o":                  false,
		"\ufeffa@b.co":                  false,
	}
	for input, want := range cases {
		if got := IsValidEmail(input); got != want {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := map[string]bool{
		"":                    true,
		"5551234567":          true,
		"(555) 123-4567":      true,
		"555-123-4567":        true,
		"555-12-4567":         false,
		"555123456":           false,
		"(555)123-4567":       false,
		"555 123 4567":        false,
		"(555)\u00a0123-4567": true,
		"(555)\u3000123-4567": true,
	}
	for input, want := range cases {
		if got := IsValidPhone(input); got != want {
			t.Fatalf("IsValidPhone(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"5551234567":     "(555) 123-4567",
		"555.123.4567":   "(555) 123-4567",
		"(555) 123-4567": "(555) 123-4567",
		"555123":         "555123",
		"55512345678":    "55512345678",
		"":               "",
	}
	for input, want := range cases {
		got := FormatPhone(input)
		if got != want {
			t.Fatalf("FormatPhone(%q) = %q, want %q", input, got, want)
		}
		if again := FormatPhone(got); again != got {
			t.Fatalf("FormatPhone not idempotent for %q: %q then %q", input, got, again)
		}
	}
}

func TestValidateField(t *testing.T) {
	cases := []struct {
		name   string
		field  model.Field
		valid  bool
		msg    string
		status model.FieldStatus
	}{
		{
			name:   "required empty uses label without marker",
			field:  model.Field{Name: "name", Label: "Full Name *", Required: true, Value: "   "},
			msg:    "Full Name is required",
			status: model.StatusError,
		},
		{
			name:   "required empty falls back to name",
			field:  model.Field{Name: "email", Kind: model.FieldEmail, Required: true},
			msg:    "email is required",
			status: model.StatusError,
		},
		{
			name:   "bad email",
			field:  model.Field{Name: "email", Kind: model.FieldEmail, Required: true, Value: "a@b"},
			msg:    "Please enter a valid email address",
			status: model.StatusError,
		},
		{
			name:   "bad phone",
			field:  model.Field{Name: "phone", Kind: model.FieldTel, Value: "555-12-4567"},
			msg:    "Please enter a valid phone number",
			status: model.StatusError,
		},
		{
			name:   "short message",
			field:  model.Field{Name: "message", Kind: model.FieldTextarea, Value: "hi"},
			msg:    "Message must be at least 10 characters long",
			status: model.StatusError,
		},
		{
			name:   "message length counts characters not bytes",
			field:  model.Field{Name: "message", Kind: model.FieldTextarea, Value: "ééééééééé"},
			msg:    "Message must be at least 10 characters long",
			status: model.StatusError,
		},
		{
			name:   "emoji count once each",
			field:  model.Field{Name: "message", Kind: model.FieldTextarea, Value: "🙂🙂🙂🙂🙂"},
			msg:    "Message must be at least 10 characters long",
			status: model.StatusError,
		},
		{
			name:   "ten accented characters pass",
			field:  model.Field{Name: "message", Kind: model.FieldTextarea, Value: "éééééééééé"},
			valid:  true,
			status: model.StatusSuccess,
		},
		{
			name:   "optional empty has no decoration",
			field:  model.Field{Name: "phone", Kind: model.FieldTel},
			valid:  true,
			status: model.StatusNone,
		},
		{
			name:   "valid value flagged success",
			field:  model.Field{Name: "message", Kind: model.FieldTextarea, Required: true, Value: "Tell me more about pricing"},
			valid:  true,
			status: model.StatusSuccess,
		},
		{
			name:   "required wins over format",
			field:  model.Field{Name: "email", Label: "Email *", Kind: model.FieldEmail, Required: true, Value: ""},
			msg:    "Email is required",
			status: model.StatusError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateField(tc.field)
			if got.Valid != tc.valid || got.Message != tc.msg || got.Status != tc.status {
				t.Fatalf("ValidateField(%+v) = %+v", tc.field, got)
			}
		})
	}
}
