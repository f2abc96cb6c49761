package model

// HomePage is the page shown on first load and when a history entry carries no page.
const HomePage = "home"

// FieldKind mirrors the input types the contact form uses.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldEmail    FieldKind = "email"
	FieldTel      FieldKind = "tel"
	FieldTextarea FieldKind = "textarea"
)

// KindFromInputType maps an HTML input type attribute onto a FieldKind.
func KindFromInputType(inputType string) FieldKind {
	switch inputType {
	case "email":
		return FieldEmail
	case "tel":
		return FieldTel
	case "textarea":
		return FieldTextarea
	default:
		return FieldText
	}
}

// Field is a single form control subject to validation.
type Field struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Value    string    `json:"value,omitempty"`
}

// FieldStatus is the decoration applied to a field's form group.
type FieldStatus string

const (
	StatusNone    FieldStatus = ""
	StatusError   FieldStatus = "error"
	StatusSuccess FieldStatus = "success"
)

// FieldResult is the outcome of validating one field.
type FieldResult struct {
	Valid   bool        `json:"valid"`
	Message string      `json:"message,omitempty"`
	Status  FieldStatus `json:"status,omitempty"`
}

// MessageKind selects the banner styling.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is the single form banner visible at a time.
type Message struct {
	ID   string      `json:"id"`
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

// SubmitPhase tracks the submission lifecycle.
type SubmitPhase int

const (
	PhaseIdle SubmitPhase = iota
	PhaseValidating
	PhaseSubmitting
)

func (p SubmitPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// SubmitAttempt reports what happened to a submit event.
type SubmitAttempt int

const (
	// SubmitDropped means a submission was already in flight.
	SubmitDropped SubmitAttempt = iota
	// SubmitRejected means at least one field failed validation.
	SubmitRejected
	// SubmitStarted means the submitter has been invoked.
	SubmitStarted
)

func (a SubmitAttempt) String() string {
	switch a {
	case SubmitDropped:
		return "dropped"
	case SubmitRejected:
		return "rejected"
	case SubmitStarted:
		return "started"
	default:
		return "unknown"
	}
}

// SubmitButtonView describes how the submit control should render.
type SubmitButtonView struct {
	Label    string
	Disabled bool
	Loading  bool
}

// SlideView describes the carousel position to render.
type SlideView struct {
	Index         int
	Total         int
	OffsetPercent int
}

// HistoryEntry is the state object stored in the browser history stack.
type HistoryEntry struct {
	Page string `json:"page"`
}

// NavigationDecision is what the navigation controller decided to do for one request.
type NavigationDecision struct {
	Page        string
	Changed     bool
	PushHistory bool
	Fragment    string
}
