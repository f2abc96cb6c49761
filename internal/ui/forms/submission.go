package forms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
	"github.com/Its-donkey/techsolutions-site/internal/ui/state"
	"github.com/Its-donkey/techsolutions-site/logging"
)

const (
	// DefaultSubmitLabel is used when the markup does not provide a button label.
	DefaultSubmitLabel = "Send Message"
	// LoadingLabel replaces the button label while a submission is in flight.
	LoadingLabel = "Sending..."

	InvalidFormText = "Please correct the errors above"
	SuccessText     = "Thank you! Your message has been sent successfully."
	FailureText     = "Sorry, there was an error sending your message. Please try again."

	DefaultDebounce    = 300 * time.Millisecond
	DefaultMessageTTL  = 5 * time.Second
	DefaultSubmitDelay = 2 * time.Second

	logCategory = "submission"
)

var (
	// ErrUnknownField is returned for events naming a field the form does not have.
	ErrUnknownField = errors.New("forms: unknown field")
	// ErrSubmitterPanic wraps a panic raised inside a Submitter.
	ErrSubmitterPanic = errors.New("forms: submitter panicked")
)

// Submitter delivers the form contents. Implementations may block; they are
// never called on the event loop.
type Submitter interface {
	Submit(ctx context.Context, values map[string]string) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, values map[string]string) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, values map[string]string) error {
	return f(ctx, values)
}

// SimulatedSubmitter stands in for a real endpoint: it waits Delay and then
// returns Err (nil by default).
type SimulatedSubmitter struct {
	Delay time.Duration
	Err   error
}

// Submit waits for the configured delay or for ctx to end.
func (s SimulatedSubmitter) Submit(ctx context.Context, _ map[string]string) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return s.Err
	}
}

// Presenter renders everything the submission controller decides.
type Presenter interface {
	MessagePresenter
	RenderField(fieldID string, result model.FieldResult)
	ResetFields()
	RenderSubmitButton(view model.SubmitButtonView)
}

// Options tunes a Controller. Zero values pick the defaults.
type Options struct {
	SubmitLabel string
	Debounce    time.Duration
	MessageTTL  time.Duration
	Logger      *logging.Logger
}

// Controller owns field values, validation state and the single-flight
// submission lifecycle. All methods must be called on the event loop.
type Controller struct {
	app         *state.App
	fields      []model.Field
	index       map[string]int
	presenter   Presenter
	submitter   Submitter
	sched       eventloop.Scheduler
	messages    *messageBoard
	debouncers  map[string]*Debouncer
	debounce    time.Duration
	phase       model.SubmitPhase
	submitLabel string
	logger      *logging.Logger
}

// NewController builds a controller for fields. A nil submitter falls back to
// a SimulatedSubmitter with the default delay.
func NewController(app *state.App, fields []model.Field, presenter Presenter, submitter Submitter, sched eventloop.Scheduler, opts Options) *Controller {
	if submitter == nil {
		submitter = SimulatedSubmitter{Delay: DefaultSubmitDelay}
	}
	if opts.SubmitLabel == "" {
		opts.SubmitLabel = DefaultSubmitLabel
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.MessageTTL <= 0 {
		opts.MessageTTL = DefaultMessageTTL
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	owned := make([]model.Field, len(fields))
	copy(owned, fields)
	index := make(map[string]int, len(owned))
	for i, field := range owned {
		index[field.ID] = i
	}

	return &Controller{
		app:         app,
		fields:      owned,
		index:       index,
		presenter:   presenter,
		submitter:   submitter,
		sched:       sched,
		messages:    newMessageBoard(presenter, sched, opts.MessageTTL),
		debouncers:  make(map[string]*Debouncer, len(owned)),
		debounce:    opts.Debounce,
		phase:       model.PhaseIdle,
		submitLabel: opts.SubmitLabel,
		logger:      opts.Logger,
	}
}

// Phase reports the current lifecycle phase.
func (c *Controller) Phase() model.SubmitPhase {
	return c.phase
}

// Fields returns a copy of the fields with their current values.
func (c *Controller) Fields() []model.Field {
	out := make([]model.Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Value returns the stored value of a field.
func (c *Controller) Value(fieldID string) (string, bool) {
	idx, ok := c.index[fieldID]
	if !ok {
		return "", false
	}
	return c.fields[idx].Value, true
}

// Message returns the banner currently shown, if any.
func (c *Controller) Message() (model.Message, bool) {
	return c.messages.visible()
}

// Input records a keystroke-level change. Phone fields are reformatted and the
// value to write back into the control is returned. Validation runs once
// input has been quiet for the debounce period.
func (c *Controller) Input(fieldID, value string) (string, error) {
	idx, ok := c.index[fieldID]
	if !ok {
		return value, fmt.Errorf("%w: %s", ErrUnknownField, fieldID)
	}
	if c.fields[idx].Kind == model.FieldTel {
		value = FormatPhone(value)
	}
	c.fields[idx].Value = value
	c.debouncer(fieldID).Trigger(func() {
		c.validate(idx)
	})
	return value, nil
}

// Blur validates a field immediately.
func (c *Controller) Blur(fieldID string) (model.FieldResult, error) {
	idx, ok := c.index[fieldID]
	if !ok {
		return model.FieldResult{}, fmt.Errorf("%w: %s", ErrUnknownField, fieldID)
	}
	return c.validate(idx), nil
}

// ValidateAll validates and renders every field, reporting whether all passed.
func (c *Controller) ValidateAll() bool {
	valid := true
	for idx := range c.fields {
		if !c.validate(idx).Valid {
			valid = false
		}
	}
	return valid
}

func (c *Controller) validate(idx int) model.FieldResult {
	result := ValidateField(c.fields[idx])
	c.presenter.RenderField(c.fields[idx].ID, result)
	return result
}

func (c *Controller) debouncer(fieldID string) *Debouncer {
	d, ok := c.debouncers[fieldID]
	if !ok {
		d = NewDebouncer(c.sched, c.debounce)
		c.debouncers[fieldID] = d
	}
	return d
}

// HandleSubmit processes a submit event. While a submission is in flight the
// event is dropped. Invalid forms show the aggregate banner and never reach
// the submitter. Otherwise the submitter runs off the loop and its result is
// posted back.
func (c *Controller) HandleSubmit(ctx context.Context) model.SubmitAttempt {
	if c.app.Submitting {
		c.logger.Debug(logCategory, "submit ignored while in flight", nil)
		return model.SubmitDropped
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c.phase = model.PhaseValidating
	if !c.ValidateAll() {
		c.phase = model.PhaseIdle
		c.messages.show(model.MessageError, InvalidFormText)
		c.logger.Debug(logCategory, "submit rejected by validation", nil)
		return model.SubmitRejected
	}

	c.phase = model.PhaseSubmitting
	c.app.Submitting = true
	c.presenter.RenderSubmitButton(model.SubmitButtonView{Label: LoadingLabel, Disabled: true, Loading: true})

	attemptID := uuid.NewString()
	values := c.snapshot()
	c.logger.Debug(logCategory, "submission started", map[string]any{"attempt": attemptID})

	go func() {
		err := c.runSubmitter(ctx, values)
		c.sched.Post(func() {
			c.finish(attemptID, err)
		})
	}()
	return model.SubmitStarted
}

func (c *Controller) runSubmitter(ctx context.Context, values map[string]string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSubmitterPanic, r)
		}
	}()
	return c.submitter.Submit(ctx, values)
}

func (c *Controller) finish(attemptID string, err error) {
	defer c.settle()

	if err != nil {
		c.logger.Error(logCategory, "submission failed", err, map[string]any{"attempt": attemptID})
		c.messages.show(model.MessageError, FailureText)
		return
	}

	c.logger.Debug(logCategory, "submission succeeded", map[string]any{"attempt": attemptID})
	c.messages.show(model.MessageSuccess, SuccessText)
	c.reset()
}

// settle runs on every exit from the submitting phase.
func (c *Controller) settle() {
	c.app.Submitting = false
	c.phase = model.PhaseIdle
	c.presenter.RenderSubmitButton(model.SubmitButtonView{Label: c.submitLabel})
}

func (c *Controller) reset() {
	for _, d := range c.debouncers {
		d.Cancel()
	}
	for idx := range c.fields {
		c.fields[idx].Value = ""
	}
	c.presenter.ResetFields()
}

func (c *Controller) snapshot() map[string]string {
	values := make(map[string]string, len(c.fields))
	for _, field := range c.fields {
		key := field.Name
		if key == "" {
			key = field.ID
		}
		values[key] = field.Value
	}
	return values
}
