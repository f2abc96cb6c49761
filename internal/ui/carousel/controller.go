// Package carousel drives the auto-advancing image slider on the home page.
package carousel

import (
	"errors"
	"fmt"
	"time"

	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
	"github.com/Its-donkey/techsolutions-site/internal/ui/state"
	"github.com/Its-donkey/techsolutions-site/logging"
)

// DefaultInterval is the auto-advance period.
const DefaultInterval = 4 * time.Second

const logCategory = "carousel"

var (
	// ErrNoSlides is returned when a carousel is built without slides.
	ErrNoSlides = errors.New("carousel: no slides")
	// ErrSlideOutOfRange is returned by GoToSlide for an index outside [0, total).
	ErrSlideOutOfRange = errors.New("carousel: slide index out of range")
)

// Presenter moves the slide track and updates the indicator dots.
type Presenter interface {
	// RenderSlide translates the track by view.OffsetPercent and marks only
	// dot view.Index active.
	RenderSlide(view model.SlideView)
}

// Controller owns the current slide and the auto-advance timer.
type Controller struct {
	app       *state.App
	presenter Presenter
	sched     eventloop.Scheduler
	interval  time.Duration
	timer     eventloop.Timer
	logger    *logging.Logger
}

// NewController builds a carousel over app.TotalSlides slides.
func NewController(app *state.App, presenter Presenter, sched eventloop.Scheduler, interval time.Duration, logger *logging.Logger) (*Controller, error) {
	if app.TotalSlides < 1 {
		return nil, ErrNoSlides
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		app:       app,
		presenter: presenter,
		sched:     sched,
		interval:  interval,
		logger:    logger,
	}, nil
}

// Current returns the active slide index.
func (c *Controller) Current() int {
	return c.app.CurrentSlide
}

// Total returns the number of slides.
func (c *Controller) Total() int {
	return c.app.TotalSlides
}

// GoToSlide shows slide index.
func (c *Controller) GoToSlide(index int) error {
	if index < 0 || index >= c.app.TotalSlides {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrSlideOutOfRange, index, c.app.TotalSlides)
	}
	c.show(index)
	return nil
}

// Render redraws the current slide without changing it.
func (c *Controller) Render() {
	c.show(c.app.CurrentSlide)
}

func (c *Controller) show(index int) {
	c.app.CurrentSlide = index
	c.presenter.RenderSlide(model.SlideView{
		Index:         index,
		Total:         c.app.TotalSlides,
		OffsetPercent: -(index * 100),
	})
	c.logger.Debug(logCategory, "slide shown", map[string]any{"index": index})
}

// Advance moves to the next slide, wrapping after the last.
func (c *Controller) Advance() {
	c.show((c.app.CurrentSlide + 1) % c.app.TotalSlides)
}

// Retreat moves to the previous slide, wrapping before the first.
func (c *Controller) Retreat() {
	total := c.app.TotalSlides
	c.show((c.app.CurrentSlide - 1 + total) % total)
}

// StartAutoAdvance (re)starts the repeating timer. Any running timer is
// stopped first so only one is ever active.
func (c *Controller) StartAutoAdvance() {
	c.StopAutoAdvance()
	c.timer = c.sched.Every(c.interval, c.Advance)
}

// StopAutoAdvance cancels the repeating timer.
func (c *Controller) StopAutoAdvance() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// AutoAdvancing reports whether the timer is running.
func (c *Controller) AutoAdvancing() bool {
	return c.timer != nil
}

// PointerEnter pauses auto-advance while the pointer is over the carousel.
func (c *Controller) PointerEnter() {
	c.StopAutoAdvance()
}

// PointerLeave resumes auto-advance.
func (c *Controller) PointerLeave() {
	c.StartAutoAdvance()
}
