// Package app wires the page controllers together behind presentation ports.
// It is the only place that knows every controller; the browser adapter
// forwards DOM events here and implements the ports.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/Its-donkey/techsolutions-site/internal/ui/a11y"
	"github.com/Its-donkey/techsolutions-site/internal/ui/carousel"
	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
	"github.com/Its-donkey/techsolutions-site/internal/ui/forms"
	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
	"github.com/Its-donkey/techsolutions-site/internal/ui/navigation"
	"github.com/Its-donkey/techsolutions-site/internal/ui/site"
	"github.com/Its-donkey/techsolutions-site/internal/ui/state"
	"github.com/Its-donkey/techsolutions-site/logging"
)

// ErrNoForm is returned by form events on a page without a contact form.
var ErrNoForm = errors.New("app: page has no contact form")

// Ports are the presentation collaborators.
type Ports struct {
	Pages   navigation.Presenter
	Reveal  navigation.Revealer
	History navigation.History
	Menu    navigation.MenuPresenter
	Slides  carousel.Presenter
	Form    forms.Presenter
}

// Options tunes the controllers.
type Options struct {
	Submitter     forms.Submitter
	SlideInterval time.Duration
	Debounce      time.Duration
	MessageTTL    time.Duration
	Logger        *logging.Logger
}

// App is one page session.
type App struct {
	State    *state.App
	Router   *navigation.Router
	Menu     *navigation.Menu
	Carousel *carousel.Controller
	Form     *forms.Controller
	Keyboard *a11y.Keyboard
	logger   *logging.Logger
}

// New builds the controllers described by manifest. The carousel and form are
// only created when the markup has them.
func New(manifest site.Manifest, ports Ports, sched eventloop.Scheduler, opts Options) (*App, error) {
	if len(manifest.Pages) == 0 {
		return nil, site.ErrNoPages
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	st := state.New(manifest.InitialPage, manifest.Slides)
	a := &App{State: st, logger: logger}

	nav := navigation.NewController(st, manifest.Pages, ports.Pages, ports.Reveal, sched, logger)
	a.Router = navigation.NewRouter(nav, ports.History)
	a.Menu = navigation.NewMenu(st, ports.Menu)

	var slides a11y.Slides
	if manifest.Slides > 0 {
		ctrl, err := carousel.NewController(st, ports.Slides, sched, opts.SlideInterval, logger)
		if err != nil {
			return nil, err
		}
		a.Carousel = ctrl
		slides = ctrl
	}

	if manifest.HasForm {
		a.Form = forms.NewController(st, manifest.Fields, ports.Form, opts.Submitter, sched, forms.Options{
			SubmitLabel: manifest.SubmitLabel,
			Debounce:    opts.Debounce,
			MessageTTL:  opts.MessageTTL,
			Logger:      logger,
		})
	}

	a.Keyboard = a11y.NewKeyboard(st, slides, a.Menu)
	return a, nil
}

// Start renders the first slide and begins auto-advancing.
func (a *App) Start() {
	if a.Carousel != nil {
		a.Carousel.Render()
		a.Carousel.StartAutoAdvance()
	}
	a.logger.Info("app", "site controller started", map[string]any{
		"page":   a.State.CurrentPage,
		"slides": a.State.TotalSlides,
	})
}

// Stop halts every timer the app owns.
func (a *App) Stop() {
	if a.Carousel != nil {
		a.Carousel.StopAutoAdvance()
	}
}

// NavClick handles a click on any element carrying data-page.
func (a *App) NavClick(pageID string) model.NavigationDecision {
	decision := a.Router.Navigate(pageID)
	a.Menu.Close()
	return decision
}

// HistoryPop handles the browser's back/forward navigation.
func (a *App) HistoryPop(entry *model.HistoryEntry) model.NavigationDecision {
	return a.Router.Pop(entry)
}

// MenuToggle handles the mobile menu button.
func (a *App) MenuToggle() {
	a.Menu.Toggle()
}

// DocumentClick closes the menu for clicks outside the navigation.
func (a *App) DocumentClick(insideNav bool) {
	if !insideNav {
		a.Menu.Close()
	}
}

// KeyDown handles document key presses.
func (a *App) KeyDown(key string) bool {
	return a.Keyboard.KeyDown(key)
}

// DotClick selects the slide for a clicked indicator.
func (a *App) DotClick(index int) error {
	if a.Carousel == nil {
		return carousel.ErrNoSlides
	}
	return a.Carousel.GoToSlide(index)
}

// DotKey handles a key press on a focused indicator.
func (a *App) DotKey(index int, key string) (bool, error) {
	return a.Keyboard.DotKey(index, key)
}

// PointerEnter pauses the carousel.
func (a *App) PointerEnter() {
	if a.Carousel != nil {
		a.Carousel.PointerEnter()
	}
}

// PointerLeave resumes the carousel.
func (a *App) PointerLeave() {
	if a.Carousel != nil {
		a.Carousel.PointerLeave()
	}
}

// FieldInput records typing in a form field and returns the value to show.
func (a *App) FieldInput(fieldID, value string) (string, error) {
	if a.Form == nil {
		return value, ErrNoForm
	}
	return a.Form.Input(fieldID, value)
}

// FieldBlur validates a field when it loses focus.
func (a *App) FieldBlur(fieldID string) error {
	if a.Form == nil {
		return ErrNoForm
	}
	_, err := a.Form.Blur(fieldID)
	return err
}

// Submit handles the form's submit event.
func (a *App) Submit(ctx context.Context) model.SubmitAttempt {
	if a.Form == nil {
		return model.SubmitDropped
	}
	return a.Form.HandleSubmit(ctx)
}
