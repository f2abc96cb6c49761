// Package navigation switches between the pages of the single-page site and
// keeps browser history in step.
package navigation

import (
	"time"

	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
	"github.com/Its-donkey/techsolutions-site/internal/ui/state"
	"github.com/Its-donkey/techsolutions-site/logging"
)

// RevealDelay is how long after a page switch the reveal animation is requested.
const RevealDelay = 100 * time.Millisecond

const logCategory = "navigation"

// Presenter shows pages and nav-link state.
type Presenter interface {
	// ShowPage makes pageID the only visible page.
	ShowPage(pageID string)
	// SetActiveNavLink marks links for pageID active and every other link inactive.
	SetActiveNavLink(pageID string)
	// ScrollToTop smoothly scrolls the viewport to the top.
	ScrollToTop()
}

// Revealer runs the entrance animation for a page's animated elements.
type Revealer interface {
	Reveal(pageID string)
}

// Controller owns the current page.
type Controller struct {
	app       *state.App
	pages     map[string]struct{}
	presenter Presenter
	revealer  Revealer
	sched     eventloop.Scheduler
	reveal    eventloop.Timer
	logger    *logging.Logger
}

// NewController builds a controller over the known page ids.
func NewController(app *state.App, pages []string, presenter Presenter, revealer Revealer, sched eventloop.Scheduler, logger *logging.Logger) *Controller {
	known := make(map[string]struct{}, len(pages))
	for _, id := range pages {
		known[id] = struct{}{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		app:       app,
		pages:     known,
		presenter: presenter,
		revealer:  revealer,
		sched:     sched,
		logger:    logger,
	}
}

// Current returns the active page id.
func (c *Controller) Current() string {
	return c.app.CurrentPage
}

// Known reports whether pageID names a page.
func (c *Controller) Known(pageID string) bool {
	_, ok := c.pages[pageID]
	return ok
}

// NavigateTo switches to pageID in response to a user action. Navigating to
// the current page or to an unknown page changes nothing.
func (c *Controller) NavigateTo(pageID string) model.NavigationDecision {
	if pageID == c.app.CurrentPage || !c.Known(pageID) {
		return model.NavigationDecision{Page: c.app.CurrentPage}
	}
	c.activate(pageID)
	return model.NavigationDecision{
		Page:        pageID,
		Changed:     true,
		PushHistory: true,
		Fragment:    "#" + pageID,
	}
}

// HandleHistoryPop activates the page recorded in a popped history entry. A
// missing entry or page means home. History is never pushed from here.
func (c *Controller) HandleHistoryPop(entry *model.HistoryEntry) model.NavigationDecision {
	pageID := model.HomePage
	if entry != nil && entry.Page != "" {
		pageID = entry.Page
	}
	if !c.Known(pageID) {
		return model.NavigationDecision{Page: c.app.CurrentPage}
	}
	c.activate(pageID)
	return model.NavigationDecision{Page: pageID, Changed: true}
}

func (c *Controller) activate(pageID string) {
	previous := c.app.CurrentPage
	c.presenter.ShowPage(pageID)
	c.app.CurrentPage = pageID
	c.presenter.SetActiveNavLink(pageID)
	c.presenter.ScrollToTop()

	if c.reveal != nil {
		c.reveal.Stop()
	}
	c.reveal = c.sched.AfterFunc(RevealDelay, func() {
		c.reveal = nil
		if c.revealer != nil {
			c.revealer.Reveal(c.app.CurrentPage)
		}
	})

	c.logger.Debug(logCategory, "page shown", map[string]any{"from": previous, "to": pageID})
}
