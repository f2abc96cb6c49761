package navigation

import (
	"github.com/Its-donkey/techsolutions-site/internal/ui/state"
)

// MenuPresenter renders the mobile menu and the toggle's aria-expanded state.
type MenuPresenter interface {
	SetMenuOpen(open bool)
}

// Menu is the collapsible navigation shown on narrow screens.
type Menu struct {
	app       *state.App
	presenter MenuPresenter
}

// NewMenu builds a closed menu.
func NewMenu(app *state.App, presenter MenuPresenter) *Menu {
	return &Menu{app: app, presenter: presenter}
}

// IsOpen reports whether the menu is expanded.
func (m *Menu) IsOpen() bool {
	return m.app.MenuOpen
}

// Toggle flips the menu.
func (m *Menu) Toggle() {
	m.set(!m.app.MenuOpen)
}

// Close collapses the menu if it is open.
func (m *Menu) Close() {
	if m.app.MenuOpen {
		m.set(false)
	}
}

func (m *Menu) set(open bool) {
	m.app.MenuOpen = open
	m.presenter.SetMenuOpen(open)
}
