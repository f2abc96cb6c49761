// Package a11y holds keyboard bindings and the accessible text used by the page.
package a11y

import (
	"fmt"

	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
	"github.com/Its-donkey/techsolutions-site/internal/ui/state"
)

// KeyboardEvent.key values the page reacts to.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeySpace      = " "
)

const (
	SkipLinkText    = "Skip to main content"
	MainID          = "main"
	SkipLinkTarget  = "#" + MainID
	MenuButtonLabel = "Toggle mobile menu"
)

// DotLabel is the aria-label for the slide indicator at index.
func DotLabel(index int) string {
	return fmt.Sprintf("Go to slide %d", index+1)
}

// Slides is the part of the carousel the keyboard can drive.
type Slides interface {
	Advance()
	Retreat()
	GoToSlide(index int) error
}

// Closer is satisfied by the mobile menu.
type Closer interface {
	Close()
}

// Keyboard maps key presses onto controller commands.
type Keyboard struct {
	app    *state.App
	slides Slides
	menu   Closer
}

// NewKeyboard builds the bindings. slides may be nil when the page has no carousel.
func NewKeyboard(app *state.App, slides Slides, menu Closer) *Keyboard {
	return &Keyboard{app: app, slides: slides, menu: menu}
}

// KeyDown handles a document-level key press and reports whether it acted.
// Escape closes the menu; the arrow keys move the carousel on the home page.
func (k *Keyboard) KeyDown(key string) bool {
	switch key {
	case KeyEscape:
		if k.menu != nil {
			k.menu.Close()
			return true
		}
	case KeyArrowLeft:
		if k.slidesActive() {
			k.slides.Retreat()
			return true
		}
	case KeyArrowRight:
		if k.slidesActive() {
			k.slides.Advance()
			return true
		}
	}
	return false
}

// DotKey handles a key press on the focused indicator for slide index. Enter
// and Space select the slide; the caller should prevent the default action
// when it returns true.
func (k *Keyboard) DotKey(index int, key string) (bool, error) {
	if key != KeyEnter && key != KeySpace {
		return false, nil
	}
	if k.slides == nil {
		return false, nil
	}
	if err := k.slides.GoToSlide(index); err != nil {
		return true, err
	}
	return true, nil
}

func (k *Keyboard) slidesActive() bool {
	return k.slides != nil && k.app.CurrentPage == model.HomePage
}
