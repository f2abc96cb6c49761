package state

import (
	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
)

// App holds the mutable view state shared by the page controllers. One App is
// created per page session and handed to each controller by pointer; all
// mutation happens on the event loop.
type App struct {
	CurrentPage  string
	CurrentSlide int
	TotalSlides  int
	Submitting   bool
	MenuOpen     bool
}

// New returns the initial state for a session. An empty initial page falls
// back to the home page.
func New(initialPage string, totalSlides int) *App {
	if initialPage == "" {
		initialPage = model.HomePage
	}
	return &App{
		CurrentPage: initialPage,
		TotalSlides: totalSlides,
	}
}
