package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Its-donkey/techsolutions-site/internal/ui/carousel"
	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
	"github.com/Its-donkey/techsolutions-site/internal/ui/forms"
	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
	"github.com/Its-donkey/techsolutions-site/internal/ui/site"
)

// recorder implements every port and keeps what was rendered.
type recorder struct {
	page     string
	navLink  string
	revealed []string
	history  []model.HistoryEntry
	menuOpen bool
	slide    model.SlideView
	fields   map[string]model.FieldResult
	messages map[string]model.Message
	button   model.SubmitButtonView
	resets   int
	scrolled int
}

func newRecorder() *recorder {
	return &recorder{
		fields:   make(map[string]model.FieldResult),
		messages: make(map[string]model.Message),
	}
}

func (r *recorder) ShowPage(pageID string)                       { r.page = pageID }
func (r *recorder) SetActiveNavLink(pageID string)               { r.navLink = pageID }
func (r *recorder) ScrollToTop()                                 { r.scrolled++ }
func (r *recorder) Reveal(pageID string)                         { r.revealed = append(r.revealed, pageID) }
func (r *recorder) Push(entry model.HistoryEntry, _ string)      { r.history = append(r.history, entry) }
func (r *recorder) SetMenuOpen(open bool)                        { r.menuOpen = open }
func (r *recorder) RenderSlide(view model.SlideView)             { r.slide = view }
func (r *recorder) RenderField(id string, res model.FieldResult) { r.fields[id] = res }
func (r *recorder) RenderSubmitButton(view model.SubmitButtonView) {
	r.button = view
}
func (r *recorder) ShowMessage(msg model.Message) { r.messages[msg.ID] = msg }
func (r *recorder) RemoveMessage(id string)       { delete(r.messages, id) }
func (r *recorder) ResetFields() {
	r.resets++
	r.fields = make(map[string]model.FieldResult)
}

func (r *recorder) ports() Ports {
	return Ports{Pages: r, Reveal: r, History: r, Menu: r, Slides: r, Form: r}
}

func loadShippedManifest(t *testing.T) site.Manifest {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "..", "..", "web", "index.html"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()
	m, err := site.ParseManifest(f)
	if err != nil {
		t.Fatalf("parse index: %v", err)
	}
	return m
}

func newSession(t *testing.T, submitter forms.Submitter) (*App, *recorder, *eventloop.Manual) {
	t.Helper()
	rec := newRecorder()
	loop := eventloop.NewManual()
	a, err := New(loadShippedManifest(t), rec.ports(), loop, Options{Submitter: submitter})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	a.Start()
	return a, rec, loop
}

func TestStartRendersFirstSlideAndAutoAdvances(t *testing.T) {
	a, rec, loop := newSession(t, nil)
	defer a.Stop()

	if rec.slide.Index != 0 || rec.slide.Total != 3 {
		t.Fatalf("unexpected initial slide %+v", rec.slide)
	}
	loop.Advance(carousel.DefaultInterval)
	if rec.slide.Index != 1 || rec.slide.OffsetPercent != -100 {
		t.Fatalf("expected auto advance to slide 1, got %+v", rec.slide)
	}
}

func TestNavClickClosesMenuAndPushesHistory(t *testing.T) {
	a, rec, loop := newSession(t, nil)

	a.MenuToggle()
	if !rec.menuOpen {
		t.Fatalf("menu should be open")
	}
	a.NavClick("services")
	if rec.menuOpen {
		t.Fatalf("nav click should close the menu")
	}
	if rec.page != "services" || rec.navLink != "services" {
		t.Fatalf("services not shown: page=%s link=%s", rec.page, rec.navLink)
	}
	if len(rec.history) != 1 || rec.history[0].Page != "services" {
		t.Fatalf("unexpected history %+v", rec.history)
	}
	loop.Advance(200 * time.Millisecond)
	if len(rec.revealed) != 1 || rec.revealed[0] != "services" {
		t.Fatalf("expected reveal of services, got %v", rec.revealed)
	}

	a.HistoryPop(&model.HistoryEntry{Page: "home"})
	if rec.page != "home" || len(rec.history) != 1 {
		t.Fatalf("pop should show home without pushing, page=%s history=%d", rec.page, len(rec.history))
	}
}

func TestArrowKeysFollowCurrentPage(t *testing.T) {
	a, rec, _ := newSession(t, nil)

	a.KeyDown("ArrowLeft")
	if rec.slide.Index != 2 {
		t.Fatalf("arrow left on home should wrap to slide 2, got %d", rec.slide.Index)
	}
	a.NavClick("about")
	if a.KeyDown("ArrowRight") {
		t.Fatalf("arrow keys should be ignored away from home")
	}
	if rec.slide.Index != 2 {
		t.Fatalf("slide moved on another page")
	}
}

func TestDocumentClickOutsideNavClosesMenu(t *testing.T) {
	a, rec, _ := newSession(t, nil)
	a.MenuToggle()
	a.DocumentClick(true)
	if !rec.menuOpen {
		t.Fatalf("click inside nav must keep the menu open")
	}
	a.DocumentClick(false)
	if rec.menuOpen {
		t.Fatalf("click outside nav must close the menu")
	}
}

func TestDotClickAndPointerPause(t *testing.T) {
	a, rec, loop := newSession(t, nil)

	if err := a.DotClick(2); err != nil {
		t.Fatalf("dot click: %v", err)
	}
	if err := a.DotClick(3); !errors.Is(err, carousel.ErrSlideOutOfRange) {
		t.Fatalf("expected out of range error, got %v", err)
	}
	a.PointerEnter()
	loop.Advance(time.Minute)
	if rec.slide.Index != 2 {
		t.Fatalf("carousel should stay paused, got slide %d", rec.slide.Index)
	}
	a.PointerLeave()
	loop.Advance(carousel.DefaultInterval)
	if rec.slide.Index != 0 {
		t.Fatalf("expected wrap to 0 after resume, got %d", rec.slide.Index)
	}
}

func TestContactFormScenario(t *testing.T) {
	a, rec, loop := newSession(t, forms.SubmitterFunc(func(context.Context, map[string]string) error {
		return nil
	}))

	if got := a.Submit(context.Background()); got != model.SubmitRejected {
		t.Fatalf("empty form should be rejected, got %s", got)
	}
	if rec.fields["name"].Message != "Full Name is required" {
		t.Fatalf("unexpected name error %+v", rec.fields["name"])
	}

	if _, err := a.FieldInput("message", "hi"); err != nil {
		t.Fatalf("input: %v", err)
	}
	if err := a.FieldBlur("message"); err != nil {
		t.Fatalf("blur: %v", err)
	}
	if rec.fields["message"].Message != "Message must be at least 10 characters long" {
		t.Fatalf("unexpected message error %+v", rec.fields["message"])
	}

	a.FieldInput("name", "Grace Hopper")
	a.FieldInput("email", "grace@example.com")
	if shown, _ := a.FieldInput("phone", "555 123 4567"); shown != "(555) 123-4567" {
		t.Fatalf("phone not formatted: %q", shown)
	}
	a.FieldInput("message", "We would like a cloud migration estimate.")

	if got := a.Submit(context.Background()); got != model.SubmitStarted {
		t.Fatalf("expected submission to start, got %s", got)
	}
	if !a.State.Submitting || !rec.button.Disabled {
		t.Fatalf("expected submitting state")
	}
	if !loop.RunNext(2 * time.Second) {
		t.Fatalf("completion not posted")
	}
	if a.State.Submitting || rec.button.Disabled || rec.button.Label != "Send Message" {
		t.Fatalf("submit control not restored: %+v", rec.button)
	}
	if rec.resets != 1 {
		t.Fatalf("expected form reset after success")
	}
	var texts []string
	for _, msg := range rec.messages {
		texts = append(texts, msg.Text)
	}
	if len(texts) != 1 || texts[0] != forms.SuccessText {
		t.Fatalf("expected only the success banner, got %v", texts)
	}
}

func TestPageWithoutCarouselOrForm(t *testing.T) {
	rec := newRecorder()
	a, err := New(site.Manifest{Pages: []string{"home"}, InitialPage: "home"}, rec.ports(), eventloop.NewManual(), Options{})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	a.Start()
	if a.KeyDown("ArrowRight") {
		t.Fatalf("arrow keys should do nothing without a carousel")
	}
	if err := a.DotClick(0); !errors.Is(err, carousel.ErrNoSlides) {
		t.Fatalf("expected ErrNoSlides, got %v", err)
	}
	if _, err := a.FieldInput("name", "x"); !errors.Is(err, ErrNoForm) {
		t.Fatalf("expected ErrNoForm, got %v", err)
	}
	if got := a.Submit(context.Background()); got != model.SubmitDropped {
		t.Fatalf("expected dropped submit, got %s", got)
	}
}

func TestNewRequiresPages(t *testing.T) {
	if _, err := New(site.Manifest{}, newRecorder().ports(), eventloop.NewManual(), Options{}); !errors.Is(err, site.ErrNoPages) {
		t.Fatalf("expected ErrNoPages, got %v", err)
	}
}
