package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
)

const samplePage = `<html><body>
<nav>
  <a class="nav-link active" data-page="home">Home</a>
  <a class="nav-link" data-page="about">About</a>
  <a class="nav-link" data-page="about">About again</a>
</nav>
<section id="home" class="page active">
  <div id="slider"><div class="slide"></div><div class="slide"></div></div>
  <span class="slider-dot" data-slide="0"></span>
  <span class="slider-dot" data-slide="1"></span>
</section>
<section id="about" class="page"></section>
<form id="contact-form">
  <label for="name">Full Name *</label><input id="name" name="name" type="text" required>
  <label for="email">Email *</label><input id="email" name="email" type="email" required>
  <label>Phone <input id="phone" name="phone" type="tel"></label>
  <label for="message">Message *</label><textarea id="message" name="message" required></textarea>
  <input type="hidden" name="token" value="x">
  <button id="submit-btn" type="submit">
     Send   Message
  </button>
</form>
</body></html>`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(m.Pages) != 2 || m.Pages[0] != "home" || m.Pages[1] != "about" {
		t.Fatalf("unexpected pages %v", m.Pages)
	}
	if m.InitialPage != "home" {
		t.Fatalf("unexpected initial page %q", m.InitialPage)
	}
	if len(m.NavLinks) != 2 {
		t.Fatalf("nav links should be de-duplicated, got %v", m.NavLinks)
	}
	if m.Slides != 2 {
		t.Fatalf("expected 2 slides, got %d", m.Slides)
	}
	if m.SubmitLabel != "Send Message" {
		t.Fatalf("unexpected submit label %q", m.SubmitLabel)
	}

	want := []model.Field{
		{ID: "name", Name: "name", Label: "Full Name *", Kind: model.FieldText, Required: true},
		{ID: "email", Name: "email", Label: "Email *", Kind: model.FieldEmail, Required: true},
		{ID: "phone", Name: "phone", Label: "Phone", Kind: model.FieldTel},
		{ID: "message", Name: "message", Label: "Message *", Kind: model.FieldTextarea, Required: true},
	}
	if len(m.Fields) != len(want) {
		t.Fatalf("expected %d fields, got %+v", len(want), m.Fields)
	}
	for i := range want {
		if m.Fields[i] != want[i] {
			t.Fatalf("field %d: got %+v want %+v", i, m.Fields[i], want[i])
		}
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("sample page should validate: %v", err)
	}
}

func TestManifestFallsBackToSlideCount(t *testing.T) {
	m, err := ParseManifest(strings.NewReader(`<div id="slider"><div class="slide"></div><div class="slide"></div><div class="slide"></div></div>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Slides != 3 {
		t.Fatalf("expected 3 slides from the track, got %d", m.Slides)
	}
	if m.InitialPage != model.HomePage {
		t.Fatalf("initial page should default to home, got %q", m.InitialPage)
	}
}

func TestManifestReportsBadDots(t *testing.T) {
	_, err := ParseManifest(strings.NewReader(`<span class="slider-dot" data-slide="first"></span>`))
	if !errors.Is(err, ErrBadSlideAttr) {
		t.Fatalf("expected ErrBadSlideAttr, got %v", err)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	m := Manifest{
		Pages:      []string{"about"},
		NavLinks:   []string{"about", "pricing"},
		DotIndexes: []int{0, 2},
	}
	err := m.Validate()
	for _, target := range []error{ErrNoHomePage, ErrUnknownLink, ErrBadSlideAttr, ErrNoForm, ErrNoSubmit} {
		if !errors.Is(err, target) {
			t.Fatalf("expected %v in %v", target, err)
		}
	}
	if !errors.Is(Manifest{}.Validate(), ErrNoPages) {
		t.Fatalf("expected ErrNoPages for empty manifest")
	}
}

func TestShippedIndexValidates(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "..", "..", "web", "index.html"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		t.Fatalf("parse index: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("shipped index is incomplete: %v", err)
	}
	if m.Slides != 3 || len(m.Fields) != 4 || len(m.Pages) != 4 {
		t.Fatalf("unexpected shipped manifest %+v", m)
	}
}
