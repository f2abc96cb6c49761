// Package site reads the structure the page controllers depend on out of the
// site's HTML: pages, nav links, carousel slides and contact form fields.
package site

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
)

// Selectors for the elements the controllers address.
const (
	PageSelector    = ".page[id]"
	NavLinkSelector = ".nav-link[data-page]"
	DotSelector     = ".slider-dot[data-slide]"
	SlideSelector   = "#slider .slide"
	FormID          = "contact-form"
	SubmitID        = "submit-btn"
	fieldSelector   = "input, textarea"
)

var (
	ErrNoPages      = errors.New("site: no pages found")
	ErrNoHomePage   = errors.New("site: home page missing")
	ErrNoForm       = errors.New("site: contact form missing")
	ErrNoSubmit     = errors.New("site: submit button missing")
	ErrUnknownLink  = errors.New("site: nav link targets unknown page")
	ErrBadSlideAttr = errors.New("site: slide indicator has invalid data-slide")
)

// Manifest describes the addressable structure of the page.
type Manifest struct {
	Pages       []string
	InitialPage string
	NavLinks    []string
	Slides      int
	DotIndexes  []int
	HasForm     bool
	Fields      []model.Field
	SubmitLabel string
	HasSubmit   bool
}

// ParseManifest parses an HTML document.
func ParseManifest(r io.Reader) (Manifest, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Manifest{}, fmt.Errorf("parse html: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument extracts the manifest from an already parsed document.
func FromDocument(doc *goquery.Document) (Manifest, error) {
	var m Manifest

	doc.Find(PageSelector).Each(func(_ int, s *goquery.Selection) {
		id := strings.TrimSpace(s.AttrOr("id", ""))
		if id == "" {
			return
		}
		m.Pages = append(m.Pages, id)
		if m.InitialPage == "" && s.HasClass("active") {
			m.InitialPage = id
		}
	})
	if m.InitialPage == "" {
		m.InitialPage = model.HomePage
	}

	seenLinks := make(map[string]struct{})
	doc.Find(NavLinkSelector).Each(func(_ int, s *goquery.Selection) {
		page := strings.TrimSpace(s.AttrOr("data-page", ""))
		if page == "" {
			return
		}
		if _, dup := seenLinks[page]; dup {
			return
		}
		seenLinks[page] = struct{}{}
		m.NavLinks = append(m.NavLinks, page)
	})

	var dotErr error
	doc.Find(DotSelector).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.AttrOr("data-slide", ""))
		index, err := strconv.Atoi(raw)
		if err != nil || index < 0 {
			dotErr = errors.Join(dotErr, fmt.Errorf("%w: %q", ErrBadSlideAttr, raw))
			return
		}
		m.DotIndexes = append(m.DotIndexes, index)
	})
	m.Slides = len(m.DotIndexes)
	if m.Slides == 0 {
		m.Slides = doc.Find(SlideSelector).Length()
	}

	form := doc.Find("#" + FormID)
	m.HasForm = form.Length() > 0
	if m.HasForm {
		m.Fields = parseFields(doc, form)
	}

	submit := doc.Find("#" + SubmitID)
	m.HasSubmit = submit.Length() > 0
	m.SubmitLabel = strings.Join(strings.Fields(submit.First().Text()), " ")

	return m, dotErr
}

func parseFields(doc *goquery.Document, form *goquery.Selection) []model.Field {
	var fields []model.Field
	form.Find(fieldSelector).Each(func(i int, s *goquery.Selection) {
		kind := model.FieldTextarea
		if goquery.NodeName(s) == "input" {
			inputType := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "text")))
			switch inputType {
			case "submit", "button", "hidden", "reset", "image", "checkbox", "radio":
				return
			}
			kind = model.KindFromInputType(inputType)
		}

		id := strings.TrimSpace(s.AttrOr("id", ""))
		name := strings.TrimSpace(s.AttrOr("name", ""))
		if id == "" {
			id = name
		}
		if id == "" {
			id = fmt.Sprintf("field-%d", i)
		}
		_, required := s.Attr("required")

		fields = append(fields, model.Field{
			ID:       id,
			Name:     name,
			Label:    fieldLabel(doc, s, id),
			Kind:     kind,
			Required: required,
		})
	})
	return fields
}

func fieldLabel(doc *goquery.Document, s *goquery.Selection, id string) string {
	label := doc.Find(`label[for="` + id + `"]`).First()
	if label.Length() == 0 {
		label = s.Closest("label")
	}
	return strings.Join(strings.Fields(label.Text()), " ")
}

// HasPage reports whether id is one of the pages.
func (m Manifest) HasPage(id string) bool {
	for _, page := range m.Pages {
		if page == id {
			return true
		}
	}
	return false
}

// Validate reports every structural requirement the markup does not meet.
func (m Manifest) Validate() error {
	var errs []error
	if len(m.Pages) == 0 {
		errs = append(errs, ErrNoPages)
	} else if !m.HasPage(model.HomePage) {
		errs = append(errs, ErrNoHomePage)
	}
	for _, link := range m.NavLinks {
		if !m.HasPage(link) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownLink, link))
		}
	}
	for pos, index := range m.DotIndexes {
		if index != pos {
			errs = append(errs, fmt.Errorf("%w: position %d carries %d", ErrBadSlideAttr, pos, index))
		}
	}
	if !m.HasForm {
		errs = append(errs, ErrNoForm)
	}
	if !m.HasSubmit {
		errs = append(errs, ErrNoSubmit)
	}
	return errors.Join(errs...)
}
