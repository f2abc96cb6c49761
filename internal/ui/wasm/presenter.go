//go:build js && wasm

package wasm

import (
	"fmt"
	"html"
	"syscall/js"

	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
	"github.com/Its-donkey/techsolutions-site/internal/ui/site"
)

const revealSelector = ".fade-in, .slide-up"

// domPresenter renders controller decisions into the document. It implements
// every presentation port of the app.
type domPresenter struct {
	window   js.Value
	doc      js.Value
	pages    js.Value
	navLinks js.Value
	dots     js.Value
	slider   js.Value
	menuBtn  js.Value
	navMenu  js.Value
	form     js.Value
	submit   js.Value
	fields   map[string]js.Value
	banners  map[string]js.Value
}

func newPresenter(window, doc js.Value, manifest site.Manifest) *domPresenter {
	p := &domPresenter{
		window:   window,
		doc:      doc,
		pages:    doc.Call("querySelectorAll", site.PageSelector),
		navLinks: doc.Call("querySelectorAll", site.NavLinkSelector),
		dots:     doc.Call("querySelectorAll", site.DotSelector),
		slider:   doc.Call("getElementById", "slider"),
		menuBtn:  doc.Call("getElementById", "mobile-menu-btn"),
		navMenu:  doc.Call("getElementById", "nav-menu"),
		form:     doc.Call("getElementById", site.FormID),
		submit:   doc.Call("getElementById", site.SubmitID),
		fields:   make(map[string]js.Value, len(manifest.Fields)),
		banners:  make(map[string]js.Value),
	}
	for _, field := range manifest.Fields {
		if node := doc.Call("getElementById", field.ID); node.Truthy() {
			p.fields[field.ID] = node
		}
	}
	return p
}

func (p *domPresenter) ShowPage(pageID string) {
	forEachNode(p.pages, func(_ int, page js.Value) {
		setClass(page, "active", page.Get("id").String() == pageID)
	})
}

func (p *domPresenter) SetActiveNavLink(pageID string) {
	forEachNode(p.navLinks, func(_ int, link js.Value) {
		setClass(link, "active", dataAttr(link, "page") == pageID)
	})
}

func (p *domPresenter) ScrollToTop() {
	p.window.Call("scrollTo", map[string]any{"top": 0, "behavior": "smooth"})
}

// Reveal staggers the entrance animation of the page's animated elements.
func (p *domPresenter) Reveal(pageID string) {
	page := p.doc.Call("getElementById", pageID)
	if !page.Truthy() {
		return
	}
	forEachNode(page.Call("querySelectorAll", revealSelector), func(i int, el js.Value) {
		el.Get("style").Set("animationDelay", fmt.Sprintf("%dms", i*100))
		setClass(el, "animate", true)
	})
}

func (p *domPresenter) SetMenuOpen(open bool) {
	setClass(p.navMenu, "active", open)
	if p.menuBtn.Truthy() {
		p.menuBtn.Call("setAttribute", "aria-expanded", fmt.Sprintf("%t", open))
	}
}

func (p *domPresenter) RenderSlide(view model.SlideView) {
	if p.slider.Truthy() {
		p.slider.Get("style").Set("transform", fmt.Sprintf("translateX(%d%%)", view.OffsetPercent))
	}
	forEachNode(p.dots, func(i int, dot js.Value) {
		setClass(dot, "active", i == view.Index)
	})
}

func (p *domPresenter) RenderField(fieldID string, result model.FieldResult) {
	group := p.formGroup(fieldID)
	if !group.Truthy() {
		return
	}
	setClass(group, "error", result.Status == model.StatusError)
	setClass(group, "success", result.Status == model.StatusSuccess)
	if result.Status != model.StatusError {
		return
	}
	if msg := group.Call("querySelector", ".error-message"); msg.Truthy() {
		msg.Set("textContent", result.Message)
	}
}

func (p *domPresenter) ResetFields() {
	if !p.form.Truthy() {
		return
	}
	p.form.Call("reset")
	forEachNode(p.form.Call("querySelectorAll", ".form-group"), func(_ int, group js.Value) {
		group.Get("classList").Call("remove", "error", "success")
	})
}

func (p *domPresenter) RenderSubmitButton(view model.SubmitButtonView) {
	if !p.submit.Truthy() {
		return
	}
	p.submit.Set("disabled", view.Disabled)
	if view.Loading {
		p.submit.Set("innerHTML", `<span class="loading"></span> `+html.EscapeString(view.Label))
		return
	}
	p.submit.Set("textContent", view.Label)
}

// ShowMessage inserts a banner just above the submit button.
func (p *domPresenter) ShowMessage(msg model.Message) {
	if !p.form.Truthy() {
		return
	}
	banner := p.doc.Call("createElement", "div")
	banner.Set("className", "form-message "+string(msg.Kind))
	banner.Call("setAttribute", "role", "status")
	banner.Get("dataset").Set("messageId", msg.ID)
	banner.Set("textContent", msg.Text)

	parent := p.form
	if p.submit.Truthy() && p.submit.Get("parentNode").Truthy() {
		parent = p.submit.Get("parentNode")
		parent.Call("insertBefore", banner, p.submit)
	} else {
		parent.Call("appendChild", banner)
	}
	p.banners[msg.ID] = banner
}

func (p *domPresenter) RemoveMessage(id string) {
	banner, ok := p.banners[id]
	if !ok {
		return
	}
	delete(p.banners, id)
	if banner.Get("parentNode").Truthy() {
		banner.Call("remove")
	}
}

func (p *domPresenter) formGroup(fieldID string) js.Value {
	node, ok := p.fields[fieldID]
	if !ok {
		return js.Null()
	}
	return node.Call("closest", ".form-group")
}

// browserHistory pushes entries onto window.history.
type browserHistory struct {
	history js.Value
}

func (h browserHistory) Push(entry model.HistoryEntry, fragment string) {
	if !h.history.Truthy() {
		return
	}
	h.history.Call("pushState", map[string]any{"page": entry.Page}, "", fragment)
}

// historyEntry reads the state object of a popstate event. A missing or
// foreign state yields nil, which the router treats as the home page.
func historyEntry(args []js.Value) *model.HistoryEntry {
	if len(args) == 0 {
		return nil
	}
	state := args[0].Get("state")
	if !state.Truthy() || state.Type() != js.TypeObject {
		return nil
	}
	page := state.Get("page")
	if page.Type() != js.TypeString {
		return nil
	}
	return &model.HistoryEntry{Page: page.String()}
}
