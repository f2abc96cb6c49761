//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/techsolutions-site/internal/ui/a11y"
)

const animationStyles = `
.fade-in, .slide-up {
    opacity: 0;
    transform: translateY(20px);
    transition: opacity 0.6s ease, transform 0.6s ease;
}
.fade-in.animate, .slide-up.animate {
    opacity: 1;
    transform: translateY(0);
}
.skip-link {
    position: absolute;
    top: -40px;
    left: 6px;
    background: var(--primary-color);
    color: white;
    padding: 8px;
    text-decoration: none;
    border-radius: 4px;
    z-index: 1001;
}
.skip-link:focus {
    top: 6px !important;
}
`

func injectAnimationStyles(doc js.Value) {
	head := doc.Get("head")
	if !head.Truthy() {
		return
	}
	style := doc.Call("createElement", "style")
	style.Set("textContent", animationStyles)
	head.Call("appendChild", style)
}

// addSkipLink prepends the keyboard skip link and makes sure <main> is its target.
func addSkipLink(doc js.Value) {
	body := doc.Get("body")
	if !body.Truthy() {
		return
	}
	link := doc.Call("createElement", "a")
	link.Set("href", a11y.SkipLinkTarget)
	link.Set("className", "skip-link")
	link.Set("textContent", a11y.SkipLinkText)
	body.Call("insertBefore", link, body.Get("firstChild"))

	if main := doc.Call("querySelector", "main"); main.Truthy() {
		main.Set("id", a11y.MainID)
	}
}

func applyAria(doc js.Value, dots js.Value) {
	if btn := doc.Call("getElementById", "mobile-menu-btn"); btn.Truthy() {
		btn.Call("setAttribute", "aria-label", a11y.MenuButtonLabel)
		btn.Call("setAttribute", "aria-expanded", "false")
		btn.Call("setAttribute", "aria-controls", "nav-menu")
	}
	forEachNode(dots, func(i int, dot js.Value) {
		dot.Call("setAttribute", "aria-label", a11y.DotLabel(i))
		dot.Call("setAttribute", "role", "button")
		dot.Call("setAttribute", "tabindex", "0")
	})
}

func newObserver(window js.Value, callback js.Func, options map[string]any) js.Value {
	ctor := window.Get("IntersectionObserver")
	if !ctor.Truthy() {
		return js.Null()
	}
	if options == nil {
		return ctor.New(callback)
	}
	return ctor.New(callback, options)
}

// setupScrollReveal animates elements as they scroll into view.
func setupScrollReveal(window, doc js.Value, h *handlers) {
	callback := h.keep(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		forEachNode(args[0], func(_ int, entry js.Value) {
			if !entry.Get("isIntersecting").Bool() {
				return
			}
			target := entry.Get("target")
			target.Get("style").Set("animationDelay", "0ms")
			setClass(target, "animate", true)
		})
		return nil
	})
	observer := newObserver(window, callback, map[string]any{
		"threshold":  0.1,
		"rootMargin": "0px 0px -50px 0px",
	})
	if !observer.Truthy() {
		return
	}
	forEachNode(doc.Call("querySelectorAll", revealSelector), func(_ int, el js.Value) {
		observer.Call("observe", el)
	})
}

// setupLazyImages swaps img[data-src] into src once the image is visible.
func setupLazyImages(window, doc js.Value, h *handlers) {
	images := doc.Call("querySelectorAll", "img[data-src]")
	var observer js.Value
	callback := h.keep(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		forEachNode(args[0], func(_ int, entry js.Value) {
			if !entry.Get("isIntersecting").Bool() {
				return
			}
			img := entry.Get("target")
			img.Set("src", dataAttr(img, "src"))
			setClass(img, "lazy", false)
			if observer.Truthy() {
				observer.Call("unobserve", img)
			}
		})
		return nil
	})
	observer = newObserver(window, callback, nil)
	if !observer.Truthy() {
		forEachNode(images, func(_ int, img js.Value) {
			img.Set("src", dataAttr(img, "src"))
		})
		return
	}
	forEachNode(images, func(_ int, img js.Value) {
		observer.Call("observe", img)
	})
}
