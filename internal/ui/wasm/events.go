//go:build js && wasm

package wasm

import (
	"context"
	"syscall/js"

	"github.com/Its-donkey/techsolutions-site/internal/ui/a11y"
	"github.com/Its-donkey/techsolutions-site/internal/ui/app"
	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
	"github.com/Its-donkey/techsolutions-site/internal/ui/site"
	"github.com/Its-donkey/techsolutions-site/logging"
)

// binder forwards DOM events to the app. Callbacks only read the event and
// post; every controller call happens on the loop.
type binder struct {
	ctx      context.Context
	window   js.Value
	doc      js.Value
	app      *app.App
	loop     eventloop.Scheduler
	handlers *handlers
	logger   *logging.Logger
}

func (b *binder) bind(manifest site.Manifest, presenter *domPresenter) {
	b.bindNavigation()
	b.bindCarousel(presenter)
	b.bindForm(manifest, presenter)
}

func (b *binder) bindNavigation() {
	forEachNode(b.doc.Call("querySelectorAll", "[data-page]"), func(_ int, link js.Value) {
		b.handlers.on(link, "click", func(this js.Value, args []js.Value) any {
			preventDefault(args)
			page := dataAttr(this, "page")
			b.loop.Post(func() { b.app.NavClick(page) })
			return nil
		})
	})

	b.handlers.on(b.doc.Call("getElementById", "mobile-menu-btn"), "click", func(js.Value, []js.Value) any {
		b.loop.Post(b.app.MenuToggle)
		return nil
	})

	b.handlers.on(b.doc, "click", func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		target := args[0].Get("target")
		inside := target.Truthy() && target.Get("closest").Truthy() && target.Call("closest", "nav").Truthy()
		b.loop.Post(func() { b.app.DocumentClick(inside) })
		return nil
	})

	b.handlers.on(b.doc, "keydown", func(_ js.Value, args []js.Value) any {
		key := eventKey(args)
		if key == "" {
			return nil
		}
		b.loop.Post(func() { b.app.KeyDown(key) })
		return nil
	})

	b.handlers.on(b.window, "popstate", func(_ js.Value, args []js.Value) any {
		entry := historyEntry(args)
		b.loop.Post(func() { b.app.HistoryPop(entry) })
		return nil
	})
}

func (b *binder) bindCarousel(presenter *domPresenter) {
	forEachNode(presenter.dots, func(position int, dot js.Value) {
		index, ok := dataInt(dot, "slide")
		if !ok {
			index = position
		}
		b.handlers.on(dot, "click", func(js.Value, []js.Value) any {
			b.loop.Post(func() {
				if err := b.app.DotClick(index); err != nil {
					b.logger.Warn("carousel", "slide indicator ignored", map[string]any{"index": index, "error": err.Error()})
				}
			})
			return nil
		})
		b.handlers.on(dot, "keydown", func(_ js.Value, args []js.Value) any {
			key := eventKey(args)
			if key != a11y.KeyEnter && key != a11y.KeySpace {
				return nil
			}
			preventDefault(args)
			b.loop.Post(func() {
				if _, err := b.app.DotKey(index, key); err != nil {
					b.logger.Warn("carousel", "slide indicator ignored", map[string]any{"index": index, "error": err.Error()})
				}
			})
			return nil
		})
	})

	container := b.doc.Call("querySelector", ".slider-container")
	b.handlers.on(container, "mouseenter", func(js.Value, []js.Value) any {
		b.loop.Post(b.app.PointerEnter)
		return nil
	})
	b.handlers.on(container, "mouseleave", func(js.Value, []js.Value) any {
		b.loop.Post(b.app.PointerLeave)
		return nil
	})
}

func (b *binder) bindForm(manifest site.Manifest, presenter *domPresenter) {
	if !manifest.HasForm {
		return
	}
	for id, node := range presenter.fields {
		fieldID, input := id, node
		b.handlers.on(input, "input", func(js.Value, []js.Value) any {
			typed := input.Get("value").String()
			b.loop.Post(func() {
				shown, err := b.app.FieldInput(fieldID, typed)
				if err != nil {
					return
				}
				// Leave the box alone if the user kept typing meanwhile.
				if shown != typed && input.Get("value").String() == typed {
					input.Set("value", shown)
				}
			})
			return nil
		})
		b.handlers.on(input, "blur", func(js.Value, []js.Value) any {
			b.loop.Post(func() { _ = b.app.FieldBlur(fieldID) })
			return nil
		})
	}

	b.handlers.on(presenter.form, "submit", func(_ js.Value, args []js.Value) any {
		preventDefault(args)
		b.loop.Post(func() {
			attempt := b.app.Submit(b.ctx)
			b.logger.Debug("submission", "submit event handled", map[string]any{"attempt": attempt.String()})
		})
		return nil
	})
}
