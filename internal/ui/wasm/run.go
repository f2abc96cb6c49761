//go:build js && wasm

// Package wasm is the browser adapter: it reads the page structure, renders
// controller decisions into the DOM and forwards DOM events to the app.
package wasm

import (
	"context"
	"strings"
	"syscall/js"

	"github.com/Its-donkey/techsolutions-site/internal/ui/app"
	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
	"github.com/Its-donkey/techsolutions-site/internal/ui/site"
	"github.com/Its-donkey/techsolutions-site/logging"
)

const siteName = "techsolutions"

// RunApp bootstraps the site controller and blocks forever.
func RunApp() {
	window := js.Global()
	doc := window.Get("document")
	logger := logging.New(siteName, logging.INFO, newConsoleWriter(window.Get("console")))

	waitForDocument(doc)

	manifest, err := site.ParseManifest(strings.NewReader(doc.Get("documentElement").Get("outerHTML").String()))
	if err != nil {
		logger.Error("app", "page markup could not be read", err, nil)
		return
	}
	if err := manifest.Validate(); err != nil {
		logger.Warn("app", "page markup is incomplete", map[string]any{"error": err.Error()})
	}

	ctx := context.Background()
	loop := eventloop.New(logger)
	presenter := newPresenter(window, doc, manifest)
	ports := app.Ports{
		Pages:   presenter,
		Reveal:  presenter,
		History: browserHistory{history: window.Get("history")},
		Menu:    presenter,
		Slides:  presenter,
		Form:    presenter,
	}
	controller, err := app.New(manifest, ports, loop, app.Options{Logger: logger})
	if err != nil {
		logger.Error("app", "site controller could not start", err, nil)
		return
	}

	h := &handlers{}
	injectAnimationStyles(doc)
	addSkipLink(doc)
	applyAria(doc, presenter.dots)
	setupScrollReveal(window, doc, h)
	setupLazyImages(window, doc, h)

	b := &binder{ctx: ctx, window: window, doc: doc, app: controller, loop: loop, handlers: h, logger: logger}
	b.bind(manifest, presenter)

	loop.Post(controller.Start)
	if err := loop.Run(ctx); err != nil {
		logger.Error("app", "event loop stopped", err, nil)
	}
	h.release()
}

// waitForDocument blocks until the DOM has been parsed.
func waitForDocument(doc js.Value) {
	if doc.Get("readyState").String() != "loading" {
		return
	}
	ready := make(chan struct{})
	var fn js.Func
	fn = js.FuncOf(func(js.Value, []js.Value) any {
		fn.Release()
		close(ready)
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", fn)
	<-ready
}
