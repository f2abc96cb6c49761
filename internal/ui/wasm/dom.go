//go:build js && wasm

package wasm

import (
	"strconv"
	"syscall/js"
)

// handlers keeps every bound js.Func so they can be released together.
type handlers struct {
	funcs []js.Func
}

func (h *handlers) on(node js.Value, event string, handler func(this js.Value, args []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	h.funcs = append(h.funcs, fn)
}

// keep registers a callback that is not an event listener, such as an
// observer callback.
func (h *handlers) keep(handler func(this js.Value, args []js.Value) any) js.Func {
	fn := js.FuncOf(handler)
	h.funcs = append(h.funcs, fn)
	return fn
}

func (h *handlers) release() {
	for _, fn := range h.funcs {
		fn.Release()
	}
	h.funcs = h.funcs[:0]
}

func forEachNode(list js.Value, fn func(int, js.Value)) {
	if !list.Truthy() {
		return
	}
	length := list.Get("length").Int()
	for i := 0; i < length; i++ {
		fn(i, list.Index(i))
	}
}

func setClass(node js.Value, class string, on bool) {
	if !node.Truthy() {
		return
	}
	node.Get("classList").Call("toggle", class, on)
}

func dataAttr(node js.Value, name string) string {
	if !node.Truthy() {
		return ""
	}
	value := node.Get("dataset").Get(name)
	if value.Type() != js.TypeString {
		return ""
	}
	return value.String()
}

func dataInt(node js.Value, name string) (int, bool) {
	n, err := strconv.Atoi(dataAttr(node, name))
	if err != nil {
		return 0, false
	}
	return n, true
}

func preventDefault(args []js.Value) {
	if len(args) > 0 && args[0].Truthy() {
		args[0].Call("preventDefault")
	}
}

func eventKey(args []js.Value) string {
	if len(args) == 0 {
		return ""
	}
	key := args[0].Get("key")
	if key.Type() != js.TypeString {
		return ""
	}
	return key.String()
}
