//go:build js && wasm

package main

import "github.com/Its-donkey/techsolutions-site/internal/ui/wasm"

func main() {
	wasm.RunApp()
}
