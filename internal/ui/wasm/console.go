//go:build js && wasm

package wasm

import (
	"encoding/json"
	"strings"
	"syscall/js"

	"github.com/Its-donkey/techsolutions-site/logging"
)

// consoleWriter sends each JSON log line to the matching console method.
type consoleWriter struct {
	console js.Value
}

func newConsoleWriter(console js.Value) *consoleWriter {
	return &consoleWriter{console: console}
}

func (c *consoleWriter) Write(p []byte) (int, error) {
	if !c.console.Truthy() {
		return len(p), nil
	}
	line := strings.TrimSpace(string(p))
	var entry logging.Entry
	method := "log"
	if err := json.Unmarshal(p, &entry); err == nil {
		switch entry.Level {
		case logging.DEBUG.String():
			method = "debug"
		case logging.WARN.String():
			method = "warn"
		case logging.ERROR.String(), logging.FATAL.String():
			method = "error"
		}
	}
	c.console.Call(method, line)
	return len(p), nil
}
