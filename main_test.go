package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyWasmExecPrefersLibDir(t *testing.T) {
	goroot := t.TempDir()
	for dir, body := range map[string]string{
		filepath.Join(goroot, "lib", "wasm"):  "lib loader",
		filepath.Join(goroot, "misc", "wasm"): "misc loader",
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "wasm_exec.js"), []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	dest := t.TempDir()
	if err := copyWasmExec(goroot, dest); err != nil {
		t.Fatalf("copy: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dest, "wasm_exec.js"))
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(data) != "lib loader" {
		t.Fatalf("expected lib/wasm loader, got %q", data)
	}
}

func TestCopyWasmExecMissing(t *testing.T) {
	if err := copyWasmExec(t.TempDir(), t.TempDir()); err == nil {
		t.Fatal("expected error when the loader is absent")
	}
}

func TestRunAllRequiresProcesses(t *testing.T) {
	if err := runAll(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty process list")
	}
}
