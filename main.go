package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

const webDir = "web"

type procConfig struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := prepareAssets(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "techsolutions build failed: %v\n", err)
		os.Exit(1)
	}

	procs := []procConfig{
		{
			Name: "site-serve",
			Args: []string{
				"go", "run", "./cmd/site-serve",
				"-listen", "127.0.0.1:4173",
				"-assets", webDir,
			},
		},
	}

	if err := runAll(ctx, procs); err != nil {
		fmt.Fprintf(os.Stderr, "techsolutions exited with error: %v\n", err)
		os.Exit(1)
	}
}

// prepareAssets copies the Go wasm loader next to the page and builds the
// controller bundle. Both must exist before the server starts.
func prepareAssets(ctx context.Context) error {
	goroot, err := goEnv(ctx, "GOROOT")
	if err != nil {
		return err
	}
	if err := copyWasmExec(goroot, webDir); err != nil {
		return err
	}
	return runSequential(ctx, []procConfig{
		{
			Name: "build-site-wasm",
			Args: []string{"go", "build", "-o", filepath.Join(webDir, "main.wasm"), "./cmd/site-wasm"},
			Env:  []string{"GOOS=js", "GOARCH=wasm"},
		},
	})
}

func goEnv(ctx context.Context, key string) (string, error) {
	out, err := exec.CommandContext(ctx, "go", "env", key).Output()
	if err != nil {
		return "", fmt.Errorf("go env %s: %w", key, err)
	}
	value := strings.TrimSpace(string(out))
	if value == "" {
		return "", fmt.Errorf("go env %s is empty", key)
	}
	return value, nil
}

// copyWasmExec copies wasm_exec.js from the toolchain. Go 1.24 moved it from
// misc/wasm to lib/wasm, so both locations are tried.
func copyWasmExec(goroot, dest string) error {
	candidates := []string{
		filepath.Join(goroot, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(goroot, "misc", "wasm", "wasm_exec.js"),
	}
	for _, src := range candidates {
		if _, err := os.Stat(src); err != nil {
			continue
		}
		return copyFile(src, filepath.Join(dest, "wasm_exec.js"))
	}
	return fmt.Errorf("wasm_exec.js not found under %s", goroot)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}

func command(ctx context.Context, cfg procConfig) *exec.Cmd {
	cmd := exec.CommandContext(ctx, cfg.Args[0], cfg.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if cfg.Dir != "" {
		cmd.Dir = cfg.Dir
	}
	if len(cfg.Env) > 0 {
		cmd.Env = append(append([]string{}, os.Environ()...), cfg.Env...)
	}
	return cmd
}

// runSequential runs one-shot steps in order and stops at the first failure.
func runSequential(ctx context.Context, procs []procConfig) error {
	for _, cfg := range procs {
		if err := command(ctx, cfg).Run(); err != nil {
			return fmt.Errorf("%s: %w", cfg.Name, err)
		}
	}
	return nil
}

func runAll(ctx context.Context, procs []procConfig) error {
	if len(procs) == 0 {
		return fmt.Errorf("no processes configured")
	}
	var wg sync.WaitGroup
	errCh := make(chan error, len(procs))

	for _, cfg := range procs {
		wg.Add(1)
		go func(cfg procConfig) {
			defer wg.Done()
			cmd := command(ctx, cfg)
			if err := cmd.Start(); err != nil {
				errCh <- fmt.Errorf("%s start: %w", cfg.Name, err)
				return
			}
			if err := cmd.Wait(); err != nil {
				select {
				case <-ctx.Done():
					return
				default:
				}
				errCh <- fmt.Errorf("%s exited: %w", cfg.Name, err)
			}
		}(cfg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		shutdownDelay := time.After(2 * time.Second)
		select {
		case <-done:
		case <-shutdownDelay:
		}
	case err := <-errCh:
		return err
	case <-done:
	}
	return nil
}
