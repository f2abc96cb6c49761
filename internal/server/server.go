// Package server serves the marketing site's static files: the page markup,
// its stylesheet, the WebAssembly controller and the Go wasm loader.
package server

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Its-donkey/techsolutions-site/internal/ui/site"
	"github.com/Its-donkey/techsolutions-site/logging"
)

const (
	defaultListen = "127.0.0.1:4173"
	defaultIndex  = "index.html"
	logCategory   = "server"
)

// Options configures the static site server.
type Options struct {
	Listen    string
	AssetsDir string
	Index     string
	Logger    *logging.Logger
}

type server struct {
	root   string
	index  string
	files  http.Handler
	logger *logging.Logger
}

// NewHandler resolves the assets directory, checks the index markup and
// returns the logged handler tree.
func NewHandler(opts Options) (http.Handler, error) {
	opts = applyDefaults(opts)

	root, err := filepath.Abs(opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve assets dir: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("assets dir %s: %w", root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %s is not a directory", root)
	}

	srv := &server{
		root:   root,
		index:  filepath.Join(root, opts.Index),
		files:  http.FileServer(http.Dir(root)),
		logger: opts.Logger,
	}
	if err := srv.inspectIndex(); err != nil {
		return nil, err
	}

	mime.AddExtensionType(".wasm", "application/wasm")

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleStatic)
	mux.Handle("/styles.css", srv.assetHandler("styles.css", "text/css; charset=utf-8"))
	mux.Handle("/main.wasm", srv.assetHandler("main.wasm", "application/wasm"))
	mux.Handle("/wasm_exec.js", srv.assetHandler("wasm_exec.js", "text/javascript; charset=utf-8"))
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return logging.NewHTTPLogger(opts.Logger).Middleware(mux), nil
}

// Run serves until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	opts = applyDefaults(opts)
	handler, err := NewHandler(opts)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              opts.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	opts.Logger.Info(logCategory, "serving site", map[string]any{
		"url":    "http://" + opts.Listen,
		"assets": opts.AssetsDir,
	})

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

func applyDefaults(opts Options) Options {
	if strings.TrimSpace(opts.Listen) == "" {
		opts.Listen = defaultListen
	}
	if strings.TrimSpace(opts.AssetsDir) == "" {
		opts.AssetsDir = "web"
	}
	if strings.TrimSpace(opts.Index) == "" {
		opts.Index = defaultIndex
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return opts
}

// inspectIndex parses the page once at startup. Markup problems are logged,
// not fatal: the browser controller tolerates missing parts.
func (s *server) inspectIndex() error {
	f, err := os.Open(s.index)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer f.Close()

	manifest, err := site.ParseManifest(f)
	if err != nil {
		s.logger.Warn(logCategory, "index markup could not be read", map[string]any{
			"path":  s.index,
			"error": err.Error(),
		})
		return nil
	}
	if err := manifest.Validate(); err != nil {
		s.logger.Warn(logCategory, "index markup is incomplete", map[string]any{
			"path":  s.index,
			"error": err.Error(),
		})
	}
	s.logger.Info(logCategory, "index inspected", map[string]any{
		"pages":  manifest.Pages,
		"slides": manifest.Slides,
		"fields": len(manifest.Fields),
	})
	return nil
}

func (s *server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path == "/" || r.URL.Path == "" || r.URL.Path == "/"+filepath.Base(s.index) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, s.index)
		return
	}
	s.files.ServeHTTP(w, r)
}

func (s *server) assetHandler(name, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.root, name)
		if _, err := os.Stat(path); err != nil {
			http.NotFound(w, r)
			return
		}
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		http.ServeFile(w, r, path)
	})
}
