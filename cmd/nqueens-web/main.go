package main

import (
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "github.com/ssrini14/N-Queen/internal/adapters/http"
	"github.com/ssrini14/N-Queen/internal/hint"
	"github.com/ssrini14/N-Queen/internal/infrastructure/cache"
	"github.com/ssrini14/N-Queen/internal/nav"
	"github.com/ssrini14/N-Queen/internal/ports"
	"github.com/ssrini14/N-Queen/internal/render"
	"github.com/ssrini14/N-Queen/internal/solver"
	"github.com/ssrini14/N-Queen/internal/usecase"
	"github.com/ssrini14/N-Queen/internal/validator"
	"github.com/ssrini14/N-Queen/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "bitmask", "solver to use: bitmask|brute")
	minN := flag.Int("min-n", 4, "smallest board size the UI offers")
	maxN := flag.Int("max-n", 12, "largest board size the UI offers")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	if *minN < 1 || *maxN > solver.MaxSize || *minN > *maxN {
		logger.Error("invalid size range", "min", *minN, "max", *maxN, "cap", solver.MaxSize)
		os.Exit(1)
	}

	// Bitmask search by default, the pairwise reference solver via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "brute", "bruteforce":
		s = solver.NewBruteForceSolver()
	default:
		s = solver.NewBitmaskSolver()
	}

	// Wire providers → use cases → HTTP adapter
	uc := usecase.NewService(
		s,
		render.New(),
		nav.New(time.Now().UnixNano()),
		hint.NewSteps(),
		validator.New(),
		cache.NewMemory(),
	)
	h := httpadapter.New(uc, httpadapter.Limits{Min: *minN, Max: *maxN})

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{
			"MinN": *minN,
			"MaxN": *maxN,
		}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "solver", *solverKind, "min", *minN, "max", *maxN)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
