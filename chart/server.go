package chart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/internal/osutil"
)

// SessionLister provides the sessions to draw.
type SessionLister interface {
	ListSessions() []models.Session
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err != nil {
		slog.ErrorContext(
			r.Context(),
			"request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Handler serves the overview page and its data.
type Handler struct {
	sessions SessionLister
	opts     Options
}

// NewHandler returns an http.Handler drawing sessions from s.
func NewHandler(s SessionLister, opts Options) http.Handler {
	h := &Handler{
		sessions: s,
		opts:     opts,
	}

	mux := http.NewServeMux()

	mux.Handle("/web/", http.FileServer(http.FS(web)))
	mux.Handle("/api/faces", errorHandler(h.Faces))
	mux.Handle("/", errorHandler(h.Index))

	return mux
}

// options applies the ?date=YYYY-MM-DD query parameter.
func (h *Handler) options(r *http.Request) (*Options, error) {
	opts := h.opts

	date := r.URL.Query().Get("date")
	if date == "" {
		return &opts, nil
	}

	day, err := time.ParseInLocation(time.DateOnly, date, opts.location())
	if err != nil {
		return nil, err
	}

	opts.Day = day

	return &opts, nil
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) error {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return nil
	}

	opts, err := h.options(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	var buf bytes.Buffer

	err = RenderPage(&buf, BuildPage(h.sessions.ListSessions(), opts))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err = w.Write(buf.Bytes())

	return err
}

type facesResponse struct {
	Faces   Faces         `json:"faces"`
	Legend  []LegendEntry `json:"legend"`
	Summary Summary       `json:"summary"`
}

// Faces returns the projected arcs, legend and summary as JSON.
func (h *Handler) Faces(w http.ResponseWriter, r *http.Request) error {
	opts, err := h.options(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	sessions := h.sessions.ListSessions()
	if !opts.Day.IsZero() {
		sessions = ClipToDay(sessions, opts.Day, opts.location())
	}

	faces := ProjectIn(sessions, opts.location())

	legend := Legend(sessions)
	if legend == nil {
		legend = []LegendEntry{}
	}

	w.Header().Set("Content-Type", "application/json")

	return json.NewEncoder(w).Encode(facesResponse{
		Faces:   faces,
		Legend:  legend,
		Summary: Summarize(faces),
	})
}

func openBrowser(url string) {
	name, args := osutil.OpenCommand(url)

	err := exec.Command(name, args...).Start()
	if err != nil {
		slog.Warn("opening browser failed", slog.String("url", url), slog.Any("error", err))
	}
}

// Serve runs the overview server on localhost:port until ctx is done.
func Serve(ctx context.Context, s SessionLister, port uint, open bool, opts Options) error {
	addr := fmt.Sprintf("localhost:%d", port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(s, opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	url := "http://" + addr

	pterm.Info.Printfln("serving charts on %s", url)
	slog.InfoContext(ctx, "chart server started", slog.String("addr", addr))

	if open {
		openBrowser(url)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
