// Package server exposes the generators over HTTP and websocket for chart
// front-ends.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/san-kum/tslab/internal/experiment"
	"github.com/san-kum/tslab/internal/export"
	"github.com/san-kum/tslab/internal/sim"
)

type Server struct {
	reg *experiment.Registry
	log *slog.Logger
}

func New(reg *experiment.Registry, log *slog.Logger) *Server {
	return &Server{reg: reg, log: log}
}

type modelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.health).Methods("GET")
	r.HandleFunc("/api/models", s.listModels).Methods("GET")
	r.HandleFunc("/api/series/{model}", s.series).Methods("GET")
	r.HandleFunc("/ws", s.serveWS)

	return r
}

// Handler wraps the router with panic recovery, permissive CORS and an
// access log written to accessLog.
func (s *Server) Handler(accessLog io.Writer) http.Handler {
	var h http.Handler = s.Router()
	h = handlers.LoggingHandler(accessLog, h)
	h = handlers.CORS(handlers.AllowedMethods([]string{"GET", "OPTIONS"}))(h)
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(false))(h)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, accessLog io.Writer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(accessLog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listModels(w http.ResponseWriter, r *http.Request) {
	names := s.reg.ListModels()
	out := make([]modelInfo, 0, len(names))
	for _, name := range names {
		out = append(out, modelInfo{Name: name, Description: s.reg.Describe(name)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) series(w http.ResponseWriter, r *http.Request) {
	model := mux.Vars(r)["model"]

	if _, err := s.reg.GetModel(model, sim.Params{}); err != nil {
		s.writeError(w, err)
		return
	}

	cfg, err := parseQuery(model, r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc, err := s.generate(r.Context(), cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// generate runs cfg on a source seeded for this request alone.
func (s *Server) generate(ctx context.Context, cfg experiment.Config) (export.Document, error) {
	res, err := experiment.Execute(ctx, s.reg, cfg)
	if err != nil {
		return export.Document{}, err
	}
	if !res.Series.IsValid() {
		return export.Document{}, fmt.Errorf("%w: model %s diverged within %d points", sim.ErrNonFinite, cfg.Model, cfg.N)
	}

	doc := export.NewDocument(cfg.Model, res.Seed, res.Series)
	doc.Label = res.Label
	doc.Metrics = res.Metrics
	if cfg.Model == "arima" {
		doc.Branch = string(cfg.Params.ARIMA().Branch())
	}

	s.log.Debug("generated series", "id", doc.ID, "model", cfg.Model, "n", cfg.N, "seed", cfg.Seed)
	return doc, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, sim.ErrUnknownModel):
		return http.StatusNotFound
	case errors.Is(err, sim.ErrInvalidLength),
		errors.Is(err, sim.ErrInvalidParam),
		errors.Is(err, sim.ErrUnknownParam),
		errors.Is(err, sim.ErrNonFinite):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// writeJSON encodes v in full before writing the header. An encoding
// failure is answered with a 500 and an error body.
func writeJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		code = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": "encode response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type wsError struct {
	Error string `json:"error"`
}

// serveWS answers each SeriesRequest read from the connection with one
// Document, or a wsError when the request is rejected.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("ws upgrade", "err", err)
		return
	}
	defer conn.Close()

	for {
		var req SeriesRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("ws read", "err", err)
			}
			return
		}

		var reply any
		if _, err := s.reg.GetModel(req.Model, sim.Params{}); err != nil {
			reply = wsError{Error: err.Error()}
		} else if cfg, err := req.config(); err != nil {
			reply = wsError{Error: err.Error()}
		} else if doc, err := s.generate(r.Context(), cfg); err != nil {
			reply = wsError{Error: err.Error()}
		} else {
			reply = doc
		}

		if err := conn.WriteJSON(reply); err != nil {
			s.log.Debug("ws write", "err", err)
			return
		}
	}
}
