package cli

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/rcliao/chat-wrapped/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the wrapped report over HTTP",
		Long:  "Computes the wrapped metrics once and serves the gallery plus the metric JSON on a local port.",
		Run:   runServe,
	}

	cmd.Flags().String("addr", ":8599", "Listen address")

	RootCmd.AddCommand(cmd)
}

// reportServer serves one computed envelope for the lifetime of the process.
type reportServer struct {
	router *chi.Mux
	env    render.Envelope
}

func newReportServer(env render.Envelope) *reportServer {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &reportServer{
		router: router,
		env:    env,
	}

	router.Get("/", s.gallery)
	router.Get("/api/metrics", s.metrics)
	router.Get("/health", s.health)

	return s
}

func runServe(cmd *cobra.Command, args []string) {
	env, _, err := wrapEnvelope(cmd.Context())
	if err != nil {
		exitErr("load messages", err)
	}

	addr, _ := cmd.Flags().GetString("addr")
	srv := newReportServer(env)

	slog.Info("serving wrapped report", "addr", addr, "year", env.Year, "run_id", env.RunID)
	if err := http.ListenAndServe(addr, srv.router); err != nil {
		exitErr("serve", err)
	}
}

func (s *reportServer) gallery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteHTML(w, s.env); err != nil {
		slog.Error("render gallery", "err", err)
	}
}

func (s *reportServer) metrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(s.env)
}

func (s *reportServer) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "run_id": s.env.RunID})
}
