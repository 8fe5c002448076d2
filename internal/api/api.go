// Package api exposes the tailoring pipeline over HTTP: an embedded form UI,
// a JSON tailor endpoint, and a .docx export endpoint.
package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/p-shah256/tailor/internal/export"
	"github.com/p-shah256/tailor/internal/tailor"
	"github.com/p-shah256/tailor/pkg/errors"
	"github.com/p-shah256/tailor/pkg/logger"
	"github.com/p-shah256/tailor/pkg/types"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type Server struct {
	port               int
	pipeline           *tailor.Pipeline
	defaultTemperature float32
}

func NewServer(port int, pipeline *tailor.Pipeline, defaultTemperature float32) *Server {
	return &Server{
		port:               port,
		pipeline:           pipeline,
		defaultTemperature: defaultTemperature,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.wrap(s.handleIndex, http.MethodGet))
	mux.HandleFunc("/api/tailor", s.wrap(s.handleTailor, http.MethodPost))
	mux.HandleFunc("/api/export", s.wrap(s.handleExport, http.MethodPost))
	return mux
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("Starting API server", "port", s.port)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) wrap(h http.HandlerFunc, methods ...string) http.HandlerFunc {
	methods = append(methods, http.MethodOptions)
	return Recover(RequestID(Logger(CORS(MethodChecker(methods...)(h)))))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		RespondWithError(w, errors.New(http.StatusNotFound, "Not Found", r.URL.Path))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Sources            []string
		DefaultTemperature float32
	}{
		Sources:            []string{types.SourceLinkedIn, types.SourceIndeed, types.SourceReferral},
		DefaultTemperature: s.defaultTemperature,
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		slog.Error("Failed to render index template", "err", err)
	}
}

func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GetRequestID(r.Context())

	var req types.TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, errors.ErrBadRequest("Invalid request body").WithRequestID(requestID))
		return
	}

	result, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		slog.Error("Tailoring run failed", "err", err, "request_id", requestID)
		RespondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	RespondWithJSON(w, http.StatusOK, result)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GetRequestID(r.Context())

	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, errors.ErrBadRequest("Invalid request body").WithRequestID(requestID))
		return
	}

	data, err := export.Docx(req.Title, req.Body)
	if err != nil {
		RespondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(req.Title)))
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write docx response", "err", err)
	}
}
