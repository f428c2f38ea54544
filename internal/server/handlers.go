package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/spring01/music/internal/shared"
)

const maxBodyBytes = 1 << 20

// SkillPath and HealthPath are the service routes.
const (
	SkillPath  = "/skill"
	HealthPath = "/healthz"
)

// Directives handles raw skill directives. Implemented by [skill.Skill].
type Directives interface {
	Handle(ctx context.Context, raw []byte) ([]byte, error)
}

// SkillHandler serves POST /skill.
type SkillHandler struct {
	skill  Directives
	logger *log.Logger
}

// NewSkillHandler creates a handler forwarding request bodies to skill.
func NewSkillHandler(skill Directives, logger *log.Logger) *SkillHandler {
	return &SkillHandler{skill: skill, logger: logger}
}

func (h *SkillHandler) Routes() []string {
	return []string{SkillPath}
}

func (h *SkillHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	resp, err := h.skill.Handle(r.Context(), body)
	if err != nil {
		status := StatusFor(err)
		h.logger.Warn("directive failed", "status", status, "error", err)
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(resp)
}

// StatusFor maps a directive error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrInvalidRequest),
		errors.Is(err, shared.ErrUnsupportedRequest),
		errors.Is(err, shared.ErrMalformedCursor),
		errors.Is(err, shared.ErrUnsupportedCriteria):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrNotFound),
		errors.Is(err, shared.ErrPlaylistNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// HealthHandler serves GET /healthz.
type HealthHandler struct{}

func (HealthHandler) Routes() []string {
	return []string{HealthPath}
}

func (HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewRouter wires the service routes behind recovery and request logging.
func NewRouter(skill Directives, logger *log.Logger) *BasicRouter {
	router := NewBasicRouter()
	router.Use(Recovery(logger), Logging(logger))
	router.Handler(NewSkillHandler(skill, logger))
	router.Handle(http.MethodGet, HealthPath, HealthHandler{})
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
