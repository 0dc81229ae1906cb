package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/domain"
	"github.com/kailas-cloud/improvdex/internal/domain/game"
	"github.com/kailas-cloud/improvdex/internal/domain/query/filter"
	"github.com/kailas-cloud/improvdex/internal/domain/query/request"
	"github.com/kailas-cloud/improvdex/internal/domain/theme"
	healthuc "github.com/kailas-cloud/improvdex/internal/usecase/health"
	preferenceuc "github.com/kailas-cloud/improvdex/internal/usecase/preference"
	queryuc "github.com/kailas-cloud/improvdex/internal/usecase/query"
)

// maxThemeBody caps PUT /preferences/theme bodies.
const maxThemeBody = 1 << 10

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements ServerInterface.
type Server struct {
	queries       *queryuc.Service
	preferences   *preferenceuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	queries *queryuc.Service,
	preferences *preferenceuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		queries:     queries,
		preferences: preferences,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrGameNotFound, http.StatusNotFound, ErrorResponseCodeGameNotFound),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorResponseCodeInvalidQuery),
		sentinelHandler(domain.ErrInvalidTheme, http.StatusBadRequest, ErrorResponseCodeInvalidTheme),
		sentinelHandler(domain.ErrCatalogNotLoaded, http.StatusServiceUnavailable, ErrorResponseCodeCatalogNotLoaded),
	}
	return s
}

// ListGames handles GET /games.
func (s *Server) ListGames(w http.ResponseWriter, r *http.Request, params ListGamesParams) {
	req, err := requestFromParams(params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	res, err := s.queries.Query(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]GameCard, len(res.Games))
	for i, g := range res.Games {
		items[i] = gameToCard(g)
	}
	writeJSON(w, http.StatusOK, GameListResponse{
		Items:          items,
		Total:          res.Total,
		CatalogVersion: res.CatalogVersion,
	})
}

// GetGame handles GET /games/{id}.
func (s *Server) GetGame(w http.ResponseWriter, r *http.Request, id string) {
	g, err := s.queries.Game(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameToDetails(g))
}

// ListCategories handles GET /categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.queries.Categories(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CategoryListResponse{Items: cats})
}

// GetTheme handles GET /preferences/theme.
func (s *Server) GetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.preferences.Get(r.Context(), ClientIDFromContext(r.Context()))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: string(t)})
}

// SetTheme handles PUT /preferences/theme.
func (s *Server) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxThemeBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	t, err := theme.Parse(req.Theme)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	saved, err := s.preferences.Set(r.Context(), ClientIDFromContext(r.Context()), t)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: string(saved)})
}

// ToggleTheme handles POST /preferences/theme/toggle.
func (s *Server) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.preferences.Toggle(r.Context(), ClientIDFromContext(r.Context()))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: string(t)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	resp := HealthResponse{Status: string(report.Status), Checks: checks}
	if report.Catalog != nil {
		resp.Catalog = &CatalogStatus{
			Games:    report.Catalog.Games,
			Version:  report.Catalog.Version,
			LoadedAt: report.Catalog.LoadedAt.UTC().Format(time.RFC3339),
		}
	}

	// A degraded cache still serves queries.
	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, resp)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// BindErrorHandler answers parameter binding failures with the JSON error envelope.
func BindErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	msg := "invalid request"
	var pe *InvalidParamFormatError
	if errors.As(err, &pe) {
		msg = "invalid value for parameter " + pe.ParamName
	}
	writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, msg)
}

func requestFromParams(p ListGamesParams) (request.Request, error) {
	var diff game.Difficulty
	if v := strings.TrimSpace(deref(p.Difficulty)); v != "" {
		d, ok := game.ParseDifficulty(v)
		if !ok {
			// Keep the raw value so filter.New reports it.
			d = game.Difficulty(v)
		}
		diff = d
	}

	f, err := filter.New(strings.TrimSpace(deref(p.Category)), diff, p.MinPlayers, p.MaxPlayers, p.AudienceParticipation)
	if err != nil {
		return request.Request{}, err //nolint:wrapcheck // domain error carries the sentinel
	}
	return request.New(deref(p.Q), f) //nolint:wrapcheck // domain error carries the sentinel
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-safe message without exposing internals.
// Validation errors carry the offending value, which the caller sent anyway.
func safeDomainMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery), errors.Is(err, domain.ErrInvalidTheme):
		return err.Error()
	case errors.Is(err, domain.ErrGameNotFound):
		return domain.ErrGameNotFound.Error()
	case errors.Is(err, domain.ErrCatalogNotLoaded):
		return domain.ErrCatalogNotLoaded.Error()
	default:
		return "internal error"
	}
}

func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			s.logger.Debug("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}
