package chi

import (
	"fmt"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Error codes returned in ErrorResponse.
const (
	ErrorResponseCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorResponseCodeInvalidQuery     ErrorResponseCode = "invalid_query"
	ErrorResponseCodeInvalidTheme     ErrorResponseCode = "invalid_theme"
	ErrorResponseCodeGameNotFound     ErrorResponseCode = "game_not_found"
	ErrorResponseCodeCatalogNotLoaded ErrorResponseCode = "catalog_not_loaded"
	ErrorResponseCodeUnauthorized     ErrorResponseCode = "unauthorized"
	ErrorResponseCodeInternalError    ErrorResponseCode = "internal_error"
)

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// PlayerCount is the supported cast size.
type PlayerCount struct {
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Optimal int    `json:"optimal"`
	Label   string `json:"label"`
}

// GameCard is the summary shown in result lists.
type GameCard struct {
	ID                    string       `json:"id"`
	Name                  string       `json:"name"`
	Category              string       `json:"category"`
	Difficulty            string       `json:"difficulty,omitempty"`
	Tags                  []string     `json:"tags"`
	PlayerCount           *PlayerCount `json:"player_count,omitempty"`
	AudienceParticipation *bool        `json:"audience_participation,omitempty"`
	Duration              string       `json:"duration,omitempty"`
}

// Setup is the preparation block of a game.
type Setup struct {
	Description string   `json:"description"`
	Props       []string `json:"props,omitempty"`
}

// Tip is a plain tip or a role-attributed group of lines.
type Tip struct {
	Kind  string   `json:"kind"` // plain, role
	Text  string   `json:"text,omitempty"`
	Role  string   `json:"role,omitempty"`
	Lines []string `json:"lines,omitempty"`
}

// GameDetails is the full game view.
type GameDetails struct {
	GameCard
	Setup    *Setup   `json:"setup,omitempty"`
	Rules    []string `json:"rules"`
	Tips     []Tip    `json:"tips"`
	Examples []string `json:"examples"`
}

// GameListResponse is the body of GET /games.
type GameListResponse struct {
	Items          []GameCard `json:"items"`
	Total          int        `json:"total"`
	CatalogVersion string     `json:"catalog_version"`
}

// CategoryListResponse is the body of GET /categories.
type CategoryListResponse struct {
	Items []string `json:"items"`
}

// ThemeRequest is the body of PUT /preferences/theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse is the body of theme preference endpoints.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// CatalogStatus describes the active catalog in health responses.
type CatalogStatus struct {
	Games    int    `json:"games"`
	Version  string `json:"version"`
	LoadedAt string `json:"loaded_at"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Catalog *CatalogStatus    `json:"catalog,omitempty"`
}

// ListGamesParams defines parameters for ListGames.
type ListGamesParams struct {
	Q                     *string `form:"q,omitempty" json:"q,omitempty"`
	Category              *string `form:"category,omitempty" json:"category,omitempty"`
	Difficulty            *string `form:"difficulty,omitempty" json:"difficulty,omitempty"`
	MinPlayers            *int    `form:"min_players,omitempty" json:"min_players,omitempty"`
	MaxPlayers            *int    `form:"max_players,omitempty" json:"max_players,omitempty"`
	AudienceParticipation *bool   `form:"audience_participation,omitempty" json:"audience_participation,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /games)
	ListGames(w http.ResponseWriter, r *http.Request, params ListGamesParams)
	// (GET /games/{id})
	GetGame(w http.ResponseWriter, r *http.Request, id string)
	// (GET /categories)
	ListCategories(w http.ResponseWriter, r *http.Request)
	// (GET /preferences/theme)
	GetTheme(w http.ResponseWriter, r *http.Request)
	// (PUT /preferences/theme)
	SetTheme(w http.ResponseWriter, r *http.Request)
	// (POST /preferences/theme/toggle)
	ToggleTheme(w http.ResponseWriter, r *http.Request)
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// MiddlewareFunc wraps a single route handler.
type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts raw requests into typed handler calls.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

// InvalidParamFormatError reports a parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

func (siw *ServerInterfaceWrapper) wrap(h http.Handler) http.Handler {
	for _, middleware := range siw.HandlerMiddlewares {
		h = middleware(h)
	}
	return h
}

// ListGames binds the query string and calls the handler.
func (siw *ServerInterfaceWrapper) ListGames(w http.ResponseWriter, r *http.Request) {
	var params ListGamesParams
	query := r.URL.Query()

	bindings := []struct {
		name string
		dest any
	}{
		{"q", &params.Q},
		{"category", &params.Category},
		{"difficulty", &params.Difficulty},
		{"min_players", &params.MinPlayers},
		{"max_players", &params.MaxPlayers},
		{"audience_participation", &params.AudienceParticipation},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: b.name, Err: err})
			return
		}
	}

	siw.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListGames(w, r, params)
	})).ServeHTTP(w, r)
}

// GetGame binds the path id and calls the handler.
func (siw *ServerInterfaceWrapper) GetGame(w http.ResponseWriter, r *http.Request) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", gochi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	siw.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetGame(w, r, id)
	})).ServeHTTP(w, r)
}

// ListCategories calls the handler.
func (siw *ServerInterfaceWrapper) ListCategories(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.ListCategories)).ServeHTTP(w, r)
}

// GetTheme calls the handler.
func (siw *ServerInterfaceWrapper) GetTheme(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.GetTheme)).ServeHTTP(w, r)
}

// SetTheme calls the handler.
func (siw *ServerInterfaceWrapper) SetTheme(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.SetTheme)).ServeHTTP(w, r)
}

// ToggleTheme calls the handler.
func (siw *ServerInterfaceWrapper) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.ToggleTheme)).ServeHTTP(w, r)
}

// HealthCheck calls the handler.
func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.HealthCheck)).ServeHTTP(w, r)
}

// Metrics calls the handler.
func (siw *ServerInterfaceWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.Metrics)).ServeHTTP(w, r)
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       gochi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions mounts every route of si on a chi router.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = gochi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r gochi.Router) {
		r.Get(options.BaseURL+"/games", wrapper.ListGames)
		r.Get(options.BaseURL+"/games/{id}", wrapper.GetGame)
		r.Get(options.BaseURL+"/categories", wrapper.ListCategories)
		r.Get(options.BaseURL+"/preferences/theme", wrapper.GetTheme)
		r.Put(options.BaseURL+"/preferences/theme", wrapper.SetTheme)
		r.Post(options.BaseURL+"/preferences/theme/toggle", wrapper.ToggleTheme)
		r.Get(options.BaseURL+"/health", wrapper.HealthCheck)
		r.Get(options.BaseURL+"/metrics", wrapper.Metrics)
	})
	return r
}
