package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/grouping"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/logging"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options tunes NewRouter. A nil Gatherer leaves /metrics unmounted.
type Options struct {
	Gatherer     prometheus.Gatherer
	MaxBodyBytes int64
}

// NewRouter wires up all routes with the provided Grouper.
func NewRouter(svc service.Grouper, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)
	if opts.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(opts.MaxBodyBytes))
	}

	r.Get("/healthz", handleHealth)
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/sites", handleListSites(svc))
	r.Post("/groups", handleGroup(svc))
	r.Post("/match", handleMatch(svc))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- sites ---

func handleListSites(svc service.Grouper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, svc.Sites())
	}
}

// --- group ---

type groupRequest struct {
	URL         string   `json:"url"`
	Host        string   `json:"host"`
	HTML        string   `json:"html"`
	Ingredients []string `json:"ingredients"`
	Language    string   `json:"language"`
}

type groupResponse struct {
	Site      string                     `json:"site"`
	Host      string                     `json:"host"`
	Algorithm string                     `json:"algorithm"`
	Groups    []grouping.IngredientGroup `json:"ingredient_groups"`
	Fallback  string                     `json:"fallback,omitempty"`
}

func handleGroup(svc service.Grouper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req groupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		res, err := svc.Group(r.Context(), service.GroupRequest{
			URL:         req.URL,
			Host:        req.Host,
			HTML:        req.HTML,
			Ingredients: req.Ingredients,
			Language:    req.Language,
		})
		if err != nil {
			if errors.Is(err, service.ErrInvalidRequest) {
				jsonError(w, err.Error(), http.StatusBadRequest)
				return
			}
			jsonError(w, "grouping failed", http.StatusInternalServerError, err)
			return
		}
		groups := res.Groups
		if groups == nil {
			groups = []grouping.IngredientGroup{}
		}
		jsonOK(w, groupResponse{
			Site:      res.Site,
			Host:      res.Host,
			Algorithm: string(res.Algorithm),
			Groups:    groups,
			Fallback:  res.Fallback,
		})
	}
}

// --- match ---

type matchRequest struct {
	Text       string   `json:"text"`
	Candidates []string `json:"candidates"`
	Scorer     string   `json:"scorer"`
}

type matchResponse struct {
	Match string  `json:"match"`
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

func handleMatch(svc service.Grouper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		res, err := svc.Match(r.Context(), service.MatchRequest{
			Text:       req.Text,
			Candidates: req.Candidates,
			Scorer:     req.Scorer,
		})
		if err != nil {
			switch {
			case errors.Is(err, grouping.ErrEmptyCandidates):
				jsonError(w, "candidates are required", http.StatusUnprocessableEntity)
			case errors.Is(err, service.ErrInvalidRequest):
				jsonError(w, err.Error(), http.StatusBadRequest)
			default:
				jsonError(w, "match failed", http.StatusInternalServerError, err)
			}
			return
		}
		jsonOK(w, matchResponse{Match: res.Match, Index: res.Index, Score: res.Score})
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
