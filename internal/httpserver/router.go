package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/aumai/openjudge/internal/analyze"
	"github.com/aumai/openjudge/internal/model"
	"github.com/aumai/openjudge/internal/statute"
)

var (
	errNotFound   = errors.New("not found")
	errBadRequest = errors.New("bad request")
)

// Router serves the statute lookup and case analysis API
type Router struct {
	store    *statute.Store
	analyzer *analyze.Analyzer
	cache    *ResponseCache // nil when caching is disabled
}

// New builds the HTTP handler with all middleware wired
func New(cfg *model.Config, store *statute.Store, analyzer *analyze.Analyzer) http.Handler {
	r := &Router{store: store, analyzer: analyzer}
	if cfg.Cache.Enabled {
		r.cache = NewResponseCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	mux := chi.NewRouter()
	mux.Use(RequestID)
	mux.Use(Logging)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	if cfg.RateLimiting.Enabled {
		mux.Use(RateLimit(NewClientLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)))
	}

	mux.Get("/health", handleHealth)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/sections/{family}", r.wrap(r.handleSections))
		rt.Get("/sections/{family}/{number}", r.wrap(r.handleSection))
		rt.Get("/mappings/{number}", r.wrap(r.handleMapping))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, errNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, errBadRequest):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// POST /v1/analyze
// Body: {"case_description": "<free text>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		CaseDescription string `json:"case_description"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}

	if r.cache != nil {
		key := r.cache.Key(body.CaseDescription)
		if cached, found := r.cache.Get(key); found {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			_, err := w.Write(cached)
			return err
		}
	}

	analysis := r.analyzer.Analyze(body.CaseDescription)
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	if r.cache != nil {
		r.cache.Set(r.cache.Key(body.CaseDescription), data)
	}

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	return err
}

// GET /v1/sections/{family}
func (r *Router) handleSections(w http.ResponseWriter, req *http.Request) error {
	family, err := model.ParseCodeFamily(chi.URLParam(req, "family"))
	if err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	sections := r.store.AllOf(family)
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(sections)
}

// GET /v1/sections/{family}/{number}
func (r *Router) handleSection(w http.ResponseWriter, req *http.Request) error {
	family, err := model.ParseCodeFamily(chi.URLParam(req, "family"))
	if err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	number := chi.URLParam(req, "number")
	section, ok := r.store.Lookup(family, number)
	if !ok {
		return fmt.Errorf("%w: section %s %s", errNotFound, family, number)
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(section)
}

// GET /v1/mappings/{number}
func (r *Router) handleMapping(w http.ResponseWriter, req *http.Request) error {
	number := chi.URLParam(req, "number")
	mapping, ok := r.store.MapToNewCode(number)
	if !ok {
		return fmt.Errorf("%w: no BNS mapping for IPC %s", errNotFound, number)
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(mapping)
}
