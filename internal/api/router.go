package api

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/edgeworth/internal/api/handlers"
	mw "github.com/Harshitk-cp/edgeworth/internal/api/middleware"
	"github.com/Harshitk-cp/edgeworth/internal/buildconfig"
	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/Harshitk-cp/edgeworth/internal/service"
	"github.com/Harshitk-cp/edgeworth/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Options configures the router. A nil Scenarios store leaves the scenario
// routes unmounted.
type Options struct {
	Economy        *service.EconomyService
	Scenarios      domain.ScenarioStore
	Pinger         Pinger
	APIKey         string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Pinger reports database reachability for /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the router and request counters.
type App struct {
	Router    *chi.Mux
	startTime time.Time
	counters  mw.Counters
}

func NewApp(ctx context.Context, opts Options, logger *zap.Logger) *App {
	economyHandler := handlers.NewEconomyHandler(opts.Economy)

	var scenarioHandler *handlers.ScenarioHandler
	if opts.Scenarios != nil {
		scenarioSvc := service.NewScenarioService(opts.Scenarios, opts.Economy, logger)
		scenarioHandler = handlers.NewScenarioHandler(scenarioSvc)
	} else {
		logger.Warn("no scenario store configured, scenario routes disabled")
	}

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.counters)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))

	r.Get("/health", healthHandler(opts.Pinger))
	r.Get("/metrics", app.metricsHandler())
	r.Get("/version", versionHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(opts.APIKey))

		r.Route("/economy", func(r chi.Router) {
			r.Get("/utility", economyHandler.Utility)
			r.Get("/demand", economyHandler.Demand)
			r.Get("/clearing", economyHandler.Clearing)
			r.Get("/errors", economyHandler.Errors)
			r.Post("/optimal", economyHandler.Optimal)
			r.Post("/sse", economyHandler.SumSquaredErrors)
			r.Get("/equilibrium", economyHandler.Equilibrium)
			r.Get("/pareto", economyHandler.Pareto)
			r.Get("/report", economyHandler.Report)
			r.Get("/figures/edgeworth", economyHandler.EdgeworthFigure)
			r.Post("/figures/comparison", economyHandler.ComparisonFigure)
		})

		if scenarioHandler != nil {
			r.Route("/scenarios", func(r chi.Router) {
				r.Post("/", scenarioHandler.Create)
				r.Get("/", scenarioHandler.List)
				r.Get("/by-name/{name}", scenarioHandler.GetByName)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", scenarioHandler.GetByID)
					r.Delete("/", scenarioHandler.Delete)
					r.Get("/report", scenarioHandler.Report)
				})
			})
		}
	})

	return app
}

func healthHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if p != nil {
			if err := p.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func versionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(buildconfig.VersionInfo())
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.counters.Requests.Load(),
			"client_errors":  app.counters.ClientErrors.Load(),
			"server_errors":  app.counters.ServerErrors.Load(),
			"in_flight":      app.counters.InFlight.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy interfaces at compile time.
var _ domain.ScenarioStore = (*store.ScenarioStore)(nil)
