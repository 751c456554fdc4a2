package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	_ "petpal/docs"
	"petpal/internal/adapters/storage/orm"
	"petpal/internal/domain/tasks"
	"petpal/internal/domain/vetvisits"
	"petpal/internal/middleware"
	"petpal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const welcomeMessage = "Welcome to the PetPal API!"

type Options struct {
	// Store es obligatorio en prod. Si es nil se usa SQLite en memoria (modo dev).
	Store *orm.Store

	Logger logger.Logger

	// Opcional: registry para /metrics. Si es nil se crea uno propio.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	store := opts.Store
	if store == nil {
		s, err := orm.OpenInMemory(context.Background(), log)
		if err != nil {
			panic(fmt.Sprintf("router: open in-memory store: %v", err))
		}
		log.Warn("no store configured, using in-memory sqlite", nil)
		store = s
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(metrics.Handler)
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		// Abierto: se refleja cualquier origin (con credentials no vale "*").
		AllowOriginFunc:  func(_ *http.Request, _ string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}))
	r.Use(chimw.StripSlashes)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": welcomeMessage})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo, cada uno con su fábrica de sesiones.
	tasksSvc := tasks.NewService(store.TaskSessions())
	visitsSvc := vetvisits.NewService(store.VetVisitSessions())

	tasks.RegisterRoutes(r, tasksSvc, log)
	vetvisits.RegisterRoutes(r, visitsSvc, log)

	return r
}
