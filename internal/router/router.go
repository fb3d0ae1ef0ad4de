package router

import (
	"database/sql"
	"net/http"
	"strings"

	mem "pet-parade/internal/adapters/storage/memory"
	pg "pet-parade/internal/adapters/storage/postgres"
	"pet-parade/internal/domain/authn"
	"pet-parade/internal/domain/likes"
	"pet-parade/internal/domain/pets"
	"pet-parade/internal/domain/users"
	"pet-parade/internal/middleware"
	"pet-parade/internal/platform/logger"
	"pet-parade/internal/ports/auth"

	_ "pet-parade/docs" // registra la doc de swagger

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // nil => no se monta POST /auth

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// AuthRequired protege escrituras de /pets, /likes y login/update/delete de /users.
	AuthRequired bool
	RecentLimit  int
	CORSOrigins  []string

	// Registry propio por router; nil => uno nuevo con collectors de proceso.
	Registry *prometheus.Registry
	App      string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := middleware.NewMetrics(reg, metricsNamespace(opts.App))

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Handler)
	r.Use(cors.Handler(corsOptions(opts.CORSOrigins)))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		petRepo  pets.Repository
		userRepo users.Repository
		likeRepo likes.Repository
	)
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
		likeRepo = pg.NewLikesRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		userRepo = mem.NewUserRepo()
		likeRepo = mem.NewLikeRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, users.WithPetLinks(petRepo, likeRepo))
	petsSvc := pets.NewService(petRepo,
		pets.WithRecentLimit(opts.RecentLimit),
		pets.WithLikes(likeRepo),
		pets.WithOwners(usersSvc),
	)
	likesSvc := likes.NewService(likeRepo, petsSvc, usersSvc)

	var guard func(http.Handler) http.Handler
	if opts.AuthRequired {
		guard = middleware.RequireClaims
	}

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, log.With(map[string]any{"module": "pets"}), guard)
	users.RegisterRoutes(r, usersSvc, log.With(map[string]any{"module": "users"}), guard)
	likes.RegisterRoutes(r, likesSvc, log.With(map[string]any{"module": "likes"}), guard)
	if opts.TokenIssuer != nil {
		authn.RegisterRoutes(r, authn.NewService(usersSvc, opts.TokenIssuer), log.With(map[string]any{"module": "auth"}))
	} else {
		log.Warn("router: no token issuer, POST /auth disabled", nil)
	}

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.DebugUserIDHeader, middleware.DebugUserEmailHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}

// prometheus solo acepta [a-zA-Z0-9_] en nombres.
func metricsNamespace(app string) string {
	app = strings.TrimSpace(app)
	if app == "" {
		app = "pet_parade"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, app)
}
