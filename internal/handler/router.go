package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Health  *HealthHandler
	URL     *URLHandler
	Padrao  *PadraoHandler
	Sitemap *SitemapHandler
}

func NewRouter(h Handlers, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors)

	// Routes
	r.Get("/health", h.Health.Check)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/padroes", h.Padrao.List)

		r.Route("/urls", func(r chi.Router) {
			r.Post("/gerar", h.URL.Gerar)
			r.Post("/lote", h.URL.Lote)
			r.Get("/lote/progresso", h.URL.Progresso)
			r.Post("/canonicas", h.URL.Canonicas)
			r.Post("/duplicados", h.URL.Duplicados)
			r.Post("/validar", h.URL.Validar)
		})

		r.Post("/sitemap/atualizacao", h.Sitemap.Atualizacao)
	})

	return r
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
