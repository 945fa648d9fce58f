package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strawfields/strawfields-backend/api/controllers"
	cartcontrollers "github.com/strawfields/strawfields-backend/api/controllers/cart"
	chatcontrollers "github.com/strawfields/strawfields-backend/api/controllers/chat"
	leadcontrollers "github.com/strawfields/strawfields-backend/api/controllers/leads"
	"github.com/strawfields/strawfields-backend/api/middleware"
	cartsvc "github.com/strawfields/strawfields-backend/internal/cart"
	chatsvc "github.com/strawfields/strawfields-backend/internal/chat"
	leadsvc "github.com/strawfields/strawfields-backend/internal/leads"
	"github.com/strawfields/strawfields-backend/pkg/config"
	"github.com/strawfields/strawfields-backend/pkg/logger"
	"github.com/strawfields/strawfields-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	cartService cartsvc.Service,
	chatService chatsvc.Service,
	leadsService leadsvc.Service,
	promGatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	leadsPolicy := middleware.NewRateLimitPolicy(
		"leads",
		cfg.Leads.RateLimitWindow,
		cfg.Leads.RateLimitPerSess,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, healthPinger(redisClient)))
	})

	if promGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList())
			r.Get("/{productID}/preview", controllers.CatalogPreview(logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(cartService, logg))
			r.Delete("/", cartcontrollers.CartClear(cartService, logg))
			r.Post("/items", cartcontrollers.CartAddItem(cartService, logg))
			r.Put("/items/{productID}/{color}", cartcontrollers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productID}/{color}", cartcontrollers.CartRemoveItem(cartService, logg))
		})

		r.Route("/chat", func(r chi.Router) {
			r.Get("/messages", chatcontrollers.HistoryFetch(chatService, logg))
			r.Post("/messages", chatcontrollers.MessagePost(chatService, logg))
		})

		r.Route("/leads", func(r chi.Router) {
			r.Get("/whatsapp-link", leadcontrollers.WhatsAppLink(cartService, cfg.WhatsApp.Number, logg))
			r.With(middleware.SessionRateLimit(leadsPolicy, rateLimitStore(redisClient), logg)).
				Post("/", leadcontrollers.LeadSubmit(leadsService, cartService, logg))
		})
	})

	return r
}

// healthPinger avoids handing a typed-nil client to the interface
// parameter.
func healthPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}

func rateLimitStore(client *redis.Client) middleware.RateLimiterStore {
	if client == nil {
		return nil
	}
	return client
}
