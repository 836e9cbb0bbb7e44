package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zayats-yacht/yachtclient/internal/logging"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger logging.Logger
	// Registry receives the HTTP metrics and is served on /metrics.
	// Nil gets a fresh registry with the Go and process collectors.
	Registry *prometheus.Registry
	// Ready reports whether /ready should answer 200. Nil means always.
	Ready func() bool
}

// NewRouter builds the gin engine: middleware, /health, /ready, /metrics
// and the API under /api.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
		opts.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggingMiddleware(opts.Logger))
	r.Use(NewMetrics(opts.Registry).Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if opts.Ready != nil && !opts.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	h.RegisterRoutes(r.Group("/api"))

	return r
}
