// Package router assembles the gin engine: middleware chain, route
// registration and the operational endpoints.
package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/odontosys/clinic-api/internal/middleware"
	"github.com/odontosys/clinic-api/pkg/metrics"
)

// Handler registers its routes on a gin router.
type Handler interface {
	RegisterRoutes(gin.IRouter)
}

type Config struct {
	Timeout   time.Duration
	RateLimit rate.Limit
	RateBurst int
	CORS      middleware.CORSConfig
}

type Router struct {
	engine *gin.Engine
	http   *metrics.HTTPMetrics
}

// New builds the engine with the full middleware chain. Handlers are
// registered afterwards through Register and RegisterConfig.
func New(cfg Config, registry *prometheus.Registry, httpMetrics *metrics.HTTPMetrics) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Known routes with the wrong verb answer 405, not 404.
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Método no permitido"})
	})

	r := &Router{engine: engine, http: httpMetrics}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.Timeout(cfg.Timeout),
		middleware.CORS(cfg.CORS),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  cfg.RateLimit,
			Burst: cfg.RateBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

// Register mounts a handler at the engine root.
func (r *Router) Register(handlers ...Handler) {
	for _, h := range handlers {
		h.RegisterRoutes(r.engine)
	}
}

// RegisterConfig mounts the reference-data handler under /config with
// public cache headers.
func (r *Router) RegisterConfig(h Handler) {
	group := r.engine.Group("/config", middleware.Cache(middleware.CacheConfig{
		MaxAge: 3600,
	}))
	h.RegisterRoutes(group)
}

// Engine exposes the underlying engine for the HTTP server and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.http == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		r.http.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		r.http.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
