// Package router assembles the gin engine: middlewares, API routes, docs and
// the optional frontend build.
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "ShaadiBiodata/docs"
	"ShaadiBiodata/internal/auth"
	"ShaadiBiodata/internal/handler"
	"ShaadiBiodata/internal/logger"
	"ShaadiBiodata/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	// Serve StaticDir with an index.html fallback for client-side routes.
	ServeFrontend bool
	StaticDir     string

	AuthRateLimit float64
	AuthRateBurst int

	// Proxies whose X-Forwarded-For is believed. Empty means the peer
	// address is always the client IP.
	TrustedProxies []string
}

func New(h *handler.Handler, tokens *auth.TokenIssuer, opts Options) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		logger.Log.Errorw("New(): ignoring trusted proxies", "proxies", opts.TrustedProxies, "error", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(logger.GinMiddleware(), logger.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	router.Use(cors.New(config))

	router.GET("/health", h.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// register and login share one bucket per client
	credentialLimit := middleware.RateLimitByIP(opts.AuthRateLimit, opts.AuthRateBurst)
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", credentialLimit, h.Register)
		authGroup.POST("/login", credentialLimit, h.Login)
		authGroup.GET("/profile", middleware.AuthMiddleware(tokens), h.Profile)
	}

	protected := router.Group("/api").Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/payment/create-order", h.CreateOrder)
		protected.POST("/ai/generate-bio", h.GenerateBio)
	}

	router.GET("/ws/ai/generate-bio", h.HandleBioDrafting)

	router.NoRoute(notFound(opts))
	return router
}

func notFound(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if !opts.ServeFrontend || !isRead || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		// Clean against "/" so the result can never leave StaticDir
		file := filepath.Join(opts.StaticDir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(opts.StaticDir, "index.html"))
	}
}
