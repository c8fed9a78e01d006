// @title                       ShaadiBiodata API
// @version                     1.0
// @description                 Marriage biodata service: accounts, AI biodata drafting and premium payments.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ShaadiBiodata/internal/auth"
	"ShaadiBiodata/internal/biodata"
	"ShaadiBiodata/internal/config"
	"ShaadiBiodata/internal/handler"
	"ShaadiBiodata/internal/llm"
	"ShaadiBiodata/internal/logger"
	"ShaadiBiodata/internal/payment"
	"ShaadiBiodata/internal/router"
	"ShaadiBiodata/internal/storage"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("main(): invalid configuration: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.IsProduction()); err != nil {
		log.Fatalf("main(): failed to init logger: %v", err)
	}

	if err := run(cfg); err != nil {
		logger.Log.Errorw("main(): server stopped", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func openUserStorage(cfg *config.Config) (storage.UserRepository, error) {
	if cfg.DatabasePath == "" {
		logger.Log.Info("openUserStorage(): keeping users in memory, they are lost on restart")
		return storage.NewMemoryStorage(), nil
	}
	return storage.OpenSQLite(cfg.DatabasePath)
}

func run(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.UsesDefaultSecret() {
		logger.Log.Warn("run(): JWT_SECRET is not set, tokens are signed with the default key")
	}

	users, err := openUserStorage(cfg)
	if err != nil {
		return err
	}
	defer users.Close()

	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	accounts := auth.NewService(users, tokens, cfg.BcryptCost)

	razorpay := payment.NewRazorpayClient(cfg.RazorpayBaseURL, cfg.RazorpayKeyID, cfg.RazorpaySecret)
	payments := payment.NewService(razorpay, razorpay.KeyID())

	var textGenerator biodata.TextGenerator
	if cfg.OpenAIAPIKey != "" {
		textGenerator = llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		logger.Log.Warn("run(): OPENAI_API_KEY is not set, bio generation is disabled")
	}
	bios := biodata.NewGenerator(textGenerator)

	h := handler.New(accounts, tokens, payments, bios)
	engine := router.New(h, tokens, router.Options{
		ServeFrontend:  cfg.IsProduction(),
		StaticDir:      cfg.StaticDir,
		AuthRateLimit:  cfg.AuthRateLimit,
		AuthRateBurst:  cfg.AuthRateBurst,
		TrustedProxies: cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Infof("run(): server is running on port %s", cfg.Port)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Info("run(): shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
