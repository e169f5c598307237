package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "resale/internal/config"
	"resale/internal/currency"
	intdb "resale/internal/db"
	router "resale/internal/http"
	"resale/internal/http/handlers"
	"resale/internal/marketplace"
	"resale/internal/repositories"
	"resale/internal/search"
	"resale/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logFile := utils.SetupLogOutput(env.LogDir)
	defer logFile.Close()

	table, err := currency.LoadTable(env.CurrencyFile)
	if err != nil {
		log.Fatalf("failed to load currencies: %v", err)
	}

	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer intconfig.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := intdb.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("failed to prepare schema: %v", err)
	}
	cancel()

	deps := handlers.Deps{
		Currencies:  table,
		IndexBase:   env.AlgoliaIndex,
		Marketplace: marketplace.NewClient(env.MarketplaceURL),
		Edits:       repositories.BulkEditRepository{DB: db},
	}

	if env.AlgoliaAppID != "" && env.AlgoliaAPIKey != "" {
		var searcher search.Searcher = search.NewAlgoliaSearcher(env.AlgoliaAppID, env.AlgoliaAPIKey)

		rdb, err := intconfig.ConnectRedis(context.Background(), env.RedisURL)
		switch {
		case err != nil:
			utils.LogEvent("", "search", "redis_disabled", err.Error())
		case rdb != nil:
			defer rdb.Close()
			searcher = search.CachedSearcher{
				Next:  searcher,
				Cache: search.RedisCache{Client: rdb, Prefix: "resale:"},
				TTL:   env.SearchCacheTTL,
			}
		}
		deps.Searcher = searcher
	} else {
		utils.LogEvent("", "search", "disabled", "ALGOLIA_APP_ID / ALGOLIA_API_KEY not set")
	}

	handlers.Configure(deps)

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
