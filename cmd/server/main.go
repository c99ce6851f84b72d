package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Shahrukh0396/GFlights/internal/config"
	"github.com/Shahrukh0396/GFlights/internal/handler"
	"github.com/Shahrukh0396/GFlights/internal/provider"
	"github.com/Shahrukh0396/GFlights/internal/ratelimit"
	"github.com/Shahrukh0396/GFlights/internal/service"
	"github.com/Shahrukh0396/GFlights/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewEndpointLimiterWithDefaults()
	rateLimiter.SetEndpointLimit(provider.EndpointFlightsSearch, 10, 20)
	rateLimiter.SetEndpointLimit(provider.EndpointAirports, 20, 30)

	client := provider.NewClient(provider.Config{
		BaseURL:      cfg.Provider.BaseURL,
		TokenURL:     cfg.Provider.TokenURL,
		ClientID:     cfg.Provider.ClientID,
		ClientSecret: cfg.Provider.ClientSecret,
		Timeout:      time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
		Limiter:      rateLimiter,
	})

	var appStore store.Store
	if cfg.Redis.Enabled {
		redisStore, err := store.NewRedisStore(store.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		appStore = redisStore
		log.Printf("Redis store enabled (host: %s:%s)", cfg.Redis.Host, cfg.Redis.Port)
	} else {
		appStore = store.NewMemoryStore()
		log.Println("Redis disabled, using in-memory store")
	}
	defer appStore.Close()

	svc := service.NewSearchService(client, appStore)

	searchHandler := handler.NewSearchHandler(svc)
	airportsHandler := handler.NewAirportsHandler(svc)
	routesHandler := handler.NewRoutesHandler(svc)
	historyHandler := handler.NewHistoryHandler(svc)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.GET("/airports/search", airportsHandler.Search)
	api.GET("/airports/nearby", airportsHandler.Nearby)
	api.GET("/routes/popular", routesHandler.Popular)
	api.GET("/searches/recent", historyHandler.List)
	api.DELETE("/searches/recent", historyHandler.Clear)
	e.GET("/health", handler.HealthHandler)

	go func() {
		log.Printf("Starting flight search server on port %s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
