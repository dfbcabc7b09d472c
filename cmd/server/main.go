package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/sriluxe/hotel-reservation/internal/config"
	"github.com/sriluxe/hotel-reservation/internal/handler"
	"github.com/sriluxe/hotel-reservation/internal/middleware"
	"github.com/sriluxe/hotel-reservation/internal/queue"
	"github.com/sriluxe/hotel-reservation/internal/repository"
	"github.com/sriluxe/hotel-reservation/internal/router"
	queue_publisher "github.com/sriluxe/hotel-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	rdb := config.NewRedisClient()

	catalog := repository.NewCatalogRepo()
	users := repository.NewUserRepo(cfg.BcryptCost)
	sessions := repository.NewSessionRepo(rdb, cfg.SessionKey)
	ledger := repository.NewLedgerRepo(catalog, cfg.SimLatency)

	// Restore the session slot in the background.  The session gate
	// keeps guarded routes answering 503 until this finishes.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if u, ok, err := sessions.Restore(ctx); err != nil {
			log.Printf("session restore failed: %v", err)
		} else if ok {
			log.Printf("session restored for user %s", u.ID)
		}
	}()

	// Billing consumer keeps its own reconnect loop; it never returns
	// under normal operation.
	go func() {
		if err := queue.StartBillingConsumer(); err != nil {
			log.Printf("billing consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	authH := handler.NewAuthHandler(cfg, users, sessions)
	catalogH := handler.NewCatalogHandler(catalog)
	reservationH := handler.NewReservationHandler(ledger)
	deskH := handler.NewDeskHandler(ledger, catalog, users, queue_publisher.PublishBillSettled)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret, sessions.Ready)
	router.RegisterPublic(e, catalogH, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterCustomer(e, reservationH, cfg.JWTSecret, sessions.Ready)
	router.RegisterDesk(e, deskH, cfg.JWTSecret, sessions.Ready)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
