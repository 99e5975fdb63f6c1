package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/seatwell/seatwell-api/internal/config"
	"github.com/seatwell/seatwell-api/internal/database"
	"github.com/seatwell/seatwell-api/internal/handler"
	"github.com/seatwell/seatwell-api/internal/middleware"
	"github.com/seatwell/seatwell-api/internal/queue"
	"github.com/seatwell/seatwell-api/internal/repository"
	"github.com/seatwell/seatwell-api/internal/router"
	"github.com/seatwell/seatwell-api/internal/storage"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the rate limiter.  A nil
	// client disables both without blocking startup.
	rdb := config.NewRedisClient()

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	games := repository.NewGameRepo(db)
	tickets := repository.NewTicketRepo(db)
	transactions := repository.NewTransactionRepo(db)
	content := repository.NewContentRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	gameH := handler.NewGameHandler(games)
	seatH := handler.NewSeatMapHandler(games, tickets)
	ticketH := handler.NewTicketHandler(games, tickets, transactions)
	userH := handler.NewUserHandler(users)
	txH := handler.NewTransactionHandler(transactions)
	contentH := handler.NewContentHandler(content)
	contactH := handler.NewContactHandler()
	uploadH := handler.NewUploadHandler(store)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, gameH, seatH, ticketH, contentH, contactH, cache)
	router.RegisterSeller(e, ticketH, cfg.JWTSecret)
	router.RegisterBuyer(e, ticketH, cfg.JWTSecret)
	router.RegisterAdmin(e, gameH, userH, txH, contentH, uploadH, cfg.JWTSecret)

	// Stored artwork is served straight from the upload directory.
	e.Static("/uploads", store.Dir())

	// The sales consumer drains ticket.sold into the sales log.  It
	// reconnects on its own, so a dead broker never blocks the API.
	go func() {
		if err := queue.StartSalesConsumer(); err != nil {
			log.Printf("sales consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
