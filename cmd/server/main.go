package main // Entry point package

import (
	"context"
	"errors"
	"log" // Logging library
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // request logging and panic recovery

	"github.com/iliyamo/jukebox/internal/config"     // Internal config loader
	"github.com/iliyamo/jukebox/internal/handler"    // HTTP handlers
	"github.com/iliyamo/jukebox/internal/jukebox"    // selection rules, ledger, catalog and queue
	"github.com/iliyamo/jukebox/internal/middleware" // rate limiting
	"github.com/iliyamo/jukebox/internal/playback"   // simulated player
	"github.com/iliyamo/jukebox/internal/queue"      // RabbitMQ events
	"github.com/iliyamo/jukebox/internal/router"     // Internal router setup
	"github.com/iliyamo/jukebox/internal/store"      // state persistence
)

func main() {
	cfg := config.Load() // Load environment config

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.StoreURL)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer st.Close()

	ledger := jukebox.NewLedger(cfg.BcryptCost, cfg.DefaultBalance)
	if err := jukebox.SeedAccounts(ledger); err != nil {
		log.Fatal(err)
	}
	songs := jukebox.DefaultSongs()
	if cfg.CatalogFile != "" {
		if songs, err = jukebox.LoadCatalogFile(cfg.CatalogFile); err != nil {
			log.Fatalf("catalog: %v", err)
		}
	}
	catalog := jukebox.NewCatalog()
	if err := jukebox.SeedCatalog(catalog, songs); err != nil {
		log.Fatal(err)
	}

	sim := playback.NewSimulator(cfg.PlaybackSpeed)
	defer sim.Close()

	opts := []jukebox.Option{
		jukebox.WithDailyCaps(cfg.UserDailyCap, cfg.SongDailyCap),
		jukebox.WithRolloverDate(time.Now()),
	}
	if cfg.RabbitMQURL != "" {
		opts = append(opts, jukebox.WithPublisher(queue.NewPublisher(cfg.RabbitMQURL)))
		go func() {
			if err := queue.StartEventConsumer(ctx, cfg.RabbitMQURL, cfg.EventLogDir); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("event-consumer: stopped: %v", err)
			}
		}()
	}
	box := jukebox.New(ledger, catalog, sim, opts...)

	if cfg.RestoreState {
		restored, err := box.Restore(ctx, st)
		if err != nil {
			log.Fatalf("restore: %v", err)
		}
		log.Printf("restored %v from %s", restored, cfg.StoreURL)
	}
	box.Resume()
	go func() { _ = box.Run(ctx, sim.Finished()) }()

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	var limiter echo.MiddlewareFunc
	if rdb := config.NewRedisClient(); rdb != nil {
		defer rdb.Close()
		limiter = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	} else {
		log.Printf("redis unavailable; rate limiting disabled")
	}

	jh := handler.NewJukeboxHandler(box)
	router.RegisterRoutes(e, router.Handlers{
		Health:  handler.Health(box),
		Auth:    handler.NewAuthHandler(cfg, box),
		Jukebox: jh,
		Admin:   handler.NewAdminHandler(box, st),
	}, cfg.JWTSecret, limiter)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err) // Log and exit if server fails
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if cfg.SaveOnShutdown {
		if err := box.Save(shutdownCtx, st); err != nil {
			log.Printf("save on shutdown: %v", err)
		}
	}
}
