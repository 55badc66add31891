package main

import (
	"context"
	"net/http"
	"time"

	"journal-backend/internal/config"
	httpdelivery "journal-backend/internal/delivery/http"
	wsdelivery "journal-backend/internal/delivery/websocket"
	"journal-backend/internal/domain"
	"journal-backend/internal/infrastructure/db"
	"journal-backend/internal/infrastructure/fcm"
	"journal-backend/internal/infrastructure/storage"
	"journal-backend/internal/logging"
	"journal-backend/internal/repository"
	"journal-backend/internal/usecase"
)

const sessionTTL = 7 * 24 * time.Hour

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFile)
	ctx := context.Background()

	// Trade storage: Postgres when configured, in-memory otherwise so the
	// server still runs for local development.
	var trades domain.TradeRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolConfigFromEnv())
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to database")
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("running migrations")
		}
		trades = repository.NewPostgresTradeRepository(pool)
		log.Info().Msg("using postgres trade repository")
	} else {
		trades = repository.NewInMemoryTradeRepository()
		log.Warn().Msg("DATABASE_URL not set, trades are held in memory only")
	}

	shots, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("preparing upload directory")
	}

	fcmClient, err := fcm.NewClient(log)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing fcm")
	}

	tokens := repository.NewTokenRepository()
	sessions := repository.NewSessionRepository(sessionTTL)
	notifier := usecase.NewNotifier(fcmClient, tokens, log)
	journal := usecase.NewJournalUsecase(trades, shots, notifier, usecase.ScoreAlways, log)

	authHandler := httpdelivery.NewAuthHandler(sessions, cfg.AdminUsername, cfg.AdminPasswordHash, log)
	tradeHandler := httpdelivery.NewTradeHandler(journal, shots, log)
	dashboardHandler := httpdelivery.NewDashboardHandler(journal, log)
	exportHandler := httpdelivery.NewExportHandler(journal, log)
	tokenHandler := httpdelivery.NewTokenHandler(tokens)
	wsHandler := wsdelivery.NewHandler(journal, cfg.PushInterval, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)

	mux.HandleFunc("/api/dashboard", authHandler.RequireAdmin(dashboardHandler.Dashboard))
	mux.HandleFunc("/api/public", dashboardHandler.Public)
	mux.HandleFunc("/api/public/export/csv", exportHandler.ClosedCSV)

	mux.HandleFunc("/api/trades", authHandler.RequireAdmin(tradeHandler.Create))
	mux.HandleFunc("/api/trades/detail", tradeHandler.Detail)
	mux.HandleFunc("/api/trades/update", authHandler.RequireAdmin(tradeHandler.Update))
	mux.HandleFunc("/api/trades/delete", authHandler.RequireAdmin(tradeHandler.Delete))

	mux.HandleFunc("/api/notifications/register", tokenHandler.Register)
	mux.HandleFunc("/api/notifications/unregister", tokenHandler.Unregister)

	mux.HandleFunc("/ws", authHandler.RequireAdmin(wsHandler.Handle))

	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(shots.Dir()))))

	log.Info().Str("addr", cfg.ListenAddr).Msg("journal server listening")
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
