package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-turnos/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-turnos/internal/db"
	"github.com/BruksfildServices01/barber-turnos/internal/logging"
	"github.com/BruksfildServices01/barber-turnos/internal/routes"
)

func main() {

	cfg := config.Load()
	logging.Setup(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var infra routes.Infra

	if cfg.StoreDriver == config.StorePostgres {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		infra.DB = db
	} else {
		log.Warn().Msg("using in-memory store, data is lost on restart")
	}

	if cfg.RedisURL != "" {
		rdb, err := dbpkg.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		infra.Redis = rdb
	}

	r := gin.New()

	dispatcher, err := routes.RegisterRoutes(r, cfg, infra)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire routes")
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("audit queue not drained")
	}

	log.Info().Msg("server exited")
}
