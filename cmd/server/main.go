package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/dkeye/Intercom/internal/adapters/http"
	sig "github.com/dkeye/Intercom/internal/adapters/signal"
	"github.com/dkeye/Intercom/internal/app"
	"github.com/dkeye/Intercom/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, keeping info")
	}

	policy, err := app.ParsePolicy(cfg.SlowConsumer)
	if err != nil {
		log.Fatal().Err(err).Msg("bad slow_consumer policy")
	}

	hub := sig.NewHub(policy)
	coord := app.NewCoordinator(app.NewRegistry(), hub)
	ctrl := sig.NewSignalWSController(coord, hub, sig.NewEventRateLimiter(cfg.InviteLimit, cfg.InviteInterval), sig.Options{
		ReadLimit:  cfg.ReadLimit,
		WriteWait:  cfg.WriteWait,
		PingPeriod: cfg.PingPeriod,
		PongWait:   cfg.PongWait,
		SendBuffer: cfg.SendBuffer,
	})

	r, err := router.SetupRouter(ctx, cfg, ctrl)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup")
	}
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Intercom server started")
		logLANAddrs(cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

// logLANAddrs prints where other devices on the network can reach us.
func logLANAddrs(port int) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Warn().Err(err).Msg("list interface addrs")
		return
	}
	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() || ipNet.IP.To4() == nil {
			continue
		}
		log.Info().Str("url", fmt.Sprintf("http://%s:%d", ipNet.IP, port)).Msg("reachable on LAN")
	}
}
