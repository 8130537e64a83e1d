package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"nounquest/internal/chain"
	"nounquest/internal/clock"
	"nounquest/internal/config"
	"nounquest/internal/eventbus"
	"nounquest/internal/hud"
	"nounquest/internal/logger"
	"nounquest/internal/prover"
	"nounquest/internal/scene"
	"nounquest/internal/submit"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	scripts, err := scene.LoadScripts(cfg.ScriptsPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	if cfg.Metrics.Addr != "" {
		srv := metricsServer(cfg.Metrics.Addr, reg)
		go func() {
			log.Info("Metrics listening", zap.String("addr", cfg.Metrics.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	var p submit.Prover = prover.NewHTTPClient(cfg.Prover.URL, cfg.Prover.Timeout, log)
	if cfg.Prover.Dev {
		log.Warn("Using the in-process dev prover, proofs will not verify against a real circuit")
		p = prover.Dev{}
	}

	wallet := chain.NewRPCWallet(cfg.Chain.RPCURL, cfg.Chain.Timeout, log)
	defer wallet.Close()

	verifier, err := chain.NewVerifier(cfg.VerifierAddress(), log)
	if err != nil {
		return err
	}

	clk := clock.System{}
	bus := eventbus.New()
	toasts := hud.NewToasts(clk, 4*time.Second, 5)
	wf := submit.NewWorkflow(wallet, p, verifier, toasts, submit.NewMetrics(reg), log)
	scenes := scene.NewMachine(scripts, bus, clk, scene.Options{
		MaxWidth:  cfg.Dialogue.MaxWidth,
		CharDelay: cfg.Dialogue.CharDelay,
	}, log)

	g := NewGame(cfg.Window.Width, cfg.Window.Height, log, clk, bus, scenes, wf, toasts)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	log.Info("Game started",
		zap.String("verifier", cfg.VerifierAddress().Hex()),
		zap.Bool("dev_prover", cfg.Prover.Dev),
	)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func metricsServer(addr string, reg *prometheus.Registry) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
}
