package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/api"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/config"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/logging"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/metrics"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/service"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/sites"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	registry := sites.Default()
	svc := service.New(registry, metrics.New(reg), cfg.Scorer(), cfg.DefaultLanguage)
	handler := api.NewRouter(svc, api.Options{
		Gatherer:     reg,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("ingredient groups service listening",
		"addr", addr, "scorer", cfg.MatchScorer, "sites", len(registry.Sites()))
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
