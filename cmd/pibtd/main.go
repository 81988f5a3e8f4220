// Command pibtd runs a gridpibt planning engine as an HTTP/WebSocket
// daemon over a single map, per spec.md §6's out-of-scope "host driver
// / entry point" and the CLI/packaging concerns §1 excludes from the
// core. Grounded on upside-down-research-agentic/cmd/main.go's
// kong-based CLI struct.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridpibt/config"
	"github.com/katalvlaran/gridpibt/maploader"
	"github.com/katalvlaran/gridpibt/metrics"
	"github.com/katalvlaran/gridpibt/pibt"
	"github.com/katalvlaran/gridpibt/server"

	"github.com/prometheus/client_golang/prometheus"
)

var CLI struct {
	Config     string `name:"config" help:"Path to a YAML config file." type:"path"`
	Map        string `name:"map" help:"Path to the ASCII map file (overrides config map_path)." type:"path"`
	Seed       int64  `name:"seed" help:"Planner RNG seed (overrides config seed)."`
	ListenAddr string `name:"listen" help:"HTTP/WS listen address (overrides config listen_addr)."`
}

func main() {
	_ = kong.Parse(&CLI)

	cfg, err := resolveConfig()
	if err != nil {
		log.Fatal("config", "err", err)
	}

	g, err := maploader.LoadFile(cfg.MapPath, maploader.WithFreeToken(cfg.FreeToken))
	if err != nil {
		log.Fatal("map load failed", "path", cfg.MapPath, "err", err)
	}

	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer, cfg.MapPath)
	if err != nil {
		log.Fatal("metrics setup failed", "err", err)
	}

	engine := pibt.NewEngine(g, cfg.Seed, pibt.WithMetrics(collector))
	srv := server.NewServer(cfg.ListenAddr, engine)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("pibtd starting", "map", cfg.MapPath, "seed", cfg.Seed, "listen", cfg.ListenAddr)
	if err := srv.Serve(ctx); err != nil {
		log.Fatal("server exited", "err", err)
	}
}

// resolveConfig layers CLI flags over config.Load's file/env/defaults
// result, since a flag the user actually typed should win over
// anything else.
func resolveConfig() (*config.Config, error) {
	if CLI.Map != "" {
		// Hand --map to Load through its environment layer so the map
		// path check passes and the file/env/defaults still apply.
		if err := os.Setenv("GRIDPIBT_MAP_PATH", CLI.Map); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	if CLI.Map != "" {
		cfg.MapPath = CLI.Map
	}
	if CLI.Seed != 0 {
		cfg.Seed = CLI.Seed
	}
	if CLI.ListenAddr != "" {
		cfg.ListenAddr = CLI.ListenAddr
	}
	return cfg, nil
}
