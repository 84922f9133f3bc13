package main

import (
	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
	"resume-builder-backend/internal/shared/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		telemetry.Fatal("config error", map[string]any{"error": err.Error()})
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.Fatal("bootstrap error", map[string]any{"error": err.Error()})
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		telemetry.Fatal("server error", map[string]any{"error": err.Error()})
	}
}
