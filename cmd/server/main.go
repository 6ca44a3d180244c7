package main

import (
	"log/slog"
	"net/http"
	"os"

	bootstrap "github.com/bearisterai/bearister-api/api/bootstrap"
	config "github.com/bearisterai/bearister-api/api/config"
	router "github.com/bearisterai/bearister-api/api/router"
)

func main() {
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("failed to initialize application", "err", err)
		os.Exit(1)
	}

	h := router.NewRouter()
	addr := ":" + config.AppConfig.HTTPPort
	slog.Info("starting HTTP server", "addr", addr)
	if err := http.ListenAndServe(addr, h); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
