package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SkillMax00/SkillMax/internal/config"
	"github.com/SkillMax00/SkillMax/internal/genai"
	"github.com/SkillMax00/SkillMax/internal/server"
	"github.com/SkillMax00/SkillMax/internal/storage"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("SkillMax coach backend starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Optional generation audit log
	var db *storage.DB
	if cfg.Database.Enabled() {
		dsn := cfg.Database.DSN()
		if err := storage.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")

		if *migrateOnly {
			log.Info("migrate-only: exiting")
			return
		}

		db, err = storage.New(context.Background(), dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		log.Info("database connected")
	} else {
		log.Info("no database configured, generation audit log disabled")
		if *migrateOnly {
			log.Error("migrate-only requires a database")
			os.Exit(1)
		}
	}

	// Gemini client
	genOpts := []genai.Option{genai.WithLogger(log)}
	if cfg.Gemini.BaseURL != "" {
		genOpts = append(genOpts, genai.WithBaseURL(cfg.Gemini.BaseURL))
	}
	if len(cfg.Gemini.Models) > 0 {
		genOpts = append(genOpts, genai.WithModels(cfg.Gemini.Models))
	}
	gen := genai.NewClient(cfg.Gemini.APIKey, genOpts...)

	// Create server
	srv := server.New(gen, db, server.StaticTokens(cfg.Auth.Tokens), log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr)
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
