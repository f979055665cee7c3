// skillmax-mcp exposes plan generation and coach chat as MCP tools over
// stdio, calling a running SkillMax server's REST API.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/SkillMax00/SkillMax/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server-url", "http://localhost:8080", "base URL of the SkillMax server")
	token := flag.String("token", os.Getenv("SKILLMAX_TOKEN"), "bearer token (defaults to SKILLMAX_TOKEN)")
	flag.Parse()

	// Stdout carries the MCP transport; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *token == "" {
		log.Error("bearer token required (set -token or SKILLMAX_TOKEN)")
		os.Exit(1)
	}

	client := mcp.NewHTTPClient(*serverURL, *token)
	s := mcp.New(client, Version, log)

	log.Info("skillmax-mcp starting", "server_url", *serverURL)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
