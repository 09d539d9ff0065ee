// Package mcp runs the WanderPlan MCP server: a tool surface over the
// itinerary store for MCP-capable hosts.
package mcp

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/wanderplan/wanderplan-go/client"
	"github.com/wanderplan/wanderplan-go/identity"
	"github.com/wanderplan/wanderplan-go/internal/config"
	"github.com/wanderplan/wanderplan-go/mcp/handlers"
	"github.com/wanderplan/wanderplan-go/store"
)

const (
	serverName    = "wanderplan-mcp-server"
	serverVersion = "0.1.0"

	httpAddr         = ":7545"
	shutdownTimeout  = 10 * time.Second
	httpReadTimeout  = 5 * time.Second
	httpIdleTimeout  = 120 * time.Second
	heartbeatPeriod  = 30 * time.Second
	streamEndpoint   = "/mcp"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// RunMCPServer starts the MCP server. Transport is stdio when launched by a
// host process, Streamable HTTP otherwise.
func RunMCPServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var userID string
	flag.StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, "Base URL of the itinerary service")
	flag.StringVar(&userID, "user-id", "", "Traveler identity (defaults to the locally stored one)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	flag.Parse()
	cfg.Init()

	ids := identity.NewFileProvider(cfg.UserIDFile)
	userID = ids.Resolve(userID)

	svc := client.New(cfg.ServiceURL)
	st := store.New(svc, userID)
	log.Info().Str("service_url", cfg.ServiceURL).Str("user_id", userID).Msg("Itinerary client created")

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewPlanHandler(st), "plan")
	registerHandler(s, handlers.NewTripsHandler(st), "trips")
	registerHandler(s, handlers.NewHealthHandler(svc), "health")

	if shouldUseStdio() {
		log.Info().Msg("Starting WanderPlan MCP server (stdio transport)")
		if err := server.ServeStdio(s); err != nil {
			log.Fatal().Err(err).Msg("Stdio server error")
		}
		return nil
	}

	log.Info().Str("addr", httpAddr).Msg("Starting WanderPlan MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath(streamEndpoint),
		server.WithHeartbeatInterval(heartbeatPeriod),
	)

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      streamSrv,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: 0, // no deadline, required for SSE streaming
		IdleTimeout:  httpIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("HTTP server error")
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines the transport based on environment.
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}
	// Use stdio if stdin is not a terminal (launched by another process).
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
