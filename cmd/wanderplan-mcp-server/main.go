package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/wanderplan/wanderplan-go/mcp"
)

func main() {
	if err := mcp.RunMCPServer(); err != nil {
		log.Error().Err(err).Msg("MCP server failed")
		os.Exit(1)
	}
}
