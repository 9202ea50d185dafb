package mcp

import (
	journalRepo "x-mcp/repositories/journal"
	"x-mcp/services/twitter"

	"github.com/mark3labs/mcp-go/server"
)

type Service interface {
	ListenAndServe() error
}

type Impl struct {
	server         *server.MCPServer
	twitterService twitter.Service
	journal        journalRepo.Repository
}
