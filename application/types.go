package application

import (
	"x-mcp/services/health"
	mcpService "x-mcp/services/mcp"
	"x-mcp/services/telegram"
	"x-mcp/services/twitter"
	databases "x-mcp/utils/databases"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run() error
	Shutdown()
}

type Impl struct {
	scheduler       gocron.Scheduler
	healthService   health.Service
	telegramService telegram.Service
	twitterService  twitter.Service
	mcpService      mcpService.Service
	db              databases.SqlConnection
}
