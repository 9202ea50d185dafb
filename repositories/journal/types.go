package journal

import (
	"x-mcp/models/entities"
	"x-mcp/utils/databases"
)

type Repository interface {
	Save(tweet entities.Tweet) error
	MarkDeleted(tweetID string) error
	ListRecent(limit int) ([]entities.Tweet, error)
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
