package entities

import "time"

// Tweet is a journal row for a tweet this process posted. Fetched tweets are
// never persisted.
type Tweet struct {
	ID        string `gorm:"primaryKey"`
	Text      string
	ReplyToID string
	PostedAt  time.Time
	Deleted   bool
}
