package journal

import (
	"fmt"

	"x-mcp/models/entities"
	"x-mcp/utils/databases"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) Save(tweet entities.Tweet) error {
	if err := repo.db.GetDB().Create(&tweet).Error; err != nil {
		return fmt.Errorf("failed to save tweet %s: %w", tweet.ID, err)
	}

	return nil
}

func (repo *Impl) MarkDeleted(tweetID string) error {
	result := repo.db.GetDB().Model(&entities.Tweet{}).
		Where("id = ?", tweetID).
		Update("deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark tweet %s deleted: %w", tweetID, result.Error)
	}

	return nil
}

func (repo *Impl) ListRecent(limit int) ([]entities.Tweet, error) {
	var tweets []entities.Tweet

	res := repo.db.GetDB().
		Order("posted_at desc").
		Limit(limit).
		Find(&tweets)

	return tweets, res.Error
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.Tweet{}).Count(count)

	return *count
}
