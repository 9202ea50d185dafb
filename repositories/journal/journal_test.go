package journal

import (
	"testing"
	"time"

	"x-mcp/models/constants"
	"x-mcp/models/entities"
	"x-mcp/utils/databases"

	"github.com/spf13/viper"
)

func newTestRepo(t *testing.T) *Impl {
	t.Helper()

	viper.Set(constants.SqliteURL, ":memory:")
	db := databases.New()
	if err := db.Run(); err != nil {
		t.Fatal(err)
	}
	if err := db.GetDB().AutoMigrate(&entities.Tweet{}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(db.Shutdown)

	return New(db)
}

func TestSaveAndCount(t *testing.T) {
	repo := newTestRepo(t)

	if count := repo.Count(); count != 0 {
		t.Fatalf("expected empty journal, got %d", count)
	}

	err := repo.Save(entities.Tweet{ID: "1", Text: "first", PostedAt: time.Now().UTC()})
	if err != nil {
		t.Fatal(err)
	}

	if count := repo.Count(); count != 1 {
		t.Errorf("expected 1 tweet, got %d", count)
	}
}

func TestSave_DuplicateID(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Save(entities.Tweet{ID: "1", Text: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(entities.Tweet{ID: "1", Text: "again"}); err == nil {
		t.Error("expected error on duplicate primary key, got nil")
	}
}

func TestMarkDeleted(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Save(entities.Tweet{ID: "1", Text: "doomed", PostedAt: time.Now().UTC()}); err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkDeleted("1"); err != nil {
		t.Fatal(err)
	}

	tweets, err := repo.ListRecent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(tweets) != 1 || !tweets[0].Deleted {
		t.Errorf("expected tweet marked deleted, got %+v", tweets)
	}
}

func TestListRecent_OrderAndLimit(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		err := repo.Save(entities.Tweet{
			ID:       id,
			Text:     id,
			PostedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	tweets, err := repo.ListRecent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(tweets))
	}
	if tweets[0].ID != "new" || tweets[1].ID != "mid" {
		t.Errorf("expected most recent first, got %s then %s", tweets[0].ID, tweets[1].ID)
	}
}

func TestListRecent_ReplyChainPreserved(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.Save(entities.Tweet{ID: "root", Text: "1/", PostedAt: base}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(entities.Tweet{ID: "child", Text: "2/", ReplyToID: "root", PostedAt: base.Add(time.Minute)}); err != nil {
		t.Fatal(err)
	}

	tweets, err := repo.ListRecent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(tweets))
	}
	if tweets[0].ID != "child" || tweets[0].ReplyToID != "root" {
		t.Errorf("expected reply target kept, got %+v", tweets[0])
	}
}
