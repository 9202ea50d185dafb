package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"x-mcp/models/entities"
	"x-mcp/pkg/observer"

	"github.com/mark3labs/mcp-go/mcp"
)

func callRequest(name string, arguments map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = arguments
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestPostTweet_HappyPath(t *testing.T) {
	fake := &fakeTwitter{out: "Tweet posted!\nID: 123"}
	service := New(fake, nil)

	result, err := service.postTweet(context.Background(), callRequest("x_post_tweet", map[string]any{"text": "hi"}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error result: %s", resultText(t, result))
	}
	if fake.lastText != "hi" {
		t.Errorf("expected text forwarded to service, got %q", fake.lastText)
	}
	if !strings.Contains(resultText(t, result), "ID: 123") {
		t.Errorf("unexpected result text: %s", resultText(t, result))
	}
}

func TestPostTweet_MissingArgument(t *testing.T) {
	service := New(&fakeTwitter{}, nil)

	result, err := service.postTweet(context.Background(), callRequest("x_post_tweet", map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Fatal("expected error result for missing text argument")
	}
}

func TestPostTweet_ServiceErrorBecomesToolError(t *testing.T) {
	fake := &fakeTwitter{err: errors.New("posting tweet: status 403: forbidden")}
	service := New(fake, nil)

	result, err := service.postTweet(context.Background(), callRequest("x_post_tweet", map[string]any{"text": "hi"}))
	if err != nil {
		t.Fatalf("service errors must not propagate as protocol errors, got: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(resultText(t, result), "403") {
		t.Errorf("expected upstream detail in tool error, got: %s", resultText(t, result))
	}
}

func TestPostThread_ForwardsInput(t *testing.T) {
	fake := &fakeTwitter{out: "Thread posted! (2 tweets)"}
	service := New(fake, nil)

	input := "a\n\n---\n\nb"
	result, err := service.postThread(context.Background(), callRequest("x_post_thread", map[string]any{"text": input}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}
	if fake.lastText != input {
		t.Errorf("expected raw thread input forwarded, got %q", fake.lastText)
	}
}

func TestGetTweet_ForwardsID(t *testing.T) {
	fake := &fakeTwitter{out: "Tweet ID: 99"}
	service := New(fake, nil)

	result, err := service.getTweet(context.Background(), callRequest("x_get_tweet", map[string]any{"tweet_id": "99"}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}
	if fake.lastTweetID != "99" {
		t.Errorf("expected tweet id forwarded, got %q", fake.lastTweetID)
	}
}

func TestDeleteTweet_ForwardsID(t *testing.T) {
	fake := &fakeTwitter{out: "Tweet 99 deleted successfully."}
	service := New(fake, nil)

	result, err := service.deleteTweet(context.Background(), callRequest("x_delete_tweet", map[string]any{"tweet_id": "99"}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}
	if fake.lastTweetID != "99" {
		t.Errorf("expected tweet id forwarded, got %q", fake.lastTweetID)
	}
}

func TestGetMe(t *testing.T) {
	fake := &fakeTwitter{out: "Authenticated as: @testuser"}
	service := New(fake, nil)

	result, err := service.getMe(context.Background(), callRequest("x_get_me", nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resultText(t, result), "@testuser") {
		t.Errorf("unexpected result: %s", resultText(t, result))
	}
}

func TestPostHistory(t *testing.T) {
	posted := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fakeJournal := &fakeJournal{tweets: []entities.Tweet{
		{ID: "2", Text: "newer", PostedAt: posted.Add(time.Hour), Deleted: true},
		{ID: "1", Text: "older", PostedAt: posted},
	}}
	service := New(&fakeTwitter{}, fakeJournal)

	result, err := service.postHistory(context.Background(), callRequest("x_post_history", map[string]any{"limit": 5}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}
	if fakeJournal.lastLimit != 5 {
		t.Errorf("expected limit forwarded, got %d", fakeJournal.lastLimit)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "2 (deleted)") {
		t.Errorf("expected deleted marker, got:\n%s", text)
	}
	if !strings.Contains(text, "older") {
		t.Errorf("expected tweet text, got:\n%s", text)
	}
}

func TestPostHistory_Empty(t *testing.T) {
	service := New(&fakeTwitter{}, &fakeJournal{})

	result, err := service.postHistory(context.Background(), callRequest("x_post_history", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := resultText(t, result); got != "No tweets posted yet." {
		t.Errorf("unexpected result: %s", got)
	}
}

// ===================== test support =====================

type fakeTwitter struct {
	out         string
	err         error
	lastText    string
	lastTweetID string
}

func (f *fakeTwitter) Register(observer.Observer) {}
func (f *fakeTwitter) Notify(observer.Event)      {}

func (f *fakeTwitter) GetMe() (string, error) {
	return f.out, f.err
}

func (f *fakeTwitter) PostTweet(text string) (string, error) {
	f.lastText = text
	return f.out, f.err
}

func (f *fakeTwitter) PostThread(text string) (string, error) {
	f.lastText = text
	return f.out, f.err
}

func (f *fakeTwitter) GetTweet(tweetID string) (string, error) {
	f.lastTweetID = tweetID
	return f.out, f.err
}

func (f *fakeTwitter) DeleteTweet(tweetID string) (string, error) {
	f.lastTweetID = tweetID
	return f.out, f.err
}

type fakeJournal struct {
	tweets    []entities.Tweet
	lastLimit int
}

func (f *fakeJournal) Save(entities.Tweet) error      { return nil }
func (f *fakeJournal) MarkDeleted(string) error       { return nil }
func (f *fakeJournal) Count() int64                   { return int64(len(f.tweets)) }
func (f *fakeJournal) ListRecent(limit int) ([]entities.Tweet, error) {
	f.lastLimit = limit
	if limit < len(f.tweets) {
		return f.tweets[:limit], nil
	}
	return f.tweets, nil
}
