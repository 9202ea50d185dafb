package twitter

import (
	"net/http"

	"x-mcp/pkg/observer"
	journalRepo "x-mcp/repositories/journal"

	"github.com/patrickmn/go-cache"
)

type Service interface {
	observer.Notifier
	GetMe() (string, error)
	PostTweet(text string) (string, error)
	PostThread(text string) (string, error)
	GetTweet(tweetID string) (string, error)
	DeleteTweet(tweetID string) (string, error)
}

// Credentials is the OAuth1 single-user credential set, read once at startup
// and immutable afterwards.
type Credentials struct {
	APIKey            string
	APIKeySecret      string
	AccessToken       string
	AccessTokenSecret string
}

type Impl struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.Cache
	journal    journalRepo.Repository
	observers  []observer.Observer
}

// --- v2 create tweet ---

type tweetRequest struct {
	Text  string      `json:"text"`
	Reply *tweetReply `json:"reply,omitempty"`
}

type tweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type tweetCreateResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// --- v2 tweet lookup ---

type tweetLookupResponse struct {
	Data struct {
		ID            string        `json:"id"`
		Text          string        `json:"text"`
		AuthorID      string        `json:"author_id"`
		CreatedAt     string        `json:"created_at"`
		PublicMetrics *tweetMetrics `json:"public_metrics"`
	} `json:"data"`
}

type tweetMetrics struct {
	LikeCount       int `json:"like_count"`
	RetweetCount    int `json:"retweet_count"`
	ReplyCount      int `json:"reply_count"`
	ImpressionCount int `json:"impression_count"`
	QuoteCount      int `json:"quote_count"`
	BookmarkCount   int `json:"bookmark_count"`
}

// --- v2 user lookup ---

type userLookupResponse struct {
	Data struct {
		ID            string       `json:"id"`
		Name          string       `json:"name"`
		Username      string       `json:"username"`
		PublicMetrics *userMetrics `json:"public_metrics"`
	} `json:"data"`
}

// Pointers distinguish a missing count from zero; missing renders as N/A.
type userMetrics struct {
	FollowersCount *int `json:"followers_count"`
	FollowingCount *int `json:"following_count"`
	TweetCount     *int `json:"tweet_count"`
}
