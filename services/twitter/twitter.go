package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"x-mcp/models/constants"
	"x-mcp/models/entities"
	"x-mcp/pkg/observer"
	journalRepo "x-mcp/repositories/journal"

	"github.com/dghubble/oauth1"
	"github.com/dustin/go-humanize"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	tweetCachePrefix = "tweet/"
	meCacheKey       = "users/me"
)

// ReadCredentials builds the credential set from the configuration. Empty
// values are tolerated so the server can start and report upstream 401s
// instead of refusing to boot.
func ReadCredentials() *Credentials {
	return &Credentials{
		APIKey:            viper.GetString(constants.TwitterAPIKey),
		APIKeySecret:      viper.GetString(constants.TwitterAPIKeySecret),
		AccessToken:       viper.GetString(constants.TwitterAccessToken),
		AccessTokenSecret: viper.GetString(constants.TwitterAccessTokenSecret),
	}
}

func New(credentials *Credentials, journal journalRepo.Repository) (*Impl, error) {
	if credentials.APIKey == "" || credentials.APIKeySecret == "" ||
		credentials.AccessToken == "" || credentials.AccessTokenSecret == "" {
		log.Warn().Msg("Incomplete X credentials, API calls will be rejected upstream")
	}

	config := oauth1.NewConfig(credentials.APIKey, credentials.APIKeySecret)
	token := oauth1.NewToken(credentials.AccessToken, credentials.AccessTokenSecret)
	cacheTTL := viper.GetDuration(constants.TweetCache)

	return &Impl{
		httpClient: config.Client(context.Background(), token),
		baseURL:    viper.GetString(constants.TwitterBaseURL),
		cache:      cache.New(cacheTTL, 2*cacheTTL),
		journal:    journal,
	}, nil
}

func (service *Impl) Register(obs observer.Observer) {
	service.observers = append(service.observers, obs)
}

func (service *Impl) Notify(event observer.Event) {
	for _, obs := range service.observers {
		obs.OnNotify(event)
	}
}

func (service *Impl) GetMe() (string, error) {
	if cached, found := service.cache.Get(meCacheKey); found {
		return cached.(string), nil
	}

	raw, err := service.get("/users/me", "user.fields", constants.UserFields)
	if err != nil {
		return "", err
	}

	var parsed userLookupResponse
	if errDecode := json.Unmarshal(raw, &parsed); errDecode != nil {
		return "", fmt.Errorf("decoding user response: %w", errDecode)
	}

	formatted := formatUser(&parsed)
	service.cache.SetDefault(meCacheKey, formatted)
	return formatted, nil
}

func (service *Impl) PostTweet(text string) (string, error) {
	if length := utf8.RuneCountInString(text); length > constants.MaxTweetLength {
		return "", fmt.Errorf("tweet too long (%d chars), max %d", length, constants.MaxTweetLength)
	}

	tweetID, err := service.createTweet(text, "")
	if err != nil {
		return "", err
	}

	service.recordPosted(tweetID, text, "")
	service.Notify(observer.NewTweetPostedEvent(tweetID))
	log.Info().Str(constants.LogTweetID, tweetID).Msg("Tweet posted")

	return fmt.Sprintf("Tweet posted!\nID: %s\nURL: %s", tweetID, statusURL(tweetID)), nil
}

func (service *Impl) PostThread(text string) (string, error) {
	segments := splitThread(text)
	if len(segments) < 2 {
		return "", fmt.Errorf("thread needs at least 2 tweets separated by %q", constants.ThreadSeparator)
	}

	// Every segment is validated before the first request goes out: a thread
	// that cannot complete should not start.
	for i, segment := range segments {
		if length := utf8.RuneCountInString(segment); length > constants.MaxTweetLength {
			return "", fmt.Errorf("tweet %d too long (%d chars), max %d", i+1, length, constants.MaxTweetLength)
		}
	}

	postedIDs := make([]string, 0, len(segments))
	replyTo := ""

	for i, segment := range segments {
		tweetID, err := service.createTweet(segment, replyTo)
		if err != nil {
			// No rollback: tweets already posted stay live.
			if len(postedIDs) == 0 {
				return "", fmt.Errorf("posting tweet %d of %d: %w", i+1, len(segments), err)
			}
			return "", fmt.Errorf("posting tweet %d of %d: %w (already posted: %s)",
				i+1, len(segments), err, strings.Join(postedIDs, ", "))
		}

		service.recordPosted(tweetID, segment, replyTo)
		postedIDs = append(postedIDs, tweetID)
		replyTo = tweetID
	}

	service.Notify(observer.NewThreadPostedEvent(postedIDs))
	log.Info().Int(constants.LogThreadSize, len(postedIDs)).Msg("Thread posted")

	return fmt.Sprintf("Thread posted! (%d tweets)\nIDs: %s\nFirst tweet: %s",
		len(postedIDs), strings.Join(postedIDs, ", "), statusURL(postedIDs[0])), nil
}

func (service *Impl) GetTweet(tweetID string) (string, error) {
	cacheKey := tweetCachePrefix + tweetID
	if cached, found := service.cache.Get(cacheKey); found {
		return cached.(string), nil
	}

	raw, err := service.get("/tweets/"+tweetID, "tweet.fields", constants.TweetFields)
	if err != nil {
		return "", err
	}

	var parsed tweetLookupResponse
	if errDecode := json.Unmarshal(raw, &parsed); errDecode != nil {
		return "", fmt.Errorf("decoding tweet response: %w", errDecode)
	}

	formatted := formatTweet(&parsed)
	service.cache.SetDefault(cacheKey, formatted)
	return formatted, nil
}

func (service *Impl) DeleteTweet(tweetID string) (string, error) {
	req, err := http.NewRequest(http.MethodDelete, service.baseURL+"/tweets/"+tweetID, nil)
	if err != nil {
		return "", err
	}

	raw, status, errDo := service.do(req)
	if errDo != nil {
		return "", errDo
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("deleting tweet %s: status %d: %s", tweetID, status, raw)
	}

	service.cache.Delete(tweetCachePrefix + tweetID)
	service.markDeleted(tweetID)
	service.Notify(observer.NewTweetDeletedEvent(tweetID))
	log.Info().Str(constants.LogTweetID, tweetID).Msg("Tweet deleted")

	return fmt.Sprintf("Tweet %s deleted successfully.", tweetID), nil
}

func (service *Impl) createTweet(text string, replyToID string) (string, error) {
	payload := tweetRequest{Text: text}
	if replyToID != "" {
		payload.Reply = &tweetReply{InReplyToTweetID: replyToID}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, service.baseURL+"/tweets", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	raw, status, errDo := service.do(req)
	if errDo != nil {
		return "", errDo
	}
	if status != http.StatusCreated {
		return "", fmt.Errorf("posting tweet: status %d: %s", status, raw)
	}

	var parsed tweetCreateResponse
	if errDecode := json.Unmarshal(raw, &parsed); errDecode != nil {
		return "", fmt.Errorf("decoding create response: %w", errDecode)
	}
	if parsed.Data.ID == "" {
		return "", fmt.Errorf("create response missing tweet id: %s", raw)
	}

	return parsed.Data.ID, nil
}

func (service *Impl) get(path string, fieldsKey string, fieldsValue string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, service.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	query.Set(fieldsKey, fieldsValue)
	req.URL.RawQuery = query.Encode()

	raw, status, errDo := service.do(req)
	if errDo != nil {
		return nil, errDo
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d: %s", path, status, raw)
	}

	return raw, nil
}

func (service *Impl) do(req *http.Request) ([]byte, int, error) {
	resp, err := service.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return nil, resp.StatusCode, errRead
	}

	log.Debug().
		Int(constants.LogStatusCode, resp.StatusCode).
		Msgf("%s %s", req.Method, req.URL.Path)

	return raw, resp.StatusCode, nil
}

// recordPosted is best effort: a journal failure never fails the post, the
// tweet is already live.
func (service *Impl) recordPosted(tweetID string, text string, replyToID string) {
	if service.journal == nil {
		return
	}

	err := service.journal.Save(entities.Tweet{
		ID:        tweetID,
		Text:      text,
		ReplyToID: replyToID,
		PostedAt:  time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Str(constants.LogTweetID, tweetID).Msg("Cannot journal posted tweet")
	}
}

func (service *Impl) markDeleted(tweetID string) {
	if service.journal == nil {
		return
	}

	if err := service.journal.MarkDeleted(tweetID); err != nil {
		log.Error().Err(err).Str(constants.LogTweetID, tweetID).Msg("Cannot journal deleted tweet")
	}
}

func splitThread(text string) []string {
	parts := strings.Split(text, constants.ThreadSeparator)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}

	return segments
}

func formatTweet(resp *tweetLookupResponse) string {
	metrics := resp.Data.PublicMetrics
	if metrics == nil {
		metrics = &tweetMetrics{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tweet ID: %s\n", resp.Data.ID)
	fmt.Fprintf(&b, "Text: %s\n", orNA(resp.Data.Text))
	fmt.Fprintf(&b, "Created: %s\n", orNA(resp.Data.CreatedAt))
	b.WriteString("\nMetrics:\n")
	fmt.Fprintf(&b, "- Likes: %s\n", humanize.Comma(int64(metrics.LikeCount)))
	fmt.Fprintf(&b, "- Retweets: %s\n", humanize.Comma(int64(metrics.RetweetCount)))
	fmt.Fprintf(&b, "- Replies: %s\n", humanize.Comma(int64(metrics.ReplyCount)))
	fmt.Fprintf(&b, "- Impressions: %s\n", humanize.Comma(int64(metrics.ImpressionCount)))
	fmt.Fprintf(&b, "- Quotes: %s\n", humanize.Comma(int64(metrics.QuoteCount)))
	fmt.Fprintf(&b, "- Bookmarks: %s", humanize.Comma(int64(metrics.BookmarkCount)))

	return b.String()
}

func formatUser(resp *userLookupResponse) string {
	metrics := resp.Data.PublicMetrics
	if metrics == nil {
		metrics = &userMetrics{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Authenticated as: @%s\n", resp.Data.Username)
	fmt.Fprintf(&b, "Name: %s\n", resp.Data.Name)
	fmt.Fprintf(&b, "ID: %s\n", resp.Data.ID)
	fmt.Fprintf(&b, "Followers: %s\n", countOrNA(metrics.FollowersCount))
	fmt.Fprintf(&b, "Following: %s\n", countOrNA(metrics.FollowingCount))
	fmt.Fprintf(&b, "Tweets: %s", countOrNA(metrics.TweetCount))

	return b.String()
}

func statusURL(tweetID string) string {
	return fmt.Sprintf(constants.TweetStatusURL, tweetID)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func countOrNA(count *int) string {
	if count == nil {
		return "N/A"
	}
	return humanize.Comma(int64(*count))
}
