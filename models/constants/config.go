package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	ExternalName = "x-mcp"
	Version      = "1.0.0"

	ConfigFileName = ".env"

	//nolint:gosec // False positive.
	// Consumer key of the X developer application.
	TwitterAPIKey = "TWITTER_API_KEY"

	//nolint:gosec // False positive.
	// Consumer secret of the X developer application.
	TwitterAPIKeySecret = "TWITTER_API_KEY_SECRET"

	//nolint:gosec // False positive.
	// Access token of the posting user.
	TwitterAccessToken = "TWITTER_ACCESS_TOKEN"

	//nolint:gosec // False positive.
	// Access token secret of the posting user.
	TwitterAccessTokenSecret = "TWITTER_ACCESS_TOKEN_SECRET"

	// Base URL of the X API v2; overridden in tests.
	TwitterBaseURL = "TWITTER_BASE_URL"

	// How long fetched tweets and user lookups stay cached. Duration type.
	TweetCache = "TWEET_CACHE"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// TELEGRAM BOT
	TelegramBotToken = "TELEGRAM_BOT_TOKEN"

	// Chat receiving post/delete notifications.
	TelegramChatID = "TELEGRAM_CHAT_ID"

	// Credentials intentionally default to empty strings: a missing value is
	// logged at startup, not fatal.
	defaultTwitterAPIKey            = ""
	defaultTwitterAPIKeySecret      = ""
	defaultTwitterAccessToken       = ""
	defaultTwitterAccessTokenSecret = ""
	defaultTwitterBaseURL           = "https://api.twitter.com/2"
	defaultTweetCache               = 5 * time.Minute
	defaultSqliteURL                = "x-mcp.db"
	defaultHealthCronTab            = "0 * * * *"
	defaultTelegramBotToken         = ""
	defaultTelegramChatID           = int64(0)
	defaultLogLevel                 = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		TwitterAPIKey:            defaultTwitterAPIKey,
		TwitterAPIKeySecret:      defaultTwitterAPIKeySecret,
		TwitterAccessToken:       defaultTwitterAccessToken,
		TwitterAccessTokenSecret: defaultTwitterAccessTokenSecret,
		TwitterBaseURL:           defaultTwitterBaseURL,
		TweetCache:               defaultTweetCache,
		SqliteURL:                defaultSqliteURL,
		LogLevel:                 defaultLogLevel.String(),
		HealthCronTab:            defaultHealthCronTab,
		TelegramBotToken:         defaultTelegramBotToken,
		TelegramChatID:           defaultTelegramChatID,
	}
}
