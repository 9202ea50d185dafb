package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogTweetID       = "tweetID"
	LogTweetNumber   = "tweetNumber"
	LogThreadSize    = "threadSize"
	LogStatusCode    = "statusCode"
	LogChatID        = "chatID"
	LogToolName      = "toolName"
	LogLevelFallback = zerolog.InfoLevel
)
