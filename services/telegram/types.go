package telegram

import (
	"errors"

	"x-mcp/pkg/observer"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

var (
	ErrTokenIsMissing    = errors.New("telegram bot token is missing")
	ErrChatIDIsMissing   = errors.New("telegram chat id is missing")
	ErrBotNotInitialized = errors.New("telegram bot cannot be initialized")
)

type Service interface {
	observer.Observer
}

type Impl struct {
	bot    *gotgbot.Bot
	chatID int64
}
