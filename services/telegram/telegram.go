package telegram

import (
	"fmt"

	"x-mcp/models/constants"
	"x-mcp/pkg/observer"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/rs/zerolog/log"
)

func New(token string, chatID int64) (*Impl, error) {
	if token == "" {
		return nil, ErrTokenIsMissing
	}
	if chatID == 0 {
		return nil, ErrChatIDIsMissing
	}

	bot, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return nil, ErrBotNotInitialized
	}

	return &Impl{bot: bot, chatID: chatID}, nil
}

func (service *Impl) OnNotify(event observer.Event) {
	var msg string

	switch event.E {
	case observer.TweetPostedEvent:
		msg = fmt.Sprintf("🐦 Tweet posted: %s", fmt.Sprintf(constants.TweetStatusURL, event.TweetID))
	case observer.ThreadPostedEvent:
		if len(event.TweetIDs) == 0 {
			return
		}
		msg = fmt.Sprintf("🧵 Thread posted (%d tweets), first: %s",
			len(event.TweetIDs), fmt.Sprintf(constants.TweetStatusURL, event.TweetIDs[0]))
	case observer.TweetDeletedEvent:
		msg = fmt.Sprintf("🗑 Tweet %s deleted", event.TweetID)
	default:
		return
	}

	if _, err := service.bot.SendMessage(service.chatID, msg, nil); err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, service.chatID).Msg("Cannot send telegram notification")
	}
}
