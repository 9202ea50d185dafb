package observer

type EventType int

const (
	TweetPostedEvent  EventType = 1
	ThreadPostedEvent EventType = 2
	TweetDeletedEvent EventType = 3
)

type Event struct {
	E        EventType
	TweetID  string
	TweetIDs []string
}

func NewTweetPostedEvent(tweetID string) Event {
	return Event{E: TweetPostedEvent, TweetID: tweetID}
}

func NewThreadPostedEvent(tweetIDs []string) Event {
	return Event{E: ThreadPostedEvent, TweetIDs: tweetIDs}
}

func NewTweetDeletedEvent(tweetID string) Event {
	return Event{E: TweetDeletedEvent, TweetID: tweetID}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	Register(Observer)
	Notify(Event)
}
