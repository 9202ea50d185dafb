package constants

const (
	// Hard limit of the X API for a single tweet, counted in code points.
	MaxTweetLength = 280

	// Literal separator between the tweets of a thread input.
	ThreadSeparator = "\n\n---\n\n"

	// Field selectors sent on lookups.
	TweetFields = "public_metrics,created_at,author_id"
	UserFields  = "id,name,username,public_metrics"

	// Public URL of a posted tweet.
	TweetStatusURL = "https://twitter.com/i/status/%s"
)
