package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"x-mcp/models/constants"
	"x-mcp/models/entities"
	journalRepo "x-mcp/repositories/journal"
	"x-mcp/services/twitter"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

const defaultHistoryLimit = 20

func New(twitterService twitter.Service, journal journalRepo.Repository) *Impl {
	service := &Impl{twitterService: twitterService, journal: journal}

	srv := server.NewMCPServer(constants.ExternalName, constants.Version,
		server.WithToolCapabilities(false))

	srv.AddTool(mcp.NewTool("x_get_me",
		mcp.WithDescription("Get authenticated user info to verify connection"),
	), service.getMe)

	srv.AddTool(mcp.NewTool("x_post_tweet",
		mcp.WithDescription("Post a single tweet"),
		mcp.WithString("text", mcp.Required(),
			mcp.Description("Tweet content (max 280 characters)")),
	), service.postTweet)

	srv.AddTool(mcp.NewTool("x_post_thread",
		mcp.WithDescription("Post a thread. Tweets are separated by '\\n\\n---\\n\\n'"),
		mcp.WithString("text", mcp.Required(),
			mcp.Description("Thread content with tweets separated by \\n\\n---\\n\\n")),
	), service.postThread)

	srv.AddTool(mcp.NewTool("x_get_tweet",
		mcp.WithDescription("Get tweet details and metrics"),
		mcp.WithString("tweet_id", mcp.Required(),
			mcp.Description("The tweet ID to fetch")),
	), service.getTweet)

	srv.AddTool(mcp.NewTool("x_delete_tweet",
		mcp.WithDescription("Delete a tweet"),
		mcp.WithString("tweet_id", mcp.Required(),
			mcp.Description("The tweet ID to delete")),
	), service.deleteTweet)

	srv.AddTool(mcp.NewTool("x_post_history",
		mcp.WithDescription("List tweets posted by this server, most recent first"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return")),
	), service.postHistory)

	service.server = srv
	return service
}

func (service *Impl) ListenAndServe() error {
	log.Info().Msgf("%s v%s serving tools over stdio", constants.ExternalName, constants.Version)
	return server.ServeStdio(service.server)
}

func (service *Impl) getMe(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := service.twitterService.GetMe()
	if err != nil {
		return logAndFail("x_get_me", err), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (service *Impl) postTweet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return logAndFail("x_post_tweet", err), nil
	}

	out, errPost := service.twitterService.PostTweet(text)
	if errPost != nil {
		return logAndFail("x_post_tweet", errPost), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (service *Impl) postThread(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return logAndFail("x_post_thread", err), nil
	}

	out, errPost := service.twitterService.PostThread(text)
	if errPost != nil {
		return logAndFail("x_post_thread", errPost), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (service *Impl) getTweet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tweetID, err := request.RequireString("tweet_id")
	if err != nil {
		return logAndFail("x_get_tweet", err), nil
	}

	out, errGet := service.twitterService.GetTweet(tweetID)
	if errGet != nil {
		return logAndFail("x_get_tweet", errGet), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (service *Impl) deleteTweet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tweetID, err := request.RequireString("tweet_id")
	if err != nil {
		return logAndFail("x_delete_tweet", err), nil
	}

	out, errDelete := service.twitterService.DeleteTweet(tweetID)
	if errDelete != nil {
		return logAndFail("x_delete_tweet", errDelete), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (service *Impl) postHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", defaultHistoryLimit)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	tweets, err := service.journal.ListRecent(limit)
	if err != nil {
		return logAndFail("x_post_history", err), nil
	}
	return mcp.NewToolResultText(formatHistory(tweets)), nil
}

func formatHistory(tweets []entities.Tweet) string {
	if len(tweets) == 0 {
		return "No tweets posted yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Posted tweets (%d, most recent first):\n", len(tweets))
	for _, tweet := range tweets {
		state := ""
		if tweet.Deleted {
			state = " (deleted)"
		}
		fmt.Fprintf(&b, "- %s%s [%s] %s\n", tweet.ID, state, tweet.PostedAt.Format(time.RFC3339), tweet.Text)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Failures surface as tool error text, never as protocol errors.
func logAndFail(toolName string, err error) *mcp.CallToolResult {
	log.Warn().Err(err).Str(constants.LogToolName, toolName).Msg("Tool call failed")
	return mcp.NewToolResultError(err.Error())
}
