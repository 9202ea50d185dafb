package application

import (
	"errors"

	"x-mcp/models/constants"
	"x-mcp/models/entities"
	journalRepo "x-mcp/repositories/journal"
	"x-mcp/services/health"
	mcpService "x-mcp/services/mcp"
	"x-mcp/services/telegram"
	"x-mcp/services/twitter"
	databases "x-mcp/utils/databases"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() (*Impl, error) {
	db := databases.New()
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.Tweet{})
	if errMigration != nil {
		return nil, errMigration
	}

	scheduler, errScheduler := gocron.NewScheduler()
	if errScheduler != nil {
		return nil, errScheduler
	}

	// Repositories
	journal := journalRepo.New(db)

	twitterService, errTwitter := twitter.New(twitter.ReadCredentials(), journal)
	if errTwitter != nil {
		return nil, errTwitter
	}

	healthService, errHealth := health.New(scheduler, journal)
	if errHealth != nil {
		return nil, errHealth
	}

	app := &Impl{
		scheduler:      scheduler,
		twitterService: twitterService,
		healthService:  healthService,
		mcpService:     mcpService.New(twitterService, journal),
		db:             db,
	}

	telegramService, errTg := telegram.New(
		viper.GetString(constants.TelegramBotToken),
		viper.GetInt64(constants.TelegramChatID))
	switch {
	case errTg == nil:
		twitterService.Register(telegramService)
		app.telegramService = telegramService
	case errors.Is(errTg, telegram.ErrTokenIsMissing), errors.Is(errTg, telegram.ErrChatIDIsMissing):
		log.Info().Msg("Telegram notifications disabled, bot token or chat id not configured")
	default:
		return nil, errTg
	}

	return app, nil
}

func (app *Impl) Run() error {
	app.scheduler.Start()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}

	return app.mcpService.ListenAndServe()
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
