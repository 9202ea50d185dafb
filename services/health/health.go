package health

import (
	"x-mcp/models/constants"
	journalRepo "x-mcp/repositories/journal"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler, journal journalRepo.Repository) (*Impl, error) {
	service := Impl{journal: journal}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.HealthCronTab), true),
		gocron.NewTask(func() { service.echo() }),
		gocron.WithName("Check app running"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return &service, nil
}

func (service *Impl) echo() {
	log.Info().Int64("postedTweets", service.journal.Count()).Msgf("Application is running")
}
