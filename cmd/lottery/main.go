package main

import (
	"log"
	"os"

	"colorado-lottery/internal/common/config"
	apperrors "colorado-lottery/internal/common/errors"
	"colorado-lottery/internal/common/logger"
	"colorado-lottery/internal/features/lottery/models"
	"colorado-lottery/internal/features/lottery/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	logger.Init(cfg.ServiceName, cfg.Debug)

	registry := service.NewRegistry(rulesFromConfig(cfg), nil)

	if err := run(registry); err != nil {
		reportRunError(err)
		os.Exit(1)
	}
}

// rulesFromConfig maps the lottery settings onto registry rules.
func rulesFromConfig(cfg *config.Config) service.Rules {
	return service.Rules{
		HomeState:  cfg.Lottery.HomeState,
		MinimumAge: cfg.Lottery.MinimumAge,
		DrawDate:   cfg.Lottery.DrawDate,
	}
}

func reportRunError(err error) {
	event := logger.Error().Err(err)
	if appErr, ok := apperrors.AsAppError(err); ok {
		event = event.
			Str("code", string(appErr.Code)).
			Bool("lookup_failure", appErr.IsNotFound())
	}
	event.Msg("Lottery run failed")
}

func run(registry *service.Registry) error {
	games := []*models.Game{
		models.NewGame("Pick 4", 2),
		models.NewGame("Mega Millions", 5, true),
		models.NewGame("Cash 5", 1),
	}

	roster := []struct {
		info      models.ContestantInfo
		interests []string
	}{
		{models.ContestantInfo{FirstName: "Alexander", LastName: "Aigades", Age: 28, StateOfResidence: "CO", SpendingMoney: 10}, []string{"Pick 4", "Mega Millions"}},
		{models.ContestantInfo{FirstName: "Benjamin", LastName: "Franklin", Age: 17, StateOfResidence: "PA", SpendingMoney: 100}, []string{"Mega Millions"}},
		{models.ContestantInfo{FirstName: "Frederick", LastName: "Douglas", Age: 55, StateOfResidence: "NY", SpendingMoney: 20}, []string{"Mega Millions"}},
		{models.ContestantInfo{FirstName: "Winston", LastName: "Churchill", Age: 18, StateOfResidence: "CO", SpendingMoney: 5}, []string{"Cash 5", "Mega Millions"}},
		{models.ContestantInfo{FirstName: "Grace", LastName: "Hopper", Age: 20, StateOfResidence: "CO", SpendingMoney: 20}, []string{"Mega Millions", "Cash 5", "Pick 4"}},
	}

	for _, entry := range roster {
		contestant := models.NewContestant(entry.info)
		for _, interest := range entry.interests {
			contestant.AddGameInterest(interest)
		}
		for _, game := range games {
			if registry.CanRegister(contestant, game) {
				registry.RegisterContestant(contestant, game)
			} else {
				logger.Debug().
					Str("contestant", contestant.FullName()).
					Str("game", game.Name()).
					Msg("Contestant cannot register")
			}
		}
	}

	for _, game := range games {
		if _, err := registry.ChargeContestants(game); err != nil {
			return err
		}
	}

	date, err := registry.DrawWinners()
	if err != nil {
		return err
	}
	logger.Info().Str("date", date).Int("winners", len(registry.Winners())).Msg("Winners drawn")

	for _, game := range games {
		message, err := registry.AnnounceWinner(game.Name())
		if err != nil {
			return err
		}
		logger.Info().Msg(message)
	}
	return nil
}
