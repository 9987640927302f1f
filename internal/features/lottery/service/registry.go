package service

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	apperrors "colorado-lottery/internal/common/errors"
	"colorado-lottery/internal/common/logger"
	"colorado-lottery/internal/features/lottery/models"
	"colorado-lottery/internal/utils/random"
)

// Registry runs one lottery: registration, charging, drawing and announcing.
// It is not safe for concurrent use.
type Registry struct {
	rules  Rules
	picker Picker

	// Registered contestants are keyed by game name.
	registered      map[string][]*models.Contestant
	registeredOrder []string

	// Charged participant names are keyed by game identity.
	current      map[*models.Game][]string
	chargedOrder []*models.Game

	winners []models.Winner
}

// NewRegistry creates an empty registry. An empty home state or draw date and a
// negative minimum age fall back to DefaultRules; a minimum age of 0 admits
// everyone. A nil picker draws from crypto/rand.
func NewRegistry(rules Rules, picker Picker) *Registry {
	defaults := DefaultRules()
	if rules.HomeState == "" {
		rules.HomeState = defaults.HomeState
	}
	if rules.MinimumAge < 0 {
		rules.MinimumAge = defaults.MinimumAge
	}
	if rules.DrawDate == "" {
		rules.DrawDate = defaults.DrawDate
	}
	if picker == nil {
		picker = random.Picker{}
	}
	return &Registry{
		rules:      rules,
		picker:     picker,
		registered: make(map[string][]*models.Contestant),
		current:    make(map[*models.Game][]string),
		winners:    []models.Winner{},
	}
}

// Rules returns the rules the registry was created with.
func (r *Registry) Rules() Rules {
	return r.rules
}

// IsInterestedAndOfAge reports whether c is old enough and declared interest in g.
func (r *Registry) IsInterestedAndOfAge(c *models.Contestant, g *models.Game) bool {
	return c.Age() >= r.rules.MinimumAge && c.IsInterestedIn(g.Name())
}

// CanRegister is the registration gate. RegisterContestant does not call it.
func (r *Registry) CanRegister(c *models.Contestant, g *models.Game) bool {
	return r.IsInterestedAndOfAge(c, g) &&
		(c.IsResidentOf(r.rules.HomeState) || g.IsNationalDrawing())
}

// RegisterContestant appends c to the contestants registered for g's name.
func (r *Registry) RegisterContestant(c *models.Contestant, g *models.Game) {
	if _, ok := r.registered[g.Name()]; !ok {
		r.registeredOrder = append(r.registeredOrder, g.Name())
	}
	r.registered[g.Name()] = append(r.registered[g.Name()], c)

	logger.Debug().
		Str("contestant", c.FullName()).
		Str("game", g.Name()).
		Msg("Contestant registered")
}

// EligibleContestants returns the contestants registered for g who can afford
// its cost, in registration order.
func (r *Registry) EligibleContestants(g *models.Game) ([]*models.Contestant, error) {
	contestants := r.registered[g.Name()]
	if len(contestants) == 0 {
		logger.Warn().Str("game", g.Name()).Msg("Eligibility requested for unregistered game")
		return nil, apperrors.NewGameNotRegisteredError(g.Name(), ErrGameNotRegistered)
	}

	eligible := make([]*models.Contestant, 0, len(contestants))
	for _, c := range contestants {
		if c.SpendingMoney() >= g.Cost() {
			eligible = append(eligible, c)
		}
	}
	return eligible, nil
}

// ChargeContestants charges every eligible contestant the cost of g and records
// their names under g. Charging g again replaces the recorded names.
func (r *Registry) ChargeContestants(g *models.Game) ([]string, error) {
	eligible, err := r.EligibleContestants(g)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(eligible))
	for _, c := range eligible {
		balance := c.Charge(g.Cost())
		names = append(names, c.FullName())

		logger.Debug().
			Str("contestant", c.FullName()).
			Str("game", g.Name()).
			Int("cost", g.Cost()).
			Int("balance", balance).
			Msg("Contestant charged")
	}

	if _, ok := r.current[g]; !ok {
		r.chargedOrder = append(r.chargedOrder, g)
	}
	r.current[g] = names

	logger.Info().
		Str("game", g.Name()).
		Int("participants", len(names)).
		Msg("Contestants charged")

	return slices.Clone(names), nil
}

// DrawWinners picks one charged participant per charged game, in the order the
// games were first charged, and returns the draw date. Every call appends a
// new entry per game.
func (r *Registry) DrawWinners() (string, error) {
	for _, g := range r.chargedOrder {
		names := r.current[g]

		var name string
		if len(names) > 0 {
			idx, err := r.picker.Pick(len(names))
			if err != nil {
				return "", apperrors.Wrapf(err, apperrors.ErrCodeInternal, "draw failed for game: %s", g.Name())
			}
			name = names[idx]
		}

		winner := models.Winner{
			ID:         uuid.NewString(),
			GameName:   g.Name(),
			WinnerName: name,
			DrawDate:   r.rules.DrawDate,
		}
		r.winners = append(r.winners, winner)

		logger.Info().
			Str("winner_id", winner.ID).
			Str("game", winner.GameName).
			Str("winner", winner.WinnerName).
			Msg("Winner drawn")
	}

	return r.rules.DrawDate, nil
}

// AnnounceWinner formats the first winner drawn for gameName.
func (r *Registry) AnnounceWinner(gameName string) (string, error) {
	idx := slices.IndexFunc(r.winners, func(w models.Winner) bool {
		return w.GameName == gameName
	})
	if idx < 0 {
		logger.Warn().Str("game", gameName).Msg("Announcement requested for game without winner")
		return "", apperrors.NewWinnerNotFoundError(gameName, ErrWinnerNotFound)
	}

	winner := r.winners[idx]
	if !winner.HasWinner() {
		return "", apperrors.NewWinnerNotFoundError(gameName, ErrNoParticipants)
	}

	message := fmt.Sprintf(announcementFormat, winner.WinnerName, gameName, winner.DrawDate)
	logger.Info().Str("game", gameName).Msg(message)
	return message, nil
}

// RegisteredContestants returns a copy of the registrations keyed by game name.
func (r *Registry) RegisteredContestants() map[string][]*models.Contestant {
	out := make(map[string][]*models.Contestant, len(r.registered))
	for name, contestants := range r.registered {
		out[name] = slices.Clone(contestants)
	}
	return out
}

// RegisteredGames returns game names in the order of their first registration.
func (r *Registry) RegisteredGames() []string {
	return slices.Clone(r.registeredOrder)
}

// CurrentContestants returns a copy of the charged participant names keyed by game.
func (r *Registry) CurrentContestants() map[*models.Game][]string {
	out := maps.Clone(r.current)
	for g, names := range out {
		out[g] = slices.Clone(names)
	}
	return out
}

// ChargedGames returns games in the order they were first charged.
func (r *Registry) ChargedGames() []*models.Game {
	return slices.Clone(r.chargedOrder)
}

// Winners returns every drawn winner entry in draw order.
func (r *Registry) Winners() []models.Winner {
	return slices.Clone(r.winners)
}
