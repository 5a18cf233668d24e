// Package sim contains the episode controller: the reset/step state
// machine, the observation encoder, the reward function, and the episode
// event log. It is the only package that drives the domain pipeline.
package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/talgya/lifesim/internal/chance"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/domains"
	"github.com/talgya/lifesim/internal/economy"
	"github.com/talgya/lifesim/internal/entity"
	"github.com/talgya/lifesim/internal/npc"
)

// State is the lifecycle phase of an environment.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidAction is returned by Step for an out-of-range action.
	ErrInvalidAction = errors.New("sim: invalid action")
	// ErrInvalidState is returned by Step before Reset or after termination.
	ErrInvalidState = errors.New("sim: environment not running")
	// ErrInvariant is returned when a post-step consistency check fails.
	// The environment terminates and must be Reset.
	ErrInvariant = errors.New("sim: invariant violation")
)

// Env is one reinforcement-learning environment instance. It is not safe
// for concurrent use; run one Env per goroutine.
type Env struct {
	bal *config.Balance
	log *slog.Logger

	state  State
	seed   int64
	rng    *chance.Source
	mkt    *economy.Market
	world  *entity.World
	player *entity.Person
	npcs   *npc.Manager
	events *EventLog

	startAgeDays int
}

// New creates an environment. Reset must be called before Step.
func New(bal *config.Balance, logger *slog.Logger) *Env {
	if logger == nil {
		logger = slog.Default()
	}
	return &Env{bal: bal, log: logger, state: StateUninitialized}
}

// Reset starts a fresh episode from the seed and returns the initial
// observation. The same seed and action sequence always reproduces the
// same episode. Reset may be called at any time, including mid-episode.
func (e *Env) Reset(seed int64) []float64 {
	e.seed = seed
	e.rng = chance.New(seed)
	e.mkt = economy.NewMarket(seed)
	e.world = &entity.World{
		Day:           0,
		EpisodeLength: e.bal.Episode.LengthDays,
	}
	e.player = e.newPlayer()
	e.startAgeDays = e.player.AgeDays
	e.npcs = npc.NewManager(e.bal, seed, e.mkt)
	e.events = &EventLog{}
	e.state = StateRunning

	e.log.Info("episode reset",
		"seed", seed,
		"episode_days", e.world.EpisodeLength,
		"npcs", e.npcs.AliveCount(),
	)
	return Encode(e.player, e.world)
}

func (e *Env) newPlayer() *entity.Person {
	cfg := &e.bal.Episode
	p := &entity.Person{
		ID:              entity.PlayerID,
		Name:            "Alex",
		AgeDays:         int(cfg.StartAgeYears * entity.DaysPerYear),
		Alive:           true,
		Health:          85,
		MentalHealth:    75,
		Happiness:       65,
		Energy:          80,
		Stress:          30,
		WeightKg:        cfg.StartWeightKg,
		HeightM:         cfg.HeightM,
		Money:           cfg.StartMoney,
		CreditScore:     680,
		JobSatisfaction: 60,
		SkillLevel:      1,
		Reputation:      50,
		Education:       entity.EduHighSchool,
		SocialSupport:   60,
		RelationshipSat: 0,
		CarWorking:      true,
	}
	if e.rng.Chance(cfg.StartEmployedChance) {
		p.Employed = true
		p.JobField = entity.JobField(e.rng.Intn(entity.NumJobFields))
		p.MonthlyIncome = cfg.StartMonthlyIncome
	}
	domains.InitGoals(p)
	return p
}

// Step advances the world one day under the given action and returns the
// next observation, the day's reward, the terminal flag, and the day's
// events. After done is true (or any error), further Steps fail until
// Reset.
func (e *Env) Step(action entity.Action) ([]float64, float64, bool, []entity.Event, error) {
	if e.state != StateRunning {
		return nil, 0, false, nil, fmt.Errorf("%w: state %s", ErrInvalidState, e.state)
	}
	if !action.Valid() {
		return nil, 0, false, nil, fmt.Errorf("%w: %d", ErrInvalidAction, action)
	}

	e.world.Day++
	if e.bal.Episode.PoliticalCycleDays > 0 {
		e.world.PoliticalCycle = e.world.Day % e.bal.Episode.PoliticalCycleDays
	}

	prev := takeSnapshot(e.player)

	ctx := &domains.Context{
		P:   e.player,
		W:   e.world,
		Act: action,
		RNG: e.rng,
		Bal: e.bal,
		Mkt: e.mkt,
	}
	events := domains.Run(ctx)

	// Health depletion is checked once after the full pipeline so a bad
	// day's combined damage is what kills, not a single stage's.
	if e.player.Alive && e.player.Health <= 0 {
		e.player.Die("health depletion")
		events = append(events, entity.Event{
			Day: e.world.Day, Category: entity.CatDeath,
			Description: "died of failing health", Magnitude: -50,
		})
	}

	events = append(events, e.npcs.AdvanceDay(e.world, e.player)...)
	e.player.Clamp()

	if err := e.checkInvariants(); err != nil {
		e.state = StateTerminated
		e.log.Error("episode aborted", "day", e.world.Day, "err", err)
		return nil, 0, true, events, err
	}

	done := !e.player.Alive || e.world.Day >= e.world.EpisodeLength
	reward := computeReward(prev, e.player, e.world, &e.bal.Reward, done)
	e.events.Append(events...)

	if done {
		e.state = StateTerminated
		e.log.Info("episode finished",
			"day", e.world.Day,
			"alive", e.player.Alive,
			"cause", e.player.CauseOfDeath,
			"age_years", fmt.Sprintf("%.1f", e.player.AgeYears()),
			"net_worth", fmt.Sprintf("%.0f", e.player.NetWorth()),
			"goals_done", len(e.player.GoalsDone),
		)
	}
	return Encode(e.player, e.world), reward, done, events, nil
}

// checkInvariants verifies the consistency guarantees after every step.
// A failure here is a simulation bug, not an agent mistake.
func (e *Env) checkInvariants() error {
	p := e.player
	if p.Money < 0 {
		return fmt.Errorf("%w: negative money %.2f", ErrInvariant, p.Money)
	}
	for _, b := range []struct {
		name string
		v    float64
	}{
		{"health", p.Health}, {"mental_health", p.MentalHealth},
		{"happiness", p.Happiness}, {"energy", p.Energy}, {"stress", p.Stress},
	} {
		if b.v < 0 || b.v > 100 {
			return fmt.Errorf("%w: %s out of range: %.2f", ErrInvariant, b.name, b.v)
		}
	}
	if p.CreditScore < 300 || p.CreditScore > 850 {
		return fmt.Errorf("%w: credit score out of range: %.2f", ErrInvariant, p.CreditScore)
	}
	if want := e.startAgeDays + e.world.Day; p.AgeDays != want {
		return fmt.Errorf("%w: age %d days, want %d", ErrInvariant, p.AgeDays, want)
	}
	if n := e.npcs.AliveCount(); n < e.bal.NPC.MinPopulation || n > e.bal.NPC.MaxPopulation {
		return fmt.Errorf("%w: npc population %d outside [%d, %d]",
			ErrInvariant, n, e.bal.NPC.MinPopulation, e.bal.NPC.MaxPopulation)
	}
	if p.SpouseID != nil {
		sp, ok := e.npcs.Lookup(*p.SpouseID)
		if !ok {
			return fmt.Errorf("%w: spouse %d not found", ErrInvariant, *p.SpouseID)
		}
		if sp.SpouseID == nil || *sp.SpouseID != entity.PlayerID {
			return fmt.Errorf("%w: spouse reference not mutual", ErrInvariant)
		}
	}
	return nil
}

// State returns the environment lifecycle phase.
func (e *Env) State() State { return e.state }

// Seed returns the seed of the current episode.
func (e *Env) Seed() int64 { return e.seed }

// Player returns the player record for inspection. Callers must treat it
// as read-only.
func (e *Env) Player() *entity.Person { return e.player }

// World returns the world record for inspection.
func (e *Env) World() *entity.World { return e.world }

// NPCs returns every NPC spawned this episode, dead included.
func (e *Env) NPCs() []*entity.Person {
	if e.npcs == nil {
		return nil
	}
	return e.npcs.All()
}

// Events returns the episode event log.
func (e *Env) Events() *EventLog { return e.events }
