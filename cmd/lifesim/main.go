// Command lifesim runs life-course episodes under a baseline policy and
// records them to the episode database.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/lifesim/internal/api"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entity"
	"github.com/talgya/lifesim/internal/persistence"
	"github.com/talgya/lifesim/internal/policy"
	"github.com/talgya/lifesim/internal/sim"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	rt, err := config.LoadRuntime()
	if err != nil {
		slog.Error("bad environment configuration", "error", err)
		os.Exit(1)
	}

	var (
		seed       = flag.Int64("seed", 42, "base episode seed; episode i runs with seed+i")
		episodes   = flag.Int("episodes", 1, "number of episodes to run")
		days       = flag.Int("days", 0, "override episode length in days (0 = balance default)")
		policyName = flag.String("policy", "heuristic", "action policy: heuristic or random")
		balPath    = flag.String("balance", "", "path to a YAML balance override file")
		preset     = flag.String("preset", rt.Balance, "balance preset: default, gentle, or harsh")
		dbPath     = flag.String("db", rt.DBPath, "episode database path (empty = no persistence)")
		serve      = flag.Bool("serve", false, "serve the HTTP API while running")
		port       = flag.Int("port", rt.APIPort, "HTTP API port")
	)
	flag.Parse()

	bal, err := loadBalance(*preset, *balPath)
	if err != nil {
		slog.Error("bad balance configuration", "error", err)
		os.Exit(1)
	}
	if *days > 0 {
		bal.Episode.LengthDays = *days
	}

	var db *persistence.DB
	if *dbPath != "" {
		os.MkdirAll(filepath.Dir(*dbPath), 0755)
		db, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database opened", "path", *dbPath)
	}

	var server *api.Server
	if *serve {
		server = &api.Server{Port: *port, DB: db}
		server.Start()
		fmt.Printf("API: http://localhost:%d/api/v1/status\n", *port)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	pol, ok := policy.ByName(*policyName, *seed)
	if !ok {
		slog.Error("unknown policy", "policy", *policyName)
		os.Exit(1)
	}

	for ep := 0; ep < *episodes; ep++ {
		epSeed := *seed + int64(ep)
		env := sim.New(&bal, logger)
		obs := env.Reset(epSeed)

		total := 0.0
		interrupted := false

		for {
			select {
			case sig := <-stop:
				slog.Info("received signal, stopping", "signal", sig)
				interrupted = true
			default:
			}
			if interrupted {
				break
			}

			act := pol.Decide(obs)
			next, reward, done, _, err := env.Step(act)
			if err != nil {
				slog.Error("step failed", "error", err, "day", env.World().Day)
				break
			}
			obs = next
			total += reward

			if server != nil && (done || env.World().Day%30 == 0) {
				server.Publish(buildSnapshot(env, total))
			}
			if done {
				break
			}
		}

		printSummary(env, total)

		if db != nil && env.State() == sim.StateTerminated {
			id, err := db.SaveEpisode(env, total)
			if err != nil {
				slog.Error("episode save failed", "error", err)
			} else {
				slog.Info("episode recorded", "episode_id", id)
			}
		}

		if interrupted {
			break
		}
	}
}

func loadBalance(preset, path string) (config.Balance, error) {
	if path != "" {
		return config.Load(path)
	}
	switch preset {
	case "", "default":
		return config.Default(), nil
	case "gentle":
		return config.Gentle(), nil
	case "harsh":
		return config.Harsh(), nil
	default:
		return config.Balance{}, fmt.Errorf("unknown balance preset %q", preset)
	}
}

func buildSnapshot(env *sim.Env, total float64) *api.Snapshot {
	var npcs []api.NPCSummary
	for _, p := range env.NPCs() {
		npcs = append(npcs, api.NPCSummary{
			ID:          p.ID,
			Name:        p.Name,
			Personality: p.Personality.String(),
			AgeYears:    p.AgeYears(),
			Alive:       p.Alive,
			Employed:    p.Employed,
			Married:     p.Married(),
			Happiness:   p.Happiness,
			NetWorth:    p.NetWorth(),
		})
	}

	events := env.Events().All()
	if len(events) > 200 {
		events = events[len(events)-200:]
	}

	return &api.Snapshot{
		Seed:        env.Seed(),
		Day:         env.World().Day,
		Season:      entity.SeasonName(env.World().Season()),
		Done:        env.State() == sim.StateTerminated,
		TotalReward: total,
		Player:      *env.Player(),
		NPCs:        npcs,
		Events:      events,
	}
}

func printSummary(env *sim.Env, total float64) {
	p := env.Player()
	w := env.World()

	outcome := "survived"
	if !p.Alive {
		outcome = "died of " + p.CauseOfDeath
	}

	fmt.Printf("\nEpisode %d finished: %s at age %.1f after %s days.\n",
		env.Seed(), outcome, p.AgeYears(), humanize.Comma(int64(w.Day)))
	fmt.Printf("Net worth $%s, %d/%d goals, %d milestones, total reward %.1f.\n",
		humanize.Commaf(p.NetWorth()), len(p.GoalsDone),
		len(p.GoalsDone)+len(p.GoalsPending), p.Milestones, total)

	for _, ev := range env.Events().Milestones() {
		fmt.Printf("  day %5d  %s\n", ev.Day, ev.Description)
	}
}
