// Package domains implements the per-day subsystem update pipeline: one
// transition function per life domain, applied in a fixed documented order
// over one shared mutable Person/World state.
//
// Each update reads the day's chosen action to decide whether its domain is
// emphasized, applies baseline drift regardless of action, draws stochastic
// sub-events from the shared random source, clamps every touched field, and
// returns structured event records for player-visible occurrences.
package domains

import (
	"github.com/talgya/lifesim/internal/chance"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/economy"
	"github.com/talgya/lifesim/internal/entity"
)

// Context carries the state one update operates on. The same pipeline runs
// for the player and, restricted to their own state, for each NPC.
type Context struct {
	P   *entity.Person
	W   *entity.World
	Act entity.Action
	RNG *chance.Source
	Bal *config.Balance
	Mkt *economy.Market
	NPC bool // Autonomous person: suppress player-only bookkeeping (goals, log verbosity)
}

func (c *Context) event(category, description string, magnitude float64) entity.Event {
	return entity.Event{
		Day:         c.W.Day,
		Category:    category,
		Description: description,
		Magnitude:   magnitude,
	}
}

// UpdateFunc is the uniform signature of a domain transition.
type UpdateFunc func(*Context) []entity.Event

// Stage is one named step of the pipeline.
type Stage struct {
	Name   string
	Update UpdateFunc
}

// Pipeline returns the ordered list of domain updates. The order is fixed
// and load-bearing: later domains read fields mutated by earlier ones within
// the same day (mental health reads the stress the career and finance
// updates accumulated; goals read everything). Simultaneous triggers resolve
// in this order, never re-shuffled per run.
func Pipeline() []Stage {
	return []Stage{
		{Name: "health", Update: updateHealth},
		{Name: "career", Update: updateCareer},
		{Name: "finance", Update: updateFinance},
		{Name: "education", Update: updateEducation},
		{Name: "social", Update: updateSocial},
		{Name: "substances", Update: updateSubstances},
		{Name: "legal", Update: updateLegal},
		{Name: "assets", Update: updateAssets},
		{Name: "hobbies", Update: updateHobbies},
		{Name: "pets", Update: updatePets},
		{Name: "business", Update: updateBusiness},
		{Name: "disasters", Update: updateDisasters},
		{Name: "lottery", Update: updateLottery},
		{Name: "fame", Update: updateFame},
		{Name: "civic", Update: updateCivic},
		{Name: "mental", Update: updateMental},
		{Name: "goals", Update: updateGoals},
	}
}

// Run applies the full pipeline for one day and collects events. Dead
// persons are left untouched.
func Run(ctx *Context) []entity.Event {
	if !ctx.P.Alive {
		return nil
	}
	var events []entity.Event
	for _, stage := range Pipeline() {
		events = append(events, stage.Update(ctx)...)
		if !ctx.P.Alive {
			break
		}
	}
	ctx.P.Clamp()
	return events
}
