package domains

import (
	"github.com/talgya/lifesim/internal/entity"
)

// goalChecks is the fixed life-goal catalog with completion predicates.
var goalChecks = []struct {
	Name string
	Done func(p *entity.Person) bool
}{
	{"own a home", func(p *entity.Person) bool { return p.OwnsHome }},
	{"get married", func(p *entity.Person) bool { return p.Married() }},
	{"have a child", func(p *entity.Person) bool { return p.Children > 0 }},
	{"earn a bachelor's degree", func(p *entity.Person) bool { return p.Education >= entity.EduBachelor }},
	{"reach $100k net worth", func(p *entity.Person) bool { return p.NetWorth() >= 100000 }},
	{"become a millionaire", func(p *entity.Person) bool { return p.NetWorth() >= 1000000 }},
	{"master a hobby", func(p *entity.Person) bool {
		for _, h := range p.Hobbies {
			if h.Skill >= 90 {
				return true
			}
		}
		return false
	}},
	{"run a business", func(p *entity.Person) bool { return p.Business != nil }},
	{"read 50 books", func(p *entity.Person) bool { return p.BooksRead >= 50 }},
	{"visit 10 countries", func(p *entity.Person) bool { return p.CountriesVisited >= 10 }},
	{"give 500 volunteer hours", func(p *entity.Person) bool { return p.VolunteerHours >= 500 }},
	{"become famous", func(p *entity.Person) bool { return p.Fame >= 75 }},
}

// InitGoals fills a fresh person's pending goal list from the catalog.
func InitGoals(p *entity.Person) {
	p.GoalsPending = p.GoalsPending[:0]
	for _, g := range goalChecks {
		p.GoalsPending = append(p.GoalsPending, g.Name)
	}
}

// updateGoals runs last: small enrichment draws (reading, travel,
// languages), then milestone checks against everything the earlier domains
// changed today. Goal bookkeeping is player-only.
func updateGoals(c *Context) []entity.Event {
	if c.NPC {
		return nil
	}
	p := c.P
	var events []entity.Event

	// Enrichment: quiet accumulation over a lifetime.
	if c.RNG.Chance(0.01 + 0.005*float64(p.Education)) {
		p.BooksRead++
	}
	if p.Enrolled && c.RNG.Chance(0.001) {
		p.LanguagesKnown++
		events = append(events, c.event(entity.CatEducation, "picked up a new language", 3))
	}
	if (c.Act == entity.ActHobbies || c.Act == entity.ActSocialize) &&
		!p.Incarcerated && p.Money > 5000 && c.RNG.Chance(0.008) {
		p.CountriesVisited++
		p.ApplyCash(-c.RNG.Range(1000, 3000))
		p.Happiness += 15
		events = append(events, c.event(entity.CatSocial, "traveled abroad", 5))
	}

	// Milestone checks: move newly satisfied goals to the done set.
	remaining := p.GoalsPending[:0]
	for _, name := range p.GoalsPending {
		done := false
		for _, g := range goalChecks {
			if g.Name == name && g.Done(p) {
				done = true
				break
			}
		}
		if done {
			p.GoalsDone = append(p.GoalsDone, name)
			p.Milestones++
			p.Happiness += 10
			events = append(events, c.event(entity.CatMilestone, "life goal achieved: "+name, 10))
		} else {
			remaining = append(remaining, name)
		}
	}
	p.GoalsPending = remaining

	p.Clamp()
	return events
}
