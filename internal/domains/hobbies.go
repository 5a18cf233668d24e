package domains

import (
	"github.com/talgya/lifesim/internal/entity"
)

var hobbyCatalog = []string{
	"painting", "guitar", "cooking", "hiking",
	"chess", "gardening", "photography", "writing",
}

// updateHobbies handles picking up pastimes, practice, and skill decay.
func updateHobbies(c *Context) []entity.Event {
	p := c.P
	var events []entity.Event

	// Unpracticed skills rust slowly.
	for i := range p.Hobbies {
		p.Hobbies[i].Skill -= 0.02
	}

	if c.Act == entity.ActHobbies && !p.Incarcerated && p.Energy >= 15 {
		if len(p.Hobbies) == 0 || (len(p.Hobbies) < 6 && c.RNG.Chance(0.05)) {
			name := c.RNG.Pick(hobbyCatalog)
			if !p.HasHobby(name) {
				p.Hobbies = append(p.Hobbies, entity.Hobby{Name: name})
				events = append(events, c.event(entity.CatHobby, "took up "+name, 2))
			}
		}
		if len(p.Hobbies) > 0 {
			// Practice the strongest hobby.
			best := 0
			for i := range p.Hobbies {
				if p.Hobbies[i].Skill > p.Hobbies[best].Skill {
					best = i
				}
			}
			h := &p.Hobbies[best]
			before := h.Skill
			h.Skill += c.RNG.Range(0.5, 1.5)
			p.Happiness += c.RNG.Range(4, 10)
			p.Creativity += 0.2
			p.Stress -= 2
			p.Energy -= 15
			if h.Name == "cooking" {
				p.Cooking += 0.3
			}
			if before < 90 && h.Skill >= 90 {
				p.Milestones++
				events = append(events, c.event(entity.CatMilestone, "mastered "+h.Name, 8))
			}
		}
	}

	p.Clamp()
	return events
}
