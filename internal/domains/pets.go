package domains

import (
	"github.com/talgya/lifesim/internal/entity"
)

var petKinds = []string{"dog", "cat", "bird", "fish"}

// Typical pet lifespans in days, by kind.
var petLifespan = map[string]int{
	"dog":  4400,
	"cat":  5500,
	"bird": 2900,
	"fish": 1100,
}

// updatePets handles adoption, companionship, upkeep, and pet mortality.
func updatePets(c *Context) []entity.Event {
	p := c.P
	var events []entity.Event

	for i := range p.Pets {
		pet := &p.Pets[i]
		if !pet.Alive {
			continue
		}
		pet.AgeDays++
		p.ApplyCash(-3) // Food and care

		// Mortality rises sharply past the typical lifespan.
		lifespan := petLifespan[pet.Kind]
		risk := 0.00005
		if pet.AgeDays > lifespan {
			risk += float64(pet.AgeDays-lifespan) * 0.00002
		}
		if c.RNG.Chance(risk) {
			pet.Alive = false
			p.Happiness -= 12
			p.MentalHealth -= 6
			events = append(events, c.event(entity.CatPet, "beloved "+pet.Kind+" passed away", -8))
		}
	}

	// Companionship steadies the owner.
	if n := p.AlivePets(); n > 0 {
		p.Happiness += 0.2 * float64(n)
		p.Stress -= 0.2
	}

	// Adoption: a hobbies/family day with spare money and room for one more.
	if (c.Act == entity.ActHobbies || c.Act == entity.ActFamily) &&
		!p.Incarcerated && p.AlivePets() < 3 && p.Money > 2000 && c.RNG.Chance(0.01) {
		kind := c.RNG.Pick(petKinds)
		p.Pets = append(p.Pets, entity.Pet{Kind: kind, Alive: true})
		p.ApplyCash(-c.RNG.Range(50, 400))
		p.Happiness += 10
		events = append(events, c.event(entity.CatPet, "adopted a "+kind, 5))
	}

	p.Clamp()
	return events
}
