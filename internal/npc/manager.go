package npc

import (
	"fmt"

	"github.com/talgya/lifesim/internal/chance"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/domains"
	"github.com/talgya/lifesim/internal/economy"
	"github.com/talgya/lifesim/internal/entity"
)

// Manager owns the NPC population for one episode. It advances every NPC
// once per day through the same domain pipeline the player uses, resolves
// interactions, and keeps the population within its configured bounds.
// Dead NPCs are retained for relationship history but never iterated again.
type Manager struct {
	bal *config.Balance
	rng *chance.Source
	mkt *economy.Market

	people []*entity.Person
	index  map[entity.PersonID]*entity.Person
	nextID entity.PersonID
}

// NewManager spawns the initial population. The seed offset keeps the NPC
// random stream independent of the player's event stream.
func NewManager(bal *config.Balance, seed int64, mkt *economy.Market) *Manager {
	m := &Manager{
		bal:    bal,
		rng:    chance.New(seed + 300),
		mkt:    mkt,
		index:  make(map[entity.PersonID]*entity.Person),
		nextID: entity.PlayerID + 1,
	}
	count := initialCount(m.rng, &bal.NPC)
	for i := 0; i < count; i++ {
		m.add(m.spawnOne())
	}
	return m
}

func (m *Manager) add(p *entity.Person) {
	m.people = append(m.people, p)
	m.index[p.ID] = p
}

// Lookup resolves a person reference. The player is not in the index.
func (m *Manager) Lookup(id entity.PersonID) (*entity.Person, bool) {
	p, ok := m.index[id]
	return p, ok
}

// All returns every NPC ever spawned this episode, dead included.
func (m *Manager) All() []*entity.Person {
	return m.people
}

// AliveCount returns the number of living NPCs.
func (m *Manager) AliveCount() int {
	n := 0
	for _, p := range m.people {
		if p.Alive {
			n++
		}
	}
	return n
}

// AdvanceDay runs one day for the whole population: autonomous decisions
// through the shared pipeline, mortality, interactions, marriage
// resolution, and replenishment. Returns player-visible events.
func (m *Manager) AdvanceDay(w *entity.World, player *entity.Person) []entity.Event {
	var events []entity.Event

	for _, p := range m.people {
		if !p.Alive {
			continue
		}
		act := chooseAction(p, m.rng)
		ctx := &domains.Context{
			P:   p,
			W:   w,
			Act: act,
			RNG: m.rng,
			Bal: m.bal,
			Mkt: m.mkt,
			NPC: true,
		}
		domains.Run(ctx)
		if !p.Alive {
			events = append(events, m.handleDeath(w, p, player)...)
		}
	}

	// At most one interaction per NPC per day.
	for _, p := range m.people {
		if !p.Alive {
			continue
		}
		if m.rng.Chance(m.bal.NPC.InteractionChance) {
			events = append(events, m.interact(w, p, player)...)
		}
	}

	events = append(events, m.resolveMarriages(w, player)...)
	events = append(events, m.replenish(w)...)
	return events
}

// handleDeath clears every reference to the deceased and applies grief to
// the player when they were connected. Both sides of a marriage are
// cleared in the same update.
func (m *Manager) handleDeath(w *entity.World, dead, player *entity.Person) []entity.Event {
	events := []entity.Event{{
		Day:         w.Day,
		Category:    entity.CatNPC,
		Description: fmt.Sprintf("%s died of %s at %.0f", dead.Name, dead.CauseOfDeath, dead.AgeYears()),
		Magnitude:   -5,
	}}

	// Widow the NPC spouse, if any.
	if dead.SpouseID != nil {
		if sp, ok := m.Lookup(*dead.SpouseID); ok {
			sp.SpouseID = nil
			sp.Happiness -= m.bal.NPC.GriefHappyHit
			sp.MentalHealth -= m.bal.NPC.GriefMentalHit
			sp.Clamp()
		}
	}

	grief := 0.0
	if player.SpouseID != nil && *player.SpouseID == dead.ID {
		player.SpouseID = nil
		player.RelationshipSat = 0
		dead.SpouseID = nil
		grief = m.bal.NPC.SpouseGriefMult
		events = append(events, entity.Event{
			Day:         w.Day,
			Category:    entity.CatFamily,
			Description: "widowed by the death of " + dead.Name,
			Magnitude:   -20,
		})
	}
	if removeID(&player.FriendIDs, dead.ID) {
		grief += 0.6
	}
	if removeID(&player.FamilyIDs, dead.ID) {
		grief += 1.0
	}
	if grief > 0 {
		player.MentalHealth -= m.bal.NPC.GriefMentalHit * grief
		player.Happiness -= m.bal.NPC.GriefHappyHit * grief
		player.Stress += 10 * grief
		player.Clamp()
	}
	return events
}

func removeID(ids *[]entity.PersonID, id entity.PersonID) bool {
	for i, v := range *ids {
		if v == id {
			*ids = append((*ids)[:i], (*ids)[i+1:]...)
			return true
		}
	}
	return false
}

// interactionKind enumerates the daily interaction draw.
var interactionKinds = []string{"chat", "help-request", "conflict", "business-deal", "romance-overture"}

// interact draws one interaction for an NPC: a target (player or another
// NPC) and a kind, resolved by a compatibility function of both parties.
func (m *Manager) interact(w *entity.World, actor, player *entity.Person) []entity.Event {
	// Target the player roughly a third of the time; otherwise a peer.
	var target *entity.Person
	if m.rng.Chance(0.35) {
		target = player
	} else {
		target = m.pickOther(actor)
	}
	if target == nil || !target.Alive {
		return nil
	}

	kind := interactionKinds[m.rng.WeightedIndex([]float64{5, 2, 2, 1, 1})]
	compat := compatibility(actor, target)

	switch kind {
	case "chat":
		return m.resolveChat(w, actor, target, player, compat)
	case "help-request":
		return m.resolveHelp(w, actor, target, player, compat)
	case "conflict":
		return m.resolveConflict(w, actor, target, player, compat)
	case "business-deal":
		return m.resolveDeal(w, actor, target, player, compat)
	default:
		return m.resolveRomance(w, actor, target, player, compat)
	}
}

func (m *Manager) pickOther(actor *entity.Person) *entity.Person {
	var candidates []*entity.Person
	for _, p := range m.people {
		if p.Alive && p.ID != actor.ID {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[m.rng.Intn(len(candidates))]
}

// compatibility scores a pairing in [0, 1] from sociability and empathy.
// The player has no trait scores; social support stands in.
func compatibility(a, b *entity.Person) float64 {
	return (socialScore(a) + socialScore(b)) / 200
}

func socialScore(p *entity.Person) float64 {
	if p.ID == entity.PlayerID {
		return p.SocialSupport*0.7 + 20
	}
	return p.Sociability*0.6 + p.Empathy*0.4
}

func (m *Manager) resolveChat(w *entity.World, actor, target, player *entity.Person, compat float64) []entity.Event {
	if !m.rng.Chance(compat) {
		return nil
	}
	actor.Happiness += 2
	target.Happiness += 2
	actor.SocialSupport += 1
	target.SocialSupport += 1
	actor.Clamp()
	target.Clamp()
	if target.ID != entity.PlayerID {
		return nil
	}
	// Repeated good company turns into friendship.
	if !containsID(player.FriendIDs, actor.ID) && m.rng.Chance(compat*0.5) {
		player.FriendIDs = append(player.FriendIDs, actor.ID)
		return []entity.Event{{
			Day: w.Day, Category: entity.CatSocial,
			Description: "became friends with " + actor.Name, Magnitude: 4,
		}}
	}
	return nil
}

func (m *Manager) resolveHelp(w *entity.World, actor, target, player *entity.Person, compat float64) []entity.Event {
	if !m.rng.Chance(compat * 0.8) {
		actor.Happiness -= 2
		actor.Clamp()
		return nil
	}
	cost := m.rng.Range(20, 150)
	if target.Money < cost {
		return nil
	}
	target.ApplyCash(-cost)
	actor.ApplyCash(cost)
	actor.Happiness += 5
	target.Empathy += 0.3
	actor.Clamp()
	target.Clamp()
	if target.ID == entity.PlayerID {
		player.SocialSupport += 3
		player.Clamp()
		return []entity.Event{{
			Day: w.Day, Category: entity.CatSocial,
			Description: fmt.Sprintf("helped %s out with $%.0f", actor.Name, cost), Magnitude: 2,
		}}
	}
	return nil
}

func (m *Manager) resolveConflict(w *entity.World, actor, target, player *entity.Person, compat float64) []entity.Event {
	// High compatibility defuses most conflicts.
	if m.rng.Chance(compat) {
		return nil
	}
	actor.Happiness -= 4
	actor.Stress += 5
	target.Happiness -= 4
	target.Stress += 5
	actor.Clamp()
	target.Clamp()
	if target.ID == entity.PlayerID {
		player.SocialSupport -= 3
		removeID(&player.FriendIDs, actor.ID)
		player.Clamp()
		return []entity.Event{{
			Day: w.Day, Category: entity.CatSocial,
			Description: "had a falling out with " + actor.Name, Magnitude: -4,
		}}
	}
	return nil
}

func (m *Manager) resolveDeal(w *entity.World, actor, target, player *entity.Person, compat float64) []entity.Event {
	if !m.rng.Chance(compat * 0.6) {
		return nil
	}
	stake := m.rng.Range(100, 1500)
	if target.Money < stake || actor.Money < stake {
		return nil
	}
	// Both sides win or both lose; trust was the gamble.
	if m.rng.Chance(0.5 + actor.SkillLevel/40) {
		gain := stake * m.rng.Range(0.2, 0.8)
		actor.ApplyCash(gain)
		target.ApplyCash(gain)
		actor.Clamp()
		target.Clamp()
		if target.ID == entity.PlayerID {
			return []entity.Event{{
				Day: w.Day, Category: entity.CatFinance,
				Description: fmt.Sprintf("a deal with %s paid $%.0f", actor.Name, gain), Magnitude: 3,
			}}
		}
		return nil
	}
	actor.ApplyCash(-stake)
	target.ApplyCash(-stake)
	actor.Clamp()
	target.Clamp()
	if target.ID == entity.PlayerID {
		return []entity.Event{{
			Day: w.Day, Category: entity.CatFinance,
			Description: fmt.Sprintf("a deal with %s fell through, -$%.0f", actor.Name, stake), Magnitude: -3,
		}}
	}
	return nil
}

func (m *Manager) resolveRomance(w *entity.World, actor, target, player *entity.Person, compat float64) []entity.Event {
	if actor.Married() || target.Married() {
		return nil
	}
	if !m.rng.Chance(compat * 0.3) {
		actor.Happiness -= 3
		actor.Clamp()
		return nil
	}
	aID, tID := actor.ID, target.ID
	actor.SpouseID = &tID
	target.SpouseID = &aID
	actor.Happiness += 20
	target.Happiness += 20
	actor.RelationshipSat = 75
	target.RelationshipSat = 75
	actor.Clamp()
	target.Clamp()
	if target.ID == entity.PlayerID {
		return []entity.Event{{
			Day: w.Day, Category: entity.CatFamily,
			Description: "married " + actor.Name, Magnitude: 20,
		}}
	}
	return []entity.Event{{
		Day: w.Day, Category: entity.CatNPC,
		Description: actor.Name + " and " + target.Name + " got married", Magnitude: 2,
	}}
}

func containsID(ids []entity.PersonID, id entity.PersonID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// resolveMarriages applies daily divorce draws where satisfaction has
// collapsed, clearing both spousal references in the same update.
func (m *Manager) resolveMarriages(w *entity.World, player *entity.Person) []entity.Event {
	var events []entity.Event

	if player.SpouseID != nil && player.RelationshipSat < m.bal.Social.DivorceThreshold &&
		m.rng.Chance(m.bal.Social.DivorceChance) {
		if sp, ok := m.Lookup(*player.SpouseID); ok {
			sp.SpouseID = nil
			sp.Happiness -= 15
			sp.Clamp()
		}
		name := "spouse"
		if sp, ok := m.Lookup(*player.SpouseID); ok {
			name = sp.Name
		}
		player.SpouseID = nil
		player.RelationshipSat = 0
		player.Happiness -= 20
		player.Stress += 15
		// Divorce divides the estate.
		split := player.Money * 0.3
		player.ApplyCash(-split)
		player.Clamp()
		events = append(events, entity.Event{
			Day: w.Day, Category: entity.CatFamily,
			Description: "divorced " + name, Magnitude: -15,
		})
	}

	for _, p := range m.people {
		if !p.Alive || p.SpouseID == nil || *p.SpouseID == entity.PlayerID {
			continue
		}
		if p.RelationshipSat < m.bal.Social.DivorceThreshold && m.rng.Chance(m.bal.Social.DivorceChance) {
			if sp, ok := m.Lookup(*p.SpouseID); ok {
				sp.SpouseID = nil
				sp.Happiness -= 15
				sp.Clamp()
			}
			p.SpouseID = nil
			p.Happiness -= 15
			p.Clamp()
		}
	}
	return events
}

// replenish tops the population back up to the floor after deaths. The
// population never exceeds the configured ceiling because replenishment is
// the only source of new NPCs.
func (m *Manager) replenish(w *entity.World) []entity.Event {
	var events []entity.Event
	for m.AliveCount() < m.bal.NPC.MinPopulation {
		p := m.spawnOne()
		m.add(p)
		events = append(events, entity.Event{
			Day: w.Day, Category: entity.CatNPC,
			Description: p.Name + " moved into the neighborhood", Magnitude: 1,
		})
	}
	return events
}
