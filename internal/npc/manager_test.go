package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/economy"
	"github.com/talgya/lifesim/internal/entity"
)

func testWorld(bal *config.Balance) (*entity.World, *entity.Person) {
	w := &entity.World{Day: 0, EpisodeLength: bal.Episode.LengthDays}
	player := &entity.Person{
		ID:            entity.PlayerID,
		Name:          "Player",
		AgeDays:       int(30 * entity.DaysPerYear),
		Alive:         true,
		Health:        85,
		MentalHealth:  75,
		Happiness:     65,
		Energy:        80,
		WeightKg:      75,
		HeightM:       1.75,
		Money:         15000,
		CreditScore:   680,
		SocialSupport: 60,
	}
	return w, player
}

func TestInitialPopulationWithinBounds(t *testing.T) {
	bal := config.Default()
	for seed := int64(0); seed < 20; seed++ {
		m := NewManager(&bal, seed, economy.NewMarket(seed))
		n := m.AliveCount()
		require.GreaterOrEqual(t, n, bal.NPC.InitialMin, "seed %d", seed)
		require.LessOrEqual(t, n, bal.NPC.InitialMax, "seed %d", seed)
	}
}

func TestPopulationStaysWithinBounds(t *testing.T) {
	bal := config.Default()
	m := NewManager(&bal, 11, economy.NewMarket(11))
	w, player := testWorld(&bal)

	for day := 1; day <= 1500; day++ {
		w.Day = day
		m.AdvanceDay(w, player)
		n := m.AliveCount()
		require.GreaterOrEqual(t, n, bal.NPC.MinPopulation, "day %d", day)
		require.LessOrEqual(t, n, bal.NPC.MaxPopulation, "day %d", day)
	}
}

func TestSpouseReferencesStayMutual(t *testing.T) {
	bal := config.Default()
	m := NewManager(&bal, 17, economy.NewMarket(17))
	w, player := testWorld(&bal)

	for day := 1; day <= 1000; day++ {
		w.Day = day
		m.AdvanceDay(w, player)

		for _, p := range m.All() {
			if !p.Alive || p.SpouseID == nil {
				continue
			}
			if *p.SpouseID == entity.PlayerID {
				require.NotNil(t, player.SpouseID, "day %d: %s married to player, player unaware", day, p.Name)
				require.Equal(t, p.ID, *player.SpouseID)
				continue
			}
			sp, ok := m.Lookup(*p.SpouseID)
			require.True(t, ok, "day %d: dangling spouse id", day)
			require.NotNil(t, sp.SpouseID, "day %d: %s not married back", day, sp.Name)
			require.Equal(t, p.ID, *sp.SpouseID)
		}
		if player.SpouseID != nil {
			sp, ok := m.Lookup(*player.SpouseID)
			require.True(t, ok)
			require.NotNil(t, sp.SpouseID)
			require.Equal(t, entity.PlayerID, *sp.SpouseID)
		}
	}
}

func TestSameSeedSamePopulationHistory(t *testing.T) {
	bal := config.Default()
	a := NewManager(&bal, 23, economy.NewMarket(23))
	b := NewManager(&bal, 23, economy.NewMarket(23))
	wa, pa := testWorld(&bal)
	wb, pb := testWorld(&bal)

	for day := 1; day <= 365; day++ {
		wa.Day, wb.Day = day, day
		ea := a.AdvanceDay(wa, pa)
		eb := b.AdvanceDay(wb, pb)
		require.Equal(t, ea, eb, "event streams diverged on day %d", day)
		require.Equal(t, a.AliveCount(), b.AliveCount(), "day %d", day)
	}

	as, bs := a.All(), b.All()
	require.Len(t, bs, len(as))
	for i := range as {
		assert.Equal(t, as[i].Name, bs[i].Name)
		assert.Equal(t, as[i].Personality, bs[i].Personality)
	}
}

func TestDeadNPCLeavesNoDanglingPlayerReferences(t *testing.T) {
	bal := config.Default()
	m := NewManager(&bal, 31, economy.NewMarket(31))
	w, player := testWorld(&bal)

	for day := 1; day <= 2000; day++ {
		w.Day = day
		m.AdvanceDay(w, player)

		for _, id := range player.FriendIDs {
			p, ok := m.Lookup(id)
			require.True(t, ok)
			require.True(t, p.Alive, "day %d: dead friend %s still referenced", day, p.Name)
		}
		if player.SpouseID != nil {
			sp, _ := m.Lookup(*player.SpouseID)
			require.True(t, sp.Alive, "day %d: widowhood must clear the reference", day)
		}
	}
}
