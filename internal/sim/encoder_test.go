package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifesim/internal/entity"
)

func TestEncodeLength(t *testing.T) {
	p := &entity.Person{Alive: true, HeightM: 1.75, WeightKg: 75, CreditScore: 680}
	w := &entity.World{Day: 100, EpisodeLength: 3650}
	assert.Len(t, Encode(p, w), ObsSize)
}

func TestEncodeExtremeStateStaysNormalized(t *testing.T) {
	spouse := entity.PersonID(7)
	p := &entity.Person{
		Alive:            true,
		AgeDays:          120 * 365, // beyond the age scale
		Health:           100,
		MentalHealth:     100,
		Happiness:        100,
		Energy:           100,
		Stress:           100,
		WeightKg:         250,
		HeightM:          1.45,
		Money:            1e9,
		Debt:             1e9,
		Investments:      1e9,
		Retirement:       1e9,
		CreditScore:      850,
		OwnsHome:         true,
		HomeValue:        1e8,
		Employed:         true,
		JobField:         entity.FieldGovernment,
		MonthlyIncome:    1e6,
		JobSatisfaction:  100,
		SkillLevel:       10,
		YearsExperience:  90,
		Reputation:       100,
		SocialSupport:    100,
		FriendIDs:        make([]entity.PersonID, 50),
		SpouseID:         &spouse,
		Children:         12,
		RelationshipSat:  100,
		AlcoholDep:       100,
		DrugDep:          100,
		SmokingDep:       100,
		Education:        entity.MaxEducation,
		Business:         &entity.Business{Value: 1e9, Success: 100},
		Fame:             100,
		CountriesVisited: 80,
		LanguagesKnown:   12,
		BooksRead:        5000,
		VolunteerHours:   99999,
	}
	w := &entity.World{Day: 9999, EpisodeLength: 3650}

	obs := Encode(p, w)
	require.Len(t, obs, ObsSize)
	for i, v := range obs {
		assert.GreaterOrEqual(t, v, 0.0, "element %d", i)
		assert.LessOrEqual(t, v, 1.0, "element %d", i)
	}
}

func TestEncodeIndexConstants(t *testing.T) {
	p := &entity.Person{
		Alive:        true,
		Health:       50,
		MentalHealth: 80,
		Happiness:    20,
		HeightM:      1.75,
		WeightKg:     75,
		CreditScore:  575, // midpoint of 300–850
		Employed:     true,
		Incarcerated: true,
	}
	w := &entity.World{Day: 0, EpisodeLength: 3650}
	obs := Encode(p, w)

	assert.Equal(t, 0.5, obs[ObsHealth])
	assert.Equal(t, 0.8, obs[ObsMental])
	assert.Equal(t, 0.2, obs[ObsHappiness])
	assert.Equal(t, 1.0, obs[ObsAlive])
	assert.Equal(t, 0.5, obs[ObsCredit])
	assert.Equal(t, 1.0, obs[ObsEmployed])
	assert.Equal(t, 1.0, obs[ObsIncarcerated])
	assert.Equal(t, 0.0, obs[ObsMarried])
	assert.Equal(t, 0.0, obs[ObsDay])
}

func TestNegativeNetWorthEncodesBelowMidpoint(t *testing.T) {
	p := &entity.Person{Alive: true, HeightM: 1.75, WeightKg: 75, CreditScore: 680, Debt: 500000}
	w := &entity.World{Day: 0, EpisodeLength: 3650}
	obs := Encode(p, w)
	assert.Less(t, obs[ObsNetWorth], 0.5)
	assert.GreaterOrEqual(t, obs[ObsNetWorth], 0.0)
}
