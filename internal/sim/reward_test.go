package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entity"
)

func rewardFixture() (*entity.Person, *entity.World, *config.RewardWeights) {
	p := &entity.Person{
		Alive:        true,
		AgeDays:      int(30 * entity.DaysPerYear),
		Health:       80,
		MentalHealth: 70,
		Happiness:    60,
		HeightM:      1.75,
		WeightKg:     75,
		Money:        10000,
	}
	w := &entity.World{Day: 100, EpisodeLength: 3650}
	bal := config.Default()
	return p, w, &bal.Reward
}

func TestQuietDayIsNearZero(t *testing.T) {
	p, w, rw := rewardFixture()
	prev := takeSnapshot(p)
	r := computeReward(prev, p, w, rw, false)
	assert.InDelta(t, 0, r, 0.001)
}

func TestGoalCompletionPaysBonus(t *testing.T) {
	p, w, rw := rewardFixture()
	prev := takeSnapshot(p)
	p.GoalsDone = append(p.GoalsDone, "own a home")
	p.Milestones++

	r := computeReward(prev, p, w, rw, false)
	assert.InDelta(t, rw.GoalBonus+rw.MilestoneBonus, r, 0.001)
}

func TestWealthGainSaturates(t *testing.T) {
	p, w, rw := rewardFixture()
	prev := takeSnapshot(p)

	p.Money += 5_000_000 // lottery-scale jump
	r := computeReward(prev, p, w, rw, false)
	assert.LessOrEqual(t, r, rw.NetWorthWeight+0.001, "tanh must cap windfall reward")
	assert.Greater(t, r, 0.0)
}

func TestBigDropPenalized(t *testing.T) {
	p, w, rw := rewardFixture()
	prev := takeSnapshot(p)
	p.Health -= rw.BigDropThreshold + 5

	r := computeReward(prev, p, w, rw, false)
	assert.Less(t, r, -rw.BigDropPen+0.5, "a crash day must cost more than the delta alone")
}

func TestIncarcerationAndAddictionDrag(t *testing.T) {
	p, w, rw := rewardFixture()
	prev := takeSnapshot(p)
	p.Incarcerated = true
	p.AlcoholDep = rw.AddictionLevel + 10
	p.DrugDep = rw.AddictionLevel + 10

	r := computeReward(prev, p, w, rw, false)
	assert.InDelta(t, -(rw.IncarcerationPen+2*rw.AddictionPen), r, 0.001)
}

func TestEarlyDeathPenalty(t *testing.T) {
	p, w, rw := rewardFixture()
	prev := takeSnapshot(p)
	p.Die("accident")

	r := computeReward(prev, p, w, rw, true)
	assert.Less(t, r, -rw.DeathPenalty+10)
}

func TestOldAgeDeathNotPenalized(t *testing.T) {
	p, w, rw := rewardFixture()
	p.AgeDays = int((rw.NaturalAgeYears + 5) * entity.DaysPerYear)
	prev := takeSnapshot(p)
	p.Die("old age")

	r := computeReward(prev, p, w, rw, true)
	assert.Greater(t, r, -1.0, "dying of old age is not a failure")
}

func TestSurvivalBonusAtEpisodeEnd(t *testing.T) {
	p, w, rw := rewardFixture()
	prev := takeSnapshot(p)
	w.Day = w.EpisodeLength

	r := computeReward(prev, p, w, rw, true)
	assert.InDelta(t, rw.SurvivalBonus, r, 0.001)
}
