package domains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifesim/internal/chance"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/economy"
	"github.com/talgya/lifesim/internal/entity"
)

func testPerson() *entity.Person {
	p := &entity.Person{
		ID:              entity.PlayerID,
		Name:            "Test Subject",
		AgeDays:         int(30 * entity.DaysPerYear),
		Alive:           true,
		Health:          85,
		MentalHealth:    75,
		Happiness:       65,
		Energy:          80,
		Stress:          30,
		WeightKg:        75,
		HeightM:         1.75,
		Money:           15000,
		CreditScore:     680,
		Employed:        true,
		MonthlyIncome:   4500,
		JobSatisfaction: 60,
		SkillLevel:      2,
		Reputation:      50,
		SocialSupport:   60,
		CarWorking:      true,
	}
	InitGoals(p)
	return p
}

func testContext(seed int64, p *entity.Person, act entity.Action) *Context {
	bal := config.Default()
	return &Context{
		P:   p,
		W:   &entity.World{Day: 1, EpisodeLength: bal.Episode.LengthDays},
		Act: act,
		RNG: chance.New(seed),
		Bal: &bal,
		Mkt: economy.NewMarket(seed),
	}
}

func TestPipelineOrderIsFixed(t *testing.T) {
	want := []string{
		"health", "career", "finance", "education", "social", "substances",
		"legal", "assets", "hobbies", "pets", "business", "disasters",
		"lottery", "fame", "civic", "mental", "goals",
	}
	stages := Pipeline()
	require.Len(t, stages, len(want))
	for i, s := range stages {
		assert.Equal(t, want[i], s.Name)
	}
}

func TestRunSkipsDead(t *testing.T) {
	p := testPerson()
	p.Die("test")
	before := *p

	ctx := testContext(1, p, entity.ActDefault)
	events := Run(ctx)

	assert.Nil(t, events)
	assert.Equal(t, before, *p, "dead persons must not change")
}

func TestAgeAdvancesExactlyOnePerDay(t *testing.T) {
	p := testPerson()
	ctx := testContext(2, p, entity.ActDefault)

	start := p.AgeDays
	for day := 1; day <= 400 && p.Alive; day++ {
		ctx.W.Day = day
		Run(ctx)
		require.Equal(t, start+day, p.AgeDays, "day %d", day)
	}
}

func TestFieldsStayInBoundsUnderRandomActions(t *testing.T) {
	p := testPerson()
	ctx := testContext(3, p, entity.ActDefault)
	actions := chance.New(4)

	for day := 1; day <= 2000 && p.Alive; day++ {
		ctx.W.Day = day
		ctx.Act = entity.Action(actions.Intn(entity.NumActions))
		Run(ctx)

		require.GreaterOrEqual(t, p.Health, 0.0)
		require.LessOrEqual(t, p.Health, 100.0)
		require.GreaterOrEqual(t, p.MentalHealth, 0.0)
		require.LessOrEqual(t, p.MentalHealth, 100.0)
		require.GreaterOrEqual(t, p.Happiness, 0.0)
		require.LessOrEqual(t, p.Happiness, 100.0)
		require.GreaterOrEqual(t, p.Stress, 0.0)
		require.LessOrEqual(t, p.Stress, 100.0)
		require.GreaterOrEqual(t, p.Money, 0.0, "cash must never go negative")
		require.GreaterOrEqual(t, p.CreditScore, 300.0)
		require.LessOrEqual(t, p.CreditScore, 850.0)
		require.GreaterOrEqual(t, p.SkillLevel, 0.0)
		require.LessOrEqual(t, p.SkillLevel, 10.0)
	}
}

func TestSteadySavingBuildsInvestments(t *testing.T) {
	p := testPerson()
	ctx := testContext(5, p, entity.ActSaveInvest)

	for day := 1; day <= 730 && p.Alive; day++ {
		ctx.W.Day = day
		Run(ctx)
	}

	assert.Greater(t, p.Investments, 0.0, "two years of saving must accumulate")
	assert.Greater(t, p.Retirement, 0.0, "employment contributes to retirement")
	assert.GreaterOrEqual(t, p.CreditScore, 300.0)
	assert.LessOrEqual(t, p.CreditScore, 850.0)
}

func TestIncarcerationDegradesActions(t *testing.T) {
	p := testPerson()
	p.Incarcerated = true
	p.IncarcerationDaysLeft = 100

	ctx := testContext(6, p, entity.ActWorkHard)
	ctx.W.Day = 1
	events := Run(ctx)

	assert.False(t, p.Employed, "incarceration costs the job")
	var degraded bool
	for _, ev := range events {
		if ev.Category == entity.CatInfo {
			degraded = true
		}
	}
	assert.True(t, degraded, "degraded action must be logged, not silently ignored")
}

func TestGraduationRaisesEducation(t *testing.T) {
	p := testPerson()
	p.Enrolled = true
	p.EducationDaysLeft = 1
	before := p.Education

	ctx := testContext(7, p, entity.ActDefault)
	events := Run(ctx)

	assert.Equal(t, before+1, p.Education)
	assert.False(t, p.Enrolled)

	var graduated bool
	for _, ev := range events {
		if ev.Category == entity.CatEducation {
			graduated = true
		}
	}
	assert.True(t, graduated)
}

func TestProlongedDespairIsLethal(t *testing.T) {
	p := testPerson()
	ctx := testContext(8, p, entity.ActDefault)

	for day := 1; day <= 2000 && p.Alive; day++ {
		ctx.W.Day = day
		p.Happiness = 0
		p.MentalHealth = 5
		updateMental(ctx)
	}

	require.False(t, p.Alive, "an unbroken despair streak must eventually kill")
	assert.Equal(t, "despair", p.CauseOfDeath)
}

func TestDisastersDamageProperty(t *testing.T) {
	p := testPerson()
	p.OwnsHome = true
	p.HomeValue = 250000
	start := p.HomeValue
	startMental := p.MentalHealth

	ctx := testContext(9, p, entity.ActDefault)

	var hit bool
	for day := 1; day <= 50000 && !hit; day++ {
		ctx.W.Day = day
		for _, ev := range updateDisasters(ctx) {
			if ev.Category == entity.CatDisaster {
				hit = true
			}
		}
	}

	require.True(t, hit, "a disaster must eventually strike")
	assert.Less(t, p.HomeValue, start)
	assert.Less(t, p.MentalHealth, startMental, "disasters leave a mark")
}

func TestGoalCompletionLogsMilestone(t *testing.T) {
	p := testPerson()
	p.Money = 2_000_000

	ctx := testContext(10, p, entity.ActDefault)
	ctx.W.Day = 1

	var milestones int
	for day := 1; day <= 3; day++ {
		ctx.W.Day = day
		for _, ev := range updateGoals(ctx) {
			if ev.Category == entity.CatMilestone {
				milestones++
			}
		}
	}

	assert.GreaterOrEqual(t, milestones, 1, "wealth goals should complete")
	assert.NotEmpty(t, p.GoalsDone)

	// Completed goals never move back to pending.
	done := len(p.GoalsDone)
	p.Money = 0
	ctx.W.Day = 4
	updateGoals(ctx)
	assert.Len(t, p.GoalsDone, done)
}
