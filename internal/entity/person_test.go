package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCashShortfallBecomesDebt(t *testing.T) {
	p := &Person{Money: 100}
	p.ApplyCash(-250)
	assert.Equal(t, 0.0, p.Money)
	assert.Equal(t, 150.0, p.Debt)

	p.ApplyCash(500)
	assert.Equal(t, 500.0, p.Money)
	assert.Equal(t, 150.0, p.Debt, "repayment is a separate decision, not automatic")
}

func TestDieIsOneWay(t *testing.T) {
	p := &Person{Alive: true}
	p.Die("illness")
	assert.False(t, p.Alive)
	assert.Equal(t, "illness", p.CauseOfDeath)

	p.Die("accident")
	assert.Equal(t, "illness", p.CauseOfDeath, "original cause must be preserved")
}

func TestNetWorth(t *testing.T) {
	p := &Person{
		Money:       1000,
		Investments: 5000,
		Retirement:  2000,
		Debt:        3000,
		StudentLoan: 1000,
		OwnsHome:    true,
		HomeValue:   200000,
		OwnsCar:     false,
		CarValue:    9999, // not owned, must not count
		Business:    &Business{Value: 10000},
	}
	assert.Equal(t, 214000.0, p.NetWorth())
}

func TestClampSaturatesEverything(t *testing.T) {
	p := &Person{
		Health:       150,
		MentalHealth: -20,
		Stress:       900,
		CreditScore:  100,
		SkillLevel:   42,
		Debt:         -5,
		WeightKg:     10,
		Business:     &Business{Value: -100, Success: 180},
		Hobbies:      []Hobby{{Name: "painting", Skill: 130}},
	}
	p.Clamp()
	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, 0.0, p.MentalHealth)
	assert.Equal(t, 100.0, p.Stress)
	assert.Equal(t, 300.0, p.CreditScore)
	assert.Equal(t, 10.0, p.SkillLevel)
	assert.Equal(t, 0.0, p.Debt)
	assert.Equal(t, 30.0, p.WeightKg)
	assert.Equal(t, 0.0, p.Business.Value)
	assert.Equal(t, 100.0, p.Business.Success)
	assert.Equal(t, 100.0, p.Hobbies[0].Skill)
}

func TestBMI(t *testing.T) {
	p := &Person{WeightKg: 75, HeightM: 1.75}
	assert.InDelta(t, 24.49, p.BMI(), 0.01)

	zero := &Person{WeightKg: 75}
	assert.Equal(t, 0.0, zero.BMI())
}

func TestSeasonCycle(t *testing.T) {
	w := &World{}
	seen := map[uint8]bool{}
	for day := 0; day < 730; day++ {
		w.Day = day
		s := w.Season()
		assert.LessOrEqual(t, s, uint8(3))
		seen[s] = true
	}
	assert.Len(t, seen, 4, "a year must pass through all four seasons")
}
