package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsCoherent(t *testing.T) {
	bal := Default()
	assert.Greater(t, bal.Episode.LengthDays, 0)
	assert.Greater(t, bal.Episode.StartMoney, 0.0)
	assert.GreaterOrEqual(t, bal.NPC.InitialMin, bal.NPC.MinPopulation)
	assert.LessOrEqual(t, bal.NPC.InitialMax, bal.NPC.MaxPopulation)
	assert.Less(t, bal.Health.MortalityBase, 0.01)
	assert.Greater(t, bal.Reward.DeathPenalty, bal.Reward.GoalBonus)
}

func TestPresetsDivergeFromDefault(t *testing.T) {
	def, gentle, harsh := Default(), Gentle(), Harsh()
	assert.Less(t, gentle.Health.IllnessChance, def.Health.IllnessChance)
	assert.Greater(t, harsh.Health.IllnessChance, def.Health.IllnessChance)
	assert.Greater(t, harsh.Finance.MonthlyBills, def.Finance.MonthlyBills)
}

func TestLoadOverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yml")
	yml := `
episode:
  length_days: 100
finance:
  monthly_bills: 999
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	bal, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, bal.Episode.LengthDays)
	assert.Equal(t, 999.0, bal.Finance.MonthlyBills)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Health.IllnessChance, bal.Health.IllnessChance)
	assert.Equal(t, Default().NPC.MinPopulation, bal.NPC.MinPopulation)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
