package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse-sim/warehouse-sim/internal/testutil"
)

const sampleScenarioYAML = `scenarios:
  contest:
    max_cycles: 20000
    picks_per_cycle: 1
  quick:
    max_cycles: 50
`

func TestGetScenario_KnownName(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "scenarios.yaml", sampleScenarioYAML)

	scenario := GetScenario(path, "contest")

	if assert.NotNil(t, scenario) {
		assert.Equal(t, 20000, scenario.MaxCycles)
		assert.Equal(t, 1, scenario.PicksPerCycle)
	}
}

func TestGetScenario_ZeroValuesLeftUnset(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "scenarios.yaml", sampleScenarioYAML)

	scenario := GetScenario(path, "quick")

	if assert.NotNil(t, scenario) {
		assert.Equal(t, 50, scenario.MaxCycles)
		assert.Equal(t, 0, scenario.PicksPerCycle)
	}
}

func TestGetScenario_UnknownName(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "scenarios.yaml", sampleScenarioYAML)

	assert.Nil(t, GetScenario(path, "nope"))
}
