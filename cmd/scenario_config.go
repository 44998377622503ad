package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario is a named preset of loop parameters, overriding the CLI flag
// defaults. Zero values leave the corresponding flag untouched.
type Scenario struct {
	MaxCycles     int `yaml:"max_cycles"`
	PicksPerCycle int `yaml:"picks_per_cycle"`
}

// GetScenario loads the preset with the given name from a YAML scenario
// file. Returns nil when the file holds no scenario by that name.
func GetScenario(scenarioFilePath string, name string) *Scenario {
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		logrus.Fatalf("unable to read scenario file %s: %v", scenarioFilePath, err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Fatalf("unable to parse scenario file %s: %v", scenarioFilePath, err)
	}

	if scenario, ok := cfg.Scenarios[name]; ok {
		logrus.Infof("Using preset scenario %v\n", name)
		return &scenario
	}
	return nil
}
