// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sweep

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
	"laptudirm.com/x/schedsim/pkg/common"
)

// Config is the configuration of a sweep over league sizes.
type Config struct {
	// Number of tournaments generated for every league size.
	Repetitions int `yaml:"repetitions"`

	// League sizes from MinTeams to MaxTeams, both inclusive, in
	// increments of Step. Only even sizes can be scheduled.
	MinTeams int `yaml:"min-teams"`
	MaxTeams int `yaml:"max-teams"`
	Step     int `yaml:"step"`

	MaxStreak int    `yaml:"max-streak"` // Longest allowed home or away run.
	Scheduler string `yaml:"scheduler"`  // Name of the tournament scheduler.

	// Number of experiments that will be run concurrently.
	Concurrency int `yaml:"concurrency"`

	// Master seed from which every experiment's seed is derived.
	Seed int64 `yaml:"seed"`

	// Directory to write the result files to.
	Output string `yaml:"output"`
}

// DefaultConfig returns the configuration of the full sweep.
func DefaultConfig() Config {
	return Config{
		Repetitions: 1_000_000,

		MinTeams: 4,
		MaxTeams: 50,
		Step:     2,

		MaxStreak: 3,
		Scheduler: "random",

		Concurrency: runtime.NumCPU(),
		Output:      common.ResultsDirectory,
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file
// keep their values from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	return config, nil
}

// TeamCounts returns the league sizes covered by the configuration.
func (config Config) TeamCounts() []int {
	var teams []int
	for n := config.MinTeams; n <= config.MaxTeams; n += config.Step {
		teams = append(teams, n)
	}

	return teams
}

func (config Config) validate() error {
	switch {
	case config.Step < 1:
		return fmt.Errorf("sweep: step must be positive, got %d", config.Step)
	case config.MinTeams > config.MaxTeams:
		return fmt.Errorf("sweep: empty team range %d..%d", config.MinTeams, config.MaxTeams)
	case config.Concurrency < 1:
		return fmt.Errorf("sweep: concurrency must be positive, got %d", config.Concurrency)
	}

	return nil
}
