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

package experiment

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"laptudirm.com/x/schedsim/pkg/fairness"
	"laptudirm.com/x/schedsim/pkg/schedule"
	"laptudirm.com/x/schedsim/pkg/stats"
)

// TimeFormat is the layout of the creation timestamp in result file names.
const TimeFormat = "20060102-15:04"

// Config is the configuration of a single sweep point.
type Config struct {
	Teams       int    // Number of teams in the league.
	Repetitions int    // Number of tournaments to generate.
	MaxStreak   int    // Longest allowed run of home or away games.
	Scheduler   string // Name of the tournament scheduler.

	// Seed of the experiment's random number generator.
	Seed int64

	// Creation time, used to name the result file.
	Created time.Time
}

// New validates the given configuration and returns an Experiment ready
// to be run.
func New(config Config) (*Experiment, error) {
	league, err := schedule.NewLeague(config.Teams)
	if err != nil {
		return nil, fmt.Errorf("new experiment: %w", err)
	}

	switch {
	case config.Repetitions < 1:
		return nil, fmt.Errorf("new experiment: need at least 1 repetition, got %d", config.Repetitions)
	case config.MaxStreak < 0:
		return nil, fmt.Errorf("new experiment: negative max streak %d", config.MaxStreak)
	}

	scheduler, err := schedule.New(config.Scheduler, league)
	if err != nil {
		return nil, fmt.Errorf("new experiment: %w", err)
	}

	return &Experiment{
		Config:    config,
		League:    league,
		scheduler: scheduler,
		rng:       rand.New(rand.NewSource(config.Seed)),
	}, nil
}

// Experiment estimates the violations of a scheduler for one league size
// by generating Repetitions tournaments and recording each of their
// violation counts. An Experiment owns all of its state, so different
// experiments can be run concurrently.
type Experiment struct {
	Config

	League schedule.League

	scheduler schedule.Scheduler
	rng       *rand.Rand

	Violations struct {
		DoubleRoundRobin stats.Running
		MaxStreak        stats.Running
		NoRepeat         stats.Running
	}
}

// Run generates the configured number of tournaments and records their
// violations. It should only be called once per Experiment.
func (exp *Experiment) Run() {
	checkpoint := max(exp.Repetitions/10, 1)

	for repetition := 0; repetition < exp.Repetitions; repetition++ {
		tournament := exp.scheduler.Tournament(exp.rng)

		exp.Violations.DoubleRoundRobin.Record(
			fairness.DoubleRoundRobinViolations(exp.League, tournament),
		)
		exp.Violations.MaxStreak.Record(
			fairness.MaxStreakViolations(exp.League, tournament, exp.MaxStreak),
		)
		exp.Violations.NoRepeat.Record(
			fairness.NoRepeatViolations(tournament),
		)

		if (repetition+1)%checkpoint == 0 {
			logrus.Tracef("teams:%d %d/%d repetitions", exp.Teams, repetition+1, exp.Repetitions)
		}
	}
}

// Filename returns the name of the experiment's result file.
func (exp *Experiment) Filename() string {
	return fmt.Sprintf(
		"%s-%dteams-%dreps.txt",
		exp.Created.Format(TimeFormat), exp.Teams, exp.Repetitions,
	)
}

// Save writes the experiment's results into a file inside dir and returns
// the path of the file.
func (exp *Experiment) Save(dir string) (string, error) {
	path := filepath.Join(dir, exp.Filename())
	if err := os.WriteFile(path, []byte(exp.String()), 0644); err != nil {
		return "", fmt.Errorf("save experiment: %w", err)
	}

	return path, nil
}

// String returns a summary of the experiment's results, one line per kind
// of violation.
func (exp *Experiment) String() string {
	var str strings.Builder
	fmt.Fprintln(&str, "Double Round Robin Violations", exp.Violations.DoubleRoundRobin)
	fmt.Fprintln(&str, "Maximum Streak Violations", exp.Violations.MaxStreak)
	fmt.Fprintln(&str, "No Repeat Violations", exp.Violations.NoRepeat)
	return str.String()
}

// Seed derives the seed of an experiment from the master seed of a sweep,
// so that every league size gets its own independent random stream.
func Seed(master int64, teams int) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strconv.Itoa(teams)))
	return master ^ int64(h.Sum64())
}
