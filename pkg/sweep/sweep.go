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
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"laptudirm.com/x/schedsim/pkg/common"
	"laptudirm.com/x/schedsim/pkg/experiment"
	"laptudirm.com/x/schedsim/pkg/stats"
)

// New creates one Experiment for every league size of the configuration.
// Every experiment shares the sweep's creation time but gets its own seed.
func New(config Config, created time.Time) (*Sweep, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	var sweep Sweep
	sweep.Config = config
	sweep.Created = created

	for _, teams := range config.TeamCounts() {
		exp, err := experiment.New(experiment.Config{
			Teams:       teams,
			Repetitions: config.Repetitions,
			MaxStreak:   config.MaxStreak,
			Scheduler:   config.Scheduler,

			Seed:    experiment.Seed(config.Seed, teams),
			Created: created,
		})
		if err != nil {
			return nil, fmt.Errorf("sweep: %w", err)
		}

		sweep.Experiments = append(sweep.Experiments, exp)
	}

	sweep.experiments = make(chan *experiment.Experiment)
	sweep.results = make(chan Result)
	sweep.complete = make(chan error)

	return &sweep, nil
}

// Sweep runs independent experiments over a range of league sizes.
type Sweep struct {
	Config

	Created     time.Time
	Experiments []*experiment.Experiment

	// Progress, if set, is called after every finished experiment.
	Progress func(done, total int)

	experiments chan *experiment.Experiment
	results     chan Result
	complete    chan error
}

// Result is the outcome of running and saving a single experiment.
type Result struct {
	Experiment *experiment.Experiment

	File string
	Err  error
}

// Start runs every experiment of the sweep, at most Concurrency at a time,
// and blocks until all of them are finished. It must only be called once.
// Failures to save results are collected and returned together, and the
// statistics are kept regardless.
func (sweep *Sweep) Start() error {
	if err := common.Mkdir(sweep.Output); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	go sweep.ResultHandler()
	for i := 0; i < sweep.Concurrency; i++ {
		go sweep.Thread()
	}

	for _, exp := range sweep.Experiments {
		sweep.experiments <- exp
	}

	close(sweep.experiments)
	return <-sweep.complete
}

func (sweep *Sweep) Thread() {
	for exp := range sweep.experiments {
		sweep.results <- sweep.RunExperiment(exp)
	}
}

func (sweep *Sweep) RunExperiment(exp *experiment.Experiment) Result {
	logrus.Infof(
		"\x1b[33mStarting\x1b[0m %d teams, %d repetitions (seed %d)",
		exp.Teams, exp.Repetitions, exp.Seed,
	)

	exp.Run()

	file, err := exp.Save(sweep.Output)
	return Result{
		Experiment: exp,
		File:       file,
		Err:        err,
	}
}

func (sweep *Sweep) ResultHandler() {
	var errs []error

	result_count := 0
	result_target := len(sweep.Experiments)
	for result := range sweep.results {
		result_count++

		if result.Err != nil {
			logrus.Error(result.Err)
			errs = append(errs, result.Err)
		} else {
			logrus.Infof(
				"\x1b[32mFinished\x1b[0m %d teams: results saved to %s",
				result.Experiment.Teams, result.File,
			)
		}

		if sweep.Progress != nil {
			sweep.Progress(result_count, result_target)
		}

		if result_count == result_target {
			close(sweep.results)
			sweep.complete <- errors.Join(errs...)
			return
		}
	}
}

// Summary writes the timestamp and the results of every experiment.
func (sweep *Sweep) Summary(w io.Writer) {
	for _, exp := range sweep.Experiments {
		fmt.Fprintf(w, "%s %d teams\n", sweep.Created.Format(time.DateTime), exp.Teams)
		fmt.Fprint(w, exp)
	}
}

const (
	reportHeader = "║ %5s   %10s %6s %6s   %10s %6s %6s   %10s %6s %6s ║\n"
	reportRow    = "║ %5d   %10s %6s %6s   %10s %6s %6s   %10s %6s %6s ║\n"
	reportWidth  = 88
)

// Report writes a table of every experiment's results.
func (sweep *Sweep) Report(w io.Writer) {
	fmt.Fprintf(w, "Sweep %s, %d repetitions, max streak %d, %s scheduler\n",
		sweep.Created.Format(experiment.TimeFormat),
		sweep.Repetitions, sweep.MaxStreak, sweep.Scheduler)

	fmt.Fprintln(w, "╔"+strings.Repeat("═", reportWidth)+"╗")
	fmt.Fprintf(w, reportHeader,
		"Teams",
		"DRR avg", "min", "max",
		"Streak avg", "min", "max",
		"Repeat avg", "min", "max")
	fmt.Fprintln(w, "╠"+strings.Repeat("═", reportWidth)+"╣")
	for _, exp := range sweep.Experiments {
		drr := columns(&exp.Violations.DoubleRoundRobin)
		streak := columns(&exp.Violations.MaxStreak)
		repeat := columns(&exp.Violations.NoRepeat)

		fmt.Fprintf(w, reportRow,
			exp.Teams,
			drr[0], drr[1], drr[2],
			streak[0], streak[1], streak[2],
			repeat[0], repeat[1], repeat[2])
	}
	fmt.Fprintln(w, "╚"+strings.Repeat("═", reportWidth)+"╝")
}

// columns formats a statistic's mean, minimum, and maximum for the report.
func columns(stat *stats.Running) [3]string {
	mean, minimum, maximum, err := stat.Evaluate()
	if err != nil {
		return [3]string{"-", "-", "-"}
	}

	return [3]string{
		fmt.Sprintf("%.2f", mean),
		fmt.Sprint(minimum),
		fmt.Sprint(maximum),
	}
}
