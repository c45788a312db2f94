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

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"laptudirm.com/x/schedsim/pkg/schedule"
	"laptudirm.com/x/schedsim/pkg/sweep"
)

// schedsim sweep
func Sweep() *cobra.Command {
	config := sweep.DefaultConfig()
	var configFile string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run experiments over a range of league sizes",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`sweep generates random double round robin tournaments for
			every even league size in the given range and counts how often
			they violate the properties of a proper schedule: every ordered
			pair of teams meeting once, no rematch in consecutive rounds,
			and no run of more than max-streak home or away games.

			The experiments run concurrently, each with its own random
			stream derived from the seed. The results of every league size
			are written to <output>/<timestamp>-<n>teams-<reps>reps.txt and
			summarized in a table once all experiments are finished.

			Flags which are explicitly set override the values read from
			the --config file.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				loaded, err := sweep.LoadConfig(configFile)
				if err != nil {
					return err
				}

				config = overrideFlags(cmd.Flags(), config, loaded)
			}

			created := time.Now()
			if config.Seed == 0 {
				config.Seed = created.UnixNano()
			}

			sw, err := sweep.New(config, created)
			if err != nil {
				return err
			}

			progress := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			progress.Suffix = fmt.Sprintf(" 0/%d experiments", len(sw.Experiments))
			sw.Progress = func(done, total int) {
				progress.Lock()
				progress.Suffix = fmt.Sprintf(" %d/%d experiments", done, total)
				progress.Unlock()
			}

			logrus.Infof("Sweeping %d league sizes with seed %d", len(sw.Experiments), config.Seed)

			progress.Start()
			err = sw.Start()
			progress.Stop()

			sw.Summary(os.Stdout)
			sw.Report(os.Stdout)
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&config.Repetitions, "repetitions", "r", config.Repetitions, "Number of tournaments per league size")
	flags.IntVar(&config.MinTeams, "min-teams", config.MinTeams, "Smallest league size")
	flags.IntVar(&config.MaxTeams, "max-teams", config.MaxTeams, "Largest league size")
	flags.IntVar(&config.Step, "step", config.Step, "Increment between league sizes")
	flags.IntVarP(&config.MaxStreak, "max-streak", "k", config.MaxStreak, "Longest allowed home or away streak")
	flags.StringVarP(&config.Scheduler, "scheduler", "s", config.Scheduler, "Tournament scheduler ("+strings.Join(schedule.Schedulers, ", ")+")")
	flags.IntVarP(&config.Concurrency, "concurrency", "c", config.Concurrency, "Number of experiments run concurrently")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "Master random seed (0 to derive from the clock)")
	flags.StringVarP(&config.Output, "output", "o", config.Output, "Directory to write result files to")
	flags.StringVar(&configFile, "config", "", "YAML file to read the sweep configuration from")

	return cmd
}

// overrideFlags returns the loaded configuration with the values of every
// explicitly set flag taken from the flag configuration instead.
func overrideFlags(flags *pflag.FlagSet, flagged, loaded sweep.Config) sweep.Config {
	flags.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "repetitions":
			loaded.Repetitions = flagged.Repetitions
		case "min-teams":
			loaded.MinTeams = flagged.MinTeams
		case "max-teams":
			loaded.MaxTeams = flagged.MaxTeams
		case "step":
			loaded.Step = flagged.Step
		case "max-streak":
			loaded.MaxStreak = flagged.MaxStreak
		case "scheduler":
			loaded.Scheduler = flagged.Scheduler
		case "concurrency":
			loaded.Concurrency = flagged.Concurrency
		case "seed":
			loaded.Seed = flagged.Seed
		case "output":
			loaded.Output = flagged.Output
		}
	})

	return loaded
}
