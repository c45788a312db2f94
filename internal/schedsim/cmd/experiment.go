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
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/schedsim/pkg/common"
	"laptudirm.com/x/schedsim/pkg/experiment"
)

// schedsim experiment
func Experiment() *cobra.Command {
	config := experiment.Config{
		Repetitions: 1_000_000,
		MaxStreak:   3,
		Scheduler:   "random",
	}

	var output string

	cmd := &cobra.Command{
		Use:   "experiment teams",
		Short: "Run the experiment for a single league size",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`experiment generates tournaments for a league of the given
			even number of teams, prints the average, minimum, and maximum
			number of violations of each kind, and saves them to a result
			file like a single step of sweep does.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("experiment: invalid team count %q", args[0])
			}

			config.Teams = teams
			config.Created = time.Now()
			if config.Seed == 0 {
				config.Seed = config.Created.UnixNano()
			}

			exp, err := experiment.New(config)
			if err != nil {
				return err
			}

			logrus.Infof("Running %d repetitions for %d teams with seed %d", exp.Repetitions, exp.Teams, exp.Seed)
			exp.Run()
			fmt.Print(exp)

			if err := common.Mkdir(output); err != nil {
				return err
			}

			file, err := exp.Save(output)
			if err != nil {
				return err
			}

			logrus.Infof("Results saved to %s", file)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&config.Repetitions, "repetitions", "r", config.Repetitions, "Number of tournaments to generate")
	flags.IntVarP(&config.MaxStreak, "max-streak", "k", config.MaxStreak, "Longest allowed home or away streak")
	flags.StringVarP(&config.Scheduler, "scheduler", "s", config.Scheduler, "Tournament scheduler")
	flags.Int64Var(&config.Seed, "seed", 0, "Random seed (0 to derive from the clock)")
	flags.StringVarP(&output, "output", "o", common.ResultsDirectory, "Directory to write the result file to")

	return cmd
}
