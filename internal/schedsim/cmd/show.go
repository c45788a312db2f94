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
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"laptudirm.com/x/schedsim/pkg/fairness"
	"laptudirm.com/x/schedsim/pkg/schedule"
)

// schedsim show
func Show() *cobra.Command {
	var (
		scheduler string
		maxStreak int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "show teams",
		Short: "Print a single generated tournament and its violations",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("show: invalid team count %q", args[0])
			}

			league, err := schedule.NewLeague(teams)
			if err != nil {
				return err
			}

			sched, err := schedule.New(scheduler, league)
			if err != nil {
				return err
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			out := cmd.OutOrStdout()

			tournament := sched.Tournament(rand.New(rand.NewSource(seed)))
			for i, round := range tournament {
				fmt.Fprintf(out, "Round %2d: %s\n", i+1, round)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Double Round Robin Violations:", fairness.DoubleRoundRobinViolations(league, tournament))
			fmt.Fprintln(out, "Maximum Streak Violations:    ", fairness.MaxStreakViolations(league, tournament, maxStreak))
			fmt.Fprintln(out, "No Repeat Violations:         ", fairness.NoRepeatViolations(tournament))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scheduler, "scheduler", "s", "random", "Tournament scheduler")
	cmd.Flags().IntVarP(&maxStreak, "max-streak", "k", 3, "Longest allowed home or away streak")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 to derive from the clock)")

	return cmd
}
