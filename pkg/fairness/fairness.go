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

// Package fairness counts how far a tournament deviates from the structural
// properties of a well formed double round robin. Each counter returns a
// non-negative number of violations, which is 0 for a perfect schedule.
package fairness

import (
	"laptudirm.com/x/schedsim/pkg/schedule"
)

// DoubleRoundRobinViolations counts how far the number of times each
// ordered pair of teams met is from exactly once. Each unordered pair is
// visited once and both of its orientations are checked.
func DoubleRoundRobinViolations(league schedule.League, tournament schedule.Tournament) int {
	counts := make([]int, league.Games())
	for _, round := range tournament {
		for _, game := range round {
			counts[league.ID(game)]++
		}
	}

	violations := 0
	for host := 0; host < league.Teams; host++ {
		for guest := host + 1; guest < league.Teams; guest++ {
			game := schedule.Game{Host: host, Guest: guest}
			violations += abs(1 - counts[league.ID(game)])
			violations += abs(1 - counts[league.ID(game.Reverse())])
		}
	}

	return violations
}

// NoRepeatViolations counts the games which are played again, in either
// orientation, in the very next round. Repeats further apart are not
// counted here.
func NoRepeatViolations(tournament schedule.Tournament) int {
	violations := 0
	for next := 1; next < len(tournament); next++ {
		played := make(map[schedule.Game]struct{}, len(tournament[next]))
		for _, game := range tournament[next] {
			played[game] = struct{}{}
		}

		for _, game := range tournament[next-1] {
			if _, found := played[game]; found {
				violations++
			}

			if _, found := played[game.Reverse()]; found {
				violations++
			}
		}
	}

	return violations
}

// MaxStreakViolations counts the games which extend some team's run of
// consecutive home or away games beyond maxStreak. A streak of maxStreak+k
// games contributes k violations.
func MaxStreakViolations(league schedule.League, tournament schedule.Tournament, maxStreak int) int {
	violations := 0
	for _, team := range StreakViolationsByTeam(league, tournament, maxStreak) {
		violations += team
	}

	return violations
}

// streak tracks a team's current run of games on one side. At most one of
// the two counters is non-zero at a time.
type streak struct {
	home, away int
}

// StreakViolationsByTeam is MaxStreakViolations broken down per team.
func StreakViolationsByTeam(league schedule.League, tournament schedule.Tournament, maxStreak int) []int {
	streaks := make([]streak, league.Teams)
	violations := make([]int, league.Teams)

	for _, round := range tournament {
		for _, game := range round {
			host := &streaks[game.Host]
			host.home, host.away = host.home+1, 0
			if host.home > maxStreak {
				violations[game.Host]++
			}

			guest := &streaks[game.Guest]
			guest.home, guest.away = 0, guest.away+1
			if guest.away > maxStreak {
				violations[game.Guest]++
			}
		}
	}

	return violations
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
