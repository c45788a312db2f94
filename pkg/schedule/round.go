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

package schedule

import (
	"cmp"
	"math/rand"
	"slices"
	"strings"
)

// Round is a set of simultaneous games in which every team plays exactly
// once. Games are kept sorted by their GameID.
type Round []Game

func (round Round) String() string {
	games := make([]string, len(round))
	for i, game := range round {
		games[i] = game.String()
	}

	return strings.Join(games, " ")
}

// Tournament is an ordered sequence of rounds.
type Tournament []Round

// Mirror returns a copy of the tournament with every game's host and guest
// swapped.
func (tournament Tournament) Mirror() Tournament {
	mirror := make(Tournament, len(tournament))
	for i, round := range tournament {
		mirror[i] = make(Round, len(round))
		for j, game := range round {
			mirror[i][j] = game.Reverse()
		}
	}

	return mirror
}

// sort orders the round's games by their GameID.
func (league League) sort(round Round) {
	slices.SortFunc(round, func(a, b Game) int {
		return cmp.Compare(league.ID(a), league.ID(b))
	})
}

// RandomRound generates a round by pairing up a random permutation of the
// teams. The first team of each pair hosts the second one. No constraint
// other than every team playing once is enforced.
func RandomRound(league League, rng *rand.Rand) Round {
	teams := rng.Perm(league.Teams)

	round := make(Round, league.GamesPerRound())
	for i := range round {
		round[i] = Game{Host: teams[2*i], Guest: teams[2*i+1]}
	}

	league.sort(round)
	return round
}

// RandomTournament generates every round of the tournament independently
// with RandomRound, without any memory of the previous rounds.
func RandomTournament(league League, rng *rand.Rand) Tournament {
	tournament := make(Tournament, league.Rounds())
	for i := range tournament {
		tournament[i] = RandomRound(league, rng)
	}

	return tournament
}
