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

import "fmt"

// NewLeague returns the League of the given number of teams. A League can
// only be scheduled into rounds if every team has an opponent, so the team
// count must be even and at least 2.
func NewLeague(teams int) (League, error) {
	switch {
	case teams < 2:
		return League{}, fmt.Errorf("new league: need at least 2 teams, got %d", teams)
	case teams%2 != 0:
		return League{}, fmt.Errorf("new league: team count %d is odd", teams)
	}

	return League{Teams: teams}, nil
}

// League describes a double round robin between Teams teams, numbered from
// 0 to Teams-1. The derived constants are all functions of the team count.
type League struct {
	Teams int
}

// Rounds is the number of rounds in a double round robin.
func (league League) Rounds() int {
	return 2 * (league.Teams - 1)
}

// Games is the number of distinct (host, guest) pairs, which is also the
// number of games in a double round robin.
func (league League) Games() int {
	return league.Teams * (league.Teams - 1)
}

// GamesPerRound is the number of games needed for every team to play once.
func (league League) GamesPerRound() int {
	return league.Teams / 2
}

// GameID is a linear index in [0, Games) identifying a (host, guest) pair.
type GameID int

// Game is a single encounter between two distinct teams.
type Game struct {
	Host, Guest int
}

// Reverse returns the game with the host and guest swapped.
func (game Game) Reverse() Game {
	return Game{Host: game.Guest, Guest: game.Host}
}

func (game Game) String() string {
	return fmt.Sprintf("%d-%d", game.Host, game.Guest)
}

// ID converts the given game to its GameID. The guest's index is shifted
// down by one if it is larger than the host since a team never plays itself.
// Games with equal or out of range teams have no meaningful ID.
func (league League) ID(game Game) GameID {
	guest := game.Guest
	if guest > game.Host {
		guest--
	}

	return GameID(game.Host*(league.Teams-1) + guest)
}

// Game is the inverse of ID.
func (league League) Game(id GameID) Game {
	host := int(id) / (league.Teams - 1)
	guest := int(id) % (league.Teams - 1)
	if guest >= host {
		guest++
	}

	return Game{Host: host, Guest: guest}
}
