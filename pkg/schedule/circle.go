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
	"math/rand"
	"slices"
)

// NewCircle builds the circle method double round robin for the league.
// The first leg is generated by keeping team 0 fixed and rotating every
// other team one position per round, and the second leg repeats the first
// one with home and away swapped.
func NewCircle(league League) *Circle {
	n := league.Teams

	circle_top := make([]int, n/2)
	circle_bottom := make([]int, n/2)

	for i := 0; i < n; i++ {
		if i < n/2 {
			circle_top[i] = i
		} else {
			circle_bottom[n-i-1] = i
		}
	}

	first_leg := make(Tournament, n-1)
	for r := range first_leg {
		round := make(Round, len(circle_top))
		for pair := range round {
			host, guest := circle_top[pair], circle_bottom[pair]

			// alternate sides so that no team is stuck at home
			if (r+pair)%2 == 1 {
				host, guest = guest, host
			}

			round[pair] = Game{Host: host, Guest: guest}
		}

		league.sort(round)
		first_leg[r] = round

		last_idx := len(circle_top) - 1
		last_elem := circle_top[last_idx]

		circle_top = slices.Insert(circle_top, 1, circle_bottom[0])[:last_idx+1]
		circle_bottom = append(circle_bottom, last_elem)[1:]
	}

	second_leg := first_leg.Mirror()
	for _, round := range second_leg {
		league.sort(round)
	}

	return &Circle{
		League:     league,
		tournament: append(first_leg, second_leg...),
	}
}

// Circle is a deterministic double round robin scheduler. Every ordered
// pair of teams meets exactly once, so it serves as a baseline for the
// random scheduler.
type Circle struct {
	League League

	tournament Tournament
}

// Tournament returns the circle schedule. The rng is unused and the same
// tournament is returned on every call, so it must not be modified.
func (c *Circle) Tournament(*rand.Rand) Tournament {
	return c.tournament
}
