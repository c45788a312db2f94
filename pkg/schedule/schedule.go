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
	"fmt"
	"math/rand"
)

// Schedulers lists the names accepted by New.
var Schedulers = []string{"random", "circle"}

// New returns the Scheduler with the given name for the given league.
func New(name string, league League) (Scheduler, error) {
	switch name {
	case "random", "":
		return &Random{League: league}, nil
	case "circle":
		return NewCircle(league), nil
	default:
		return nil, fmt.Errorf("new scheduler: invalid scheduler %s", name)
	}
}

// Scheduler generates full tournaments for a league. Implementations which
// make random choices draw them from the provided rng only.
type Scheduler interface {
	Tournament(rng *rand.Rand) Tournament
}

// Random is the naive scheduler: every round is an independent random
// perfect matching of the teams.
type Random struct {
	League League
}

func (r *Random) Tournament(rng *rand.Rand) Tournament {
	return RandomTournament(r.League, rng)
}
