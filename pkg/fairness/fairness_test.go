package fairness

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/schedsim/pkg/schedule"
)

type game = schedule.Game

// perfect is a double round robin between 4 teams in which no team has a
// home or away run longer than 3 and no rematch is in consecutive rounds.
var perfect = schedule.Tournament{
	{{Host: 0, Guest: 1}, {Host: 2, Guest: 3}},
	{{Host: 2, Guest: 0}, {Host: 1, Guest: 3}},
	{{Host: 3, Guest: 0}, {Host: 1, Guest: 2}},
	{{Host: 1, Guest: 0}, {Host: 3, Guest: 2}},
	{{Host: 0, Guest: 2}, {Host: 3, Guest: 1}},
	{{Host: 0, Guest: 3}, {Host: 2, Guest: 1}},
}

func TestPerfectSchedule(t *testing.T) {
	league := schedule.League{Teams: 4}

	assert.Equal(t, 0, DoubleRoundRobinViolations(league, perfect))
	assert.Equal(t, 0, NoRepeatViolations(perfect))
	assert.Equal(t, 0, MaxStreakViolations(league, perfect, 3))
}

func TestPerfectSchedule_TighterStreak(t *testing.T) {
	league := schedule.League{Teams: 4}

	// every team has exactly one run of 3 games
	assert.Equal(t, []int{1, 1, 1, 1}, StreakViolationsByTeam(league, perfect, 2))
	assert.Equal(t, 4, MaxStreakViolations(league, perfect, 2))
}

func TestDoubleRoundRobinViolations(t *testing.T) {
	league := schedule.League{Teams: 4}

	tests := []struct {
		name       string
		tournament schedule.Tournament
		want       int
	}{
		{
			name:       "empty tournament misses every game",
			tournament: schedule.Tournament{},
			want:       12,
		},
		{
			name: "same round repeated",
			tournament: schedule.Tournament{
				{{Host: 0, Guest: 1}, {Host: 2, Guest: 3}},
				{{Host: 0, Guest: 1}, {Host: 2, Guest: 3}},
			},
			// 0-1 and 2-3 played one time too many, 10 games missing
			want: 12,
		},
		{
			name: "single round",
			tournament: schedule.Tournament{
				{{Host: 0, Guest: 1}, {Host: 2, Guest: 3}},
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DoubleRoundRobinViolations(league, tt.tournament))
		})
	}
}

func TestDoubleRoundRobinViolations_MirrorSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for _, teams := range []int{2, 4, 8, 14} {
		league := schedule.League{Teams: teams}
		for i := 0; i < 20; i++ {
			tournament := schedule.RandomTournament(league, rng)
			require.Equal(t,
				DoubleRoundRobinViolations(league, tournament),
				DoubleRoundRobinViolations(league, tournament.Mirror()),
			)
		}
	}
}

func TestNoRepeatViolations(t *testing.T) {
	tests := []struct {
		name       string
		tournament schedule.Tournament
		want       int
	}{
		{
			name:       "reversed rematch",
			tournament: schedule.Tournament{{game{Host: 0, Guest: 1}}, {game{Host: 1, Guest: 0}}},
			want:       1,
		},
		{
			name:       "identical rematch",
			tournament: schedule.Tournament{{game{Host: 0, Guest: 1}}, {game{Host: 0, Guest: 1}}},
			want:       1,
		},
		{
			name: "non-adjacent rematch is not counted",
			tournament: schedule.Tournament{
				{{Host: 0, Guest: 1}, {Host: 2, Guest: 3}},
				{{Host: 0, Guest: 2}, {Host: 1, Guest: 3}},
				{{Host: 1, Guest: 0}, {Host: 3, Guest: 2}},
			},
			want: 0,
		},
		{
			name: "whole round repeated twice",
			tournament: schedule.Tournament{
				{{Host: 0, Guest: 1}, {Host: 2, Guest: 3}},
				{{Host: 1, Guest: 0}, {Host: 2, Guest: 3}},
				{{Host: 0, Guest: 1}, {Host: 3, Guest: 2}},
			},
			want: 4,
		},
		{
			name:       "single round",
			tournament: schedule.Tournament{{game{Host: 0, Guest: 1}}},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NoRepeatViolations(tt.tournament))
		})
	}
}

func TestMaxStreakViolations(t *testing.T) {
	league := schedule.League{Teams: 4}

	// team 0 hosts three rounds in a row, team 3 is the guest in all three
	tournament := schedule.Tournament{
		{{Host: 0, Guest: 1}, {Host: 2, Guest: 3}},
		{{Host: 0, Guest: 2}, {Host: 1, Guest: 3}},
		{{Host: 0, Guest: 3}, {Host: 2, Guest: 1}},
	}

	byTeam := StreakViolationsByTeam(league, tournament, 1)
	assert.Equal(t, 2, byTeam[0])
	assert.Equal(t, []int{2, 0, 0, 2}, byTeam)
	assert.Equal(t, 4, MaxStreakViolations(league, tournament, 1))

	assert.Equal(t, 2, MaxStreakViolations(league, tournament, 2))
	assert.Equal(t, 0, MaxStreakViolations(league, tournament, 3))
}

func TestMaxStreakViolations_LongStreak(t *testing.T) {
	league := schedule.League{Teams: 2}

	tournament := make(schedule.Tournament, 8)
	for i := range tournament {
		tournament[i] = schedule.Round{{Host: 0, Guest: 1}}
	}

	// a run of MAXSTREAK+5 games counts 5 times for each team
	assert.Equal(t, []int{5, 5}, StreakViolationsByTeam(league, tournament, 3))
}

func TestMaxStreakViolations_SideSwitchResets(t *testing.T) {
	league := schedule.League{Teams: 2}

	tournament := schedule.Tournament{
		{{Host: 0, Guest: 1}},
		{{Host: 0, Guest: 1}},
		{{Host: 1, Guest: 0}},
		{{Host: 0, Guest: 1}},
		{{Host: 0, Guest: 1}},
	}

	assert.Equal(t, 0, MaxStreakViolations(league, tournament, 2))
	assert.Equal(t, 4, MaxStreakViolations(league, tournament, 1))
}

func TestCircleScheduleScoresZero(t *testing.T) {
	for _, teams := range []int{4, 8, 12} {
		league := schedule.League{Teams: teams}
		tournament := schedule.NewCircle(league).Tournament(nil)

		assert.Equal(t, 0, DoubleRoundRobinViolations(league, tournament), "teams=%d", teams)
		assert.Equal(t, 0, NoRepeatViolations(tournament), "teams=%d", teams)
	}
}
