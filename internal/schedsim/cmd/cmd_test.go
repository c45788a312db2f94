package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/schedsim/pkg/sweep"
)

func TestRoot_Commands(t *testing.T) {
	root := Root()

	for _, name := range []string{"sweep", "experiment", "show"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestOverrideFlags(t *testing.T) {
	cmd := Sweep()
	require.NoError(t, cmd.ParseFlags([]string{"--repetitions", "10", "--scheduler", "circle"}))

	flagged := sweep.DefaultConfig()
	flagged.Repetitions = 10
	flagged.Scheduler = "circle"
	flagged.MaxTeams = 99 // not set on the command line

	loaded := sweep.DefaultConfig()
	loaded.Repetitions = 500
	loaded.MaxTeams = 12
	loaded.Scheduler = "random"

	config := overrideFlags(cmd.Flags(), flagged, loaded)
	assert.Equal(t, 10, config.Repetitions)
	assert.Equal(t, "circle", config.Scheduler)
	assert.Equal(t, 12, config.MaxTeams)
}

func TestExperiment_RejectsBadTeams(t *testing.T) {
	for _, teams := range []string{"five", "5", "0"} {
		root := Root()
		root.SetArgs([]string{"experiment", teams, "-r", "1", "-o", filepath.Join(t.TempDir(), "out")})
		assert.Error(t, root.Execute(), teams)
	}
}

func TestSweep_RunsAndSaves(t *testing.T) {
	output := filepath.Join(t.TempDir(), "results")

	root := Root()
	root.SetArgs([]string{
		"sweep", "-r", "5", "--min-teams", "4", "--max-teams", "6",
		"--seed", "3", "-c", "2", "-o", output,
	})
	require.NoError(t, root.Execute())

	files, err := filepath.Glob(filepath.Join(output, "*teams-5reps.txt"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestShow_Circle(t *testing.T) {
	var out bytes.Buffer

	root := Root()
	root.SetOut(&out)
	root.SetArgs([]string{"show", "4", "--scheduler", "circle"})
	require.NoError(t, root.Execute())

	rounds := 0
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "Round ") {
			rounds++
		}
	}

	assert.Equal(t, 6, rounds)
	assert.Contains(t, out.String(), "Double Round Robin Violations: 0\n")
	assert.Contains(t, out.String(), "No Repeat Violations:          0\n")
}

func TestShow_RejectsOddTeams(t *testing.T) {
	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"show", "5"})
	assert.Error(t, root.Execute())
}
