package league_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/circle/pkg/circle"
	"laptudirm.com/x/circle/pkg/common"
	"laptudirm.com/x/circle/pkg/league"
)

// useTempDirectory points the circle directory at a fresh temporary
// directory for the duration of the test.
func useTempDirectory(t *testing.T) {
	t.Helper()

	old := common.Directory
	common.Directory = t.TempDir()
	t.Cleanup(func() { common.Directory = old })
}

func roundStrings(rounds []league.Round) []string {
	strs := make([]string, len(rounds))
	for i, round := range rounds {
		strs[i] = round.String()
	}

	return strs
}

func TestPairings_Plain(t *testing.T) {
	roster := &league.Roster{Name: "club", Teams: []string{"A", "B", "C", "D"}}

	rounds, err := league.Pairings(roster)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Round 1: A vs D, B vs C",
		"Round 2: B vs D, C vs A",
		"Round 3: C vs D, A vs B",
	}, roundStrings(rounds))

	game := rounds[0].Games[1]
	assert.Equal(t, 2, game.Board)
	assert.Equal(t, "B", game.White())
	assert.Equal(t, "C", game.Black())
	assert.Empty(t, rounds[0].Bye)
}

func TestPairings_FairBreakByes(t *testing.T) {
	roster := &league.Roster{
		Name:      "five",
		FairBreak: true,
		Teams:     []string{"Ann", "Bob", "Cid", "Dee", "Eve"},
	}

	rounds, err := league.Pairings(roster)
	require.NoError(t, err)
	require.Len(t, rounds, 5)

	assert.Equal(t, "Round 1: Eve vs Bob, Cid vs Dee (bye: Ann)", rounds[0].String())
	for i, round := range rounds {
		assert.Equal(t, roster.Teams[i], round.Bye)
		assert.Len(t, round.Games, 2)
	}

	schedule, err := league.Schedule(roster)
	require.NoError(t, err)
	assert.Equal(t, circle.FairBreak, schedule.Mode())
}

func TestRoster_Validate(t *testing.T) {
	tests := []struct {
		teams []string
		want  error
	}{
		{nil, league.ErrTooFewTeams},
		{[]string{"solo"}, league.ErrTooFewTeams},
		{[]string{"A", " "}, league.ErrEmptyTeam},
		{[]string{"A", "B", " A "}, league.ErrDuplicateTeam},
	}

	for _, tc := range tests {
		roster := &league.Roster{Name: "bad", Teams: tc.teams}
		assert.ErrorIs(t, roster.Validate(), tc.want, "%v", tc.teams)

		_, err := league.Pairings(roster)
		assert.ErrorIs(t, err, tc.want)
	}

	roster := &league.Roster{Teams: []string{" A", "B "}}
	require.NoError(t, roster.Validate())
	assert.Equal(t, []string{"A", "B"}, roster.Teams)
}

func TestRoster_SaveFindList(t *testing.T) {
	useTempDirectory(t)

	names, err := league.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"div10", "div2", "club"} {
		roster := &league.Roster{Name: name, Event: "Spring", Teams: []string{"A", "B", "C"}}
		require.NoError(t, roster.Save())
	}

	names, err = league.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"club", "div2", "div10"}, names)

	roster, err := league.Find("div2")
	require.NoError(t, err)
	assert.Equal(t, "div2", roster.Name)
	assert.Equal(t, "Spring", roster.Event)
	assert.Equal(t, []string{"A", "B", "C"}, roster.Teams)

	_, err = league.Find("missing")
	assert.ErrorIs(t, err, league.ErrRosterNotFound)

	assert.Error(t, (&league.Roster{Name: "a/b", Teams: []string{"A", "B"}}).Save())
	assert.ErrorIs(t, (&league.Roster{Name: "x", Teams: []string{"A"}}).Save(), league.ErrTooFewTeams)
}

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_IgnoresWorkingDirectory(t *testing.T) {
	useTempDirectory(t)

	saved := &league.Roster{Name: "club", Teams: []string{"A", "B", "C"}}
	require.NoError(t, saved.Save())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "club"), []byte("teams: [X, Y]\n"), 0644))
	chdir(t, dir)

	roster, err := league.Load("club")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, roster.Teams)

	_, err = league.Load("missing")
	assert.ErrorIs(t, err, league.ErrRosterNotFound)

	// Find still prefers an explicit path.
	roster, err = league.Find("club")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, roster.Teams)
}

func TestRoster_SaveNotExecutable(t *testing.T) {
	useTempDirectory(t)

	require.NoError(t, (&league.Roster{Name: "club", Teams: []string{"A", "B"}}).Save())

	info, err := os.Stat(filepath.Join(common.RosterDirectory(), "club.yaml"))
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&0111, "roster file mode %v", info.Mode())

	dir, err := os.Stat(common.RosterDirectory())
	require.NoError(t, err)
	assert.True(t, dir.IsDir())
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autumn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fair-break: true\nteams:\n  - Red\n  - Blue\n  - Green\n"), 0644))

	roster, err := league.Find(path)
	require.NoError(t, err)
	assert.Equal(t, "autumn", roster.Name)
	assert.True(t, roster.FairBreak)
	assert.Equal(t, []string{"Red", "Blue", "Green"}, roster.Teams)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("teams: [\n"), 0644))
	_, err = league.LoadRoster(broken)
	assert.Error(t, err)
}
