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

package league

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/circle/pkg/common"
	"laptudirm.com/x/circle/pkg/internal/util"
)

var (
	ErrTooFewTeams    = errors.New("league: roster needs at least two teams")
	ErrDuplicateTeam  = errors.New("league: team listed more than once")
	ErrEmptyTeam      = errors.New("league: team has no name")
	ErrRosterNotFound = errors.New("league: roster not found")
)

// Roster is the list of teams taking part in a league, as stored in a
// roster file.
type Roster struct {
	Name  string `yaml:"name"`
	Event string `yaml:"event,omitempty"` // Event field of the PGN.
	Site  string `yaml:"site,omitempty"`  // Site field of the PGN.

	// Balance home and away (white and black) games with a fair-break
	// schedule instead of a plain one.
	FairBreak bool `yaml:"fair-break,omitempty"`

	Teams []string `yaml:"teams"`
}

// Validate checks that the roster can be scheduled. Surrounding spaces are
// trimmed from the team names.
func (roster *Roster) Validate() error {
	if len(roster.Teams) < 2 {
		return fmt.Errorf("%w: %q has %d", ErrTooFewTeams, roster.Name, len(roster.Teams))
	}

	seen := make(map[string]bool, len(roster.Teams))
	for i, team := range roster.Teams {
		team = strings.TrimSpace(team)
		if team == "" {
			return fmt.Errorf("%w: team #%d of %q", ErrEmptyTeam, i+1, roster.Name)
		}

		if seen[team] {
			return fmt.Errorf("%w: %q", ErrDuplicateTeam, team)
		}

		seen[team] = true
		roster.Teams[i] = team
	}

	return nil
}

// LoadRoster reads and validates the roster file at the given path. A
// roster without a name is named after its file.
func LoadRoster(path string) (*Roster, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var roster Roster
	if err := yaml.Unmarshal(file, &roster); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}

	if roster.Name == "" {
		roster.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := roster.Validate(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"teams": len(roster.Teams),
	}).Debug("Loaded roster")

	return &roster, nil
}

// Find loads a roster given either the path to a roster file or the name
// of a saved roster.
func Find(name string) (*Roster, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return LoadRoster(name)
	}

	return Load(name)
}

// Load loads the saved roster with the given name from the roster
// directory. Files in the working directory are never considered.
func Load(name string) (*Roster, error) {
	roster, err := LoadRoster(rosterPath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, name)
	}

	return roster, err
}

// Save validates the roster and stores it in the roster directory, under
// its name.
func (roster *Roster) Save() error {
	if roster.Name == "" || strings.ContainsAny(roster.Name, `/\`) {
		return fmt.Errorf("save roster: invalid name %q", roster.Name)
	}

	if err := roster.Validate(); err != nil {
		return err
	}

	if err := common.TryMkdir(common.RosterDirectory()); err != nil {
		return err
	}

	file, err := yaml.Marshal(roster)
	if err != nil {
		return err
	}

	logrus.WithField("roster", roster.Name).Debug("Saving roster")
	return os.WriteFile(rosterPath(roster.Name), file, common.FilePermissions)
}

// List returns the names of all the saved rosters, in natural order.
func List() ([]string, error) {
	entries, err := os.ReadDir(common.RosterDirectory())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}

	slices.SortFunc(names, util.NaturalCompare)
	return names, nil
}

func rosterPath(name string) string {
	return filepath.Join(common.RosterDirectory(), name+".yaml")
}
