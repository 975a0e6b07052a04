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

// Package league turns rosters of named teams into round-robin pairings.
package league

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"laptudirm.com/x/mess/pkg/board/piece"

	"laptudirm.com/x/circle/pkg/circle"
)

// Pairing is a single game of a round. The first competitor of the
// underlying match plays white (or at home).
type Pairing struct {
	Board   int
	Players [piece.ColorN]string
}

func (pairing Pairing) White() string {
	return pairing.Players[piece.White]
}

func (pairing Pairing) Black() string {
	return pairing.Players[piece.Black]
}

func (pairing Pairing) String() string {
	return fmt.Sprintf("%s vs %s", pairing.White(), pairing.Black())
}

// Round is a round of pairings. Bye is the team sitting the round out, if
// there is one.
type Round struct {
	Number int
	Games  []Pairing
	Bye    string
}

func (round Round) String() string {
	games := make([]string, len(round.Games))
	for i, game := range round.Games {
		games[i] = game.String()
	}

	str := fmt.Sprintf("Round %d: %s", round.Number, strings.Join(games, ", "))
	if round.Bye != "" {
		str += fmt.Sprintf(" (bye: %s)", round.Bye)
	}

	return str
}

// Schedule returns the circle schedule used for the roster.
func Schedule(roster *Roster) (circle.Schedule, error) {
	if roster.FairBreak {
		return circle.NewWithFairBreak(len(roster.Teams))
	}

	return circle.New(len(roster.Teams))
}

// Pairings returns the pairings of every round of the roster's league,
// numbering rounds and boards from one.
func Pairings(roster *Roster) ([]Round, error) {
	if err := roster.Validate(); err != nil {
		return nil, err
	}

	schedule, err := Schedule(roster)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"roster": roster.Name,
		"teams":  len(roster.Teams),
		"mode":   schedule.Mode(),
	}).Debug("Generating pairings")

	rounds := make([]Round, 0, schedule.Rounds())
	for number, games := range schedule.EachRound() {
		round := Round{Number: number + 1}
		for board, game := range games {
			round.Games = append(round.Games, Pairing{
				Board: board + 1,
				Players: [piece.ColorN]string{
					piece.White: roster.Teams[game.First],
					piece.Black: roster.Teams[game.Second],
				},
			})
		}

		if bye, found := schedule.Bye(number); found {
			round.Bye = roster.Teams[bye]
		}

		rounds = append(rounds, round)
	}

	return rounds, nil
}
