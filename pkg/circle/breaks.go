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

package circle

import "iter"

// Role is the side a competitor takes in a round.
type Role int

const (
	Bye Role = iota
	Home
	Away
)

// String returns the one letter code of the Role used in role charts.
func (role Role) String() string {
	switch role {
	case Home:
		return "h"
	case Away:
		return "a"
	default:
		return "-"
	}
}

// Roles returns the role chart of the schedule: Roles(s)[round][competitor]
// is the side the competitor takes in that round, Bye if it doesn't play.
func Roles(schedule Schedule) [][]Role {
	chart := make([][]Role, 0, schedule.Rounds())
	for _, games := range schedule.EachRound() {
		roles := make([]Role, schedule.n)
		for _, game := range games {
			roles[game.First] = Home
			roles[game.Second] = Away
		}

		chart = append(chart, roles)
	}

	return chart
}

// Breaks returns the number of breaks of every competitor. A break is two
// consecutive appearances of a competitor on the same side; a bye round
// does not interrupt a run of appearances.
func Breaks(schedule Schedule) []int {
	return countBreaks(schedule.n, schedule.Matches())
}

func countBreaks(n int, matches iter.Seq[Match]) []int {
	breaks := make([]int, n)
	last := make([]Role, n)

	update := func(competitor int, role Role) {
		if last[competitor] == role {
			breaks[competitor]++
		}

		last[competitor] = role
	}

	for match := range matches {
		update(match.First, Home)
		update(match.Second, Away)
	}

	return breaks
}

// ExpectedBreaks returns the number of breaks every competitor should have
// in a fair-break schedule for n competitors.
func ExpectedBreaks(n int) int {
	if n%2 == 0 && n >= 4 {
		return 1
	}

	return 0
}
