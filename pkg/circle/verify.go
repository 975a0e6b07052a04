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

import (
	"fmt"
	"slices"
)

// Verify enumerates the schedule and checks that it is a valid single
// round-robin: every pair plays exactly once and nobody plays twice in a
// round, which also leaves everyone with exactly one bye when the number
// of competitors is odd. Fair-break schedules must also give every
// competitor the expected number of breaks.
//
// Verify keeps the whole schedule in memory, so it is meant for test sized
// schedules.
func Verify(schedule Schedule) error {
	return verifyMatches(schedule.n, schedule.mode, schedule.Collect())
}

func verifyMatches(n int, mode Mode, matches []Match) error {
	total := n * (n - 1) / 2
	seen := make([]bool, total)

	played := 0
	for round, games := range slices.Collect(slices.Chunk(matches, max(n/2, 1))) {
		present := make([]bool, n)

		for _, game := range games {
			a, b := game.First, game.Second
			if a < 0 || a >= n || b < 0 || b >= n || a == b {
				return fmt.Errorf("%w: %v in round %d", ErrInvalidMatch, game, round)
			}

			if present[a] || present[b] {
				return fmt.Errorf("%w: %v in round %d", ErrRoundParticipation, game, round)
			}
			present[a], present[b] = true, true

			if a > b {
				a, b = b, a
			}

			// index of the pair (a, b), a < b, in a triangular layout
			pair := b*(b-1)/2 + a
			if seen[pair] {
				return fmt.Errorf("%w: %v in round %d", ErrDuplicatePair, game, round)
			}

			seen[pair] = true
			played++
		}
	}

	if played != total {
		return fmt.Errorf("%w: %d of %d pairs played", ErrMissingPair, played, total)
	}

	if mode == FairBreak {
		want := ExpectedBreaks(n)
		for competitor, count := range countBreaks(n, slices.Values(matches)) {
			if count != want {
				return fmt.Errorf("%w: competitor %d has %d, want %d", ErrUnfairBreaks, competitor, count, want)
			}
		}
	}

	return nil
}
