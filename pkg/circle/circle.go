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

// Package circle generates single round-robin schedules with the circle
// method. Competitors are identified by their index in [0, n); callers map
// those indices to real names.
//
// A schedule for n competitors contains every pair of competitors exactly
// once, split into rounds of n/2 matches. With an even n everyone plays in
// every one of the n-1 rounds. With an odd n there are n rounds and each
// competitor has the bye in exactly one of them.
//
// Schedules come in two modes. In Plain mode the order of the two
// competitors in a match carries no meaning. In FairBreak mode the first
// competitor is the home (or white) side, and sides are assigned so that
// every competitor has the same, minimal, number of breaks: one with an
// even n, none with an odd n.
package circle

import (
	"fmt"
	"iter"
)

// Match is a single pairing of two different competitors.
type Match struct {
	First, Second int
}

func (match Match) String() string {
	return fmt.Sprintf("%d vs %d", match.First, match.Second)
}

// Mode selects how competitors are ordered inside a match.
type Mode int

const (
	Plain Mode = iota
	FairBreak
)

// String returns a string representation of the given Mode.
func (mode Mode) String() string {
	switch mode {
	case Plain:
		return "plain"
	case FairBreak:
		return "fair-break"
	default:
		return "unknown"
	}
}

// Schedule is a lazily evaluated round-robin schedule. It holds nothing but
// the competitor count and the mode, so it is cheap to copy and safe to use
// from multiple goroutines. Every iteration starts afresh.
type Schedule struct {
	n    int
	mode Mode
}

// New returns the plain schedule for n competitors. n is normalized with
// Count, and the same errors are returned.
func New(n any) (Schedule, error) {
	return newSchedule(n, Plain)
}

// NewWithFairBreak returns the fair-break schedule for n competitors.
func NewWithFairBreak(n any) (Schedule, error) {
	return newSchedule(n, FairBreak)
}

func newSchedule(n any, mode Mode) (Schedule, error) {
	count, err := Count(n)
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{n: count, mode: mode}, nil
}

// Each calls onMatch with every match of the plain schedule for n
// competitors, in round order. Nothing is emitted if n is invalid. A nil
// onMatch only validates n; use New to obtain the schedule itself.
func Each(n any, onMatch func(first, second int)) error {
	schedule, err := New(n)
	if err != nil {
		return err
	}

	schedule.each(onMatch)
	return nil
}

// EachWithFairBreak is like Each but uses the fair-break schedule.
func EachWithFairBreak(n any, onMatch func(first, second int)) error {
	schedule, err := NewWithFairBreak(n)
	if err != nil {
		return err
	}

	schedule.each(onMatch)
	return nil
}

func (schedule Schedule) each(onMatch func(first, second int)) {
	if onMatch == nil {
		return
	}

	schedule.generate(func(first, second int) bool {
		onMatch(first, second)
		return true
	})
}

func (schedule Schedule) generate(yield func(first, second int) bool) bool {
	even := schedule.n%2 == 0

	switch {
	case schedule.mode == FairBreak && even:
		return fairBreakEven(schedule.n, yield)
	case schedule.mode == FairBreak:
		return fairBreakOdd(schedule.n, yield)
	case even:
		return plainEven(schedule.n, yield)
	default:
		return plainOdd(schedule.n, yield)
	}
}

// Competitors returns the number of competitors in the schedule.
func (schedule Schedule) Competitors() int {
	return schedule.n
}

func (schedule Schedule) Mode() Mode {
	return schedule.mode
}

// Len returns the total number of matches, n(n-1)/2.
func (schedule Schedule) Len() int {
	return schedule.n * (schedule.n - 1) / 2
}

// RoundSize returns the number of matches in every round.
func (schedule Schedule) RoundSize() int {
	return schedule.n / 2
}

// Rounds returns the number of rounds: n-1 for an even n, n for an odd n,
// and zero if there are no matches at all.
func (schedule Schedule) Rounds() int {
	switch {
	case schedule.n < 2:
		return 0
	case schedule.n%2 == 0:
		return schedule.n - 1
	default:
		return schedule.n
	}
}

// All returns an iterator over the first and second competitor of every
// match in the schedule.
func (schedule Schedule) All() iter.Seq2[int, int] {
	return func(yield func(first, second int) bool) {
		schedule.generate(yield)
	}
}

// Matches returns an iterator over every match in the schedule.
func (schedule Schedule) Matches() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		schedule.generate(func(first, second int) bool {
			return yield(Match{First: first, Second: second})
		})
	}
}

// EachRound returns an iterator over the rounds of the schedule, together
// with their zero-based index. Every round is a freshly allocated slice.
func (schedule Schedule) EachRound() iter.Seq2[int, []Match] {
	return func(yield func(int, []Match) bool) {
		size := schedule.RoundSize()
		if size == 0 {
			return
		}

		round := 0
		games := make([]Match, 0, size)
		schedule.generate(func(first, second int) bool {
			games = append(games, Match{First: first, Second: second})
			if len(games) < size {
				return true
			}

			if !yield(round, games) {
				return false
			}

			round++
			games = make([]Match, 0, size)
			return true
		})
	}
}

// Collect generates the whole schedule into a slice.
func (schedule Schedule) Collect() []Match {
	matches := make([]Match, 0, schedule.Len())
	for match := range schedule.Matches() {
		matches = append(matches, match)
	}

	return matches
}

// At returns the k-th match of the schedule. Like a slice index, it panics
// if k is not in [0, Len()).
func (schedule Schedule) At(k int) Match {
	if k < 0 || k >= schedule.Len() {
		panic(fmt.Sprintf("circle: match index %d out of range [0, %d)", k, schedule.Len()))
	}

	return matchAt(schedule.n, schedule.mode, k)
}

// Bye returns the competitor who doesn't play in the given round. It
// reports false if the schedule has no byes (an even n) or if the round
// doesn't exist.
func (schedule Schedule) Bye(round int) (int, bool) {
	if schedule.n%2 == 0 || round < 0 || round >= schedule.Rounds() {
		return 0, false
	}

	// seat i of the circle sits out round i
	return round, true
}
