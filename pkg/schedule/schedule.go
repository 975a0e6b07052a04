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

// Package schedule provides pull style schedulers which hand out the
// encounters of a round-robin one at a time, for callers that drive a
// tournament loop themselves.
package schedule

import (
	"fmt"

	"laptudirm.com/x/circle/pkg/circle"
)

// New returns the Scheduler with the given name.
func New(name string) (Scheduler, error) {
	switch name {
	case "round-robin", "":
		return &RoundRobin{}, nil
	case "fair-break":
		return &FairBreak{}, nil
	default:
		return nil, fmt.Errorf("new scheduler: invalid scheduler %s", name)
	}
}

// Scheduler hands out the encounters of a tournament in order. Initialize
// must be called with the number of players before anything else, and
// NextEncounter may be called TotalEncounters times after that.
type Scheduler interface {
	Initialize(int)
	NextEncounter() (int, int)
	TotalEncounters() int
}

// RoundRobin schedules a plain single round-robin.
type RoundRobin struct {
	cursor
}

func (rr *RoundRobin) Initialize(n int) {
	rr.reset(n, circle.Plain)
}

// FairBreak schedules a single round-robin where the first player of every
// encounter is the home side, and all players have the same number of
// breaks.
type FairBreak struct {
	cursor
}

func (fb *FairBreak) Initialize(n int) {
	fb.reset(n, circle.FairBreak)
}

// cursor walks a circle.Schedule by index.
type cursor struct {
	schedule circle.Schedule
	number   int
}

func (c *cursor) reset(n int, mode circle.Mode) {
	var err error
	switch mode {
	case circle.FairBreak:
		c.schedule, err = circle.NewWithFairBreak(n)
	default:
		c.schedule, err = circle.New(n)
	}

	if err != nil {
		panic(err)
	}

	c.number = 0
}

// NextEncounter returns the players of the next encounter. It panics once
// all the encounters have been handed out.
func (c *cursor) NextEncounter() (int, int) {
	match := c.schedule.At(c.number)
	c.number++
	return match.First, match.Second
}

func (c *cursor) TotalEncounters() int {
	return c.schedule.Len()
}

// Round returns the zero-based round of the last encounter handed out.
func (c *cursor) Round() int {
	size := c.schedule.RoundSize()
	if size == 0 || c.number == 0 {
		return 0
	}

	return (c.number - 1) / size
}
