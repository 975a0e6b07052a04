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

import "errors"

var (
	// ErrInvalidType is returned when a competitor count can't be
	// interpreted as an integer at all.
	ErrInvalidType = errors.New("circle: competitor count is not an integer")
	// ErrOutOfRange is returned when a competitor count is an integer but
	// is negative or too large to schedule.
	ErrOutOfRange = errors.New("circle: competitor count out of range")

	ErrInvalidMatch       = errors.New("circle: match has an invalid competitor")
	ErrDuplicatePair      = errors.New("circle: pair scheduled more than once")
	ErrMissingPair        = errors.New("circle: pair never scheduled")
	ErrRoundParticipation = errors.New("circle: competitor plays more than once in a round")
	ErrUnfairBreaks       = errors.New("circle: competitors have different numbers of breaks")
)
