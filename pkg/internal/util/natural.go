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

package util

import (
	"cmp"
	"regexp"
	"strconv"
)

var chunkRegexp = regexp.MustCompile(`(\d+|\D+)`)

// NaturalCompare compares two strings in natural order, so that numeric
// runs are compared by value: "round 2" sorts before "round 10". The result
// is negative, zero or positive like cmp.Compare.
func NaturalCompare(a, b string) int {
	chunksA := chunkRegexp.FindAllString(a, -1)
	chunksB := chunkRegexp.FindAllString(b, -1)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		x, y := chunksA[i], chunksB[i]

		numX, errX := strconv.Atoi(x)
		numY, errY := strconv.Atoi(y)

		// If both chunks are numeric, compare them as integers
		if errX == nil && errY == nil {
			if c := cmp.Compare(numX, numY); c != 0 {
				return c
			}

			continue
		}

		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
	}

	// One is a prefix of the other, the shorter one goes first.
	return cmp.Compare(len(chunksA), len(chunksB))
}
