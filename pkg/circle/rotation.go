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

// The generators below all share the same shape: yield is called with every
// match of the schedule in round-major order, and generation stops early if
// yield returns false. The return value reports whether generation ran to
// completion.
//
// For an even number of competitors, competitor n-1 is fixed and the other
// m = n-1 competitors are seated around a circle. In round i the fixed
// competitor plays whoever sits at seat i, and the rest are paired off
// walking inwards from both sides of seat i (q clockwise, r anti-clockwise).
//
// For an odd number of competitors nobody is fixed: all n are seated around
// the circle and whoever sits at seat i has the bye in round i.

func plainEven(n int, yield func(first, second int) bool) bool {
	m := n - 1
	for i := 0; i < m; i++ {
		if !yield(i, m) {
			return false
		}

		q, r := i+1, i+n-2
		for k := 0; k < n/2-1; k++ {
			if !yield(q%m, r%m) {
				return false
			}

			q++
			r--
		}
	}

	return true
}

func plainOdd(n int, yield func(first, second int) bool) bool {
	for i := 0; i < n; i++ {
		q, r := i+1, i+n-1
		for k := 0; k < (n-1)/2; k++ {
			if !yield(q%n, r%n) {
				return false
			}

			q++
			r--
		}
	}

	return true
}

// fairBreakEven orders every pair so that each competitor ends up with
// exactly one break. The fixed competitor alternates sides every round,
// except that round 0 and round 1 both have it second; the circle pairs
// alternate orientation with their distance from the anchor seat.
func fairBreakEven(n int, yield func(first, second int) bool) bool {
	m := n - 1
	for i := 0; i < m; i++ {
		first, second := i, m
		if i != 0 && i%2 == 0 {
			first, second = m, i
		}

		if !yield(first, second) {
			return false
		}

		q, r := i+1, i+n-2
		for k := 0; k < n/2-1; k++ {
			first, second = q%m, r%m
			if k%2 == 0 {
				first, second = second, first
			}

			if !yield(first, second) {
				return false
			}

			q++
			r--
		}
	}

	return true
}

// fairBreakOdd orders every pair so that no competitor has a break.
func fairBreakOdd(n int, yield func(first, second int) bool) bool {
	for i := 0; i < n; i++ {
		q, r := i+1, i+n-1
		for k := 0; k < (n-1)/2; k++ {
			first, second := q%n, r%n
			if k%2 == 0 {
				first, second = second, first
			}

			if !yield(first, second) {
				return false
			}

			q++
			r--
		}
	}

	return true
}

// matchAt computes the k-th match of the schedule in closed form, without
// generating the k-1 matches before it. It uses the same seating as the
// generators above.
func matchAt(n int, mode Mode, k int) Match {
	size := n / 2
	i, j := k/size, k%size

	if n%2 == 1 {
		q, r := i+1+j, i+n-1-j
		if mode == FairBreak && j%2 == 0 {
			return Match{First: r % n, Second: q % n}
		}

		return Match{First: q % n, Second: r % n}
	}

	m := n - 1
	if j == 0 {
		if mode == FairBreak && i != 0 && i%2 == 0 {
			return Match{First: m, Second: i}
		}

		return Match{First: i, Second: m}
	}

	j-- // index among the circle pairs
	q, r := i+1+j, i+n-2-j
	if mode == FairBreak && j%2 == 0 {
		return Match{First: r % m, Second: q % m}
	}

	return Match{First: q % m, Second: r % m}
}
