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
	"math"
	"reflect"
	"strconv"
)

// MaxCompetitors is the largest competitor count accepted by Count. It uses
// half the bits of an int, which keeps the number of matches, n(n-1)/2,
// representable as an int on both 32 and 64 bit platforms.
const MaxCompetitors = 1<<(strconv.IntSize/2-1) - 1

// Count converts v into a competitor count. Any integer kind is accepted,
// as are floating point values which hold an exact integer, like 2.0.
// Values which can't be converted, including fractional floats, fail with
// ErrInvalidType; negative or oversized values fail with ErrOutOfRange.
func Count(v any) (int, error) {
	value := reflect.ValueOf(v)

	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := value.Int()
		if n < 0 || n > MaxCompetitors {
			return 0, fmt.Errorf("%w: %d must be in [0, %d]", ErrOutOfRange, n, MaxCompetitors)
		}

		return int(n), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := value.Uint()
		if n > MaxCompetitors {
			return 0, fmt.Errorf("%w: %d must be in [0, %d]", ErrOutOfRange, n, MaxCompetitors)
		}

		return int(n), nil

	case reflect.Float32, reflect.Float64:
		f := value.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %v has no exact integer value", ErrInvalidType, f)
		}

		if f < 0 || f > MaxCompetitors {
			return 0, fmt.Errorf("%w: %v must be in [0, %d]", ErrOutOfRange, f, MaxCompetitors)
		}

		return int(f), nil

	default:
		return 0, fmt.Errorf("%w: no implicit conversion of %T into int", ErrInvalidType, v)
	}
}
