package circle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/circle/pkg/circle"
)

type teams uint8

func TestCount(t *testing.T) {
	valid := []struct {
		name string
		in   any
		want int
	}{
		{"int", 1, 1},
		{"zero", 0, 0},
		{"int8", int8(7), 7},
		{"int64", int64(64), 64},
		{"uint", uint(3), 3},
		{"named", teams(12), 12},
		{"integral float", 2.0, 2},
		{"integral float32", float32(6), 6},
		{"negative zero", math.Copysign(0, -1), 0},
		{"max", circle.MaxCompetitors, circle.MaxCompetitors},
	}

	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			got, err := circle.Count(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMaxCompetitors_LenFitsInt(t *testing.T) {
	n := uint64(circle.MaxCompetitors)
	assert.LessOrEqual(t, n*(n-1)/2, uint64(math.MaxInt))

	schedule, err := circle.New(circle.MaxCompetitors)
	require.NoError(t, err)
	assert.Positive(t, schedule.Len())
	assert.Equal(t, int(n*(n-1)/2), schedule.Len())
}

func TestCount_Errors(t *testing.T) {
	invalid := []struct {
		name string
		in   any
		want error
	}{
		{"negative", -1, circle.ErrOutOfRange},
		{"negative float", -3.0, circle.ErrOutOfRange},
		{"too large", int64(circle.MaxCompetitors) + 1, circle.ErrOutOfRange},
		{"too large unsigned", uint64(math.MaxUint64), circle.ErrOutOfRange},
		{"fractional", 2.5, circle.ErrInvalidType},
		{"negative fractional", -0.5, circle.ErrInvalidType},
		{"nan", math.NaN(), circle.ErrInvalidType},
		{"inf", math.Inf(1), circle.ErrInvalidType},
		{"numeric string", "-1", circle.ErrInvalidType},
		{"empty string", "", circle.ErrInvalidType},
		{"word", "foo", circle.ErrInvalidType},
		{"struct", struct{}{}, circle.ErrInvalidType},
		{"nil", nil, circle.ErrInvalidType},
		{"bool", true, circle.ErrInvalidType},
		{"pointer", new(int), circle.ErrInvalidType},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			got, err := circle.Count(tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, got)
		})
	}
}
