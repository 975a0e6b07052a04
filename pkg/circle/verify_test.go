package circle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify_UnfairBreaks(t *testing.T) {
	plain := Schedule{n: 6, mode: Plain}

	// competitor 5 is always second in the plain schedule
	assert.Equal(t, 4, Breaks(plain)[5])

	err := verifyMatches(6, FairBreak, plain.Collect())
	assert.ErrorIs(t, err, ErrUnfairBreaks)
}

func TestVerify_Broken(t *testing.T) {
	good := Schedule{n: 4, mode: Plain}.Collect()

	twice := append([]Match(nil), good...)
	twice[3] = Match{First: 1, Second: 2}
	assert.ErrorIs(t, verifyMatches(4, Plain, twice), ErrRoundParticipation)

	repeated := append([]Match(nil), good...)
	repeated[2], repeated[3] = Match{First: 0, Second: 3}, Match{First: 1, Second: 2}
	assert.ErrorIs(t, verifyMatches(4, Plain, repeated), ErrDuplicatePair)

	invalid := append([]Match(nil), good...)
	invalid[0] = Match{First: 0, Second: 0}
	assert.ErrorIs(t, verifyMatches(4, Plain, invalid), ErrInvalidMatch)

	outside := append([]Match(nil), good...)
	outside[0] = Match{First: 0, Second: 4}
	assert.ErrorIs(t, verifyMatches(4, Plain, outside), ErrInvalidMatch)

	assert.ErrorIs(t, verifyMatches(4, Plain, good[:4]), ErrMissingPair)
	assert.NoError(t, verifyMatches(4, Plain, good))
}

func TestVerify_Odd(t *testing.T) {
	assert.ErrorIs(t, verifyMatches(3, Plain, []Match{{1, 2}, {1, 2}}), ErrDuplicatePair)
	assert.NoError(t, verifyMatches(3, Plain, []Match{{1, 2}, {2, 0}, {1, 0}}))
}
