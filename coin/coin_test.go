package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvault/mvault/errors"
)

func TestAddCoin(t *testing.T) {
	base := NewCoin(17, 2345566, "DEF")

	cases := map[string]struct {
		a, b    Coin
		wantRes Coin
		wantErr *errors.Error
	}{
		"plain addition": {
			a:       base,
			b:       NewCoin(1, 1, "DEF"),
			wantRes: NewCoin(18, 2345567, "DEF"),
		},
		"wrong currency": {
			a:       base,
			b:       NewCoin(42, 0, "ABC"),
			wantErr: errors.ErrCurrency,
		},
		"fractional carry": {
			a:       NewCoin(1, MaxFrac, "DEF"),
			b:       NewCoin(0, 1, "DEF"),
			wantRes: NewCoin(2, 0, "DEF"),
		},
		"whole overflow": {
			a:       NewCoin(MaxInt, 0, "DEF"),
			b:       NewCoin(1, 0, "DEF"),
			wantErr: errors.ErrOverflow,
		},
		"zero without ticker is neutral": {
			a:       Coin{},
			b:       base,
			wantRes: base,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.wantRes.Equals(res), "got %s", res)
		})
	}
}

func TestSubtractCoin(t *testing.T) {
	a := NewCoin(5, 0, "POOL")
	b := NewCoin(2, 500000000, "POOL")

	res, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, NewCoin(2, 500000000, "POOL").Equals(res))

	// Subtracting below zero is representable and flagged by the sign.
	res, err = b.Subtract(a)
	require.NoError(t, err)
	assert.False(t, res.IsNonNegative())

	// The negation cancels out.
	sum, err := res.Add(res.Negative())
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 1, NewCoin(2, 0, "X").Compare(NewCoin(1, MaxFrac, "X")))
	assert.Equal(t, -1, NewCoin(1, 1, "X").Compare(NewCoin(1, 2, "X")))
	assert.Equal(t, 0, NewCoin(1, 1, "X").Compare(NewCoin(1, 1, "X")))
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid": {
			coin: NewCoin(1, 0, "GOOD"),
		},
		"bad ticker": {
			coin:    NewCoin(1, 0, "x"),
			wantErr: errors.ErrCurrency,
		},
		"out of range": {
			coin:    NewCoin(MaxInt+1, 0, "GOOD"),
			wantErr: errors.ErrOverflow,
		},
		"mismatched sign": {
			coin:    NewCoin(1, -1, "GOOD"),
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
			}
		})
	}
}
