package tax

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodRange(t *testing.T) {
	cases := []struct {
		period Period
		from   time.Time
		to     time.Time
	}{
		{"1T", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"4T", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"02", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"12", time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"0A", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			from, to, err := tc.period.Range(2026)
			require.NoError(t, err)
			assert.Equal(t, tc.from, from)
			assert.Equal(t, tc.to, to)
		})
	}
}

func TestPeriodRangeLeapFebruary(t *testing.T) {
	_, to, err := Period("02").Range(2028)
	require.NoError(t, err)
	assert.Equal(t, 29, to.Day())
}

func TestPeriodInvalid(t *testing.T) {
	for _, p := range []Period{"", "5T", "0T", "13", "00", "1", "anual"} {
		_, _, err := p.Range(2026)
		assert.Error(t, err, "period %q", p)
		assert.False(t, p.Valid())
	}
	assert.True(t, Period("3T").Valid())
}
