package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Parallel()

	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	require.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"25:00", "12:61", "9:30:00", "noon", ""} {
		_, err := NewTimeStringFromString(bad)
		require.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeStringMinutes(t *testing.T) {
	t.Parallel()

	mins, err := TimeString("00:00").Minutes()
	require.NoError(t, err)
	require.Equal(t, 0, mins)

	mins, err = TimeString("18:45").Minutes()
	require.NoError(t, err)
	require.Equal(t, 18*60+45, mins)

	_, err = TimeString("bad").Minutes()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Parallel()

	ts, err := TimeString("23:30").AddMinutes(45)
	require.NoError(t, err)
	require.Equal(t, TimeString("00:15"), ts, "wraps past midnight")

	ts, err = TimeString("01:00").AddMinutes(-90)
	require.NoError(t, err)
	require.Equal(t, TimeString("23:30"), ts, "wraps backwards")
}

func TestTimeStringComparisons(t *testing.T) {
	t.Parallel()

	require.True(t, TimeString("09:00").IsBefore("18:00"))
	require.True(t, TimeString("18:00").IsAfter("09:00"))
	require.False(t, TimeString("09:00").IsAfter("09:00"))
	require.False(t, TimeString("bad").IsBefore("09:00"))
}

func TestTimeStringOnDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	at, err := TimeString("18:30").OnDate(date)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.July, 1, 18, 30, 0, 0, time.UTC), at)
}
