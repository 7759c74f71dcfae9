package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStart(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected int64
		wantErr  bool
	}{
		{name: "epoch", date: "01-01-1970", expected: 0},
		{name: "regular day", date: "10-03-2010", expected: 1268179200},
		{name: "next day", date: "11-03-2010", expected: 1268179200 + SecondsPerDay},
		{name: "single digit day and month", date: "1-3-2010", expected: 1267401600},
		{name: "leap day", date: "29-02-2012", expected: 1330473600},
		{name: "non leap year", date: "29-02-2011", wantErr: true},
		{name: "31st of a 30 day month", date: "31-04-2010", wantErr: true},
		{name: "month out of range", date: "10-13-2010", wantErr: true},
		{name: "missing year", date: "3-06", wantErr: true},
		{name: "missing separator", date: "103-2017", wantErr: true},
		{name: "time component", date: "10-03-2010 10:00", wantErr: true},
		{name: "iso order", date: "2010-03-10", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := DayStart(tt.date)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				assert.False(t, IsDate(tt.date))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ts)
			assert.True(t, IsDate(tt.date))
		})
	}
}

func TestDayStart_BucketWidth(t *testing.T) {
	start, err := DayStart("31-12-2015")
	require.NoError(t, err)
	next, err := DayStart("01-01-2016")
	require.NoError(t, err)
	assert.Equal(t, SecondsPerDay, next-start)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		days     int
		expected string
	}{
		{name: "zero offset normalizes", date: "1-3-2010", days: 0, expected: "01-03-2010"},
		{name: "forward", date: "10-03-2010", days: 3, expected: "13-03-2010"},
		{name: "across month", date: "30-04-2010", days: 1, expected: "01-05-2010"},
		{name: "across year", date: "31-12-2010", days: 1, expected: "01-01-2011"},
		{name: "backward", date: "10-03-2010", days: -10, expected: "28-02-2010"},
		{name: "leap year", date: "28-02-2012", days: 1, expected: "29-02-2012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Advance(tt.date, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Advance("32-01-2010", 1)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
