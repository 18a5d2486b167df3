package chrono_test

import (
	"testing"

	"github.com/dmitrymomot/pensionkit/pkg/chrono"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		value   int
		want    chrono.Month
		wantErr error
	}{
		{name: "january", value: 1, want: chrono.January},
		{name: "december", value: 12, want: chrono.December},
		{name: "zero", value: 0, wantErr: chrono.ErrOutOfRange},
		{name: "thirteen", value: 13, wantErr: chrono.ErrOutOfRange},
		{name: "negative", value: -3, wantErr: chrono.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := chrono.NewMonth(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestMonthDays(t *testing.T) {
	t.Parallel()

	leap, err := chrono.NewYear(2024)
	require.NoError(t, err)
	common, err := chrono.NewYear(2025)
	require.NoError(t, err)

	tests := []struct {
		month      chrono.Month
		daysLeap   int
		daysCommon int
	}{
		{month: chrono.January, daysLeap: 31, daysCommon: 31},
		{month: chrono.February, daysLeap: 29, daysCommon: 28},
		{month: chrono.March, daysLeap: 31, daysCommon: 31},
		{month: chrono.April, daysLeap: 30, daysCommon: 30},
		{month: chrono.May, daysLeap: 31, daysCommon: 31},
		{month: chrono.June, daysLeap: 30, daysCommon: 30},
		{month: chrono.July, daysLeap: 31, daysCommon: 31},
		{month: chrono.August, daysLeap: 31, daysCommon: 31},
		{month: chrono.September, daysLeap: 30, daysCommon: 30},
		{month: chrono.October, daysLeap: 31, daysCommon: 31},
		{month: chrono.November, daysLeap: 30, daysCommon: 30},
		{month: chrono.December, daysLeap: 31, daysCommon: 31},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.daysLeap, tt.month.Days(leap))
			assert.Equal(t, tt.daysCommon, tt.month.Days(common))
		})
	}
}

func TestMonthAdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		month     chrono.Month
		add       int
		want      chrono.Month
		wantCarry int
	}{
		{name: "within year", month: chrono.June, add: 5, want: chrono.November},
		{name: "into next year", month: chrono.June, add: 7, want: chrono.January, wantCarry: 1},
		{name: "december wraps", month: chrono.December, add: 1, want: chrono.January, wantCarry: 1},
		{name: "january backwards", month: chrono.January, add: -1, want: chrono.December, wantCarry: -1},
		{name: "two years back", month: chrono.June, add: -24, want: chrono.June, wantCarry: -2},
		{name: "noop", month: chrono.June, add: 0, want: chrono.June},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, carry := tt.month.Add(tt.add)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCarry, carry)
		})
	}
}

func TestMonthString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "January", chrono.January.String())
	assert.Equal(t, "December", chrono.December.String())
	assert.Equal(t, "%!Month(13)", chrono.Month(13).String())
}

func TestMonthOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, chrono.January < chrono.February)
	assert.True(t, chrono.November < chrono.December)
	assert.Equal(t, 1, chrono.January.Int())
}
