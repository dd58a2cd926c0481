package yearmonth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		wantYear  int
		wantMonth time.Month
	}{
		{"2024-01", 2024, time.January},
		{"2024-1", 2024, time.January},
		{"2024/07", 2024, time.July},
		{"2024.12", 2024, time.December},
		{"202402", 2024, time.February},
		{"2024-08-15", 2024, time.August},
		{"2024/3/5", 2024, time.March},
		{"2024.11.30", 2024, time.November},
		{"20230904", 2023, time.September},
		{"2024-01-15 00:00:00", 2024, time.January},
		{"2024-05-01T09:00:00+09:00", 2024, time.May},
		{"2024년 1월", 2024, time.January},
		{"2024년10월", 2024, time.October},
		{"2024년 3월 2일", 2024, time.March},
		{"  2024-06  ", 2024, time.June},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.wantYear, got.Year, "Parse(%q) year", tt.in)
		assert.Equal(t, tt.wantMonth, got.Month, "Parse(%q) month", tt.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "NOTADATE", "2024-13", "2024-00", "2024년 13월", "24-01", "2024-01-32"} {
		_, err := Parse(in)
		assert.Error(t, err, "Parse(%q) should fail", in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "2024-01", YearMonth{Year: 2024, Month: time.January}.String())
	assert.Equal(t, "0999-12", YearMonth{Year: 999, Month: time.December}.String())
}

func TestNew(t *testing.T) {
	_, err := New(2024, 0)
	assert.Error(t, err)
	_, err = New(2024, 13)
	assert.Error(t, err)

	ym, err := New(2024, time.July)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), ym.Time())
}

func TestBefore(t *testing.T) {
	a := MustParse("2023-12")
	b := MustParse("2024-01")
	c := MustParse("2024-02")

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, c.Before(a))
	assert.False(t, b.Before(b))
}

func TestIsZero(t *testing.T) {
	assert.True(t, YearMonth{}.IsZero())
	assert.False(t, MustParse("2024-01").IsZero())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("bogus") })
}
