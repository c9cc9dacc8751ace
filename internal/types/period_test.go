package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod_FullForm(t *testing.T) {
	p, err := ParsePeriod("2022-01")
	require.NoError(t, err)
	assert.Equal(t, 2022, p.Year)
	assert.Equal(t, time.January, p.Month)
	assert.False(t, p.IsZero())
}

func TestParsePeriod_YearOnly(t *testing.T) {
	p, err := ParsePeriod("2019")
	require.NoError(t, err)
	assert.Equal(t, 2019, p.Year)
	assert.Equal(t, time.Month(0), p.Month)
	assert.Equal(t, "2019", p.Display())
}

func TestParsePeriod_OpenEndedSentinels(t *testing.T) {
	// Every spelling of the sentinel must render as "Present".
	for _, input := range []string{"", "present", "Present", "CURRENT", "ongoing", "  present  "} {
		t.Run("input_"+input, func(t *testing.T) {
			p, err := ParsePeriod(input)
			require.NoError(t, err)
			assert.True(t, p.IsZero())
			assert.Equal(t, "Present", p.Display())
		})
	}
}

func TestParsePeriod_SlashSeparator(t *testing.T) {
	p, err := ParsePeriod("2020/06")
	require.NoError(t, err)
	assert.Equal(t, "Jun 2020", p.Display())
}

func TestParsePeriod_Malformed(t *testing.T) {
	for _, input := range []string{"January 2020", "20-01", "2020-13", "soon"} {
		t.Run("input_"+input, func(t *testing.T) {
			_, err := ParsePeriod(input)
			assert.Error(t, err)
		})
	}
}

func TestPeriod_Display(t *testing.T) {
	p := Period{Year: 2022, Month: time.January}
	assert.Equal(t, "Jan 2022", p.Display())

	p = Period{Year: 2023, Month: time.December}
	assert.Equal(t, "Dec 2023", p.Display())
}

func TestPeriod_Before(t *testing.T) {
	jan := Period{Year: 2022, Month: time.January}
	jun := Period{Year: 2022, Month: time.June}
	open := Period{}

	assert.True(t, jan.Before(jun))
	assert.False(t, jun.Before(jan))
	assert.False(t, jan.Before(jan))

	// Open-ended sorts after any concrete period.
	assert.True(t, jan.Before(open))
	assert.False(t, open.Before(jan))
	assert.False(t, open.Before(open))
}
