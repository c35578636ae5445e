package timezone_test

import (
	"kasaglow/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	appTime := timezone.ToAppTime(time.Now().UTC())

	assert.Equal(t, timezone.GetLocation(), appTime.Location())
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(testTime, "2006-01-02 15:04:05 MST"))

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)
	assert.False(t, parsed.IsZero())
}

func TestParseDay(t *testing.T) {
	day, err := timezone.ParseDay("2024-06-10")
	require.NoError(t, err)

	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.June, day.Month())
	assert.Equal(t, 10, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, timezone.GetLocation(), day.Location())

	_, err = timezone.ParseDay("10/06/2024")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	in := time.Date(2024, 6, 10, 17, 45, 12, 99, loc)

	out := timezone.StartOfDay(in)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), out)
	assert.Equal(t, loc, out.Location())
}
