package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("08:30")
	require.NoError(t, err)
	assert.Equal(t, "0 30 8 * * *", spec)
}

func TestBuildDailySpec_Invalid(t *testing.T) {
	for _, raw := range []string{"", "8", "25:00", "12:61", "ab:cd", "1:2:3"} {
		_, err := buildDailySpec(raw)
		assert.Error(t, err, raw)
	}
}

func TestScheduleInterval_RejectsNonPositive(t *testing.T) {
	s := NewScheduler(time.UTC)

	_, err := s.ScheduleInterval(0, func() {})
	assert.Error(t, err)
}
