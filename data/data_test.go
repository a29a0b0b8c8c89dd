package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	sample, err := Sample()
	require.NoError(t, err)

	assert.Equal(t, 2025, sample.WrappedYear)
	assert.Positive(t, sample.StepsTotal)
	assert.Len(t, sample.StepsMonthly, 12)
	assert.NotNil(t, sample.ShortestSleepNight)
	assert.NotNil(t, sample.FastestPaceMinPerKm)
}
