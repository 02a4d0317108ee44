package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolume(t *testing.T) {
	v, err := Volume(100, 65000.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0015384497, v, 1e-10)
	assert.Equal(t, "0.00153845", FormatVolume(v))
}

func TestVolume_Rejects(t *testing.T) {
	_, err := Volume(0, 65000)
	assert.ErrorIs(t, err, ErrNonPositiveSpend)

	_, err = Volume(-5, 65000)
	assert.ErrorIs(t, err, ErrNonPositiveSpend)

	_, err = Volume(math.NaN(), 65000)
	assert.ErrorIs(t, err, ErrNonPositiveSpend)

	_, err = Volume(100, 0)
	assert.ErrorIs(t, err, ErrNonPositivePrice)

	_, err = Volume(100, math.Inf(1))
	assert.ErrorIs(t, err, ErrNonPositivePrice)
}

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "1.00000000", FormatVolume(1))
	assert.Equal(t, "0.00000001", FormatVolume(0.00000001))
}
