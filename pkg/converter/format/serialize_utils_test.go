package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatToFixedWidthString(t *testing.T) {
	assert.Equal(t, "       1.5", FloatToFixedWidthString(1.5, 10))
	assert.Equal(t, "   -0.25", FloatToFixedWidthString(-0.25, 8))
}

func TestFloatToPrecisionString(t *testing.T) {
	assert.Equal(t, "0.5", FloatToPrecisionString(0.5, 12))
	assert.Equal(t, "1234.57", FloatToPrecisionString(1234.5678, 6))
	assert.Equal(t, "-3", FloatToPrecisionString(-3, 12))
}
