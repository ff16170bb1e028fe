package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 5.51, RoundWithTwoDecimalPlace(5.512345))
	assert.Equal(t, 5.52, RoundWithTwoDecimalPlace(5.515))
}

func TestRoundWithDecimalPlaces(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithDecimalPlaces(0, 4))
	assert.Equal(t, 1.2346, RoundWithDecimalPlaces(1.23456789, 4))
	assert.Equal(t, 1.0, RoundWithDecimalPlaces(1.23456789, 0))
}
