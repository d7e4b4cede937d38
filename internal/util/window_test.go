package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetWindowMax(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	window.Append(1)
	window.Append(2)
	window.Append(3)

	// WHEN
	maximum := GetWindowMax(window)

	// THEN
	assert.Equal(t, 3.0, maximum)
}

func TestGetWindowAvg(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(4)
	window.Append(40)
	window.Append(50)
	window.Append(60)
	window.Append(70)

	// WHEN
	avg := GetWindowAvg(window)

	// THEN
	assert.Equal(t, 55.0, avg)
}

func TestFillWindow(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(5)

	// WHEN
	FillWindow(window, 5, 42)

	// THEN
	assert.Equal(t, 42.0, GetWindowAvg(window))
	assert.Equal(t, 42.0, GetWindowMax(window))
}

func TestWindowDropsOldValues(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(2)
	FillWindow(window, 2, 80)

	// WHEN
	window.Append(40)
	window.Append(50)

	// THEN
	assert.Equal(t, 50.0, GetWindowMax(window))
	assert.Equal(t, 45.0, GetWindowAvg(window))
}
