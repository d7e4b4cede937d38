package bands

import (
	"errors"
	"math"
	"testing"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDefaultTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(configuration.DefaultBands())
	require.NoError(t, err)
	return table
}

func TestTable_Evaluate_Boundaries(t *testing.T) {
	// GIVEN
	table := createDefaultTable(t)

	tests := []struct {
		temperature float64
		expected    int
	}{
		{49.9, 0},
		{50.0, 25},
		{59.9, 25},
		{60.0, 50},
		{70.0, 50},
		{70.1, 100},
	}

	for _, tt := range tests {
		// WHEN
		result := table.Evaluate(tt.temperature)

		// THEN
		assert.Equal(t, tt.expected, result, "temperature %.1f", tt.temperature)
	}
}

func TestTable_Evaluate_Extremes(t *testing.T) {
	// GIVEN
	table := createDefaultTable(t)

	// THEN
	assert.Equal(t, 0, table.Evaluate(-40))
	assert.Equal(t, 0, table.Evaluate(math.Inf(-1)))
	assert.Equal(t, 100, table.Evaluate(150))
	assert.Equal(t, 100, table.Evaluate(math.Inf(1)))
}

func TestTable_Evaluate_IsTotal(t *testing.T) {
	// GIVEN
	table := createDefaultTable(t)
	bands := table.Bands()

	for temperature := -20.0; temperature <= 120.0; temperature += 0.05 {
		// WHEN
		matching := 0
		for _, band := range bands {
			if band.Matches(temperature) {
				matching++
			}
		}

		// THEN
		// the first matching band wins, so at least one has to match
		assert.GreaterOrEqual(t, matching, 1, "temperature %f", temperature)
	}
}

func TestTable_Evaluate_SingleBand(t *testing.T) {
	// GIVEN
	table, err := NewTable([]configuration.BandConfig{{Speed: 42}})
	require.NoError(t, err)

	// THEN
	assert.Equal(t, 42, table.Evaluate(-10))
	assert.Equal(t, 42, table.Evaluate(90))
}

func TestNewTable_InvalidConfig(t *testing.T) {
	// GIVEN
	config := []configuration.BandConfig{
		{Speed: 0},
		{Speed: 100},
	}

	// WHEN
	table, err := NewTable(config)

	// THEN
	assert.Nil(t, table)
	var configErr *configuration.ConfigError
	assert.True(t, errors.As(err, &configErr))
}

func TestTable_MaxSpeed(t *testing.T) {
	// GIVEN
	table := createDefaultTable(t)

	// WHEN
	result := table.MaxSpeed()

	// THEN
	assert.Equal(t, 100, result)
}

func TestTable_Describe(t *testing.T) {
	// GIVEN
	table := createDefaultTable(t)

	// THEN
	assert.Equal(t, "t < 50.0", table.Describe(0))
	assert.Equal(t, "50.0 <= t < 60.0", table.Describe(1))
	assert.Equal(t, "60.0 <= t <= 70.0", table.Describe(2))
	assert.Equal(t, "70.0 < t", table.Describe(3))
}

func TestTable_Bands_ReturnsCopy(t *testing.T) {
	// GIVEN
	table := createDefaultTable(t)

	// WHEN
	bands := table.Bands()
	bands[0].Speed = 100

	// THEN
	assert.Equal(t, 0, table.Evaluate(20))
}

func TestTable_SelectIndex(t *testing.T) {
	// GIVEN
	table, err := NewTable(configuration.DefaultBands())
	require.NoError(t, err)

	// THEN
	assert.Equal(t, 0, table.SelectIndex(20))
	assert.Equal(t, 1, table.SelectIndex(55))
	assert.Equal(t, 2, table.SelectIndex(70))
	assert.Equal(t, 3, table.SelectIndex(70.1))
}
