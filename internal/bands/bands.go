package bands

import (
	"fmt"

	"github.com/openvoiceos/mk2fan/internal/configuration"
)

// Band is a temperature interval mapped to a fixed fan speed.
type Band struct {
	Speed int `json:"speed"`
	// Bounded is false for the last band, which matches any temperature
	Bounded   bool    `json:"bounded"`
	Bound     float64 `json:"bound,omitempty"`
	Inclusive bool    `json:"inclusive,omitempty"`
}

// Matches returns true if the given temperature is within the upper bound of this band.
func (b Band) Matches(temperature float64) bool {
	if !b.Bounded {
		return true
	}
	if b.Inclusive {
		return temperature <= b.Bound
	}
	return temperature < b.Bound
}

// Table selects exactly one speed for every temperature: bands are checked in order
// and the first band whose bound holds wins.
type Table struct {
	bands []Band
}

// NewTable creates a Table from the given configuration.
// Invalid configurations are returned as *configuration.ConfigError.
func NewTable(config []configuration.BandConfig) (*Table, error) {
	if err := configuration.ValidateBands(config); err != nil {
		return nil, err
	}

	table := &Table{
		bands: make([]Band, 0, len(config)),
	}
	for _, c := range config {
		bound, inclusive := c.Bound()
		table.bands = append(table.bands, Band{
			Speed:     c.Speed,
			Bounded:   c.IsBounded(),
			Bound:     bound,
			Inclusive: inclusive,
		})
	}
	return table, nil
}

// Evaluate returns the speed of the band the given temperature falls into.
func (t *Table) Evaluate(temperature float64) int {
	return t.Select(temperature).Speed
}

// Select returns the band the given temperature falls into.
func (t *Table) Select(temperature float64) Band {
	return t.bands[t.SelectIndex(temperature)]
}

// SelectIndex returns the index of the band the given temperature falls into.
func (t *Table) SelectIndex(temperature float64) int {
	for i, band := range t.bands {
		if band.Matches(temperature) {
			return i
		}
	}
	// unreachable, validation guarantees an unbounded last band
	return len(t.bands) - 1
}

// Bands returns a copy of the bands of this table, in evaluation order.
func (t *Table) Bands() []Band {
	result := make([]Band, len(t.bands))
	copy(result, t.bands)
	return result
}

// MaxSpeed returns the highest speed any band of this table applies.
func (t *Table) MaxSpeed() int {
	result := t.bands[0].Speed
	for _, band := range t.bands {
		if band.Speed > result {
			result = band.Speed
		}
	}
	return result
}

// Describe returns a human readable interval for the band at the given index, e.g. "50.0 <= t < 60.0".
func (t *Table) Describe(index int) string {
	band := t.bands[index]

	lower := ""
	if index > 0 {
		prev := t.bands[index-1]
		if prev.Inclusive {
			lower = fmt.Sprintf("%.1f < ", prev.Bound)
		} else {
			lower = fmt.Sprintf("%.1f <= ", prev.Bound)
		}
	}

	upper := ""
	if band.Bounded {
		if band.Inclusive {
			upper = fmt.Sprintf(" <= %.1f", band.Bound)
		} else {
			upper = fmt.Sprintf(" < %.1f", band.Bound)
		}
	}

	if len(lower) <= 0 && len(upper) <= 0 {
		return "any t"
	}
	return lower + "t" + upper
}
