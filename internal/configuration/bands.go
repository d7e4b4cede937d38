package configuration

// BandConfig maps a temperature interval to a fixed fan speed.
// Bands are evaluated in order, the first band whose bound holds wins:
// Below means t < Below, UpTo means t <= UpTo, no bound matches everything
// and is only allowed on the last band.
type BandConfig struct {
	Speed int      `json:"speed" yaml:"speed"`
	Below *float64 `json:"below,omitempty" yaml:"below,omitempty"`
	UpTo  *float64 `json:"upTo,omitempty" yaml:"upTo,omitempty"`
}

// IsBounded returns true if this band has an upper temperature bound.
func (b BandConfig) IsBounded() bool {
	return b.Below != nil || b.UpTo != nil
}

// Bound returns the upper temperature bound of this band and whether it is inclusive.
func (b BandConfig) Bound() (value float64, inclusive bool) {
	if b.UpTo != nil {
		return *b.UpTo, true
	}
	if b.Below != nil {
		return *b.Below, false
	}
	return 0, false
}

// DefaultBands returns the SJ201 table:
//
//	t < 50       ->   0%
//	50 <= t < 60 ->  25%
//	60 <= t <= 70 -> 50%
//	t > 70       -> 100%
func DefaultBands() []BandConfig {
	return []BandConfig{
		{Speed: 0, Below: float64Ptr(50)},
		{Speed: 25, Below: float64Ptr(60)},
		{Speed: 50, UpTo: float64Ptr(70)},
		{Speed: 100},
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
