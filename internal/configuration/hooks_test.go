package configuration

import (
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, input map[string]interface{}) (Configuration, error) {
	t.Helper()
	var result Configuration
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decodeHooks(),
		Result:     &result,
	})
	assert.NoError(t, err)
	err = decoder.Decode(input)
	return result, err
}

func TestDecodeI2cAddressFromHexString(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"fan": map[string]interface{}{
			"id": "sj201",
			"i2c": map[string]interface{}{
				"bus":      1,
				"address":  "0x04",
				"register": 101,
			},
		},
	}

	// WHEN
	config, err := decode(t, input)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, I2cAddress(4), config.Fan.I2c.Address)
}

func TestDecodeI2cAddressFromInt(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"fan": map[string]interface{}{
			"i2c": map[string]interface{}{
				"address": 0x2f,
			},
		},
	}

	// WHEN
	config, err := decode(t, input)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, I2cAddress(0x2f), config.Fan.I2c.Address)
}

func TestDecodeI2cAddressInvalid(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"fan": map[string]interface{}{
			"i2c": map[string]interface{}{
				"address": "foo",
			},
		},
	}

	// WHEN
	_, err := decode(t, input)

	// THEN
	assert.Error(t, err)
}

func TestDecodeDurationAndBands(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"controller": map[string]interface{}{
			"interval": "30s",
		},
		"bands": []interface{}{
			map[string]interface{}{"speed": 0, "below": 45.5},
			map[string]interface{}{"speed": 100},
		},
	}

	// WHEN
	config, err := decode(t, input)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Second, config.Controller.Interval)
	assert.Len(t, config.Bands, 2)
	assert.Equal(t, 45.5, *config.Bands[0].Below)
	assert.Nil(t, config.Bands[1].Below)
	assert.Nil(t, config.Bands[1].UpTo)
}
