package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		i2cAddressHookFunc(),
	)
}

// i2cAddressHookFunc allows i2c addresses to be given as "0x04" strings,
// which is how i2c-tools print them.
func i2cAddressHookFunc() mapstructure.DecodeHookFuncType {
	addressType := reflect.TypeOf(I2cAddress(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != addressType || f.Kind() != reflect.String {
			return data, nil
		}

		text := strings.TrimSpace(data.(string))
		value, err := strconv.ParseUint(text, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid i2c address '%s': %w", text, err)
		}
		return I2cAddress(value), nil
	}
}
