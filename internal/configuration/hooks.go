package configuration

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// secondsToDurationHookFunc returns a mapstructure decode hook that allows
// durations to be given as a bare number of seconds, e.g. "pollDelay: 5"
// or RADIATOR_DELAY=5, in addition to Go duration strings like "5s".
func secondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != durationType {
			return data, nil
		}

		switch v := data.(type) {
		case int:
			return time.Duration(v) * time.Second, nil
		case int64:
			return time.Duration(v) * time.Second, nil
		case uint64:
			return time.Duration(v) * time.Second, nil
		case float64:
			return time.Duration(math.Round(v * float64(time.Second))), nil
		case string:
			s := strings.TrimSpace(v)
			seconds, err := strconv.ParseFloat(s, 64)
			if err != nil {
				// not a bare number, let the duration string hook handle it
				return data, nil
			}
			return time.Duration(math.Round(seconds * float64(time.Second))), nil
		}

		return data, nil
	}
}
