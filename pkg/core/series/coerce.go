package series

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// coerce converts a raw record value to a number. Infinities become the
// axis sentinel; NaN, nil and anything unparsable fail.
func coerce(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil && !isRangeErr(err) {
			return 0, false
		}
		f = n
	case time.Time:
		return float64(x.UnixMilli()), true
	default:
		return 0, false
	}

	switch {
	case math.IsNaN(f):
		return 0, false
	case math.IsInf(f, 1):
		return axis.Sentinel, true
	case math.IsInf(f, -1):
		return -axis.Sentinel, true
	}
	return f, true
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
