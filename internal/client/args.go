package client

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// argReader converts loosely typed Invoke arguments. The first conversion
// failure is kept and reported by run.
type argReader struct {
	op   xminds.Operation
	args xminds.Args
	err  error
}

func (r *argReader) fail(key string, value any, want string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s.%s=%v is not %s", xminds.ErrInvalidArgument, r.op, key, value, want)
	}
}

func (r *argReader) run(fn func() (*xminds.Value, error)) (*xminds.Value, error) {
	if r.err != nil {
		return nil, r.err
	}

	return fn()
}

func (r *argReader) lookup(key string) (any, bool) {
	value, ok := r.args[key]
	if !ok || value == nil {
		return nil, false
	}

	return value, true
}

func (r *argReader) str(key string) string {
	value, ok := r.lookup(key)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case *string:
		if v != nil {
			return *v
		}

		return ""
	case json.Number, int, int64, float64, bool:
		return fmt.Sprint(v)
	default:
		r.fail(key, value, "a string")

		return ""
	}
}

// optString returns nil for absent and empty values.
func (r *argReader) optString(key string) *string {
	if _, ok := r.lookup(key); !ok {
		return nil
	}

	s := r.str(key)
	if s == "" {
		return nil
	}

	return &s
}

func (r *argReader) float(key string) float64 {
	value, ok := r.lookup(key)
	if !ok {
		return 0
	}

	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			r.fail(key, value, "a number")
		}

		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			r.fail(key, value, "a number")
		}

		return f
	default:
		r.fail(key, value, "a number")

		return 0
	}
}

func (r *argReader) optInt64(key string) *int64 {
	value, ok := r.lookup(key)
	if !ok {
		return nil
	}

	var n int64

	switch v := value.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case *int64:
		return v
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			r.fail(key, value, "an integer")

			return nil
		}

		n = int64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			r.fail(key, value, "an integer")
		}

		n = parsed
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			r.fail(key, value, "an integer")
		}

		n = parsed
	default:
		r.fail(key, value, "an integer")

		return nil
	}

	return &n
}

func (r *argReader) optInt(key string) *int {
	n := r.optInt64(key)
	if n == nil {
		return nil
	}

	v := int(*n)

	return &v
}

func (r *argReader) boolean(key string) bool {
	value, ok := r.lookup(key)
	if !ok {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.fail(key, value, "a boolean")
		}

		return b
	default:
		r.fail(key, value, "a boolean")

		return false
	}
}

func (r *argReader) stringList(key string) []string {
	value, ok := r.lookup(key)
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case []string:
		return v
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}

		if strings.HasPrefix(strings.TrimSpace(v), "[") {
			var list []string

			r.decode(key, &list)

			return list
		}

		return strings.Split(v, ",")
	default:
		var list []string

		r.decode(key, &list)

		return list
	}
}

// decode projects an argument onto target through JSON. String arguments
// are parsed as JSON documents.
func (r *argReader) decode(key string, target any) {
	value, ok := r.lookup(key)
	if !ok {
		return
	}

	var data []byte

	if s, isString := value.(string); isString {
		data = []byte(s)
	} else {
		encoded, err := json.Marshal(value)
		if err != nil {
			r.fail(key, value, "encodable")

			return
		}

		data = encoded
	}

	err := json.Unmarshal(data, target)
	if err != nil {
		r.fail(key, value, fmt.Sprintf("a valid %T", target))
	}
}

func (r *argReader) record(key string) xminds.Record {
	var record xminds.Record

	r.decode(key, &record)

	return record
}

func (r *argReader) records(key string) []xminds.Record {
	var records []xminds.Record

	r.decode(key, &records)

	return records
}

func (r *argReader) ratings(key string) []xminds.Rating {
	var ratings []xminds.Rating

	r.decode(key, &ratings)

	return ratings
}

func (r *argReader) interactions(key string) []xminds.Interaction {
	var interactions []xminds.Interaction

	r.decode(key, &interactions)

	return interactions
}
