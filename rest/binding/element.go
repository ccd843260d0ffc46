package binding

import (
	"encoding/json"
	"math"
	"reflect"
	"time"

	"github.com/evergreen-ci/utility"
)

// ElementType is one of the element shapes a TypedList permits.
//
// Coerce reports whether v conforms, returning the value to store. The only
// error it may return comes from building a nested model.
type ElementType interface {
	Kind() Kind
	Coerce(base Base, v interface{}) (interface{}, bool, error)
}

type scalarElements struct {
	kind   Kind
	coerce func(interface{}) (interface{}, bool)
}

func (e scalarElements) Kind() Kind { return e.kind }

func (e scalarElements) Coerce(_ Base, v interface{}) (interface{}, bool, error) {
	out, ok := e.coerce(indirect(v))
	return out, ok, nil
}

var (
	IntElements ElementType = scalarElements{kind: KindInt, coerce: func(v interface{}) (interface{}, bool) {
		return asInt(v)
	}}
	NumberElements ElementType = scalarElements{kind: KindNumber, coerce: func(v interface{}) (interface{}, bool) {
		return asNumber(v)
	}}
	StringElements ElementType = scalarElements{kind: KindString, coerce: func(v interface{}) (interface{}, bool) {
		return asString(v)
	}}
	BoolElements ElementType = scalarElements{kind: KindBool, coerce: func(v interface{}) (interface{}, bool) {
		return asBool(v)
	}}
	DateElements ElementType = scalarElements{kind: KindDate, coerce: func(v interface{}) (interface{}, bool) {
		return asDate(v)
	}}
	DateTimeElements ElementType = scalarElements{kind: KindDateTime, coerce: func(v interface{}) (interface{}, bool) {
		return asDateTime(v)
	}}
)

// EnumElements accepts strings from a fixed set. Other strings are dropped
// like any other non-conforming element.
func EnumElements(allowed ...string) ElementType {
	set := append([]string{}, allowed...)
	return scalarElements{kind: KindEnum, coerce: func(v interface{}) (interface{}, bool) {
		s, ok := asString(v)
		if !ok || !utility.StringSliceContains(set, s) {
			return nil, false
		}
		return s, true
	}}
}

type modelElements struct {
	proto reflect.Type
	build Builder
}

// ModelElements accepts existing instances of proto's type and builds new
// instances from JSON objects.
func ModelElements(proto Model, build Builder) ElementType {
	return modelElements{proto: reflect.TypeOf(proto), build: build}
}

func (e modelElements) Kind() Kind { return KindModel }

func (e modelElements) Coerce(base Base, v interface{}) (interface{}, bool, error) {
	out, ok, _, err := e.coerceReport(base, v)
	return out, ok, err
}

func (e modelElements) coerceReport(base Base, v interface{}) (interface{}, bool, Report, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		m, report, err := buildReport(e.build, base, val)
		if err != nil {
			return nil, false, report, err
		}
		return m, true, report, nil
	case Model:
		if isNil(val) || reflect.TypeOf(val) != e.proto {
			return nil, false, Report{}, nil
		}
		return val, true, Report{}, nil
	}
	return nil, false, Report{}, nil
}

// reportingElements are element types that build nested models and can say
// what was dropped while building them.
type reportingElements interface {
	coerceReport(base Base, v interface{}) (interface{}, bool, Report, error)
}

// indirect dereferences non-nil pointers to scalars so that Go callers can
// hand in *string, *int64 and friends.
func indirect(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if _, ok := v.(Model); ok {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return v
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v interface{}) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asInt accepts any numeric value holding an integer in int64 range. Floats
// are allowed because decoders without UseNumber produce float64 for every
// JSON number.
func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt(f)
		}
	}
	return 0, false
}

func uintToInt(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func asNumber(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		i, ok := asInt(v)
		if !ok {
			return 0, false
		}
		f = float64(i)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func asDateTime(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, !val.IsZero()
	case Date:
		return val.Time(), !val.IsZero()
	case string:
		t, err := ParseDateTime(val)
		return t, err == nil
	}
	return time.Time{}, false
}

func asDate(v interface{}) (Date, bool) {
	switch val := v.(type) {
	case Date:
		return val, !val.IsZero()
	case time.Time:
		return DateOf(val), !val.IsZero()
	case string:
		d, err := ParseDate(val)
		return d, err == nil
	}
	return Date{}, false
}
