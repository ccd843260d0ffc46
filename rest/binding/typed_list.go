package binding

import (
	"fmt"
	"reflect"
	"time"

	"github.com/pkg/errors"
)

// TypedList is an ordered, homogeneous list. The element types it permits are
// fixed when it is created, and every element it holds conforms to one of
// them. Non-conforming input is dropped without an error.
//
// A TypedList is not safe for concurrent mutation.
type TypedList struct {
	base  Base
	types []ElementType
	items []interface{}
}

// NewTypedList returns an empty list accepting the given element types. When
// an input value conforms to more than one type, the first one wins. base is
// handed to any nested model the list builds.
func NewTypedList(base Base, types ...ElementType) *TypedList {
	return &TypedList{
		base:  base,
		types: append([]ElementType{}, types...),
	}
}

// ElementKind is the kind of the first permitted element type.
func (l *TypedList) ElementKind() Kind {
	if len(l.types) == 0 {
		return KindModel
	}
	return l.types[0].Kind()
}

func (l *TypedList) Len() int { return len(l.items) }

// Purge removes every element.
func (l *TypedList) Purge() { l.items = nil }

// Append adds v to the end of the list if it conforms, and reports whether
// it did.
func (l *TypedList) Append(v interface{}) (bool, error) {
	out, ok, _, err := l.conform(v)
	if err != nil || !ok {
		return false, err
	}
	l.items = append(l.items, out)
	return true, nil
}

// Load replaces the contents of the list with the conforming elements of v,
// which may be a []interface{}, any other slice, or a *TypedList. A single
// conforming value replaces the contents with just that value. Anything else
// leaves the list as it was. Load returns how many input values were
// dropped.
//
// The list is only modified when Load returns a nil error.
func (l *TypedList) Load(v interface{}) (int, error) {
	dropped, _, err := l.load(v)
	return dropped, err
}

// load is Load, additionally returning what was dropped inside the nested
// models it built, keyed by input index ("[2].email").
func (l *TypedList) load(v interface{}) (int, Report, error) {
	nested := Report{}
	elems, isList := listElements(v)
	if !isList {
		out, ok, report, err := l.conform(v)
		if err != nil {
			return 0, nested, err
		}
		if !ok {
			return 1, nested, nil
		}
		l.items = []interface{}{out}
		return 0, report, nil
	}

	items := make([]interface{}, 0, len(elems))
	dropped := 0
	for i, elem := range elems {
		out, ok, report, err := l.conform(elem)
		if err != nil {
			return 0, Report{}, errors.Wrapf(err, "element %d", i)
		}
		if !ok {
			dropped++
			continue
		}
		nested.merge(fmt.Sprintf("[%d]", i), report)
		items = append(items, out)
	}
	l.items = items
	return dropped, nested, nil
}

func (l *TypedList) conform(v interface{}) (interface{}, bool, Report, error) {
	if v == nil {
		return nil, false, Report{}, nil
	}
	for _, t := range l.types {
		var (
			out    interface{}
			ok     bool
			report Report
			err    error
		)
		if r, isReporting := t.(reportingElements); isReporting {
			out, ok, report, err = r.coerceReport(l.base, v)
		} else {
			out, ok, err = t.Coerce(l.base, v)
		}
		if err != nil {
			return nil, false, Report{}, err
		}
		if ok {
			return out, true, report, nil
		}
	}
	return nil, false, Report{}, nil
}

func listElements(v interface{}) ([]interface{}, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case []interface{}:
		return val, true
	case *TypedList:
		if val == nil {
			return nil, false
		}
		return val.Items(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Items returns a copy of the elements.
func (l *TypedList) Items() []interface{} {
	return append([]interface{}{}, l.items...)
}

func (l *TypedList) Ints() []int64 {
	out := []int64{}
	for _, item := range l.items {
		if i, ok := item.(int64); ok {
			out = append(out, i)
		}
	}
	return out
}

func (l *TypedList) Numbers() []float64 {
	out := []float64{}
	for _, item := range l.items {
		if f, ok := item.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

func (l *TypedList) Strings() []string {
	out := []string{}
	for _, item := range l.items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (l *TypedList) Dates() []Date {
	out := []Date{}
	for _, item := range l.items {
		if d, ok := item.(Date); ok {
			out = append(out, d)
		}
	}
	return out
}

func (l *TypedList) Times() []time.Time {
	out := []time.Time{}
	for _, item := range l.items {
		if t, ok := item.(time.Time); ok {
			out = append(out, t)
		}
	}
	return out
}

func (l *TypedList) Models() []Model {
	out := []Model{}
	for _, item := range l.items {
		if m, ok := item.(Model); ok {
			out = append(out, m)
		}
	}
	return out
}
