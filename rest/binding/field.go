package binding

import (
	"reflect"
	"time"

	"github.com/evergreen-ci/utility"
)

// Base is the shared context a model was built with, usually the owning
// client. Models hand it unchanged to the nested models they build and never
// serialize or modify it.
type Base interface{}

// Model is implemented by every resource model. Fields returns the model's
// field table in declaration order; each Field is bound to the receiver.
type Model interface {
	Fields() []Field
}

// Builder constructs a model of a fixed type from a decoded JSON object.
// Called with nil props it must return an empty model, which the binding
// package fills itself when it needs the nested Report.
type Builder func(base Base, props map[string]interface{}) (Model, error)

// BuilderOf adapts a typed constructor such as NewUser to a Builder.
func BuilderOf[T Model](build func(Base, map[string]interface{}) (T, error)) Builder {
	return func(base Base, props map[string]interface{}) (Model, error) {
		m, err := build(base, props)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// Field describes one attribute of a model: its attribute name, its expected
// shape, and the setter and getter bound to the model's storage.
type Field struct {
	// Name is the attribute name. It is also the wire name unless the
	// model's rename table says otherwise.
	Name string
	Kind Kind
	// Elem is the element kind of a list field.
	Elem Kind
	// Allowed holds the legal values of an enum field.
	Allowed []string

	set func(interface{}) (bool, Report, error)
	get func() interface{}
}

// Assign stores v if it conforms to the field's shape and reports whether it
// did. A non-conforming value leaves the field as it was. The only error is
// an InvalidValueError from an enum field, possibly raised while building a
// nested model.
func (f Field) Assign(v interface{}) (bool, error) {
	accepted, _, err := f.assign(v)
	return accepted, err
}

// assign is Assign, additionally returning what was dropped inside a nested
// model or list.
func (f Field) assign(v interface{}) (bool, Report, error) {
	if f.set == nil {
		return false, Report{}, nil
	}
	return f.set(v)
}

// Value returns the stored value, or nil when the field is unset. Lists with
// no elements count as unset.
func (f Field) Value() interface{} {
	if f.get == nil {
		return nil
	}
	return f.get()
}

func scalarField[T any](name string, kind Kind, dst **T, coerce func(interface{}) (T, bool)) Field {
	return Field{
		Name: name,
		Kind: kind,
		set: func(v interface{}) (bool, Report, error) {
			out, ok := coerce(indirect(v))
			if !ok {
				return false, Report{}, nil
			}
			*dst = &out
			return true, Report{}, nil
		},
		get: func() interface{} {
			if *dst == nil {
				return nil
			}
			return **dst
		},
	}
}

func StringField(name string, dst **string) Field {
	return scalarField(name, KindString, dst, asString)
}

func IntField(name string, dst **int64) Field {
	return scalarField(name, KindInt, dst, asInt)
}

func NumberField(name string, dst **float64) Field {
	return scalarField(name, KindNumber, dst, asNumber)
}

func BoolField(name string, dst **bool) Field {
	return scalarField(name, KindBool, dst, asBool)
}

func DateField(name string, dst **Date) Field {
	return scalarField(name, KindDate, dst, asDate)
}

func DateTimeField(name string, dst **time.Time) Field {
	return scalarField(name, KindDateTime, dst, asDateTime)
}

// EnumField binds a string restricted to allowed. enum is the name of the
// allowed-values table entry and model the type name, both used in the
// InvalidValueError. Non-string values are ignored like any other mismatch.
func EnumField(model, name, enum string, allowed []string, dst **string) Field {
	f := scalarField(name, KindEnum, dst, asString)
	f.Allowed = allowed
	set := f.set
	f.set = func(v interface{}) (bool, Report, error) {
		s, ok := asString(indirect(v))
		if !ok {
			return false, Report{}, nil
		}
		if !utility.StringSliceContains(allowed, s) {
			return false, Report{}, &InvalidValueError{
				Model:   model,
				Field:   enum,
				Value:   s,
				Allowed: append([]string{}, allowed...),
			}
		}
		return set(s)
	}
	return f
}

// ModelField binds a nested model. An instance of T is stored as is; a JSON
// object is bound to a new empty T from build, sharing base. The field is
// only replaced when binding succeeds.
func ModelField[T Model](name string, base Base, dst *T, build func(Base, map[string]interface{}) (T, error)) Field {
	return Field{
		Name: name,
		Kind: KindModel,
		set: func(v interface{}) (bool, Report, error) {
			switch val := v.(type) {
			case T:
				if isNil(val) {
					return false, Report{}, nil
				}
				*dst = val
				return true, Report{}, nil
			case map[string]interface{}:
				m, report, err := buildReport(BuilderOf(build), base, val)
				if err != nil {
					return false, report, err
				}
				*dst = m.(T)
				return true, report, nil
			}
			return false, Report{}, nil
		},
		get: func() interface{} {
			if isNil(*dst) {
				return nil
			}
			return *dst
		},
	}
}

// ListField binds a list-valued field to its TypedList. Assigning replaces
// the contents through TypedList.Load; the assignment only counts as accepted
// when no input element was dropped.
func ListField(name string, list *TypedList) Field {
	return Field{
		Name: name,
		Kind: KindList,
		Elem: list.ElementKind(),
		set: func(v interface{}) (bool, Report, error) {
			dropped, nested, err := list.load(v)
			if err != nil {
				return false, Report{}, err
			}
			return dropped == 0, nested, nil
		},
		get: func() interface{} {
			if list.Len() == 0 {
				return nil
			}
			return list
		},
	}
}

// buildReport builds an empty model and binds props to it, returning what
// was dropped on the way.
func buildReport(build Builder, base Base, props map[string]interface{}) (Model, Report, error) {
	m, err := build(base, nil)
	if err != nil {
		return nil, Report{}, err
	}
	report, err := DeserializeReport(m, props)
	if err != nil {
		return nil, report, err
	}
	return m, report, nil
}

func isNil(m Model) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
