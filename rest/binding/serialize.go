package binding

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Serialize returns the wire form of m: a map holding only the fields that
// are set, with nested models and lists serialized recursively, dates as
// "2006-01-02" and datetimes as RFC 3339.
func Serialize(m Model) map[string]interface{} {
	out := map[string]interface{}{}
	if isNil(m) {
		return out
	}
	for _, f := range m.Fields() {
		v := f.Value()
		if v == nil {
			continue
		}
		out[WireName(m, f.Name)] = wireValue(v)
	}
	return out
}

func wireValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Model:
		return Serialize(val)
	case *TypedList:
		out := make([]interface{}, 0, val.Len())
		for _, item := range val.items {
			out = append(out, wireValue(item))
		}
		return out
	case Date:
		return val.String()
	case time.Time:
		return FormatDateTime(val)
	default:
		return val
	}
}

// MarshalJSON encodes the serialized form of m. Keys are sorted, and HTML
// characters are not escaped.
func MarshalJSON(m Model) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Serialize(m)); err != nil {
		return nil, errors.Wrapf(err, "encoding %T", m)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ToJSON is MarshalJSON as a string. Models only ever store JSON-safe values,
// so a failure here is a bug in a model's field table and panics.
func ToJSON(m Model) string {
	out, err := MarshalJSON(m)
	if err != nil {
		panic(err)
	}
	return string(out)
}
