package binding

import (
	"sort"
	"strings"

	"github.com/evergreen-ci/smartsheet/util"
	"github.com/pkg/errors"
)

// Report lists the input keys a deserialization did not bind. Keys inside
// nested models are given as paths from the top-level object, such as
// "sent_by.bogus" or "send_to[0].group_id".
type Report struct {
	// Unknown keys have no matching field.
	Unknown []string
	// Rejected keys matched a field but their value, or some element of it,
	// did not conform and was dropped.
	Rejected []string
}

// merge adds the keys of a nested report under prefix.
func (r *Report) merge(prefix string, nested Report) {
	for _, key := range nested.Unknown {
		r.Unknown = append(r.Unknown, joinPath(prefix, key))
	}
	for _, key := range nested.Rejected {
		r.Rejected = append(r.Rejected, joinPath(prefix, key))
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" || strings.HasPrefix(key, "[") {
		return prefix + key
	}
	return prefix + "." + key
}

// Empty reports whether every input key was bound in full.
func (r Report) Empty() bool {
	return len(r.Unknown) == 0 && len(r.Rejected) == 0
}

func (r Report) String() string {
	if r.Empty() {
		return "all fields bound"
	}
	parts := []string{}
	if len(r.Unknown) > 0 {
		parts = append(parts, "unknown: "+strings.Join(r.Unknown, ", "))
	}
	if len(r.Rejected) > 0 {
		parts = append(parts, "rejected: "+strings.Join(r.Rejected, ", "))
	}
	return strings.Join(parts, "; ")
}

// Deserialize assigns every key of props that m declares a field for. Unknown
// keys and non-conforming values are ignored. The returned error, if any,
// wraps an InvalidValueError; keys are visited in sorted order so the fields
// set before the failure are predictable.
func Deserialize(m Model, props map[string]interface{}) error {
	_, err := DeserializeReport(m, props)
	return err
}

// DeserializeReport is Deserialize, additionally returning what was dropped.
func DeserializeReport(m Model, props map[string]interface{}) (Report, error) {
	report := Report{}
	if isNil(m) || len(props) == 0 {
		return report, nil
	}

	fields := fieldIndex(m)
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f, ok := fields[AttributeName(m, key)]
		if !ok {
			report.Unknown = append(report.Unknown, key)
			continue
		}
		accepted, nested, err := f.assign(props[key])
		if err != nil {
			return report, errors.Wrapf(err, "binding field '%s'", key)
		}
		if !accepted {
			report.Rejected = append(report.Rejected, key)
		}
		report.merge(key, nested)
	}
	return report, nil
}

// Unmarshal decodes a JSON object and deserializes it into m.
func Unmarshal(data []byte, m Model) error {
	props, err := util.DecodeJSONObject(data)
	if err != nil {
		return errors.WithStack(err)
	}
	return Deserialize(m, props)
}

// Set assigns one attribute of m by its attribute or wire name. As with
// Deserialize, a non-conforming value is ignored; only enum violations and
// unknown names are errors.
func Set(m Model, name string, value interface{}) error {
	if isNil(m) {
		return errors.New("cannot set a field on a nil model")
	}
	fields := fieldIndex(m)
	f, ok := fields[name]
	if !ok {
		f, ok = fields[AttributeName(m, name)]
	}
	if !ok {
		return errors.Errorf("%T has no field '%s'", m, name)
	}
	_, err := f.Assign(value)
	return errors.WithStack(err)
}

func fieldIndex(m Model) map[string]Field {
	fields := m.Fields()
	out := make(map[string]Field, len(fields))
	for _, f := range fields {
		out[f.Name] = f
	}
	return out
}
