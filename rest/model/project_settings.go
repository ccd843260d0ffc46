package model

import (
	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/pkg/errors"
)

// ProjectSettings holds the working calendar of a sheet with dependencies
// enabled.
type ProjectSettings struct {
	base binding.Base

	lengthOfDay    *float64
	nonWorkingDays *binding.TypedList
	workingDays    *binding.TypedList
}

// NewProjectSettings builds project settings from a decoded JSON object. props
// may be nil for an empty model.
func NewProjectSettings(base binding.Base, props map[string]interface{}) (*ProjectSettings, error) {
	s := &ProjectSettings{base: base}
	s.setup()
	if err := binding.Deserialize(s, props); err != nil {
		return nil, errors.Wrap(err, "building project settings")
	}
	return s, nil
}

func (s *ProjectSettings) setup() {
	if s.nonWorkingDays == nil {
		s.nonWorkingDays = binding.NewTypedList(s.base, binding.DateElements)
	}
	if s.workingDays == nil {
		s.workingDays = binding.NewTypedList(s.base, binding.StringElements)
	}
}

func (s *ProjectSettings) Fields() []binding.Field {
	s.setup()
	return []binding.Field{
		binding.NumberField("length_of_day", &s.lengthOfDay),
		binding.ListField("non_working_days", s.nonWorkingDays),
		binding.ListField("working_days", s.workingDays),
	}
}

func (s *ProjectSettings) Base() binding.Base { return s.base }

// LengthOfDay is the number of working hours in a day.
func (s *ProjectSettings) LengthOfDay() *float64 { return s.lengthOfDay }

// SetLengthOfDay ignores NaN and infinities, leaving the field as it was.
func (s *ProjectSettings) SetLengthOfDay(hours float64) {
	setScalar(s, "length_of_day", hours)
}

func (s *ProjectSettings) NonWorkingDays() []binding.Date {
	s.setup()
	return s.nonWorkingDays.Dates()
}

// SetNonWorkingDays replaces the non-working days. days may be a list of
// dates, times, or date strings, or a single one of those, in which case it
// becomes the only non-working day. Entries that are not dates are dropped.
func (s *ProjectSettings) SetNonWorkingDays(days interface{}) error {
	return binding.Set(s, "non_working_days", days)
}

func (s *ProjectSettings) WorkingDays() []string {
	s.setup()
	return s.workingDays.Strings()
}

func (s *ProjectSettings) SetWorkingDays(days ...string) error {
	return binding.Set(s, "working_days", days)
}

func (s *ProjectSettings) ToDict() map[string]interface{} { return binding.Serialize(s) }
func (s *ProjectSettings) ToJSON() string                 { return binding.ToJSON(s) }
func (s *ProjectSettings) String() string                 { return s.ToJSON() }

func (s *ProjectSettings) MarshalJSON() ([]byte, error) { return binding.MarshalJSON(s) }

func (s *ProjectSettings) UnmarshalJSON(data []byte) error {
	return errors.Wrap(binding.Unmarshal(data, s), "unmarshalling project settings")
}
