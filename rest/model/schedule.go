package model

import (
	"time"

	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/pkg/errors"
)

const (
	ScheduleOnce    = "ONCE"
	ScheduleDaily   = "DAILY"
	ScheduleWeekly  = "WEEKLY"
	ScheduleMonthly = "MONTHLY"
	ScheduleYearly  = "YEARLY"
)

var scheduleAllowedValues = map[string][]string{
	"type":        {ScheduleOnce, ScheduleDaily, ScheduleWeekly, ScheduleMonthly, ScheduleYearly},
	"day_ordinal": {"FIRST", "SECOND", "THIRD", "FOURTH", "LAST"},
	"day_descriptors": {
		"DAY", "WEEKDAY", "WEEKEND",
		"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
	},
}

// Schedule controls when an update request is sent.
type Schedule struct {
	base binding.Base

	dayDescriptors *binding.TypedList
	dayOfMonth     *int64
	dayOrdinal     *string
	endAt          *time.Time
	lastSentAt     *time.Time
	nextSendAt     *time.Time
	repeatEvery    *int64
	startAt        *time.Time
	scheduleType   *string
}

func NewSchedule(base binding.Base, props map[string]interface{}) (*Schedule, error) {
	s := &Schedule{base: base}
	s.setup()
	if err := binding.Deserialize(s, props); err != nil {
		return nil, errors.Wrap(err, "building schedule")
	}
	return s, nil
}

func (s *Schedule) setup() {
	if s.dayDescriptors == nil {
		s.dayDescriptors = binding.NewTypedList(s.base,
			binding.EnumElements(scheduleAllowedValues["day_descriptors"]...))
	}
}

func (s *Schedule) Fields() []binding.Field {
	s.setup()
	return []binding.Field{
		binding.ListField("day_descriptors", s.dayDescriptors),
		binding.IntField("day_of_month", &s.dayOfMonth),
		binding.EnumField("Schedule", "day_ordinal", "day_ordinal", scheduleAllowedValues["day_ordinal"], &s.dayOrdinal),
		binding.DateTimeField("end_at", &s.endAt),
		binding.DateTimeField("last_sent_at", &s.lastSentAt),
		binding.DateTimeField("next_send_at", &s.nextSendAt),
		binding.IntField("repeat_every", &s.repeatEvery),
		binding.DateTimeField("start_at", &s.startAt),
		binding.EnumField("Schedule", "type", "type", scheduleAllowedValues["type"], &s.scheduleType),
	}
}

// AllowedValues returns the enum tables of the model, keyed by table name.
func (s *Schedule) AllowedValues() map[string][]string { return copyAllowed(scheduleAllowedValues) }

func (s *Schedule) Base() binding.Base { return s.base }

// DayDescriptors lists the days a weekly or monthly schedule fires on.
func (s *Schedule) DayDescriptors() []string {
	s.setup()
	return s.dayDescriptors.Strings()
}

// SetDayDescriptors replaces the day descriptors. Unrecognized descriptors
// are dropped.
func (s *Schedule) SetDayDescriptors(days ...string) error {
	return binding.Set(s, "day_descriptors", days)
}

func (s *Schedule) DayOfMonth() *int64 { return s.dayOfMonth }

func (s *Schedule) SetDayOfMonth(day int64) { setScalar(s, "day_of_month", day) }

func (s *Schedule) DayOrdinal() *string { return s.dayOrdinal }

func (s *Schedule) SetDayOrdinal(ordinal string) error {
	return binding.Set(s, "day_ordinal", ordinal)
}

func (s *Schedule) EndAt() *time.Time { return s.endAt }

func (s *Schedule) SetEndAt(when interface{}) error { return binding.Set(s, "end_at", when) }

// LastSentAt and NextSendAt are computed by the service.
func (s *Schedule) LastSentAt() *time.Time { return s.lastSentAt }

func (s *Schedule) NextSendAt() *time.Time { return s.nextSendAt }

func (s *Schedule) RepeatEvery() *int64 { return s.repeatEvery }

func (s *Schedule) SetRepeatEvery(every int64) { setScalar(s, "repeat_every", every) }

func (s *Schedule) StartAt() *time.Time { return s.startAt }

func (s *Schedule) SetStartAt(when interface{}) error { return binding.Set(s, "start_at", when) }

func (s *Schedule) Type() *string { return s.scheduleType }

func (s *Schedule) SetType(scheduleType string) error {
	return binding.Set(s, "type", scheduleType)
}

func (s *Schedule) ToDict() map[string]interface{} { return binding.Serialize(s) }
func (s *Schedule) ToJSON() string                 { return binding.ToJSON(s) }
func (s *Schedule) String() string                 { return s.ToJSON() }

func (s *Schedule) MarshalJSON() ([]byte, error) { return binding.MarshalJSON(s) }

func (s *Schedule) UnmarshalJSON(data []byte) error {
	return errors.Wrap(binding.Unmarshal(data, s), "unmarshalling schedule")
}
