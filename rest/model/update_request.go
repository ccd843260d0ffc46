package model

import (
	"time"

	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/pkg/errors"
)

// UpdateRequest asks one or more recipients to update a set of rows, either
// once or on a schedule.
type UpdateRequest struct {
	base binding.Base

	columnIDs          *binding.TypedList
	createdAt          *time.Time
	id                 *int64
	includeAttachments *bool
	includeDiscussions *bool
	message            *string
	modifiedAt         *time.Time
	rowIDs             *binding.TypedList
	schedule           *Schedule
	sendTo             *binding.TypedList
	sentBy             *User
	subject            *string
}

func NewUpdateRequest(base binding.Base, props map[string]interface{}) (*UpdateRequest, error) {
	r := &UpdateRequest{base: base}
	r.setup()
	if err := binding.Deserialize(r, props); err != nil {
		return nil, errors.Wrap(err, "building update request")
	}
	return r, nil
}

func (r *UpdateRequest) setup() {
	if r.columnIDs == nil {
		r.columnIDs = binding.NewTypedList(r.base, binding.IntElements)
	}
	if r.rowIDs == nil {
		r.rowIDs = binding.NewTypedList(r.base, binding.IntElements)
	}
	if r.sendTo == nil {
		r.sendTo = binding.NewTypedList(r.base,
			binding.ModelElements(&Recipient{}, binding.BuilderOf(NewRecipient)))
	}
}

func (r *UpdateRequest) Fields() []binding.Field {
	r.setup()
	return []binding.Field{
		binding.ListField("column_ids", r.columnIDs),
		binding.DateTimeField("created_at", &r.createdAt),
		binding.IntField("id_", &r.id),
		binding.BoolField("include_attachments", &r.includeAttachments),
		binding.BoolField("include_discussions", &r.includeDiscussions),
		binding.StringField("message", &r.message),
		binding.DateTimeField("modified_at", &r.modifiedAt),
		binding.ListField("row_ids", r.rowIDs),
		binding.ModelField("schedule", r.base, &r.schedule, NewSchedule),
		binding.ListField("send_to", r.sendTo),
		binding.ModelField("sent_by", r.base, &r.sentBy, NewUser),
		binding.StringField("subject", &r.subject),
	}
}

func (r *UpdateRequest) Base() binding.Base { return r.base }

func (r *UpdateRequest) ColumnIDs() []int64 {
	r.setup()
	return r.columnIDs.Ints()
}

func (r *UpdateRequest) SetColumnIDs(ids interface{}) error {
	return binding.Set(r, "column_ids", ids)
}

func (r *UpdateRequest) CreatedAt() *time.Time { return r.createdAt }

func (r *UpdateRequest) ID() *int64 { return r.id }

func (r *UpdateRequest) SetID(id int64) { setScalar(r, "id_", id) }

func (r *UpdateRequest) IncludeAttachments() *bool { return r.includeAttachments }

func (r *UpdateRequest) SetIncludeAttachments(include bool) {
	setScalar(r, "include_attachments", include)
}

func (r *UpdateRequest) IncludeDiscussions() *bool { return r.includeDiscussions }

func (r *UpdateRequest) SetIncludeDiscussions(include bool) {
	setScalar(r, "include_discussions", include)
}

func (r *UpdateRequest) Message() *string { return r.message }

func (r *UpdateRequest) SetMessage(message string) { setScalar(r, "message", message) }

func (r *UpdateRequest) ModifiedAt() *time.Time { return r.modifiedAt }

func (r *UpdateRequest) RowIDs() []int64 {
	r.setup()
	return r.rowIDs.Ints()
}

func (r *UpdateRequest) SetRowIDs(ids interface{}) error {
	return binding.Set(r, "row_ids", ids)
}

func (r *UpdateRequest) Schedule() *Schedule { return r.schedule }

func (r *UpdateRequest) SetSchedule(schedule interface{}) error {
	return binding.Set(r, "schedule", schedule)
}

// SendTo returns the recipients. Each element is a *Recipient.
func (r *UpdateRequest) SendTo() []*Recipient {
	r.setup()
	models := r.sendTo.Models()
	out := make([]*Recipient, 0, len(models))
	for _, m := range models {
		out = append(out, m.(*Recipient))
	}
	return out
}

// SetSendTo replaces the recipients with recipients, which may hold
// *Recipient values or JSON objects. Anything else is dropped.
func (r *UpdateRequest) SetSendTo(recipients interface{}) error {
	return binding.Set(r, "send_to", recipients)
}

// AddRecipient appends one recipient and reports whether it conformed.
func (r *UpdateRequest) AddRecipient(recipient interface{}) (bool, error) {
	r.setup()
	return r.sendTo.Append(recipient)
}

func (r *UpdateRequest) SentBy() *User { return r.sentBy }

func (r *UpdateRequest) SetSentBy(user interface{}) error {
	return binding.Set(r, "sent_by", user)
}

func (r *UpdateRequest) Subject() *string { return r.subject }

func (r *UpdateRequest) SetSubject(subject string) { setScalar(r, "subject", subject) }

func (r *UpdateRequest) ToDict() map[string]interface{} { return binding.Serialize(r) }
func (r *UpdateRequest) ToJSON() string                 { return binding.ToJSON(r) }
func (r *UpdateRequest) String() string                 { return r.ToJSON() }

func (r *UpdateRequest) MarshalJSON() ([]byte, error) { return binding.MarshalJSON(r) }

func (r *UpdateRequest) UnmarshalJSON(data []byte) error {
	return errors.Wrap(binding.Unmarshal(data, r), "unmarshalling update request")
}
