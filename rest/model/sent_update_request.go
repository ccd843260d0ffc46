package model

import (
	"time"

	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/pkg/errors"
)

const (
	UpdateRequestStatusPending  = "PENDING"
	UpdateRequestStatusComplete = "COMPLETE"
	UpdateRequestStatusCanceled = "CANCELED"
)

var sentUpdateRequestAllowedValues = map[string][]string{
	"update_request_status": {
		UpdateRequestStatusPending,
		UpdateRequestStatusComplete,
		UpdateRequestStatusCanceled,
	},
}

// SentUpdateRequest is one delivery of an update request to a single
// recipient.
type SentUpdateRequest struct {
	base binding.Base

	columnIDs          *binding.TypedList
	id                 *int64
	includeAttachments *bool
	includeDiscussions *bool
	message            *string
	rowIDs             *binding.TypedList
	sentAt             *time.Time
	sentBy             *User
	sentTo             *Recipient
	status             *string
	subject            *string
	updateRequestID    *int64
}

func NewSentUpdateRequest(base binding.Base, props map[string]interface{}) (*SentUpdateRequest, error) {
	r := &SentUpdateRequest{base: base}
	r.setup()
	if err := binding.Deserialize(r, props); err != nil {
		return nil, errors.Wrap(err, "building sent update request")
	}
	return r, nil
}

func (r *SentUpdateRequest) setup() {
	if r.columnIDs == nil {
		r.columnIDs = binding.NewTypedList(r.base, binding.IntElements)
	}
	if r.rowIDs == nil {
		r.rowIDs = binding.NewTypedList(r.base, binding.IntElements)
	}
}

func (r *SentUpdateRequest) Fields() []binding.Field {
	r.setup()
	return []binding.Field{
		binding.ListField("column_ids", r.columnIDs),
		binding.IntField("id_", &r.id),
		binding.BoolField("include_attachments", &r.includeAttachments),
		binding.BoolField("include_discussions", &r.includeDiscussions),
		binding.StringField("message", &r.message),
		binding.ListField("row_ids", r.rowIDs),
		binding.DateTimeField("sent_at", &r.sentAt),
		binding.ModelField("sent_by", r.base, &r.sentBy, NewUser),
		binding.ModelField("sent_to", r.base, &r.sentTo, NewRecipient),
		binding.EnumField("SentUpdateRequest", "status", "update_request_status",
			sentUpdateRequestAllowedValues["update_request_status"], &r.status),
		binding.StringField("subject", &r.subject),
		binding.IntField("update_request_id", &r.updateRequestID),
	}
}

// AllowedValues returns the enum tables of the model, keyed by table name.
func (r *SentUpdateRequest) AllowedValues() map[string][]string {
	return copyAllowed(sentUpdateRequestAllowedValues)
}

func (r *SentUpdateRequest) Base() binding.Base { return r.base }

func (r *SentUpdateRequest) ColumnIDs() []int64 {
	r.setup()
	return r.columnIDs.Ints()
}

// SetColumnIDs replaces the column ids. Entries that are not integers are
// dropped.
func (r *SentUpdateRequest) SetColumnIDs(ids interface{}) error {
	return binding.Set(r, "column_ids", ids)
}

func (r *SentUpdateRequest) ID() *int64 { return r.id }

func (r *SentUpdateRequest) SetID(id int64) { setScalar(r, "id_", id) }

func (r *SentUpdateRequest) IncludeAttachments() *bool { return r.includeAttachments }

func (r *SentUpdateRequest) SetIncludeAttachments(include bool) {
	setScalar(r, "include_attachments", include)
}

func (r *SentUpdateRequest) IncludeDiscussions() *bool { return r.includeDiscussions }

func (r *SentUpdateRequest) SetIncludeDiscussions(include bool) {
	setScalar(r, "include_discussions", include)
}

func (r *SentUpdateRequest) Message() *string { return r.message }

func (r *SentUpdateRequest) SetMessage(message string) { setScalar(r, "message", message) }

func (r *SentUpdateRequest) RowIDs() []int64 {
	r.setup()
	return r.rowIDs.Ints()
}

func (r *SentUpdateRequest) SetRowIDs(ids interface{}) error {
	return binding.Set(r, "row_ids", ids)
}

func (r *SentUpdateRequest) SentAt() *time.Time { return r.sentAt }

func (r *SentUpdateRequest) SetSentAt(when interface{}) error {
	return binding.Set(r, "sent_at", when)
}

func (r *SentUpdateRequest) SentBy() *User { return r.sentBy }

// SetSentBy accepts a *User or a JSON object, which is built into a User
// sharing this request's base.
func (r *SentUpdateRequest) SetSentBy(user interface{}) error {
	return binding.Set(r, "sent_by", user)
}

func (r *SentUpdateRequest) SentTo() *Recipient { return r.sentTo }

func (r *SentUpdateRequest) SetSentTo(recipient interface{}) error {
	return binding.Set(r, "sent_to", recipient)
}

func (r *SentUpdateRequest) Status() *string { return r.status }

// SetStatus returns an InvalidValueError for statuses outside the
// update_request_status table, leaving the current status in place.
func (r *SentUpdateRequest) SetStatus(status string) error {
	return binding.Set(r, "status", status)
}

func (r *SentUpdateRequest) Subject() *string { return r.subject }

func (r *SentUpdateRequest) SetSubject(subject string) { setScalar(r, "subject", subject) }

func (r *SentUpdateRequest) UpdateRequestID() *int64 { return r.updateRequestID }

func (r *SentUpdateRequest) SetUpdateRequestID(id int64) {
	setScalar(r, "update_request_id", id)
}

func (r *SentUpdateRequest) ToDict() map[string]interface{} { return binding.Serialize(r) }
func (r *SentUpdateRequest) ToJSON() string                 { return binding.ToJSON(r) }
func (r *SentUpdateRequest) String() string                 { return r.ToJSON() }

func (r *SentUpdateRequest) MarshalJSON() ([]byte, error) { return binding.MarshalJSON(r) }

func (r *SentUpdateRequest) UnmarshalJSON(data []byte) error {
	return errors.Wrap(binding.Unmarshal(data, r), "unmarshalling sent update request")
}
