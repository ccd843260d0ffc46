package model

import (
	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/pkg/errors"
)

// Recipient is either a single email address or a group.
type Recipient struct {
	base binding.Base

	email   *string
	groupID *int64
}

func NewRecipient(base binding.Base, props map[string]interface{}) (*Recipient, error) {
	r := &Recipient{base: base}
	if err := binding.Deserialize(r, props); err != nil {
		return nil, errors.Wrap(err, "building recipient")
	}
	return r, nil
}

func (r *Recipient) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField("email", &r.email),
		binding.IntField("group_id", &r.groupID),
	}
}

func (r *Recipient) Base() binding.Base { return r.base }

func (r *Recipient) Email() *string { return r.email }

func (r *Recipient) SetEmail(email string) { setScalar(r, "email", email) }

func (r *Recipient) GroupID() *int64 { return r.groupID }

func (r *Recipient) SetGroupID(id int64) { setScalar(r, "group_id", id) }

func (r *Recipient) ToDict() map[string]interface{} { return binding.Serialize(r) }
func (r *Recipient) ToJSON() string                 { return binding.ToJSON(r) }
func (r *Recipient) String() string                 { return r.ToJSON() }

func (r *Recipient) MarshalJSON() ([]byte, error) { return binding.MarshalJSON(r) }

func (r *Recipient) UnmarshalJSON(data []byte) error {
	return errors.Wrap(binding.Unmarshal(data, r), "unmarshalling recipient")
}
