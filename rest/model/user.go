package model

import (
	"time"

	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/pkg/errors"
)

const (
	UserStatusActive   = "ACTIVE"
	UserStatusPending  = "PENDING"
	UserStatusDeclined = "DECLINED"
)

var userAllowedValues = map[string][]string{
	"user_status": {UserStatusActive, UserStatusPending, UserStatusDeclined},
}

// User is an account in the organization, or the sender of a request.
type User struct {
	base binding.Base

	admin          *bool
	email          *string
	firstName      *string
	groupAdmin     *bool
	id             *int64
	lastLogin      *time.Time
	lastName       *string
	licensedUser   *bool
	name           *string
	resourceViewer *bool
	sheetCount     *int64
	status         *string
}

func NewUser(base binding.Base, props map[string]interface{}) (*User, error) {
	u := &User{base: base}
	if err := binding.Deserialize(u, props); err != nil {
		return nil, errors.Wrap(err, "building user")
	}
	return u, nil
}

func (u *User) Fields() []binding.Field {
	return []binding.Field{
		binding.BoolField("admin", &u.admin),
		binding.StringField("email", &u.email),
		binding.StringField("first_name", &u.firstName),
		binding.BoolField("group_admin", &u.groupAdmin),
		binding.IntField("id_", &u.id),
		binding.DateTimeField("last_login", &u.lastLogin),
		binding.StringField("last_name", &u.lastName),
		binding.BoolField("licensed_user", &u.licensedUser),
		binding.StringField("name", &u.name),
		binding.BoolField("resource_viewer", &u.resourceViewer),
		binding.IntField("sheet_count", &u.sheetCount),
		binding.EnumField("User", "status", "user_status", userAllowedValues["user_status"], &u.status),
	}
}

// AllowedValues returns the enum tables of the model, keyed by table name.
func (u *User) AllowedValues() map[string][]string { return copyAllowed(userAllowedValues) }

func (u *User) Base() binding.Base { return u.base }

func (u *User) Admin() *bool { return u.admin }

func (u *User) SetAdmin(admin bool) { setScalar(u, "admin", admin) }

func (u *User) Email() *string { return u.email }

func (u *User) SetEmail(email string) { setScalar(u, "email", email) }

func (u *User) FirstName() *string { return u.firstName }

func (u *User) SetFirstName(name string) { setScalar(u, "first_name", name) }

func (u *User) GroupAdmin() *bool { return u.groupAdmin }

func (u *User) SetGroupAdmin(admin bool) { setScalar(u, "group_admin", admin) }

func (u *User) ID() *int64 { return u.id }

func (u *User) SetID(id int64) { setScalar(u, "id_", id) }

func (u *User) LastLogin() *time.Time { return u.lastLogin }

// SetLastLogin accepts a time.Time or a date-time string. Values that cannot
// be read as a date-time are ignored.
func (u *User) SetLastLogin(when interface{}) error {
	return binding.Set(u, "last_login", when)
}

func (u *User) LastName() *string { return u.lastName }

func (u *User) SetLastName(name string) { setScalar(u, "last_name", name) }

func (u *User) LicensedUser() *bool { return u.licensedUser }

func (u *User) SetLicensedUser(licensed bool) { setScalar(u, "licensed_user", licensed) }

// Name is the display name, which may differ from first and last name.
func (u *User) Name() *string { return u.name }

func (u *User) SetName(name string) { setScalar(u, "name", name) }

func (u *User) ResourceViewer() *bool { return u.resourceViewer }

func (u *User) SetResourceViewer(viewer bool) { setScalar(u, "resource_viewer", viewer) }

func (u *User) SheetCount() *int64 { return u.sheetCount }

func (u *User) SetSheetCount(count int64) { setScalar(u, "sheet_count", count) }

func (u *User) Status() *string { return u.status }

// SetStatus returns an InvalidValueError for statuses outside the
// user_status table, leaving the current status in place.
func (u *User) SetStatus(status string) error {
	return binding.Set(u, "status", status)
}

func (u *User) ToDict() map[string]interface{} { return binding.Serialize(u) }
func (u *User) ToJSON() string                 { return binding.ToJSON(u) }
func (u *User) String() string                 { return u.ToJSON() }

func (u *User) MarshalJSON() ([]byte, error) { return binding.MarshalJSON(u) }

func (u *User) UnmarshalJSON(data []byte) error {
	return errors.Wrap(binding.Unmarshal(data, u), "unmarshalling user")
}
