package model

import (
	"sort"

	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/pkg/errors"
)

const (
	ProjectSettingsKind   = "project_settings"
	RecipientKind         = "recipient"
	ScheduleKind          = "schedule"
	SentUpdateRequestKind = "sent_update_request"
	UpdateRequestKind     = "update_request"
	UserKind              = "user"
)

var kinds = map[string]binding.Builder{
	ProjectSettingsKind:   binding.BuilderOf(NewProjectSettings),
	RecipientKind:         binding.BuilderOf(NewRecipient),
	ScheduleKind:          binding.BuilderOf(NewSchedule),
	SentUpdateRequestKind: binding.BuilderOf(NewSentUpdateRequest),
	UpdateRequestKind:     binding.BuilderOf(NewUpdateRequest),
	UserKind:              binding.BuilderOf(NewUser),
}

// Kinds returns the registered model kinds in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for kind := range kinds {
		out = append(out, kind)
	}
	sort.Strings(out)
	return out
}

// New builds the model registered under kind from props.
func New(kind string, base binding.Base, props map[string]interface{}) (binding.Model, error) {
	build, ok := kinds[binding.SnakeCase(kind)]
	if !ok {
		return nil, errors.Errorf("unknown model kind '%s'", kind)
	}
	return build(base, props)
}
