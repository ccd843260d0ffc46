package binding

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidValueError is returned when an enum field is assigned a string
// outside its allowed values. It is the only error binding raises for bad
// input; every other mismatch is dropped silently.
type InvalidValueError struct {
	Model   string
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("`%s` is an invalid value for %s`%s`, must be one of %v", e.Value, e.Model, e.Field, e.Allowed)
}

// AsInvalidValue finds an InvalidValueError anywhere in err's chain.
func AsInvalidValue(err error) (*InvalidValueError, bool) {
	var target *InvalidValueError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
