package util

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReadFromYAMLFile unmarshals the YAML document in fn into data. An empty
// file leaves data unchanged.
func ReadFromYAMLFile(fn string, data interface{}) error {
	if _, err := os.Stat(fn); os.IsNotExist(err) {
		return errors.Errorf("file '%s' does not exist", fn)
	}

	bytes, err := os.ReadFile(fn)
	if err != nil {
		return errors.Wrapf(err, "problem reading file '%s'", fn)
	}

	return errors.Wrap(yaml.Unmarshal(bytes, data), "problem reading yaml")
}
