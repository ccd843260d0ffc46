package operations

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/evergreen-ci/smartsheet"
	"github.com/evergreen-ci/smartsheet/rest/model"
	"github.com/evergreen-ci/smartsheet/util"
	"github.com/evergreen-ci/utility"
	"github.com/kardianos/osext"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ClientSettings represents the data stored in the user's config file, by
// default located at ~/.smartsheet.yml. A .smartsheet.local.yml in the working
// directory overrides it key by key.
type ClientSettings struct {
	DefaultKind string `json:"default_kind" yaml:"default_kind,omitempty" mapstructure:"default_kind"`
	Strict      bool   `json:"strict" yaml:"strict,omitempty" mapstructure:"strict"`
	Format      string `json:"format" yaml:"format,omitempty" mapstructure:"format"`
	LoadedFrom  string `json:"-" yaml:"-" mapstructure:"-"`
}

func findConfigFilePath(fn string) (string, error) {
	currentBinPath, _ := osext.Executable()

	userHome, err := homedir.Dir()
	if err != nil {
		// workaround for cygwin if we're on windows but couldn't get a homedir
		if runtime.GOOS == "windows" && len(os.Getenv("HOME")) > 0 {
			userHome = os.Getenv("HOME")
		}
	}

	if fn != "" {
		if isValidPath(fn) {
			return fn, nil
		}
		absfn, _ := filepath.Abs(fn)
		if isValidPath(absfn) {
			return absfn, nil
		}
	}
	defaultFiles := []string{
		filepath.Join(userHome, smartsheet.DefaultConfigFile),
		filepath.Join(filepath.Dir(currentBinPath), smartsheet.DefaultConfigFile),
	}
	for _, path := range defaultFiles {
		if isValidPath(path) {
			grip.WarningWhen(fn != "", message.Fields{
				"message":  "couldn't find configuration file, falling back on default",
				"path":     fn,
				"fallback": path,
			})
			return path, nil
		}
	}

	return "", errors.New("could not find client configuration file on the local system")
}

func isValidPath(path string) bool {
	stat, err := os.Stat(path)
	if err != nil || stat.IsDir() {
		return false
	}
	return true
}

// NewClientSettings loads the settings file at fn, or the first default
// location that exists. Without any settings file the defaults are used.
func NewClientSettings(fn string) (*ClientSettings, error) {
	return newClientSettings(fn, smartsheet.LocalConfigFile)
}

func newClientSettings(fn, localPath string) (*ClientSettings, error) {
	values := map[string]interface{}{}
	loadedFrom := ""

	path, err := findConfigFilePath(fn)
	if err != nil {
		grip.Debug(message.WrapError(err, message.Fields{
			"message": "using default settings",
			"path":    fn,
		}))
	} else {
		if err = readSettingsFile(path, values); err != nil {
			return nil, err
		}
		loadedFrom = path
	}

	if utility.FileExists(localPath) {
		// keys in the local file replace the same keys from the global one
		if err = readSettingsFile(localPath, values); err != nil {
			return nil, err
		}
	}

	conf := &ClientSettings{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           conf,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating settings decoder")
	}
	if err = decoder.Decode(values); err != nil {
		return nil, errors.Wrap(err, "decoding settings")
	}
	conf.LoadedFrom = loadedFrom

	if err = conf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid settings in '%s'", loadedFrom)
	}
	return conf, nil
}

func readSettingsFile(path string, into map[string]interface{}) error {
	values := map[string]interface{}{}
	if err := util.ReadFromYAMLFile(path, &values); err != nil {
		return errors.Wrapf(err, "reading configuration file '%s'", path)
	}
	for key, value := range values {
		into[key] = value
	}
	return nil
}

// Validate checks that the configured kind and format are ones the CLI
// supports.
func (s *ClientSettings) Validate() error {
	catcher := grip.NewBasicCatcher()
	if s.DefaultKind != "" && !utility.StringSliceContains(model.Kinds(), s.DefaultKind) {
		catcher.Errorf("default kind '%s' is not one of %v", s.DefaultKind, model.Kinds())
	}
	if s.Format != "" && !utility.StringSliceContains(smartsheet.OutputFormats, s.Format) {
		catcher.Errorf("format '%s' is not one of %v", s.Format, smartsheet.OutputFormats)
	}
	return catcher.Resolve()
}

// Write stores the settings as YAML at fn, or where they were loaded from.
func (s *ClientSettings) Write(fn string) error {
	if fn == "" {
		if s.LoadedFrom != "" {
			fn = s.LoadedFrom
		}
	}
	if fn == "" {
		return errors.New("no output location specified")
	}

	yamlData, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshalling data to write")
	}

	return errors.Wrapf(os.WriteFile(fn, yamlData, 0644), "writing file '%s'", fn)
}

// kind returns the kind to use when none was given on the command line.
func (s *ClientSettings) kind(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return s.DefaultKind
}

func (s *ClientSettings) format(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if s.Format != "" {
		return s.Format
	}
	return smartsheet.JSONFormat
}
