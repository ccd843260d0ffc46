package operations

import (
	"io"
	"os"

	"github.com/evergreen-ci/smartsheet"
	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/evergreen-ci/smartsheet/rest/model"
	"github.com/evergreen-ci/smartsheet/util"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is a JSON object bound to a model of a registered kind.
type document struct {
	kind   string
	source string
	model  binding.Model
	report binding.Report
}

// readDocument decodes the JSON object at path, or on stdin when path is "-".
func readDocument(path string, stdin io.Reader) (map[string]interface{}, error) {
	var (
		r      io.ReadCloser
		source = path
	)
	if path == "-" {
		r = io.NopCloser(stdin)
		source = "standard input"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening document '%s'", path)
		}
		r = f
	}

	var props map[string]interface{}
	if err := util.ReadJSONInto(r, &props); err != nil {
		return nil, errors.Wrapf(err, "decoding '%s'", source)
	}
	if props == nil {
		return nil, errors.Errorf("'%s' is not a JSON object", source)
	}
	return props, nil
}

// loadDocument binds props to an empty model of kind. Fields that could not be
// bound are logged, and are an error in strict mode.
func loadDocument(kind, source string, props map[string]interface{}, strict bool) (*document, error) {
	if kind == "" {
		return nil, errors.New("no model kind given and no default_kind configured")
	}
	m, err := model.New(kind, nil, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	report, err := binding.DeserializeReport(m, props)
	if err != nil {
		return nil, errors.Wrapf(err, "binding '%s' as %s", source, kind)
	}

	grip.WarningWhen(!report.Empty(), message.Fields{
		"message":  "document fields were not bound",
		"source":   source,
		"kind":     kind,
		"unknown":  report.Unknown,
		"rejected": report.Rejected,
	})
	if strict && !report.Empty() {
		return nil, errors.Errorf("'%s' does not match %s: %s", source, kind, report.String())
	}

	return &document{kind: kind, source: source, model: m, report: report}, nil
}

func writeModel(w io.Writer, m binding.Model, format string) error {
	switch format {
	case smartsheet.JSONFormat, "":
		data, err := binding.MarshalJSON(m)
		if err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		_, err = w.Write(append(data, '\n'))
		return errors.Wrap(err, "writing JSON")
	case smartsheet.YAMLFormat:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(binding.Serialize(m)); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "flushing YAML")
	default:
		return errors.Errorf("'%s' is not a supported format", format)
	}
}
