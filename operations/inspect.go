package operations

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cheynewallace/tabby"
	"github.com/dustin/go-humanize"
	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func Inspect() cli.Command {
	return cli.Command{
		Name:   "inspect",
		Usage:  "show the fields a JSON document binds to, one per row",
		Flags:  addPathFlag(addKindFlag()...),
		Before: requirePathFlag,
		Action: func(c *cli.Context) error {
			conf, err := NewClientSettings(c.Parent().String(confFlagName))
			if err != nil {
				return errors.Wrap(err, "problem loading configuration")
			}

			return inspect(os.Stdout, os.Stdin, conf.kind(c.String(kindFlagName)), c.String(pathFlagName))
		},
	}
}

func inspect(w io.Writer, stdin io.Reader, kind, path string) error {
	props, err := readDocument(path, stdin)
	if err != nil {
		return err
	}
	doc, err := loadDocument(kind, path, props, false)
	if err != nil {
		return err
	}

	wire := binding.Serialize(doc.model)
	t := tabby.NewCustom(tabwriter.NewWriter(w, 0, 8, 2, ' ', 0))
	t.AddHeader("Field", "Type", "Value", "When")
	for _, f := range doc.model.Fields() {
		v := f.Value()
		if v == nil {
			continue
		}
		name := binding.WireName(doc.model, f.Name)
		value, err := renderValue(wire[name])
		if err != nil {
			return errors.Wrapf(err, "rendering field '%s'", name)
		}
		t.AddLine(name, fieldType(f), value, relativeTime(v))
	}
	t.Print()

	if !doc.report.Empty() {
		fmt.Fprintf(w, "\nNot bound: %s\n", doc.report.String())
	}
	return nil
}

func fieldType(f binding.Field) string {
	if f.Kind == binding.KindList {
		return fmt.Sprintf("list of %s", f.Elem)
	}
	return f.Kind.String()
}

func renderValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(val)
		return string(data), errors.WithStack(err)
	default:
		return fmt.Sprint(val), nil
	}
}

func relativeTime(v interface{}) string {
	switch val := v.(type) {
	case time.Time:
		return humanize.Time(val)
	case binding.Date:
		return humanize.Time(val.Time())
	}
	return ""
}
