package operations

import (
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/evergreen-ci/smartsheet/rest/binding"
	"github.com/evergreen-ci/smartsheet/rest/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func Kinds() cli.Command {
	return cli.Command{
		Name:  "kinds",
		Usage: "list the model kinds documents can be read as, with their fields",
		Action: func(c *cli.Context) error {
			return listKinds(os.Stdout)
		},
	}
}

func listKinds(w io.Writer) error {
	t := tabby.NewCustom(tabwriter.NewWriter(w, 0, 8, 2, ' ', 0))
	t.AddHeader("Kind", "Field", "Type", "Allowed")
	for _, kind := range model.Kinds() {
		m, err := model.New(kind, nil, nil)
		if err != nil {
			return errors.Wrapf(err, "building empty '%s'", kind)
		}
		for i, f := range m.Fields() {
			label := ""
			if i == 0 {
				label = kind
			}
			t.AddLine(label, binding.WireName(m, f.Name), fieldType(f), strings.Join(f.Allowed, "|"))
		}
	}
	t.Print()
	return nil
}
