package operations

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func Validate() cli.Command {
	return cli.Command{
		Name:   "validate",
		Usage:  "verify that every field of a JSON document binds to a model kind",
		Flags:  addPathFlag(addKindFlag()...),
		Before: requirePathFlag,
		Action: func(c *cli.Context) error {
			conf, err := NewClientSettings(c.Parent().String(confFlagName))
			if err != nil {
				return errors.Wrap(err, "problem loading configuration")
			}

			return validate(os.Stdout, os.Stdin, conf.kind(c.String(kindFlagName)), c.String(pathFlagName))
		},
	}
}

func validate(w io.Writer, stdin io.Reader, kind, path string) error {
	props, err := readDocument(path, stdin)
	if err != nil {
		return err
	}
	doc, err := loadDocument(kind, path, props, false)
	if err != nil {
		return err
	}

	if doc.report.Empty() {
		fmt.Fprintln(w, "Valid!")
		return nil
	}

	i := 0
	for _, key := range doc.report.Unknown {
		i++
		fmt.Fprintf(w, "%d) unknown: '%s' is not a field of %s\n", i, key, doc.kind)
	}
	for _, key := range doc.report.Rejected {
		i++
		fmt.Fprintf(w, "%d) rejected: '%s' does not match its field type\n", i, key)
	}
	return errors.Errorf("document has %d unknown and %d rejected fields",
		len(doc.report.Unknown), len(doc.report.Rejected))
}
