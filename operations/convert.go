package operations

import (
	"io"
	"os"

	"github.com/urfave/cli"
)

func Convert() cli.Command {
	return cli.Command{
		Name:  "convert",
		Usage: "normalize a JSON document of a model kind, dropping fields that do not match",
		Flags: addPathFlag(addKindFlag(addFormatFlag(addStrictFlag()...)...)...),
		Before: mergeBeforeFuncs(
			requirePathFlag,
			requireKnownFormat,
		),
		Action: func(c *cli.Context) error {
			conf, err := NewClientSettings(c.Parent().String(confFlagName))
			if err != nil {
				return err
			}

			return convert(os.Stdout, os.Stdin, convertOptions{
				kind:   conf.kind(c.String(kindFlagName)),
				path:   c.String(pathFlagName),
				format: conf.format(c.String(formatFlagName)),
				strict: conf.Strict || c.Bool(strictFlagName),
			})
		},
	}
}

type convertOptions struct {
	kind   string
	path   string
	format string
	strict bool
}

func convert(w io.Writer, stdin io.Reader, opts convertOptions) error {
	props, err := readDocument(opts.path, stdin)
	if err != nil {
		return err
	}
	doc, err := loadDocument(opts.kind, opts.path, props, opts.strict)
	if err != nil {
		return err
	}
	return writeModel(w, doc.model, opts.format)
}
