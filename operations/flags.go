package operations

import (
	"fmt"
	"strings"

	"github.com/evergreen-ci/smartsheet"
	"github.com/urfave/cli"
)

const (
	confFlagName   = "conf"
	kindFlagName   = "kind"
	pathFlagName   = "path"
	formatFlagName = "format"
	strictFlagName = "strict"
)

func addPathFlag(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  joinFlagNames(pathFlagName, "p", "filename"),
		Usage: "path to a JSON document, or '-' to read standard input",
	})
}

func addKindFlag(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  joinFlagNames(kindFlagName, "k"),
		Usage: "the model kind the document holds (see 'kinds'); defaults to the configured default_kind",
	})
}

func addFormatFlag(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  joinFlagNames(formatFlagName, "f"),
		Usage: fmt.Sprintf("output format, one of %s", strings.Join(smartsheet.OutputFormats, ", ")),
	})
}

func addStrictFlag(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.BoolFlag{
		Name:  strictFlagName,
		Usage: "fail when any field of the document is unknown or does not match its type",
	})
}

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }
