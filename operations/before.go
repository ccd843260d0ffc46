package operations

import (
	"github.com/evergreen-ci/smartsheet"
	"github.com/evergreen-ci/utility"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var (
	requirePathFlag = func(c *cli.Context) error {
		if c.String(pathFlagName) == "" {
			return errors.New("must specify a document path")
		}
		return nil
	}

	requireKnownFormat = func(c *cli.Context) error {
		format := c.String(formatFlagName)
		if format != "" && !utility.StringSliceContains(smartsheet.OutputFormats, format) {
			return errors.Errorf("'%s' is not a supported format", format)
		}
		return nil
	}
)

func mergeBeforeFuncs(ops ...func(c *cli.Context) error) cli.BeforeFunc {
	return func(c *cli.Context) error {
		catcher := grip.NewBasicCatcher()

		for _, op := range ops {
			catcher.Add(op(c))
		}

		return catcher.Resolve()
	}
}
