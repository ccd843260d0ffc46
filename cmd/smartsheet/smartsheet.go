package main

import (
	"os"
	"path/filepath"

	"github.com/evergreen-ci/smartsheet"
	"github.com/evergreen-ci/smartsheet/operations"
	"github.com/mitchellh/go-homedir"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/mongodb/grip/send"
	"github.com/urfave/cli"
)

func main() {
	// the command line interface is managed by the cli package; buildApp
	// wires the sub-commands and global flags
	app := buildApp()
	grip.EmergencyFatal(app.Run(os.Args))
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = "smartsheet"
	app.Usage = "inspect and normalize Smartsheet API documents"
	app.Version = smartsheet.ClientVersion

	app.Commands = []cli.Command{
		operations.Version(),
		operations.Kinds(),

		operations.Convert(),
		operations.Validate(),
		operations.Inspect(),
	}

	userHome, _ := homedir.Dir()
	confPath := filepath.Join(userHome, smartsheet.DefaultConfigFile)

	// These are global options. Use this to configure logging or
	// other options independent from specific sub commands.
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Value: "info",
			Usage: "Specify lowest visible log level as string: 'emergency|alert|critical|error|warning|notice|info|debug|trace'",
		},
		cli.StringFlag{
			Name:  "conf, config, c",
			Usage: "specify the path for the smartsheet CLI config",
			Value: confPath,
		},
	}

	app.Before = func(c *cli.Context) error {
		return loggingSetup(app.Name, c.String("level"))
	}

	return app
}

func loggingSetup(name, l string) error {
	if err := grip.SetSender(send.MakeErrorLogger()); err != nil {
		return err
	}
	grip.SetName(name)

	sender := grip.GetSender()
	info := sender.Level()
	info.Threshold = level.FromString(l)

	return sender.SetLevel(info)
}
