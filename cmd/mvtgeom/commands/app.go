// Package commands implements the mvtgeom command line tool.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// NewApp creates the mvtgeom CLI app.
//
// Commands read from app.Reader and write results to app.Writer; logs go to app.ErrWriter.
func NewApp() *cli.App {
	log := logrus.New()

	app := cli.NewApp()
	app.Name = "mvtgeom"
	app.Usage = "Encode and decode Mapbox Vector Tile geometry command streams"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level: trace, debug, info, warn, error",
			Value:   "info",
			EnvVars: []string{"MVTGEOM_LOG_LEVEL"},
		},
	}

	app.Commands = []*cli.Command{
		NewEncodeCommand(log),
		NewDecodeCommand(log),
		NewVersionCommand(),
	}

	app.Before = func(c *cli.Context) error {
		level, err := logrus.ParseLevel(c.String("log-level"))
		if err != nil {
			return errors.Wrap(err, "log-level")
		}

		log.SetLevel(level)
		log.SetOutput(c.App.ErrWriter)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

		return nil
	}

	return app
}
