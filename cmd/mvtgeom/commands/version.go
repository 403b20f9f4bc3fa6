package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

// NewVersionCommand returns a cli.Command for "mvtgeom version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows the mvtgeom version",
		Action: func(c *cli.Context) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				_, err := fmt.Fprintln(c.App.Writer, "version not available")
				return err
			}

			_, err := fmt.Fprintf(c.App.Writer, "mvtgeom %s (%s)\n", info.Main.Version, info.GoVersion)

			return err
		},
	}
}
