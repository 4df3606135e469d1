package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/rcgen"
	"github.com/bodgit/rcgen/extradata"
	"github.com/bodgit/rcgen/raymap"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// usageError prints the help to the diagnostic stream, stdout may be
// redirected to the generated file
func usageError(c *cli.Context) error {
	c.App.Writer = c.App.ErrWriter
	if err := cli.ShowAppHelp(c); err != nil {
		return err
	}
	return cli.NewExitError("", 1)
}

func exitError(err error) error {
	var (
		ce *extradata.ColorError
		fe *extradata.FieldError
		pe *raymap.PixelError
	)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, extradata.ErrMalformedJSON):
		// Historically not treated as a failure
		return cli.NewExitError("mapgen: Invalid extradata JSON!", 0)
	case errors.As(err, &ce):
		return cli.NewExitError(fmt.Sprintf("mapgen: Invalid color! %v", ce), 1)
	case errors.As(err, &fe):
		return cli.NewExitError(fmt.Sprintf("mapgen: Invalid extradata! %v", fe), 1)
	case errors.As(err, &pe):
		return cli.NewExitError(fmt.Sprintf("mapgen: Invalid map! %v", pe), 1)
	default:
		return cli.NewExitError(fmt.Sprintf("mapgen: %v", err), 1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "mapgen"
	app.Usage = "Generate C source code from map data"
	app.Version = "1.0.0"
	app.ArgsUsage = "MAP EXTRADATA SOURCE HEADER"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"RCGEN_DB"},
			Usage:   "record generated assets in the database at `FILE`",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 4 {
			return usageError(c)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		var db *rcgen.AssetDB
		if c.String("db") != "" {
			var err error
			if db, err = rcgen.NewAssetDB(c.String("db")); err != nil {
				return exitError(err)
			}
			defer db.Close()
		}

		g := rcgen.New(db, logger)

		return exitError(g.GenerateMap(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2), c.Args().Get(3)))
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
