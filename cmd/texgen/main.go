package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/rcgen"
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
	if err == nil {
		return nil
	}
	return cli.NewExitError(fmt.Sprintf("texgen: %v", err), 1)
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "texgen"
	app.Usage = "Generate an array of pixel data"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "colors",
			Aliases: []string{"c"},
			Usage:   "reduce the texture to at most `N` colors",
		},
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
		if c.NArg() < 1 {
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

		return exitError(g.GenerateTexture(c.Args().First(), c.App.Writer, c.Int("colors")))
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
