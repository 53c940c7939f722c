package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmapkit/bmpdump"
	"github.com/bitmapkit/bmpdump/bmp"
	"github.com/bitmapkit/bmpdump/carray"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB     = "bmpdump.db"
	defaultConfig = ".bmpdump.yaml"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func loadConfig(c *cli.Context) (*bmpdump.Config, error) {
	cfg, err := bmpdump.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	// The command line wins over the configuration file
	if c.IsSet("db") || cfg.DB == "" {
		cfg.DB = c.String("db")
	}
	return cfg, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "bmpdump"
	app.Usage = "uncompressed BMP inspection utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BMPDUMP_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.StringFlag{
			Name:  "config",
			Value: filepath.Join(cwd, defaultConfig),
			Usage: "path to configuration file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Dump header, palette and pixel diagnostics",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "pixels",
					Usage: "include raw pixel sample rows",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := bmpdump.Dump(os.Stdout, c.Args().First(), c.Bool("pixels")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Export pixel data as a C source array",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write to file instead of stdout",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "override the array identifier",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				file := c.Args().First()
				bm, err := bmp.DecodeFile(file)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				name := c.String("name")
				if name == "" {
					name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
				}

				var w io.Writer = os.Stdout
				if out := c.String("output"); out != "" {
					f, err := os.Create(out)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					defer f.Close()
					w = f
				}

				if err := carray.Encode(w, bm, name); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and catalog bitmap metadata",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, err := bmpdump.New(cfg.DB, newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First(), cfg.Workers); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "dupes",
			Usage:       "List cataloged bitmaps with identical contents",
			Description: "",
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, err := bmpdump.New(cfg.DB, newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				dupes, err := m.Duplicates()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, d := range dupes {
					fmt.Println(d.Hash)
					for _, p := range d.Paths {
						fmt.Printf("\t%s\n", p)
					}
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
