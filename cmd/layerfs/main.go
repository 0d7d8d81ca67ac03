package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/layerfs/layerfs/config"
	"github.com/layerfs/layerfs/fs"
	dlog "github.com/layerfs/layerfs/log"
)

const (
	configFlag  = "config"
	rootFlag    = "root"
	archiveFlag = "archive"
)

func main() {
	app := &cli.App{
		Name:  "layerfs",
		Usage: "read files through a layered virtual filesystem",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Value:   "layerfs.yaml",
				Usage:   "path to the YAML configuration file",
			},
			&cli.StringSliceFlag{
				Name:  rootFlag,
				Usage: "add a directory layer (repeatable, highest priority first)",
			},
			&cli.StringSliceFlag{
				Name:  archiveFlag,
				Usage: "add an archive layer after the directory layers (repeatable)",
			},
		},
		Commands: []*cli.Command{
			catCommand(),
			headCommand(),
			statCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("problem running application")
	}
}

// buildFS assembles the provider chain: layers given on the command line
// first, then the layers from the configuration file.
func buildFS(c *cli.Context) (*fs.FS, error) {
	cfg, err := config.Load(c.String(configFlag))
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	dlog.Load(cfg.Log)

	v := fs.NewFromRoots(c.StringSlice(rootFlag))
	for _, a := range c.StringSlice(archiveFlag) {
		v.AddProvider(fs.NewArchive(a))
	}

	// Command-line layers take priority over configured ones.
	ps, err := cfg.Providers()
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		v.AddProvider(p)
	}

	return v, nil
}

func openArg(c *cli.Context) (*fs.File, error) {
	if c.NArg() != 1 {
		return nil, errors.New("expected exactly one path argument")
	}

	v, err := buildFS(c)
	if err != nil {
		return nil, err
	}

	f, err := v.Open(c.Args().First())
	if err != nil {
		return nil, err
	}

	return f, nil
}

func catCommand() *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     "print a file's contents",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			f, err := openArg(c)
			if err != nil {
				return err
			}
			defer f.Close()

			data, err := f.ReadAll()
			if err != nil {
				return err
			}

			_, err = os.Stdout.Write(data)
			return err
		},
	}
}

func headCommand() *cli.Command {
	return &cli.Command{
		Name:      "head",
		Usage:     "print the first lines of a file",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Value:   10,
				Usage:   "number of lines to print",
			},
		},
		Action: func(c *cli.Context) error {
			f, err := openArg(c)
			if err != nil {
				return err
			}
			defer f.Close()

			buf := make([]byte, 4096)
			for i := 0; i < c.Int("lines") && !f.EOF(); i++ {
				n, err := f.ReadLine(buf)
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				fmt.Println(string(buf[:n]))
			}

			return nil
		},
	}
}

func statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "show which layer resolves a path and its size",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			f, err := openArg(c)
			if err != nil {
				return err
			}
			defer f.Close()

			fmt.Printf("%s: %d bytes\n", c.Args().First(), f.Size())
			return nil
		},
	}
}
