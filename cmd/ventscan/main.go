package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/bytearena/ventscan/common/overlap"
	"github.com/bytearena/ventscan/common/utils"
	bettererrors "github.com/xtuc/better-errors"
)

const (
	DEFAULT_INPUT = "05.txt"
	STDIN_INPUT   = "-"
)

func main() {
	app := makeapp()

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "ventscan"
	app.Usage = "Count the grid points crossed by several hydrothermal vent lines"
	app.Version = utils.GetVersion()

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "input, i", Value: DEFAULT_INPUT, EnvVar: "VENTSCAN_INPUT", Usage: "Vent lines file; - reads stdin"},
		cli.BoolFlag{Name: "count-only", Usage: "Only print the number of overlapping points"},
		cli.BoolFlag{Name: "debug", EnvVar: "VENTSCAN_DEBUG", Usage: "Enable debug logging"},
	}

	app.Action = func(c *cli.Context) error {
		if c.Bool("debug") {
			utils.LogFn = utils.JSONLog
		}

		if err := scanAction(c.String("input"), c.Bool("count-only"), os.Stdout); err != nil {
			utils.FailWith(err)
		}

		return nil
	}

	return app
}

func scanAction(input string, countOnly bool, out io.Writer) error {
	source, err := openInput(input)
	if err != nil {
		return err
	}
	defer source.Close()

	utils.Debug("ventscan", "scanning "+input)

	counter := overlap.NewCounter()
	if err := counter.Scan(source); err != nil {
		return bettererrors.
			NewFromString("Could not scan vent lines").
			With(err).
			SetContext("file", input)
	}

	stats := counter.Stats()
	if stats.Segments == 0 {
		utils.WarnWith(bettererrors.
			NewFromString("No vent lines found").
			SetContext("file", input))
	}

	utils.DebugWithContext("ventscan", "scan done", utils.Context{
		"segments": stats.Segments,
		"skipped":  stats.Skipped,
		"points":   stats.Points,
		"visited":  counter.Visited(),
	})

	return writeReport(out, counter, countOnly)
}

func openInput(input string) (io.ReadCloser, error) {
	if input == STDIN_INPUT {
		return ioutil.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, bettererrors.
			NewFromString("Could not open vent lines file").
			With(bettererrors.NewFromErr(err)).
			SetContext("file", input)
	}

	return f, nil
}
