// Command josephus runs counting-out eliminations from flags or scenario files.
//
//	josephus run --n 5 --step 3
//	josephus run --values aaa,bbb,ccc,ddd,eee --mode once
//	josephus scenario demo.yaml
//	josephus survivor --n 41 --k 3
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvring/circular"
	"github.com/katalvlaran/lvring/josephus"
	"github.com/katalvlaran/lvring/scenario"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}
	if err := InitializeLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("initializing logger")
	}

	if err := newApp(cfg).Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("josephus failed")
	}
}

func newApp(cfg *Config) *cli.App {
	return &cli.App{
		Name:  "josephus",
		Usage: "eliminate values standing in a circle by counting",
		Commands: []*cli.Command{{
			Name:  "run",
			Usage: "eliminate values given on the command line",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "values",
					Usage: "comma-separated values in circle order",
				},
				&cli.IntFlag{
					Name:  "n",
					Usage: "use the values 1..n when --values is not given",
				},
				&cli.IntFlag{
					Name:  "start",
					Usage: "1-based position where counting starts",
					Value: cfg.Start,
				},
				&cli.IntFlag{
					Name:  "step",
					Usage: "how many positions each count covers",
					Value: cfg.Step,
				},
				&cli.StringFlag{
					Name:  "mode",
					Usage: "run (continue after each removal) or once (restart at head)",
					Value: string(cfg.Mode),
				},
				outputFlag(),
			},
			Action: func(ctx *cli.Context) error {
				values := splitValues(ctx.StringSlice("values"))
				if len(values) == 0 {
					n := ctx.Int("n")
					if n < 1 {
						return fmt.Errorf("one of --values or --n (at least 1) is required")
					}
					values = make([]string, n)
					for i := range values {
						values[i] = strconv.Itoa(i + 1)
					}
				}
				sc := &scenario.Scenario{
					Values: values,
					Start:  ctx.Int("start"),
					Step:   ctx.Int("step"),
					Mode:   scenario.Mode(ctx.String("mode")),
				}
				return execute(ctx.App.Writer, sc, ctx.String("output"))
			},
		}, {
			Name:      "scenario",
			Usage:     "execute a YAML or TOML scenario file",
			ArgsUsage: "FILE",
			Flags:     []cli.Flag{outputFlag()},
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() != 1 {
					return fmt.Errorf("expected exactly one scenario file, got %d arguments", ctx.NArg())
				}
				sc, err := scenario.Load(ctx.Args().First())
				if err != nil {
					return err
				}
				return execute(ctx.App.Writer, sc, ctx.String("output"))
			},
		}, {
			Name:  "survivor",
			Usage: "print the last person standing among 1..n counting k",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "n", Usage: "circle size", Required: true},
				&cli.IntFlag{Name: "k", Usage: "count length", Value: cfg.Step},
			},
			Action: func(ctx *cli.Context) error {
				n, k := ctx.Int("n"), ctx.Int("k")
				var last int
				var err error
				if k == 2 {
					last, err = josephus.SurvivorK2(n)
				} else {
					last, err = josephus.Survivor(n, k)
				}
				if err != nil {
					return err
				}
				log.Debug().Int("n", n).Int("k", k).Int("survivor", last).Msg("computed survivor")
				_, err = fmt.Fprintln(ctx.App.Writer, last)
				return err
			},
		}},
	}
}

// splitValues flattens repeated --values flags, each of which may hold a
// comma-separated list. Empty parts are dropped.
func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "output",
		Usage: "result format: text or yaml",
		Value: outputText,
	}
}

// execute runs sc and writes the result to w in the requested format.
func execute(w io.Writer, sc *scenario.Scenario, output string) error {
	if output != outputText && output != outputYAML {
		return fmt.Errorf("unknown output format %q", output)
	}

	logger := log.With().Str("scenario", sc.Name).Logger()
	res, err := sc.Execute(circular.WithOnEliminate(func(round int, v string) {
		logger.Debug().Int("round", round).Str("value", v).Msg("eliminated")
	}))
	if err != nil {
		return err
	}
	logger.Info().
		Str("mode", string(res.Mode)).
		Int("size", len(res.Initial)).
		Int("start", sc.Start).
		Int("step", sc.Step).
		Msg("elimination finished")

	if output == outputText {
		_, err = fmt.Fprintf(w, "initial: %v\neliminated: %v\n", res.Initial, res.Eliminated)
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return enc.Close()
}
