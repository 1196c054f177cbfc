// SPDX-License-Identifier: MIT

// Command tsolver solves balanced transportation problems.
//
// Usage:
//
//	tsolver --sample
//	tsolver --input problem.json --method north-west --potentials
//	tsolver --random 6x8 --seed 3 --verify
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/transport/initial"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "tsolver",
		HelpName: "tsolver",
		Usage:    "minimize the cost of a balanced transportation problem (least cost + MODI)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "JSON problem file {\"supply\":[...],\"demand\":[...],\"costs\":[[...]]}",
			},
			&cli.BoolFlag{
				Name:  "sample",
				Usage: "solve the built-in 4x5 sample (default when no input is given)",
			},
			&cli.StringFlag{
				Name:  "random",
				Usage: "solve a random balanced instance of the given `MxN` shape",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for --random (0 selects the fixed default)",
			},
			&cli.Int64Flag{
				Name:  "max-cost",
				Usage: "largest unit cost for --random",
				Value: 20,
			},
			&cli.Int64Flag{
				Name:  "max-qty",
				Usage: "largest supply per supplier for --random",
				Value: 20,
			},
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"m"},
				Usage:   "initial plan: least-cost or north-west",
				Value:   string(initial.MethodLeastCost),
			},
			&cli.IntFlag{
				Name:  "max-iterations",
				Usage: "stop after this many pivots (0 = unlimited)",
			},
			&cli.BoolFlag{
				Name:  "no-repair",
				Usage: "do not connect degenerate bases with zero-flow cells",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "cross-check the final cost with an LP simplex",
			},
			&cli.BoolFlag{
				Name:  "potentials",
				Usage: "print the final U/V potentials next to the plan",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: "warn",
			},
		},
		Action: run,
	}
}
