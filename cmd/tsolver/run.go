// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/transport/generate"
	"github.com/katalvlaran/transport/initial"
	"github.com/katalvlaran/transport/log"
	"github.com/katalvlaran/transport/lpcheck"
	"github.com/katalvlaran/transport/modi"
	"github.com/katalvlaran/transport/plan"
	"github.com/katalvlaran/transport/problem"
	"github.com/katalvlaran/transport/report"
	"github.com/urfave/cli/v2"
)

// run loads the selected problem, prints the initial plan, optimizes it and
// prints the result.
func run(ctx *cli.Context) error {
	log.SetLevel(ctx.String("log-level"))
	out := ctx.App.Writer

	costs, p, name, err := loadProblem(ctx)
	if err != nil {
		return err
	}

	method := initial.Method(ctx.String("method"))
	pl, err := initial.Build(method, costs, p)
	if err != nil {
		return errors.Wrapf(err, "build %s plan for %s", method, name)
	}
	fmt.Fprintf(out, "%s: %d suppliers x %d consumers, initial plan (%s)\n", name, pl.Height(), pl.Width(), method)
	fmt.Fprintln(out, report.Plan(pl))

	opts := []modi.Option{
		modi.WithContext(ctx.Context),
		modi.WithMaxIterations(ctx.Int("max-iterations")),
		modi.WithOnIteration(func(it modi.Iteration) error {
			log.Debugf("iteration %d: enter %s, theta %d, cost %d", it.Index, it.Entering, it.Move.Theta, it.Cost)
			return nil
		}),
	}
	if ctx.Bool("no-repair") {
		opts = append(opts, modi.WithoutBasisRepair())
	}
	res, err := modi.Optimize(pl, opts...)
	if err != nil {
		return errors.Wrap(err, "optimize")
	}

	fmt.Fprintf(out, "final plan (%s)\n", res.Status)
	if ctx.Bool("potentials") {
		fmt.Fprintln(out, report.PlanWithPotentials(res.Plan, res.U, res.V))
	} else {
		fmt.Fprintln(out, report.Plan(res.Plan))
	}
	fmt.Fprintf(out, "status %s, iterations %d, repairs %d, forced anchors %d, cost %d -> %d\n",
		res.Status, res.Iterations, res.Repairs, res.ForcedAnchors, res.InitialCost, res.Cost)

	if ctx.Bool("verify") {
		if err := lpcheck.Certify(res.Plan); err != nil {
			return errors.Wrap(err, "verify")
		}
		fmt.Fprintln(out, "verified: cost matches the LP optimum")
	}

	return nil
}

// loadProblem resolves --input, --random and --sample (the default).
func loadProblem(ctx *cli.Context) ([][]int64, *plan.Participants, string, error) {
	sources := 0
	for _, f := range []string{"input", "random", "sample"} {
		if ctx.IsSet(f) {
			sources++
		}
	}
	if sources > 1 {
		return nil, nil, "", errors.New("--input, --random and --sample are mutually exclusive")
	}

	switch {
	case ctx.IsSet("input"):
		path := ctx.String("input")
		pr, err := problem.Load(path)
		if err != nil {
			return nil, nil, "", err
		}
		p, err := pr.Participants()
		if err != nil {
			return nil, nil, "", errors.Wrapf(err, "participants of %q", path)
		}
		return pr.Costs, p, path, nil

	case ctx.IsSet("random"):
		var m, n int
		shape := ctx.String("random")
		if _, err := fmt.Sscanf(shape, "%dx%d", &m, &n); err != nil {
			return nil, nil, "", errors.Wrapf(err, "parse --random %q (want MxN)", shape)
		}
		in, err := generate.Balanced(m, n, ctx.Int64("max-cost"), ctx.Int64("max-qty"), ctx.Int64("seed"))
		if err != nil {
			return nil, nil, "", errors.Wrapf(err, "random %dx%d", m, n)
		}
		p, err := in.Participants()
		if err != nil {
			return nil, nil, "", err
		}
		return in.Costs, p, fmt.Sprintf("random %dx%d (seed %d)", m, n, ctx.Int64("seed")), nil

	default:
		in := generate.Sample()
		p, err := in.Participants()
		if err != nil {
			return nil, nil, "", err
		}
		return in.Costs, p, "sample", nil
	}
}
