// SPDX-License-Identifier: MIT

// Package report renders transportation plans as text tables.
//
// Each route cell reads "flow/cost" ("-/cost" for non-basic routes). The
// right margin holds each supplier's supply and the footer each consumer's
// demand plus the plan's total cost.
package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/katalvlaran/transport/plan"
)

// Plan renders p.
func Plan(p *plan.Plan) string {
	return render(p, nil, nil)
}

// PlanWithPotentials renders p with a V column (per supplier) and a U row
// (per consumer). Missing or short potentials render as blanks.
func PlanWithPotentials(p *plan.Plan, u, v []int64) string {
	return render(p, u, v)
}

func render(p *plan.Plan, u, v []int64) string {
	pt := p.Participants()
	withPotentials := u != nil || v != nil

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	header := table.Row{""}
	for j := 0; j < p.Width(); j++ {
		header = append(header, fmt.Sprintf("C%d", j+1))
	}
	header = append(header, "Supply")
	if withPotentials {
		header = append(header, "V")
	}
	t.AppendHeader(header)

	for i := 0; i < p.Height(); i++ {
		row := table.Row{fmt.Sprintf("S%d", i+1)}
		for j := 0; j < p.Width(); j++ {
			c := p.Cell(i, j)
			row = append(row, fmt.Sprintf("%s/%d", c.Flow, c.Cost))
		}
		row = append(row, pt.Supply(i))
		if withPotentials {
			row = append(row, potentialAt(v, i))
		}
		t.AppendRow(row)
	}

	if withPotentials {
		urow := table.Row{"U"}
		for j := 0; j < p.Width(); j++ {
			urow = append(urow, potentialAt(u, j))
		}
		t.AppendRow(urow)
	}

	footer := table.Row{"Demand"}
	for j := 0; j < p.Width(); j++ {
		footer = append(footer, pt.Demand(j))
	}
	footer = append(footer, fmt.Sprintf("cost %d", p.TotalCost()))
	t.AppendFooter(footer)

	cols := make([]table.ColumnConfig, 0, p.Width()+3)
	for k := 2; k <= p.Width()+3; k++ {
		cols = append(cols, table.ColumnConfig{Number: k, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.SetColumnConfigs(cols)

	return t.Render()
}

func potentialAt(vals []int64, k int) string {
	if k >= len(vals) {
		return ""
	}

	return fmt.Sprintf("%d", vals[k])
}
