// SPDX-License-Identifier: MIT

package stepping

import (
	"fmt"

	"github.com/katalvlaran/transport/plan"
)

// FindCycle returns the stepping-stone cycle of the non-basic route enter.
// Both directional searches run; the shorter result wins, row-first on ties.
func FindCycle(p *plan.Plan, enter plan.Position) (Cycle, error) {
	c, err := p.At(enter.Row, enter.Col)
	if err != nil {
		return Cycle{}, err
	}
	if c.Flow.IsBasic() {
		return Cycle{}, fmt.Errorf("%v: %w", enter, ErrEnteringBasic)
	}

	s := newSearch(p, enter)
	byRow, okRow := s.run(true)
	byCol, okCol := s.run(false)

	switch {
	case okRow && okCol:
		if len(byCol) < len(byRow) {
			return Cycle{Corners: byCol}, nil
		}
		return Cycle{Corners: byRow}, nil
	case okRow:
		return Cycle{Corners: byRow}, nil
	case okCol:
		return Cycle{Corners: byCol}, nil
	default:
		return Cycle{}, fmt.Errorf("%v: %w", enter, ErrCycleNotFound)
	}
}

// search holds the read-only view shared by both directional runs.
type search struct {
	p        *plan.Plan
	enter    plan.Position
	rowBasic []int // basic cells per row
	colBasic []int // basic cells per column
}

// frame is one corner on the explicit DFS stack.
//   - pos: the corner.
//   - rowMove: direction of the move leaving pos (true = along its row).
//   - next: next row/column index to scan from pos.
type frame struct {
	pos     plan.Position
	rowMove bool
	next    int
}

func newSearch(p *plan.Plan, enter plan.Position) *search {
	s := &search{
		p:        p,
		enter:    enter,
		rowBasic: make([]int, p.Height()),
		colBasic: make([]int, p.Width()),
	}
	for _, c := range p.Cells() {
		if c.Flow.IsBasic() {
			s.rowBasic[c.Pos.Row]++
			s.colBasic[c.Pos.Col]++
		}
	}

	return s
}

func (s *search) basic(i, j int) bool {
	return s.p.Cell(i, j).Flow.IsBasic()
}

// run performs one backtracking search. rowFirst selects the direction of
// the first move out of the entering cell.
//
// Steps:
//  1. The line shared by the entering cell and corner 1 is marked used; the
//     other line of the entering cell stays free for the last corner.
//  2. A corner landing on the entering cell's free line can only close the
//     cycle; it succeeds when the path holds at least four corners.
//  3. Otherwise scan the line in ascending order for a basic, unused
//     candidate whose next line still offers a continuation (another basic
//     cell, or the entering cell), push it and mark its new line used.
//  4. A frame with nothing left to scan is popped and its line released.
func (s *search) run(rowFirst bool) ([]plan.Position, bool) {
	h, w := s.p.Height(), s.p.Width()
	usedRow := make([]bool, h)
	usedCol := make([]bool, w)
	if rowFirst {
		usedRow[s.enter.Row] = true
	} else {
		usedCol[s.enter.Col] = true
	}

	path := []plan.Position{s.enter}
	stack := []frame{{pos: s.enter, rowMove: rowFirst}}

	for len(stack) > 0 {
		top := len(stack) - 1
		f := &stack[top]

		// Corner sits on the entering cell's free line: close or give up.
		if f.pos != s.enter &&
			((f.rowMove && f.pos.Row == s.enter.Row) || (!f.rowMove && f.pos.Col == s.enter.Col)) {
			if len(path) >= 4 {
				return append([]plan.Position(nil), path...), true
			}
			s.pop(&stack, &path, usedRow, usedCol)
			continue
		}

		pushed := false
		if f.rowMove {
			for f.next < w && !pushed {
				k := f.next
				f.next++
				if k == f.pos.Col || usedCol[k] || !s.basic(f.pos.Row, k) {
					continue
				}
				if s.colBasic[k] < 2 && k != s.enter.Col {
					continue
				}
				cand := plan.Position{Row: f.pos.Row, Col: k}
				usedCol[k] = true
				path = append(path, cand)
				stack = append(stack, frame{pos: cand, rowMove: false})
				pushed = true
			}
		} else {
			for f.next < h && !pushed {
				k := f.next
				f.next++
				if k == f.pos.Row || usedRow[k] || !s.basic(k, f.pos.Col) {
					continue
				}
				if s.rowBasic[k] < 2 && k != s.enter.Row {
					continue
				}
				cand := plan.Position{Row: k, Col: f.pos.Col}
				usedRow[k] = true
				path = append(path, cand)
				stack = append(stack, frame{pos: cand, rowMove: true})
				pushed = true
			}
		}

		if !pushed {
			s.pop(&stack, &path, usedRow, usedCol)
		}
	}

	return nil, false
}

// pop removes the top frame and releases the line it claimed on entry.
func (s *search) pop(stack *[]frame, path *[]plan.Position, usedRow, usedCol []bool) {
	top := len(*stack) - 1
	f := (*stack)[top]
	*stack = (*stack)[:top]
	if top == 0 {
		return // entering cell: nothing claimed
	}
	*path = (*path)[:len(*path)-1]
	if f.rowMove {
		usedRow[f.pos.Row] = false // entered by a column move
	} else {
		usedCol[f.pos.Col] = false // entered by a row move
	}
}
