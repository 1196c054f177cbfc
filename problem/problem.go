// SPDX-License-Identifier: MIT

// Package problem loads balanced transportation problems from JSON:
//
//	{"supply": [9, 11], "demand": [8, 12], "costs": [[5, 15], [23, 8]]}
//
// Decode validates the document's shape and balance; the returned Problem
// is ready for plan construction.
package problem

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/transport/plan"
)

// ErrInvalid marks every validation failure of a decoded problem.
var ErrInvalid = errors.New("problem: invalid document")

// Problem is a decoded transportation problem.
type Problem struct {
	Supply []int64   `json:"supply"`
	Demand []int64   `json:"demand"`
	Costs  [][]int64 `json:"costs"`
}

// Participants snapshots the problem's supply and demand.
func (pr *Problem) Participants() (*plan.Participants, error) {
	return plan.NewParticipants(pr.Supply, pr.Demand)
}

// Load opens path and decodes it.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open problem %q", path)
	}
	defer f.Close()

	pr, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}

	return pr, nil
}

// Decode reads one JSON document from r and validates it. Unknown fields
// are rejected.
func Decode(r io.Reader) (*Problem, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var pr Problem
	if err := dec.Decode(&pr); err != nil {
		return nil, errors.Wrap(err, "decode problem")
	}
	if err := pr.Validate(); err != nil {
		return nil, err
	}

	return &pr, nil
}

// Validate checks the participants and the cost matrix shape.
func (pr *Problem) Validate() error {
	p, err := pr.Participants()
	if err != nil {
		return errors.Mark(errors.Wrap(err, "participants"), ErrInvalid)
	}
	if err := p.CheckBalance(); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	if len(pr.Costs) != len(pr.Supply) {
		return errors.Mark(
			errors.Newf("costs has %d rows, supply has %d entries", len(pr.Costs), len(pr.Supply)),
			ErrInvalid)
	}
	for i, row := range pr.Costs {
		if len(row) != len(pr.Demand) {
			return errors.Mark(
				errors.Newf("costs row %d has %d entries, demand has %d", i, len(row), len(pr.Demand)),
				ErrInvalid)
		}
		for j, c := range row {
			if c < 0 {
				return errors.Mark(errors.Newf("costs[%d][%d] = %d is negative", i, j, c), ErrInvalid)
			}
		}
	}

	return nil
}
