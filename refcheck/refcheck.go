// SPDX-License-Identifier: MIT

// Package refcheck runs a fixture through the reference pipeline
// (validate → multiply → optional cross-check → print) and compares
// product matrices cell by cell.
package refcheck

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/matref/fixture"
	"github.com/katalvlaran/matref/matrix"
	"github.com/katalvlaran/matref/report"
)

var (
	// ErrNilFixture is returned by Run for a nil fixture.
	ErrNilFixture = errors.New("refcheck: nil fixture")

	// ErrCrossCheck is returned when the primary and gonum kernels disagree.
	ErrCrossCheck = errors.New("refcheck: kernels disagree")
)

// Mismatch is one differing cell.
type Mismatch struct {
	Row, Col  int
	Want, Got int64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("Result[%d][%d]: expected %d, got %d", m.Row, m.Col, m.Want, m.Got)
}

// Run computes fx.A × fx.B and writes the listing to w.
// Nothing is written unless every step succeeded. The product is returned
// for callers that verify it further.
func Run(w io.Writer, fx *fixture.Fixture, opts ...Option) (*matrix.Dense, error) {
	if fx == nil {
		return nil, ErrNilFixture
	}
	o := gatherOptions(opts)

	if err := matrix.ValidateMulCompatible(fx.A, fx.B); err != nil {
		return nil, fmt.Errorf("%s: %w", fx.Name, err)
	}
	c, err := o.kernel(fx.A, fx.B)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fx.Name, err)
	}

	if o.crossCheck {
		ref, err := matrix.MulGonum(fx.A, fx.B)
		if err != nil {
			return nil, fmt.Errorf("%s: cross-check: %w", fx.Name, err)
		}
		diff, err := Compare(ref, c)
		if err != nil {
			return nil, fmt.Errorf("%s: cross-check: %w", fx.Name, err)
		}
		if len(diff) > 0 {
			return nil, fmt.Errorf("%s: %d cells, first %s: %w", fx.Name, len(diff), diff[0], ErrCrossCheck)
		}
	}

	if err = report.Write(w, fx.Banner, c); err != nil {
		return nil, fmt.Errorf("%s: %w", fx.Name, err)
	}

	return c, nil
}

// Compare lists every cell where got differs from want, in row-major order.
// Shapes must match.
func Compare(want, got matrix.Matrix) ([]Mismatch, error) {
	if err := matrix.ValidateSameShape(want, got); err != nil {
		return nil, err
	}
	var (
		out  []Mismatch
		i, j int
	)
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			if err != nil {
				return nil, err
			}
			gv, err := got.At(i, j)
			if err != nil {
				return nil, err
			}
			if wv != gv {
				out = append(out, Mismatch{Row: i, Col: j, Want: wv, Got: gv})
			}
		}
	}

	return out, nil
}

// AbsError returns |Want - Got| without overflowing on extreme values.
func (m Mismatch) AbsError() uint64 {
	if m.Want >= m.Got {
		return uint64(m.Want) - uint64(m.Got)
	}
	return uint64(m.Got) - uint64(m.Want)
}

// Stats summarizes a Compare result.
type Stats struct {
	Mismatches int
	MaxError   uint64  // largest |want-got| over mismatching cells
	AvgError   float64 // mean |want-got| over mismatching cells, 0 when none
}

// Passed reports whether no cell differed.
func (s Stats) Passed() bool { return s.Mismatches == 0 }

// Summarize folds mismatches into Stats.
func Summarize(diff []Mismatch) Stats {
	st := Stats{Mismatches: len(diff)}
	if len(diff) == 0 {
		return st
	}
	var total float64
	for _, m := range diff {
		e := m.AbsError()
		if e > st.MaxError {
			st.MaxError = e
		}
		total += float64(e)
	}
	st.AvgError = total / float64(len(diff))

	return st
}

// Verify prints the accelerator self-test verdict for got against want:
// at most limit mismatch lines (limit < 0 means DefaultMismatchLimit),
// then a PASSED summary, or a FAILED summary carrying the maximum and
// average absolute error.
func Verify(w io.Writer, want, got matrix.Matrix, limit int) (Stats, error) {
	diff, err := Compare(want, got)
	if err != nil {
		return Stats{}, err
	}
	st := Summarize(diff)
	if limit < 0 {
		limit = DefaultMismatchLimit
	}
	for k, m := range diff {
		if k >= limit {
			break
		}
		if _, err = fmt.Fprintf(w, "[x] %s\n", m); err != nil {
			return st, err
		}
	}
	if st.Passed() {
		_, err = fmt.Fprintln(w, "[ok] test PASSED!")
	} else {
		_, err = fmt.Fprintf(w, "[x] FAILED with %d mismatches (max error %d, avg error %.2f).\n",
			st.Mismatches, st.MaxError, st.AvgError)
	}

	return st, err
}
