// SPDX-License-Identifier: MIT

// Package report renders a product matrix in the testbench log format:
//
//	<banner>
//	Result[0][0] = 250
//	Result[0][1] = 260
//	...
//
// Cells are emitted in row-major order, indices and values in plain decimal.
// The listing is built in memory first, so a failure never leaves a partial
// listing on the writer.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/matref/matrix"
)

const opWrite = "report.Write"

// ResultLine formats one cell without the trailing newline.
func ResultLine(i, j int, v int64) string {
	return "Result[" + strconv.Itoa(i) + "][" + strconv.Itoa(j) + "] = " + strconv.FormatInt(v, 10)
}

// Lines returns one ResultLine per cell of c in row-major order.
func Lines(c matrix.Matrix) ([]string, error) {
	if err := matrix.ValidateNotNil(c); err != nil {
		return nil, err
	}
	out := make([]string, 0, c.Rows()*c.Cols())
	var i, j int
	for i = 0; i < c.Rows(); i++ {
		for j = 0; j < c.Cols(); j++ {
			v, err := c.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, ResultLine(i, j, v))
		}
	}

	return out, nil
}

// Write prints banner and every cell of c to w.
// Exactly one banner line plus Rows()·Cols() result lines are written.
func Write(w io.Writer, banner string, c matrix.Matrix) error {
	lines, err := Lines(c)
	if err != nil {
		return fmt.Errorf("%s: %w", opWrite, err)
	}
	var buf bytes.Buffer
	buf.WriteString(banner)
	buf.WriteByte('\n')
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	if _, err = w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%s: %w", opWrite, err)
	}

	return nil
}
