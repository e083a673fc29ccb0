// Package sdp: SDPA sparse format (.dat-s) emission.

package sdp

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// WriteSparse emits p in the SDPA sparse format:
//
//	mDIM
//	nBLOCK
//	block sizes
//	cost vector
//	k block i j value      (one line per entry, k=0 is F₀, i ≤ j, 1-based)
//
// The problem is validated first; nothing is written on a validation error.
// Entry lines are sorted by (matrix, block, row, col), so two structurally
// equal problems produce byte-identical files — reproducible fixtures are a
// hard requirement downstream.
//
// Errors: everything Problem.Validate returns, plus any write error from w.
//
// Complexity: O(E log E) for E sparse entries.
func WriteSparse(w io.Writer, p *Problem) error {
	if err := p.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%d\n", p.NumVars(), len(p.BlockSizes)); err != nil {
		return err
	}
	for i, s := range p.BlockSizes {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(s)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	for i, c := range p.Cost {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(formatCoefficient(c)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	for k, m := range p.F {
		sorted := make(Matrix, len(m))
		copy(sorted, m)
		sort.Slice(sorted, func(a, b int) bool {
			if sorted[a].Block != sorted[b].Block {
				return sorted[a].Block < sorted[b].Block
			}
			if sorted[a].Row != sorted[b].Row {
				return sorted[a].Row < sorted[b].Row
			}

			return sorted[a].Col < sorted[b].Col
		})
		for _, e := range sorted {
			if e.Value == 0 {
				continue // sparse files carry structural zeros implicitly
			}
			_, err := fmt.Fprintf(bw, "%d %d %d %d %s\n",
				k, e.Block+1, e.Row+1, e.Col+1, formatCoefficient(e.Value))
			if err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// formatCoefficient renders a float with the shortest representation that
// survives a round trip, keeping files compact and diff-stable.
func formatCoefficient(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
