package bmerge

import "log/slog"

// Match is one aligned byte position shared by two sequences: position i in
// the first, position j in the second, and the matched byte itself.
type Match struct {
	I    int
	J    int
	Byte byte
}

// lcs computes the longest common subsequence of x and y, breaking ties
// among length-optimal alignments in favor of the one whose matches cluster
// into the fewest contiguous runs, and returns its matches in ascending
// order.
//
// It degrades to a nil result — rather than an error — when x or y exceeds
// maxInputLen or newTable refuses the sizes. Running out of memory while
// allocating the table is not caught. Callers treat a nil result as "no
// common subsequence" and proceed with the merge driver's whole-region
// conflict behavior.
func lcs(x, y []byte) []Match {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}

	if m > maxInputLen || n > maxInputLen {
		slog.Debug("lcs: input exceeds max length, degrading to no common subsequence",
			slog.Int("x_len", m), slog.Int("y_len", n), slog.Int("max", maxInputLen))

		return nil
	}

	table, ok := newTable(m, n)
	if !ok {
		slog.Debug("lcs: table allocation failed, degrading to no common subsequence",
			slog.Int("x_len", m), slog.Int("y_len", n))

		return nil
	}

	// Fill end to beginning, per the CLR LCS recurrence run in reverse:
	// c[i][j] = c[i+1][j+1]+1 when X[i]=Y[j], else max(c[i+1][j], c[i][j+1]).
	// Running it from the end biases ties toward matches earlier in the
	// input, which reduces spurious late-alignment artifacts.
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			down := table.at(i+1, j)
			right := table.at(i, j+1)
			diag := table.at(i+1, j+1)

			matched := x[i] == y[j]

			var c uint16
			if matched {
				c = diag.C + 1
			} else {
				c = maxU16(down.C, right.C)
			}

			var g uint16
			if down.C == c {
				g = maxU16(g, down.G)
			}

			if right.C == c {
				g = maxU16(g, right.G)
			}

			if matched {
				g = maxU16(g, diag.G)

				if i+1 < m && j+1 < n && x[i+1] == y[j+1] {
					g = maxU16(g, diag.G+1)
				}
			}

			table.set(i, j, Cell{C: c, G: g})
		}
	}

	total := int(table.at(0, 0).C)
	if total == 0 {
		return nil
	}

	matches := make([]Match, total)

	i, j := 0, 0
	for i < m && j < n {
		cur := table.at(i, j)
		if cur.C == 0 {
			break
		}

		down := table.at(i+1, j)
		right := table.at(i, j+1)
		diag := table.at(i+1, j+1)

		if takeMatch(x, y, i, j, cur, down, right, diag) {
			matches[total-int(cur.C)] = Match{I: i, J: j, Byte: x[i]}
			i++
			j++

			continue
		}

		switch {
		case down.C > right.C:
			i++
		case right.C > down.C:
			j++
		case down.G > right.G:
			i++
		case right.G > down.G:
			j++
		default:
			j++
		}
	}

	return matches
}

// takeMatch implements the TAKE-MATCH predicate: among all length-optimal
// LCSs, prefer the one whose matches cluster into the fewest runs.
//
// cur, down, right and diag are the cells at (i, j), (i+1, j), (i, j+1) and
// (i+1, j+1) respectively.
func takeMatch(x, y []byte, i, j int, cur, down, right, diag Cell) bool {
	switch {
	case cur.C > down.C && cur.C > right.C:
		// The match is required for any optimal LCS.
		return true
	case cur.G > down.G && cur.G > right.G:
		// The match is required for the best grouping.
		return true
	}

	if x[i] != y[j] {
		return false
	}

	if cur.G == diag.G {
		// The match is free: taking it doesn't forfeit grouping.
		return true
	}

	if cur.G == diag.G+1 && i > 0 && j > 0 && x[i-1] == y[j-1] {
		// The match isn't isolated: the prior byte matched too, so taking
		// this one extends a run instead of starting a singleton.
		return true
	}

	return false
}

func maxU16(a, b uint16) uint16 {
	if a > b {
		return a
	}

	return b
}
