package bmerge

import "bytes"

// Merge reconciles ours and theirs, two independent descendants of base,
// writing the result to sink. It returns true iff at least one conflict was
// emitted.
//
// base, ours and theirs are borrowed read-only for the duration of the
// call: Merge makes no copies of them, performs no mutation through them,
// and retains no reference to them after returning. sink is invoked inline,
// synchronously, on the calling goroutine.
//
// Merge never returns an error. Oversized input (over 65,535 bytes)
// degrades to treating the affected pair as having no common subsequence at
// all, which this driver then sees as one giant changed region and
// classifies normally — typically surfacing as a single conflict spanning
// the whole input. Allocation of the alignment tables is not guarded: running
// out of memory is not turned into this degraded result.
func Merge(base, ours, theirs []byte, sink Sink) bool {
	src := newCursor(lcs(base, theirs), len(base), len(theirs))
	dest := newCursor(lcs(base, ours), len(base), len(ours))

	conflicts := false
	first := true

	for {
		// The bracket consumes exactly one matched byte from each side,
		// except on the very first region, which has no leading bracket.
		matchLength := 1
		if first {
			matchLength = 0
		}

		// Advance whichever cursor lags until both agree on where the
		// base axis currently stands: that position is common to base,
		// ours and theirs, and brackets the change region being isolated.
		for src.IEnd != dest.IEnd {
			if src.IEnd < dest.IEnd {
				src.advance(false)
			} else {
				dest.advance(false)
			}
		}

		// A region is only-deletes when neither side's span grew past the
		// single bracket byte it's entitled to: any larger span means that
		// side inserted or changed bytes of its own, which is a candidate
		// conflict, not a clean deletion.
		onlyDeletes := src.JEnd-src.JBegin == matchLength && dest.JEnd-dest.JBegin == matchLength

		iBegin, iEnd := dest.IBegin, dest.IEnd
		oBegin, oEnd := dest.JBegin, dest.JEnd
		tBegin, tEnd := src.JBegin, src.JEnd

		bracketReal := !first

		switch {
		case onlyDeletes:
			if bracketReal {
				sink.EmitMerged(base[iBegin : iBegin+1])
			}
		case iEnd-iBegin == tEnd-tBegin && bytes.Equal(base[iBegin:iEnd], theirs[tBegin:tEnd]):
			// Theirs made no change relative to base: take ours.
			sink.EmitMerged(ours[oBegin:oEnd])
		case iEnd-iBegin == oEnd-oBegin && bytes.Equal(base[iBegin:iEnd], ours[oBegin:oEnd]):
			// Ours made no change relative to base: take theirs.
			sink.EmitMerged(theirs[tBegin:tEnd])
		case oEnd-oBegin == tEnd-tBegin && bytes.Equal(ours[oBegin:oEnd], theirs[tBegin:tEnd]):
			// Both sides made the identical change: take either.
			sink.EmitMerged(ours[oBegin:oEnd])
		default:
			conflicts = true

			if bracketReal {
				sink.EmitMerged(base[iBegin : iBegin+1])
				iBegin++
				oBegin++
				tBegin++
			}

			sink.EmitConflict(base[iBegin:iEnd], ours[oBegin:oEnd], theirs[tBegin:tEnd])
		}

		done := src.done() && dest.done()

		src.advance(true)
		dest.advance(true)

		first = false

		if done {
			break
		}
	}

	return conflicts
}
