// Package bmerge implements a three-way byte-level merge engine.
//
// Given three byte sequences — a common ancestor (base) and two descendants
// (ours and theirs) derived independently from base — [Merge] produces a
// single output sequence that incorporates edits from both sides, flagging
// regions where the edits cannot be reconciled.
//
// Unlike line-oriented merge tools, the engine aligns individual bytes: two
// edits that touch the same line but different bytes can both be kept
// automatically, at the cost of an O(m·n) sequence alignment per call.
//
// # Algorithm
//
// Merge computes the longest common subsequence (LCS) of base against each
// of ours and theirs, using a grouping-aware variant (see [Cell]) that
// prefers a few long runs of matches over many short ones. It then walks
// both alignments in lockstep with a pair of [Cursor] values, isolating one
// minimal change region at a time — bracketed by byte positions common to
// all three inputs — and classifying it:
//
//   - A region touched only by deletions relative to one side collapses to
//     re-emitting the bracket byte.
//   - A region where one side made no change relative to base takes the
//     other side's edit.
//   - A region where both sides made the identical change takes either
//     (ours, by convention).
//   - Anything else is a conflict: both sides' versions are handed to
//     [Sink.EmitConflict] for the caller to render.
//
// Input sequences are capped at 65,535 bytes each, keeping alignment-table
// indices within 16 bits. Oversized input degrades silently to an empty LCS
// rather than an error — the driver then sees the whole input as a single
// changed region and classifies it normally, which may surface as one large
// conflict. The alignment-table allocation is not guarded: running out of
// memory is not turned into an empty LCS. [Merge] never returns an error; it
// reports only whether any conflict was found.
//
// File I/O, CLI framing, and conflict-marker rendering are explicitly out of
// scope for this package; callers supply a [Sink] to receive the merge's
// output and do that work themselves.
package bmerge
