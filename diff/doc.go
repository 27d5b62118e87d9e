// Package diff computes minimal edit sequences between string slices.
//
// It backs "bmerge diff", a standalone line-level preview of the changes
// between two file revisions, independent of the three-way merge engine at
// the repository root.
//
// This package provides the [Algorithm] interface and a default implementation
// using Hirschberg's algorithm for computing differences while minimizing memory
// allocations during repeated comparisons.
//
// # Algorithm Interface
//
// The [Algorithm] interface allows pluggable diff algorithms. [Hirschberg] is
// the default implementation, using a space-efficient LCS algorithm.
//
// Unlike the standard dynamic programming approach that requires O(m*n) space,
// Hirschberg's divide-and-conquer strategy reduces space complexity to
// O(n) in the length of the after sequence while maintaining O(m*n) time. This matters when previewing
// diffs of large files repeatedly, e.g. across every path in a "merge-dir"
// run.
//
// # Usage
//
// Create a [Hirschberg] instance once and reuse it for multiple comparisons.
//
// The instance maintains internal buffers that grow as needed but are never
// shrunk, avoiding repeated allocations:
//
//	h := diff.NewHirschberg()
//	h.Init(len(before), len(after)) // Optional: preallocate buffers.
//	ops := h.Diff(before, after)
//
// Each [Op] in the result describes one edit operation with an index into the
// appropriate input slice.
//
// The [OpKind] indicates the operation type:
//
//   - [OpEqual]: Line exists in both (index into after).
//   - [OpDelete]: Line only in before (index into before).
//   - [OpInsert]: Line only in after (index into after).
package diff
