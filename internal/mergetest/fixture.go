package mergetest

import "go.jacobcolvin.com/bmerge"

// Triple bundles the three inputs to a three-way merge.
type Triple struct {
	Base, Ours, Theirs []byte
}

// NewTriple builds a [Triple] from string inputs, for readability at call
// sites over repeating []byte(...) conversions.
func NewTriple(base, ours, theirs string) Triple {
	return Triple{Base: []byte(base), Ours: []byte(ours), Theirs: []byte(theirs)}
}

// Conflicting builds a [Triple] in which ours and theirs both change the
// same base region in incompatible ways, guaranteeing at least one conflict:
// base is wrapped in a common prefix/suffix so the engine has unambiguous
// context to anchor the change region on both sides.
func Conflicting(oursChange, theirsChange string) Triple {
	const prefix, suffix = "context-before\n", "\ncontext-after"

	return NewTriple(
		prefix+"base\n"+suffix,
		prefix+oursChange+suffix,
		prefix+theirsChange+suffix,
	)
}

// Render reproduces the caller-side concatenation the merge engine's output
// contract describes: every merged run in order, with each conflict region
// rendered as "<<<<<<<ours|||||||base=======theirs>>>>>>>" — a fixed,
// unambiguous rendering used only to make test expectations easy to write,
// not the format any "bmerge" subcommand actually emits.
func Render(records []bmerge.Record) string {
	var out []byte

	for _, r := range records {
		if !r.Conflict {
			out = append(out, r.Merged...)

			continue
		}

		out = append(out, "<<<<<<<"...)
		out = append(out, r.Ours...)
		out = append(out, "|||||||"...)
		out = append(out, r.Base...)
		out = append(out, "======="...)
		out = append(out, r.Theirs...)
		out = append(out, ">>>>>>>"...)
	}

	return string(out)
}

// Merge runs [bmerge.MergeRecords] over t and renders the result with
// [Render], returning the rendered document and whether any conflict
// occurred.
func Merge(t Triple) (string, bool) {
	records, conflicts := bmerge.MergeRecords(t.Base, t.Ours, t.Theirs)

	return Render(records), conflicts
}
