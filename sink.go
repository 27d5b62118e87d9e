package bmerge

// Sink receives the output of a [Merge] call, in document order.
//
// Modeled as a small capability interface rather than raw callbacks plus an
// opaque context, so implementations can close over whatever state they
// need (a buffer, a writer, an accumulator of tagged records) without the
// engine having to know about it.
//
// Implementations must not retain the byte slices passed to either method
// past the call: the underlying buffers are only valid for the duration of
// the callback.
type Sink interface {
	// EmitMerged is called for each contiguous run of resolved output
	// bytes. The concatenation of every run passed to EmitMerged, in call
	// order, interleaved with rendered EmitConflict calls at the positions
	// they occurred, is the merged document.
	EmitMerged(run []byte)

	// EmitConflict is called once per unresolved change region, carrying
	// the corresponding byte ranges from base, ours and theirs. Rendering
	// conflict markers around these ranges is left entirely to the caller.
	EmitConflict(base, ours, theirs []byte)
}

// Record is a tagged variant of one [Sink] call, for callers that would
// rather collect a merge's output as a slice than receive callbacks.
type Record struct {
	// Conflict is true if this record came from EmitConflict, false if it
	// came from EmitMerged.
	Conflict bool

	// Merged holds the emitted run when Conflict is false.
	Merged []byte

	// Base, Ours and Theirs hold the three sides of the region when
	// Conflict is true.
	Base, Ours, Theirs []byte
}

// recorder is a [Sink] that appends a [Record] per call, for tests and for
// callers that want the whole result before deciding how to render it.
type recorder struct {
	records []Record
}

func (r *recorder) EmitMerged(run []byte) {
	r.records = append(r.records, Record{Merged: run})
}

func (r *recorder) EmitConflict(base, ours, theirs []byte) {
	r.records = append(r.records, Record{
		Conflict: true,
		Base:     base,
		Ours:     ours,
		Theirs:   theirs,
	})
}

// MergeRecords runs [Merge] and returns its output as a slice of [Record]
// values instead of sink callbacks. Byte slices in the returned records
// alias the input slices; copy them if the inputs may be mutated or reused
// afterward.
func MergeRecords(base, ours, theirs []byte) ([]Record, bool) {
	rec := &recorder{}
	conflicts := Merge(base, ours, theirs, rec)

	return rec.records, conflicts
}
