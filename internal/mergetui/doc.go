// Package mergetui implements the interactive conflict resolver behind
// "bmerge resolve": a [tea.Model] that walks the conflict [bmerge.Record]s
// produced by [bmerge.MergeRecords] one at a time, lets the operator choose
// ours, theirs, both (ours then theirs), or leave the conflict markers in
// place, and assembles the
// final document once every conflict has been visited (or the operator
// quits early, in which case unresolved conflicts keep their markers).
package mergetui
