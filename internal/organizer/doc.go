// Package organizer drives a rename run over one directory.
//
// Each entry is processed to completion before the next: ignored names are
// skipped, names that already carry a year are left alone, the remaining
// titles are looked up, ambiguous results are handed to the operator, and the
// chosen candidate becomes the new "Title (Year)" name. Lookup and rename
// failures abort the run; everything else is counted in the Summary and the
// run moves on.
package organizer
