// Package failure defines the error markers shared by the sorting, merging
// and renaming stages.
//
// Domain errors (cut-list parse failures, unknown category folders) are typed
// in their own packages and match the markers here through errors.Is. Plain
// filesystem and configuration failures are tagged with Wrap so callers can
// classify any error with Kind without knowing which stage produced it.
package failure
