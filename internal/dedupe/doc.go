// Package dedupe merges cut-list files that describe the same part.
//
// Two files in one folder are duplicates when their content from line
// HeaderLines onward is byte-identical; the header (name, geometry, piece
// count) is ignored. Each group collapses onto its lexicographically first
// member, whose piece count becomes the sum over the group, and the other
// members are deleted. Deletion is permanent.
package dedupe
