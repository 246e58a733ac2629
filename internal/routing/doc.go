// Package routing computes where a classified cut-list file belongs.
//
// Rules are evaluated top to bottom and the first match wins. Several rules
// overlap (an EXT_WALL batten at 28x70 would also satisfy later EXT_WALL
// predicates if they were broadened), so the table is an ordered slice and
// must never be re-keyed by part type. When nothing matches, the caller's
// default folder is returned untouched.
package routing
