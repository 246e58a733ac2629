// Package cutlist reads and rewrites the numeric fields of CNC cut-list
// exports.
//
// A cut-list file is plain text made of `key := value` lines. Only a handful
// of keys matter to cutsort: the part height and width, which drive routing,
// and the number of pieces to cut, which the duplicate merger sums. Lookups
// are substring matches on a configurable label; the value is the last
// whitespace-delimited token of the first matching line.
package cutlist
