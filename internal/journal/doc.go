// Package journal records every cutsort run and the file actions it took in
// a SQLite database.
//
// A run row is opened when a command starts and closed with its counts and
// outcome. Events (moves, fallbacks, merges, renames, failures) reference the
// run. The history command reads both back. Phases write through the Recorder
// interface so they can run with journaling disabled.
package journal
