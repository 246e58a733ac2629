// Command cutsort classifies CNC cut-list exports into a destination tree.
//
// The command tree wraps internal/workflow: "run" executes the whole
// pipeline, while "sort", "merge", "rename", "combine", "restore" and
// "snapshot" expose single phases. "plan", "rules", "models", "history" and
// "check" are read-only views. Long-running commands honour SIGINT and stop
// between files.
package main
