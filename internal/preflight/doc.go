// Package preflight provides readiness checks for the directories and tables
// a cutsort run depends on.
//
// These checks run in two contexts:
//   - The workflow calls RunAll before touching the workspace. If a required
//     check fails, the run stops before anything is moved or deleted.
//   - The CLI "cutsort check" command prints every result.
//
// Advisory checks report problems the run itself handles (unknown input
// folders are failures the sorter records) and never block a run.
package preflight
