// Package report defines Reporter, the observer the repair cycle calls at each
// well-defined step: tree built, edge removed, vertex visited, components found,
// candidate rejected or considered, best updated, replacement chosen, edge added.
//
// The computation never prints. Presentation and instrumentation are plugged in
// through a Reporter:
//
//   - Nop       discards everything (the default).
//   - Logger    structured narration through a *logrus.Logger.
//   - Metrics   prometheus counters and a tree-weight gauge.
//   - Recorder  keeps an in-memory Event log, handy in tests.
//   - Multi     fans out to several reporters in order.
//
// Reporters are called synchronously from the single caller of a repair.Graph.
package report
