package report

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mstrepair/core"
)

// Logger narrates the repair cycle through logrus.
//
// Step outcomes log at Info, per-candidate decisions at Debug and vertex
// visits at Trace, so the default Info level prints a compact story.
type Logger struct {
	log logrus.Ext1FieldLogger
}

var _ Reporter = (*Logger)(nil)

// NewLogger wraps l. A nil l falls back to logrus.StandardLogger().
func NewLogger(l logrus.Ext1FieldLogger) *Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}

	return &Logger{log: l}
}

func edgeFields(e core.Edge) logrus.Fields {
	return logrus.Fields{
		"edge":   e.String(),
		"weight": e.Weight,
	}
}

func (l *Logger) TreeBuilt(tree []core.Edge, weight int64) {
	l.log.WithFields(logrus.Fields{
		"edges":        len(tree),
		"total_weight": weight,
		"tree":         tree,
	}).Info("minimum spanning tree built")
}

func (l *Logger) EdgeRemoved(index int, e core.Edge) {
	l.log.WithFields(edgeFields(e)).WithField("index", index).Info("edge removed from tree")
}

func (l *Logger) VertexVisited(id int) {
	l.log.WithField("vertex", id).Trace("vertex visited")
}

func (l *Logger) ComponentsFound(p core.Partition) {
	l.log.WithFields(logrus.Fields{
		"partition_a": p.A.String(),
		"partition_b": p.B.String(),
	}).Info("components found")
}

func (l *Logger) CandidateRejected(e core.Edge, reason Reason) {
	l.log.WithFields(edgeFields(e)).WithField("reason", string(reason)).Debug("candidate skipped")
}

func (l *Logger) CandidateConsidered(e core.Edge) {
	l.log.WithFields(edgeFields(e)).Debug("candidate")
}

func (l *Logger) BestUpdated(e core.Edge) {
	l.log.WithFields(edgeFields(e)).Debug("new best candidate")
}

func (l *Logger) ReplacementChosen(e core.Edge, found bool) {
	if !found {
		l.log.Warn("no replacement edge crosses the cut")
		return
	}
	l.log.WithFields(edgeFields(e)).Info("best replacement edge")
}

func (l *Logger) EdgeAdded(e core.Edge, weight int64) {
	l.log.WithFields(edgeFields(e)).WithField("total_weight", weight).Info("replacement edge added")
}
