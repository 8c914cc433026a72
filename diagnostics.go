package simcluster

import "go.uber.org/zap"

// Diagnostic is a structured, non-fatal event emitted when a computation
// encounters inconsistent result data (for example an assignment pointing at
// a cluster that has no medoid). The offending point is skipped and the
// computation continues.
type Diagnostic struct {
	// Op names the computation that emitted the event, e.g. "clustering_cost".
	Op string

	// Message is a human-readable description of the inconsistency.
	Message string

	// Point is the index of the skipped point.
	Point int

	// Cluster is the cluster ID involved, or Noise when not applicable.
	Cluster int
}

// DiagnosticHandler receives diagnostics from metric computations. A nil
// handler discards them.
type DiagnosticHandler func(Diagnostic)

// emit forwards d to h if h is non-nil.
func (h DiagnosticHandler) emit(d Diagnostic) {
	if h != nil {
		h(d)
	}
}

// LogDiagnostics adapts a zap logger into a DiagnosticHandler. Events are
// logged at Warn level with structured fields.
func LogDiagnostics(logger *zap.Logger) DiagnosticHandler {
	return func(d Diagnostic) {
		logger.Warn(d.Message,
			zap.String("op", d.Op),
			zap.Int("point", d.Point),
			zap.Int("cluster", d.Cluster),
		)
	}
}
