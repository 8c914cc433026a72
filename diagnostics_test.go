package simcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogDiagnostics(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	handler := LogDiagnostics(zap.New(core))

	handler(Diagnostic{
		Op:      "clustering_cost",
		Message: "point 3 assigned to cluster 7 with no medoid",
		Point:   3,
		Cluster: 7,
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "point 3 assigned to cluster 7 with no medoid", entry.Message)
	assert.ElementsMatch(t, []zap.Field{
		zap.String("op", "clustering_cost"),
		zap.Int("point", 3),
		zap.Int("cluster", 7),
	}, entry.Context)
}

func TestNilHandlerDiscards(t *testing.T) {
	var h DiagnosticHandler
	assert.NotPanics(t, func() {
		h.emit(Diagnostic{Op: "clustering_cost"})
	})
}
