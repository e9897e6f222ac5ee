// Package telemetry wraps go.uber.org/zap into the small structured
// logger used across planecut: colored console output plus an
// in-memory buffer so callers (the HTML report adapter) can embed the
// rendered log lines without re-parsing anything.
package telemetry
