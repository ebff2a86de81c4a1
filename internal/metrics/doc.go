// Package metrics records submission and fact-fetch telemetry.
//
// The Recorder interface is what the submission controller talks to.
// NopRecorder discards everything; Prometheus exports counters and a
// latency histogram through a dedicated registry so tests and multiple
// servers never collide on the global default registry.
package metrics
