// Package fact provides the fact providers consulted once per submission.
//
// A Provider is opaque to the rest of the application: it either returns a
// short text fact or fails. Implementations include a Gemini-backed
// generator, a static provider reading an optional YAML file, and a
// tracing decorator.
package fact
