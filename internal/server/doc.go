// Package server exposes the dog years calculator as a small JSON HTTP
// API. Every request owns its own submission controller, so the server
// keeps no state between requests beyond its metrics.
package server
