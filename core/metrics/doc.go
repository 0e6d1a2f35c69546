// Package metrics records locale redirects and resolutions.
//
// Components accept a Recorder and default to Nop. NewPrometheus backs the
// recorder with counters registered on the given registry.
package metrics
