// Package health provides liveness and readiness handlers for probes.
package health
