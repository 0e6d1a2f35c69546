// Package site wires the marketing site server: configuration, logging,
// metrics, probes and the locale-aware static host.
package site
