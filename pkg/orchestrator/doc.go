// Package orchestrator wires the card pipeline end to end: preset lookup,
// validation and presentation-state resolution, theme selection, and renderer
// dispatch. Callers that only need HTML can reach for the root package's
// GenerateHTML helper instead.
package orchestrator
