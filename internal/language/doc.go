// Package language holds the registry of output languages the service can
// write in: tag resolution, display names, default and topic category
// labels, and the literary templates used when no model output is available.
//
// The registry is built once at init time and never mutated afterwards, so
// every function here is safe for concurrent use.
package language
