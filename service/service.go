// Package service manages the lifecycle of long-lived infrastructure: audio, score store, spectator feed
package service

import "context"

// Service defines the lifecycle interface for infrastructure subsystems
//
// Lifecycle:
//  1. Construction
//  2. Init() - acquire resources (devices, files, listeners)
//  3. Start(ctx) - launch background goroutines bound to ctx
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init acquires the service's resources
	Init() error

	// Start begins service operation, called after all services have initialized
	Start(ctx context.Context) error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Optional is implemented by services the game can run without
// A failing optional service is dropped with a log line instead of failing the hub
type Optional interface {
	Optional() bool
}

func isOptional(svc Service) bool {
	o, ok := svc.(Optional)
	return ok && o.Optional()
}
